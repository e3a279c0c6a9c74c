package utils

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateHoldToken returns the opaque token shared by all rows of one hold.
func GenerateHoldToken() string {
	return uuid.NewString()
}

// ==================== BOOKING CODE ====================

// no 0/O, 1/I/L so codes can be read out loud at the counter
const bookingCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const bookingCodeLength = 8

// GenerateBookingCode creates a short human-shareable code, e.g. BK7QH2MZ4D.
// Uniqueness is enforced by the caller.
func GenerateBookingCode() (string, error) {
	code := make([]byte, bookingCodeLength)
	limit := big.NewInt(int64(len(bookingCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = bookingCodeAlphabet[n.Int64()]
	}
	return "BK" + string(code), nil
}

// ==================== PAYMENT REFERENCE ====================

// GeneratePaymentReference builds the numeric order code sent to the
// payment provider: unix seconds followed by three random digits.
func GeneratePaymentReference(now time.Time) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return 0, err
	}
	return now.Unix()*1000 + n.Int64(), nil
}
