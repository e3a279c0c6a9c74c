package payment

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SuccessCode is the provider's "00" result code.
const SuccessCode = "00"

var ErrMalformed = errors.New("malformed payment notification")

// Notification is the webhook envelope posted by the provider.
type Notification struct {
	Code      string          `json:"code"`
	Desc      string          `json:"desc"`
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

// NotificationData is the signed part of a notification.
type NotificationData struct {
	OrderCode           int64  `json:"orderCode"`
	Amount              int64  `json:"amount"`
	Description         string `json:"description"`
	AccountNumber       string `json:"accountNumber"`
	Reference           string `json:"reference"`
	TransactionDateTime string `json:"transactionDateTime"`
	Currency            string `json:"currency"`
	PaymentLinkID       string `json:"paymentLinkId"`
	Code                string `json:"code"`
	Desc                string `json:"desc"`
}

// ParseNotification decodes raw webhook bytes. Any shape error is reported
// as ErrMalformed.
func ParseNotification(raw []byte) (*Notification, *NotificationData, error) {
	var n Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(n.Data) == 0 || string(n.Data) == "null" {
		return nil, nil, fmt.Errorf("%w: missing data", ErrMalformed)
	}

	var data NotificationData
	if err := json.Unmarshal(n.Data, &data); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if data.OrderCode <= 0 {
		return nil, nil, fmt.Errorf("%w: missing orderCode", ErrMalformed)
	}

	return &n, &data, nil
}

// Failed reports whether the provider flagged the transfer as unsuccessful.
func (n *Notification) Failed(data *NotificationData) bool {
	if n.Code != "" && n.Code != SuccessCode {
		return true
	}
	return data.Code != "" && data.Code != SuccessCode
}
