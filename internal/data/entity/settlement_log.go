package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "pending"
	SettlementStatusPaid     SettlementStatus = "paid"
	SettlementStatusFailed   SettlementStatus = "failed"
	SettlementStatusRejected SettlementStatus = "rejected"
)

const (
	ProviderCash  = "cash"
	ProviderPayOS = "payos"
)

// SettlementLog tracks one payment attempt against a booking.
type SettlementLog struct {
	Base
	BookingID         uuid.UUID        `db:"booking_id"`
	Provider          string           `db:"provider"`
	ProviderRef       string           `db:"provider_ref"`
	Amount            int64            `db:"amount"`
	Status            SettlementStatus `db:"status"`
	TransferReference string           `db:"transfer_reference"`
	RawNotification   json.RawMessage  `db:"raw_notification"`
}
