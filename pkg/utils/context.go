package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	HolderIDKey contextKey = "holder_id"
	StaffKey    contextKey = "staff"
)

// GetHolderIDFromContext returns the caller identity; anonymous callers yield (uuid.Nil, false).
func GetHolderIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	holderIDVal := ctx.Value(HolderIDKey)
	if holderIDVal == nil {
		return uuid.Nil, false
	}

	holderID, ok := holderIDVal.(uuid.UUID)
	if !ok || holderID == uuid.Nil {
		return uuid.Nil, false
	}

	return holderID, true
}

// HolderPtrFromContext is the nullable form used by the usecase layer.
func HolderPtrFromContext(ctx context.Context) *uuid.UUID {
	holderID, ok := GetHolderIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &holderID
}

func SetHolderContext(ctx context.Context, holderID uuid.UUID) context.Context {
	return context.WithValue(ctx, HolderIDKey, holderID)
}

func IsStaff(ctx context.Context) bool {
	staff, _ := ctx.Value(StaffKey).(bool)
	return staff
}

func SetStaffContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, StaffKey, true)
}
