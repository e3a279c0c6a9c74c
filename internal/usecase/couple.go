package usecase

import (
	"fmt"

	"cinema-reservation/internal/data/entity"
)

// Couple seats are sold in adjacent pairs (1,2), (3,4), ... within a row.
// The odd number is the anchor of its pair.

func coupleAnchor(seatNumber int) int {
	if seatNumber%2 == 0 {
		return seatNumber - 1
	}
	return seatNumber
}

func couplePartner(seatNumber int) int {
	if seatNumber%2 == 0 {
		return seatNumber - 1
	}
	return seatNumber + 1
}

// PairID names the pair a couple seat belongs to, e.g. "C-5"; other seat
// types have no pair.
func PairID(seatType entity.SeatType, rowLabel string, seatNumber int) string {
	if seatType != entity.SeatTypeCouple {
		return ""
	}
	return fmt.Sprintf("%s-%d", rowLabel, coupleAnchor(seatNumber))
}
