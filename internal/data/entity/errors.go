package entity

import "errors"

// Error kinds returned by the usecase layer. Callers wrap them with
// fmt.Errorf("%w: ...") and classify with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrExpired    = errors.New("expired")
	ErrSettlement = errors.New("settlement rejected")
	ErrProvider   = errors.New("payment provider error")
)
