package usecase

import (
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
)

func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
}

func parseID(name, value string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", entity.ErrValidation, name, value)
	}
	return id, nil
}

func sameHolder(a, b *uuid.UUID) bool {
	return a != nil && b != nil && *a == *b
}
