package adaptor

import (
	"context"
	"errors"
	"net/http"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps the usecase error taxonomy to HTTP responses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, entity.ErrExpired):
		log.Warn(operation+" failed - expired",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseGone(w, errMsg)

	case errors.Is(err, entity.ErrConflict), errors.Is(err, context.DeadlineExceeded):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, entity.ErrProvider):
		log.Error(operation+" failed - payment provider",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Payment provider unavailable")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
