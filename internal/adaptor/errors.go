package adaptor

import (
	"errors"
	"net/http"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP responses by sentinel,
// never by message text. The default branch hides the cause from the caller.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrOfferingNotFound),
		errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrInsufficientCapacity):
		log.Warn(operation+" failed - insufficient capacity", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), utils.CodeInsufficientCapacity)

	case errors.Is(err, entity.ErrInvalidTransition):
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), utils.CodeInvalidTransition)

	case errors.Is(err, entity.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseForbidden(w, "You are not allowed to perform this action")

	case errors.Is(err, entity.ErrEmailTaken):
		log.Warn(operation+" failed - email taken", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthenticated(w, err.Error())

	case errors.Is(err, entity.ErrCompensationFailed):
		log.Error("COMPENSATION FAILED during "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
