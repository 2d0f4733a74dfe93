package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/latency"
	"ayursutra-server/internal/services"
	"ayursutra-server/internal/utils"
)

// Outcome labels for booking and transition metrics.
const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
	outcomeTransition  = "invalid_transition"
	outcomeForbidden   = "forbidden"
	outcomePending     = "pending"
	outcomeError       = "error"
)

// respondServiceError maps a service error kind onto an HTTP response and
// returns the metric outcome label for it.
func respondServiceError(c *gin.Context, err error) string {
	var (
		validationErr  *services.ValidationError
		notFoundErr    *services.NotFoundError
		unavailableErr *services.DoctorUnavailableError
		transitionErr  *services.InvalidTransitionError
		permissionErr  *services.PermissionError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.ValidationFailed(c, validationErr.Fields)
		return outcomeInvalid
	case errors.As(err, &notFoundErr):
		utils.NotFound(c, notFoundErr.Error())
		return outcomeNotFound
	case errors.As(err, &unavailableErr):
		utils.Conflict(c, unavailableErr.Error())
		return outcomeUnavailable
	case errors.As(err, &transitionErr):
		utils.Conflict(c, transitionErr.Error())
		return outcomeTransition
	case errors.As(err, &permissionErr):
		utils.Forbidden(c, permissionErr.Error())
		return outcomeForbidden
	case errors.Is(err, latency.ErrSubmissionPending):
		utils.TooManyRequests(c, err.Error())
		return outcomePending
	default:
		_ = c.Error(err)
		utils.InternalServerError(c, "Unexpected error: "+err.Error())
		return outcomeError
	}
}
