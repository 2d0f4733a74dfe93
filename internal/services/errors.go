package services

import (
	"fmt"
	"strings"

	"ayursutra-server/internal/models"
)

// ValidationError is returned when required input is missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// NotFoundError is returned when a referenced doctor or appointment does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// DoctorUnavailableError is returned when booking a doctor who is not taking appointments.
type DoctorUnavailableError struct {
	DoctorID   int
	DoctorName string
}

func (e *DoctorUnavailableError) Error() string {
	return fmt.Sprintf("%s is currently unavailable for new bookings", e.DoctorName)
}

// InvalidTransitionError is returned when an action does not apply to the
// appointment's current status.
type InvalidTransitionError struct {
	AppointmentID int
	From          models.AppointmentStatus
	Action        models.AppointmentAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s appointment %d in status %s", e.Action, e.AppointmentID, e.From)
}

// PermissionError is returned when the actor's role may not perform the operation.
type PermissionError struct {
	Role   models.Role
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role %q is not permitted to %s", e.Role, e.Action)
}
