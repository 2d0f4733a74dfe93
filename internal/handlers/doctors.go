package handlers

import (
	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/services"
	"ayursutra-server/internal/utils"
)

// DoctorHandler serves the doctor catalogue.
type DoctorHandler struct {
	Bookings *services.BookingService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(bookings *services.BookingService) *DoctorHandler {
	return &DoctorHandler{Bookings: bookings}
}

// GetDoctors lists doctors matching the search and filter query parameters.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var filter services.DoctorFilter
	if !utils.BindQuery(c, &filter) {
		return
	}
	utils.Success(c, "Doctors fetched successfully", h.Bookings.ListDoctors(filter))
}

// GetDoctorByID returns a single doctor.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	doctor, err := h.Bookings.GetDoctor(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// UpdateAvailabilityRequest represents the request body for toggling a doctor.
type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// UpdateAvailability marks a doctor available or busy. Admin only.
func (h *DoctorHandler) UpdateAvailability(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateAvailabilityRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	user, _ := middleware.GetCurrentUser(c)

	doctor, err := h.Bookings.SetDoctorAvailability(id, *req.Available, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Doctor availability updated successfully", doctor)
}

// GetDoctorAppointments lists a doctor's appointments in booking order.
func (h *DoctorHandler) GetDoctorAppointments(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.Bookings.GetDoctor(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", h.Bookings.ListAppointmentsForDoctor(id))
}
