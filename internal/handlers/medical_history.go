package handlers

import (
	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/metrics"
	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/models"
	"ayursutra-server/internal/services"
	"ayursutra-server/internal/utils"
)

// MedicalHistoryHandler serves the patient's own medical history and the
// doctor suggestions derived from it.
type MedicalHistoryHandler struct {
	Bookings      *services.BookingService
	Metrics       *metrics.Collector
	SuggestSource string
}

// NewMedicalHistoryHandler creates a new MedicalHistoryHandler.
func NewMedicalHistoryHandler(bookings *services.BookingService, m *metrics.Collector, suggestSource string) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{Bookings: bookings, Metrics: m, SuggestSource: suggestSource}
}

// UpdateMedicalHistoryRequest represents the request body for saving a history.
type UpdateMedicalHistoryRequest struct {
	Conditions  []string `json:"conditions"`
	Allergies   []string `json:"allergies"`
	Medications []string `json:"medications"`
	Notes       string   `json:"notes" binding:"max=4000"`
}

// GetMedicalHistory returns the current patient's history.
func (h *MedicalHistoryHandler) GetMedicalHistory(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	utils.Success(c, "Medical history fetched successfully", h.Bookings.GetMedicalHistory(user.ID))
}

// UpdateMedicalHistory replaces the current patient's history.
func (h *MedicalHistoryHandler) UpdateMedicalHistory(c *gin.Context) {
	var req UpdateMedicalHistoryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	user, _ := middleware.GetCurrentUser(c)

	history, err := h.Bookings.SetMedicalHistory(user.ID, models.MedicalHistory{
		Conditions:  req.Conditions,
		Allergies:   req.Allergies,
		Medications: req.Medications,
		Notes:       req.Notes,
	}, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Medical history updated successfully", history)
}

// GetSuggestedDoctors lists doctors relevant to the current patient's history.
func (h *MedicalHistoryHandler) GetSuggestedDoctors(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	doctors := h.Bookings.SuggestedDoctors(user.ID)
	if h.Metrics != nil {
		outcome := "empty"
		if len(doctors) > 0 {
			outcome = "suggested"
		}
		h.Metrics.SuggestionsTotal.WithLabelValues(h.SuggestSource, outcome).Inc()
	}
	utils.Success(c, "Suggested doctors fetched successfully", doctors)
}
