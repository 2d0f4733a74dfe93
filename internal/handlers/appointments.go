package handlers

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayursutra-server/internal/latency"
	"ayursutra-server/internal/metrics"
	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/models"
	"ayursutra-server/internal/services"
	"ayursutra-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Bookings *services.BookingService
	Latency  *latency.Simulator
	Metrics  *metrics.Collector
	Log      *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(bookings *services.BookingService, sim *latency.Simulator, m *metrics.Collector, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Bookings: bookings, Latency: sim, Metrics: m, Log: log}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
// Field checks happen once, in the booking service.
type CreateAppointmentRequest struct {
	PatientName string    `json:"patientName"`
	DoctorID    DoctorRef `json:"doctorId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Notes       string    `json:"notes"`
}

// DoctorRef is a doctor id sent either as a JSON number or as a numeric
// string, which is what the dashboard's select element produces.
type DoctorRef int

// UnmarshalJSON implements json.Unmarshaler.
func (r *DoctorRef) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*r = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*r = 0
			return nil
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: reflect.TypeOf(0), Field: "doctorId"}
	}
	*r = DoctorRef(id)
	return nil
}

// CreateAppointment handles a booking submission from the patient dashboard.
// The booking is always made under the session's patient name.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	user, _ := middleware.GetCurrentUser(c)
	// Patients book for themselves; the list and ownership checks key on the
	// session name.
	if name := strings.TrimSpace(req.PatientName); name != "" && !strings.EqualFold(name, user.Name) {
		h.countBooking(outcomeInvalid)
		utils.ValidationFailed(c, []string{"patientName must match the signed-in patient"})
		return
	}
	req.PatientName = user.Name

	var appointment models.Appointment
	err := h.Latency.Submit(c.Request.Context(), "booking:"+user.ID, func() error {
		var err error
		appointment, err = h.Bookings.CreateAppointment(services.CreateAppointmentInput{
			PatientID:   user.ID,
			PatientName: req.PatientName,
			DoctorID:    int(req.DoctorID),
			Date:        req.Date,
			Time:        req.Time,
			Type:        models.AppointmentType(req.Type),
			Notes:       req.Notes,
		})
		return err
	})
	if err != nil {
		if c.Request.Context().Err() != nil {
			h.Log.Info("booking submission abandoned", zap.String("user_id", user.ID))
			h.countBooking("abandoned")
			return
		}
		h.countBooking(respondServiceError(c, err))
		return
	}

	h.countBooking(outcomeOK)
	utils.Created(c, "Appointment requested! A doctor will accept it soon.", appointment)
}

// GetAppointmentsForUser returns the appointments visible to the caller:
// a patient's own bookings (most recent first), a doctor's list selected by
// the doctorId query parameter, or every appointment for an admin.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	doctorID := 0
	if raw := c.Query("doctorId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.BadRequest(c, "Invalid doctorId: must be a positive integer")
			return
		}
		doctorID = id
	}

	switch user.Role {
	case models.RolePatient:
		utils.Success(c, "Appointments fetched successfully", h.Bookings.ListAppointmentsForPatient(user.Name))
	case models.RoleDoctor:
		if doctorID == 0 {
			utils.BadRequest(c, "doctorId query parameter is required")
			return
		}
		utils.Success(c, "Appointments fetched successfully", h.Bookings.ListAppointmentsForDoctor(doctorID))
	case models.RoleAdmin:
		if doctorID != 0 {
			utils.Success(c, "Appointments fetched successfully", h.Bookings.ListAppointmentsForDoctor(doctorID))
			return
		}
		utils.Success(c, "Appointments fetched successfully", h.Bookings.ListAppointments())
	default:
		utils.Forbidden(c, "User role not permitted to view appointments. Role: "+string(user.Role))
	}
}

// GetAppointmentByID handles fetching a single appointment by its ID.
// Patients only see their own bookings.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.GetCurrentUser(c)
	appointment, ok := h.loadForCaller(c, id, user)
	if !ok {
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// TransitionAppointmentRequest represents the request body for a lifecycle action.
type TransitionAppointmentRequest struct {
	Action models.AppointmentAction `json:"action" binding:"required,oneof=accept complete cancel"`
}

// TransitionAppointment accepts, completes or cancels an appointment.
func (h *AppointmentHandler) TransitionAppointment(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req TransitionAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	user, _ := middleware.GetCurrentUser(c)
	if _, ok := h.loadForCaller(c, id, user); !ok {
		return
	}

	appointment, err := h.Bookings.TransitionAppointment(id, req.Action, user.Role)
	if err != nil {
		h.countTransition(req.Action, respondServiceError(c, err))
		return
	}
	h.countTransition(req.Action, outcomeOK)

	if req.Action == models.ActionCancel {
		utils.Success(c, "Appointment cancelled successfully", appointment)
		return
	}
	utils.Success(c, "Appointment status updated successfully", appointment)
}

// PrescribeRequest represents the request body for writing a prescription.
type PrescribeRequest struct {
	Prescription string `json:"prescription" binding:"required,max=4000"`
}

// Prescribe records the doctor's prescription on an appointment.
func (h *AppointmentHandler) Prescribe(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req PrescribeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	user, _ := middleware.GetCurrentUser(c)

	appointment, err := h.Bookings.Prescribe(id, req.Prescription, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.Success(c, "Prescription saved successfully", appointment)
}

// DeleteAppointment removes an appointment (patient cancel or admin delete).
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}
	user, _ := middleware.GetCurrentUser(c)
	if _, ok := h.loadForCaller(c, id, user); !ok {
		return
	}

	if err := h.Bookings.DeleteAppointment(id, user.Role); err != nil {
		h.countTransition("delete", respondServiceError(c, err))
		return
	}
	h.countTransition("delete", outcomeOK)
	utils.Success(c, "Appointment deleted successfully", nil)
}

// loadForCaller fetches an appointment and rejects patients acting on
// someone else's booking.
func (h *AppointmentHandler) loadForCaller(c *gin.Context, id int, user models.CurrentUser) (models.Appointment, bool) {
	appointment, err := h.Bookings.GetAppointment(id)
	if err != nil {
		respondServiceError(c, err)
		return models.Appointment{}, false
	}
	if user.Role == models.RolePatient && !ownedBy(appointment, user) {
		utils.Forbidden(c, "You are not authorized to access this appointment")
		return models.Appointment{}, false
	}
	return appointment, true
}

// ownedBy uses the same case-insensitive name rule as the patient list.
func ownedBy(a models.Appointment, user models.CurrentUser) bool {
	return strings.EqualFold(strings.TrimSpace(a.PatientName), strings.TrimSpace(user.Name))
}

func (h *AppointmentHandler) countBooking(outcome string) {
	if h.Metrics != nil {
		h.Metrics.BookingsTotal.WithLabelValues(outcome).Inc()
	}
}

func (h *AppointmentHandler) countTransition(action models.AppointmentAction, outcome string) {
	if h.Metrics != nil {
		h.Metrics.TransitionsTotal.WithLabelValues(string(action), outcome).Inc()
	}
}
