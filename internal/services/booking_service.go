package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"ayursutra-server/internal/models"
)

// CreateAppointmentInput is a booking request from the patient dashboard.
type CreateAppointmentInput struct {
	PatientID   string                 `json:"patientId"`
	PatientName string                 `json:"patientName" validate:"required,max=120"`
	DoctorID    int                    `json:"doctorId" validate:"required,gt=0"`
	Date        string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string                 `json:"time" validate:"required,clock"`
	Type        models.AppointmentType `json:"type" validate:"required,appointment_type"`
	Notes       string                 `json:"notes"`
}

func (in *CreateAppointmentInput) normalize() {
	in.PatientName = strings.TrimSpace(in.PatientName)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Notes = strings.TrimSpace(in.Notes)
}

// BookingService owns the doctor catalogue, the appointment book and patient
// medical histories. It is the only way to change them; every method returns
// copies.
//
// All methods hold a single lock for their whole duration, so mutations are
// applied one at a time and reads see the latest completed write.
type BookingService struct {
	mu           sync.Mutex
	doctors      []models.Doctor
	appointments []models.Appointment
	histories    map[string]models.MedicalHistory
	lastID       int // highest appointment id ever issued
	suggest      SuggestFunc
	now          func() time.Time
	log          *zap.Logger
}

// Option configures a BookingService.
type Option func(*BookingService)

// WithSuggester replaces the keyword suggestion heuristic.
func WithSuggester(fn SuggestFunc) Option {
	return func(s *BookingService) {
		if fn != nil {
			s.suggest = fn
		}
	}
}

// WithAppointments preloads the appointment book.
func WithAppointments(appts []models.Appointment) Option {
	return func(s *BookingService) {
		for _, a := range appts {
			s.appointments = append(s.appointments, a)
			if a.ID > s.lastID {
				s.lastID = a.ID
			}
		}
	}
}

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

// NewBookingService creates a BookingService over the given doctor catalogue.
func NewBookingService(doctors []models.Doctor, log *zap.Logger, opts ...Option) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &BookingService{
		histories: make(map[string]models.MedicalHistory),
		suggest:   KeywordSuggest,
		now:       time.Now,
		log:       log,
	}
	for _, d := range doctors {
		s.doctors = append(s.doctors, d.Clone())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListDoctors returns the doctors matching f in catalogue order.
func (s *BookingService) ListDoctors(f DoctorFilter) []models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if f.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}

// GetDoctor returns a single doctor.
func (s *BookingService) GetDoctor(id int) (models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.doctorIndex(id)
	if i < 0 {
		return models.Doctor{}, &NotFoundError{Resource: "doctor", ID: id}
	}
	return s.doctors[i].Clone(), nil
}

// SetDoctorAvailability marks a doctor as accepting or refusing new bookings.
// Setting the current value again is a no-op.
func (s *BookingService) SetDoctorAvailability(id int, available bool, role models.Role) (models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role != models.RoleAdmin {
		return models.Doctor{}, &PermissionError{Role: role, Action: "change doctor availability"}
	}
	i := s.doctorIndex(id)
	if i < 0 {
		return models.Doctor{}, &NotFoundError{Resource: "doctor", ID: id}
	}
	if s.doctors[i].Available != available {
		s.doctors[i].Available = available
		s.log.Info("doctor availability changed",
			zap.Int("doctor_id", id),
			zap.Bool("available", available),
		)
	}
	return s.doctors[i].Clone(), nil
}

// CreateAppointment books a pending appointment with an available doctor.
func (s *BookingService) CreateAppointment(in CreateAppointmentInput) (models.Appointment, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return models.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.doctorIndex(in.DoctorID)
	if i < 0 {
		return models.Appointment{}, &NotFoundError{Resource: "doctor", ID: in.DoctorID}
	}
	doctor := s.doctors[i]
	if !doctor.Available {
		return models.Appointment{}, &DoctorUnavailableError{DoctorID: doctor.ID, DoctorName: doctor.Name}
	}

	notes := in.Notes
	if notes == "" {
		notes = "Appointment requested for " + string(in.Type)
	}
	a := models.Appointment{
		ID:          s.nextID(),
		PatientID:   in.PatientID,
		PatientName: in.PatientName,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        in.Date,
		Time:        in.Time,
		Type:        in.Type,
		Status:      models.StatusPending,
		Notes:       notes,
	}
	s.appointments = append(s.appointments, a)
	s.lastID = a.ID

	s.log.Info("appointment requested",
		zap.Int("appointment_id", a.ID),
		zap.Int("doctor_id", a.DoctorID),
		zap.String("date", a.Date),
		zap.String("time", a.Time),
	)
	return a, nil
}

// TransitionAppointment applies a lifecycle action. A cancel removes the
// appointment and returns the removed record.
func (s *BookingService) TransitionAppointment(id int, action models.AppointmentAction, role models.Role) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return models.Appointment{}, &NotFoundError{Resource: "appointment", ID: id}
	}
	a := s.appointments[i]
	next, ok := a.Next(action)
	if !ok {
		return models.Appointment{}, &InvalidTransitionError{AppointmentID: id, From: a.Status, Action: action}
	}
	if !models.RoleMayPerform(role, action) {
		return models.Appointment{}, &PermissionError{Role: role, Action: string(action) + " appointments"}
	}

	if action == models.ActionCancel {
		s.removeAt(i)
		s.log.Info("appointment cancelled", zap.Int("appointment_id", id), zap.String("role", string(role)))
		return a, nil
	}

	s.appointments[i].Status = next
	s.log.Info("appointment status changed",
		zap.Int("appointment_id", id),
		zap.String("from", string(a.Status)),
		zap.String("to", string(next)),
	)
	return s.appointments[i], nil
}

// DeleteAppointment removes an appointment. Patients may only remove
// appointments that are not completed, admins may remove any, doctors none.
func (s *BookingService) DeleteAppointment(id int, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return &NotFoundError{Resource: "appointment", ID: id}
	}
	switch role {
	case models.RoleAdmin:
	case models.RolePatient:
		if s.appointments[i].IsTerminal() {
			return &PermissionError{Role: role, Action: "delete completed appointments"}
		}
	default:
		return &PermissionError{Role: role, Action: "delete appointments"}
	}

	s.removeAt(i)
	s.log.Info("appointment deleted", zap.Int("appointment_id", id), zap.String("role", string(role)))
	return nil
}

// Prescribe records a prescription on an accepted or completed appointment.
func (s *BookingService) Prescribe(id int, prescription string, role models.Role) (models.Appointment, error) {
	prescription = strings.TrimSpace(prescription)
	if prescription == "" {
		return models.Appointment{}, &ValidationError{Fields: []string{"prescription is required"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return models.Appointment{}, &NotFoundError{Resource: "appointment", ID: id}
	}
	if role != models.RoleDoctor {
		return models.Appointment{}, &PermissionError{Role: role, Action: "write prescriptions"}
	}
	if s.appointments[i].Status == models.StatusPending {
		return models.Appointment{}, &InvalidTransitionError{AppointmentID: id, From: models.StatusPending, Action: "prescribe"}
	}
	s.appointments[i].Prescription = prescription
	return s.appointments[i], nil
}

// GetAppointment returns a single appointment.
func (s *BookingService) GetAppointment(id int) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndex(id)
	if i < 0 {
		return models.Appointment{}, &NotFoundError{Resource: "appointment", ID: id}
	}
	return s.appointments[i], nil
}

// ListAppointments returns every appointment in booking order.
func (s *BookingService) ListAppointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Appointment{}, s.appointments...)
}

// ListAppointmentsForDoctor returns a doctor's appointments in booking order.
func (s *BookingService) ListAppointmentsForDoctor(doctorID int) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Appointment{}
	for _, a := range s.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out
}

// ListAppointmentsForPatient returns a patient's appointments, most recent
// first. Names match case-insensitively.
func (s *BookingService) ListAppointmentsForPatient(patientName string) []models.Appointment {
	name := strings.TrimSpace(patientName)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Appointment{}
	for _, a := range s.appointments {
		if strings.EqualFold(a.PatientName, name) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortKey() > out[j].SortKey()
	})
	return out
}

// GetMedicalHistory returns the history recorded for a patient.
func (s *BookingService) GetMedicalHistory(patientID string) models.MedicalHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.histories[patientID].Clone()
}

// SetMedicalHistory replaces a patient's history.
func (s *BookingService) SetMedicalHistory(patientID string, h models.MedicalHistory, role models.Role) (models.MedicalHistory, error) {
	if role != models.RolePatient {
		return models.MedicalHistory{}, &PermissionError{Role: role, Action: "edit medical history"}
	}
	if strings.TrimSpace(patientID) == "" {
		return models.MedicalHistory{}, &ValidationError{Fields: []string{"patientId is required"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h = h.Clone()
	h.UpdatedAt = s.now().UTC()
	s.histories[patientID] = h
	return h.Clone(), nil
}

// SuggestedDoctors projects the catalogue through the suggestion heuristic
// for a patient's history. Patients without a history get no suggestions.
func (s *BookingService) SuggestedDoctors(patientID string) []models.Doctor {
	s.mu.Lock()
	history, ok := s.histories[patientID]
	doctors := make([]models.Doctor, len(s.doctors))
	for i, d := range s.doctors {
		doctors[i] = d.Clone()
	}
	history = history.Clone()
	s.mu.Unlock()

	// Suggesters may call out to a remote model; they only see the snapshot.
	if !ok || history.IsEmpty() {
		return []models.Doctor{}
	}
	out := s.suggest(doctors, history)
	if out == nil {
		return []models.Doctor{}
	}
	return out
}

func (s *BookingService) nextID() int {
	highest := s.lastID
	for _, a := range s.appointments {
		if a.ID > highest {
			highest = a.ID
		}
	}
	return highest + 1
}

func (s *BookingService) removeAt(i int) {
	s.appointments = append(s.appointments[:i:i], s.appointments[i+1:]...)
}

func (s *BookingService) doctorIndex(id int) int {
	for i, d := range s.doctors {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (s *BookingService) appointmentIndex(id int) int {
	for i, a := range s.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}
