package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusAccepted  AppointmentStatus = "accepted"
	StatusCompleted AppointmentStatus = "completed"
)

// AppointmentType is the kind of session a patient books.
type AppointmentType string

const (
	TypeConsultation AppointmentType = "Consultation"
	TypeFollowUp     AppointmentType = "Follow-up"
	TypePanchakarma  AppointmentType = "Panchakarma"
	TypeAbhyanga     AppointmentType = "Abhyanga"
	TypeShirodhara   AppointmentType = "Shirodhara"
)

// IsValid reports whether t is one of the bookable appointment types.
func (t AppointmentType) IsValid() bool {
	switch t {
	case TypeConsultation, TypeFollowUp, TypePanchakarma, TypeAbhyanga, TypeShirodhara:
		return true
	}
	return false
}

// AppointmentAction is a requested change to an appointment's lifecycle.
type AppointmentAction string

const (
	ActionAccept   AppointmentAction = "accept"
	ActionComplete AppointmentAction = "complete"
	ActionCancel   AppointmentAction = "cancel"
)

// Lifecycle:
//
//	pending --accept--> accepted --complete--> completed
//	pending|accepted --cancel--> (removed)
var transitions = map[AppointmentStatus]map[AppointmentAction]AppointmentStatus{
	StatusPending: {
		ActionAccept: StatusAccepted,
		ActionCancel: "",
	},
	StatusAccepted: {
		ActionComplete: StatusCompleted,
		ActionCancel:   "",
	},
	StatusCompleted: {},
}

// actionRoles lists who may drive each action.
var actionRoles = map[AppointmentAction][]Role{
	ActionAccept:   {RoleDoctor},
	ActionComplete: {RoleDoctor},
	ActionCancel:   {RolePatient, RoleAdmin},
}

// Appointment represents a booked session between a patient and a doctor
type Appointment struct {
	ID           int               `json:"id"`
	PatientID    string            `json:"patientId,omitempty"`
	PatientName  string            `json:"patientName"`
	DoctorID     int               `json:"doctorId"`
	DoctorName   string            `json:"doctorName"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Type         AppointmentType   `json:"type"`
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	Prescription string            `json:"prescription,omitempty"`
}

// Next returns the status reached by applying action. A cancel yields an empty
// status because the appointment is removed rather than moved to a new state.
func (a *Appointment) Next(action AppointmentAction) (AppointmentStatus, bool) {
	next, ok := transitions[a.Status][action]
	return next, ok
}

// IsTerminal reports whether no further action applies to the appointment.
func (a *Appointment) IsTerminal() bool {
	return len(transitions[a.Status]) == 0
}

// SortKey orders appointments chronologically; date and time are validated
// fixed-width strings so lexical order matches time order.
func (a *Appointment) SortKey() string {
	return a.Date + "T" + a.Time
}

// RoleMayPerform reports whether role is allowed to drive action.
func RoleMayPerform(role Role, action AppointmentAction) bool {
	for _, r := range actionRoles[action] {
		if r == role {
			return true
		}
	}
	return false
}
