package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentNext(t *testing.T) {
	tests := []struct {
		from   AppointmentStatus
		action AppointmentAction
		want   AppointmentStatus
		ok     bool
	}{
		{StatusPending, ActionAccept, StatusAccepted, true},
		{StatusPending, ActionCancel, "", true},
		{StatusPending, ActionComplete, "", false},
		{StatusAccepted, ActionComplete, StatusCompleted, true},
		{StatusAccepted, ActionCancel, "", true},
		{StatusAccepted, ActionAccept, "", false},
		{StatusCompleted, ActionAccept, "", false},
		{StatusCompleted, ActionComplete, "", false},
		{StatusCompleted, ActionCancel, "", false},
		{"archived", ActionAccept, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.action), func(t *testing.T) {
			a := Appointment{Status: tt.from}
			got, ok := a.Next(tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusAccepted}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
}

func TestRoleMayPerform(t *testing.T) {
	assert.True(t, RoleMayPerform(RoleDoctor, ActionAccept))
	assert.True(t, RoleMayPerform(RoleDoctor, ActionComplete))
	assert.True(t, RoleMayPerform(RolePatient, ActionCancel))
	assert.True(t, RoleMayPerform(RoleAdmin, ActionCancel))

	assert.False(t, RoleMayPerform(RolePatient, ActionAccept))
	assert.False(t, RoleMayPerform(RoleAdmin, ActionComplete))
	assert.False(t, RoleMayPerform(RoleDoctor, ActionCancel))
	assert.False(t, RoleMayPerform(RoleAdmin, "archive"))
}

func TestAppointmentTypeIsValid(t *testing.T) {
	for _, typ := range []AppointmentType{TypeConsultation, TypeFollowUp, TypePanchakarma, TypeAbhyanga, TypeShirodhara} {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, AppointmentType("consultation").IsValid())
	assert.False(t, AppointmentType("").IsValid())
}

func TestSortKey(t *testing.T) {
	early := Appointment{Date: "2025-03-01", Time: "09:00"}
	late := Appointment{Date: "2025-03-01", Time: "16:30"}
	assert.Less(t, early.SortKey(), late.SortKey())
	assert.Equal(t, "2025-03-01T09:00", early.SortKey())
}

func TestClonesShareNoSlices(t *testing.T) {
	d := Doctor{Treatments: []string{"Nasya"}}
	c := d.Clone()
	c.Treatments[0] = "changed"
	assert.Equal(t, "Nasya", d.Treatments[0])

	h := MedicalHistory{Conditions: []string{"stress"}}
	hc := h.Clone()
	hc.Conditions[0] = "changed"
	assert.Equal(t, "stress", h.Conditions[0])
	assert.True(t, MedicalHistory{}.IsEmpty())
	assert.False(t, h.IsEmpty())
}

func TestSeedDoctors(t *testing.T) {
	doctors := SeedDoctors()
	assert.Len(t, doctors, 4)
	for i, d := range doctors {
		assert.Equal(t, i+1, d.ID)
	}
	assert.False(t, doctors[2].Available)
}
