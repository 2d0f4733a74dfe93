package services

import (
	"strings"

	"ayursutra-server/internal/models"
)

// Availability narrows a doctor listing by booking status.
type Availability string

const (
	AvailabilityAll         Availability = "all"
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

// DoctorFilter selects doctors for the search view. Zero values match everything.
type DoctorFilter struct {
	SearchTerm     string       `form:"search"`
	Specialization string       `form:"specialization"`
	Availability   Availability `form:"availability" binding:"omitempty,oneof=all available unavailable"`
	MinRating      float64      `form:"minRating" binding:"omitempty,gte=0,lte=5"`
}

// Matches reports whether d satisfies every predicate of f.
func (f DoctorFilter) Matches(d models.Doctor) bool {
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		if !strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Specialization), term) {
			return false
		}
	}
	if spec := strings.ToLower(strings.TrimSpace(f.Specialization)); spec != "" {
		if !strings.Contains(strings.ToLower(d.Specialization), spec) {
			return false
		}
	}
	switch f.Availability {
	case AvailabilityAvailable:
		if !d.Available {
			return false
		}
	case AvailabilityUnavailable:
		if d.Available {
			return false
		}
	}
	return d.Rating >= f.MinRating
}
