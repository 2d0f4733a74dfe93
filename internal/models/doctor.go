package models

// Doctor is a practitioner patients can book.
type Doctor struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"` // years
	Rating         float64  `json:"rating"`
	Available      bool     `json:"available"`
	Location       string   `json:"location"`
	Hours          string   `json:"hours,omitempty"`
	Treatments     []string `json:"treatments"`
}

// Clone returns a copy that shares no slices with d.
func (d Doctor) Clone() Doctor {
	d.Treatments = append([]string(nil), d.Treatments...)
	return d
}
