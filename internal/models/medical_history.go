package models

import "time"

// MedicalHistory is the patient's self-reported record. Its contents are not
// interpreted beyond the doctor suggestion heuristics.
type MedicalHistory struct {
	Conditions  []string  `json:"conditions"`
	Allergies   []string  `json:"allergies"`
	Medications []string  `json:"medications"`
	Notes       string    `json:"notes"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsEmpty reports whether nothing has been recorded.
func (h MedicalHistory) IsEmpty() bool {
	return len(h.Conditions) == 0 && len(h.Allergies) == 0 && len(h.Medications) == 0 && h.Notes == ""
}

// Clone returns a copy that shares no slices with h.
func (h MedicalHistory) Clone() MedicalHistory {
	h.Conditions = append([]string(nil), h.Conditions...)
	h.Allergies = append([]string(nil), h.Allergies...)
	h.Medications = append([]string(nil), h.Medications...)
	return h
}
