package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ayursutra-server/internal/models"
)

func TestKeywordSuggest(t *testing.T) {
	doctors := models.SeedDoctors()

	tests := []struct {
		name    string
		history models.MedicalHistory
		want    []int
	}{
		{
			name:    "empty history",
			history: models.MedicalHistory{},
			want:    []int{},
		},
		{
			name:    "condition matches treatment",
			history: models.MedicalHistory{Conditions: []string{"Basti"}},
			want:    []int{1, 3, 4},
		},
		{
			name:    "condition matches specialization",
			history: models.MedicalHistory{Conditions: []string{"women"}},
			want:    []int{4},
		},
		{
			name:    "treatment named in notes",
			history: models.MedicalHistory{Notes: "Asked about Nasya for my sinus"},
			want:    []int{2},
		},
		{
			name:    "short and stop words ignored",
			history: models.MedicalHistory{Notes: "I have had it for a while"},
			want:    []int{},
		},
		{
			name:    "allergies alone do not match",
			history: models.MedicalHistory{Allergies: []string{"sesame"}},
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doctorIDs(KeywordSuggest(doctors, tt.history)))
		})
	}
}

func TestKeywordSuggest_DoesNotModifyInput(t *testing.T) {
	doctors := models.SeedDoctors()
	before := models.SeedDoctors()

	KeywordSuggest(doctors, models.MedicalHistory{Conditions: []string{"abhyanga"}})

	assert.Equal(t, before, doctors)
}
