package models

// SeedDoctors returns the doctor catalogue loaded at startup.
func SeedDoctors() []Doctor {
	return []Doctor{
		{
			ID:             1,
			Name:           "Dr. Rajesh Kumar",
			Specialization: "Panchakarma Specialist",
			Experience:     15,
			Rating:         4.8,
			Available:      true,
			Location:       "Panchakarma Center",
			Hours:          "Mon-Fri: 9AM-5PM",
			Treatments:     []string{"Abhyanga", "Shirodhara", "Virechana", "Basti"},
		},
		{
			ID:             2,
			Name:           "Dr. Meena Patel",
			Specialization: "Ayurvedic Physician",
			Experience:     12,
			Rating:         4.9,
			Available:      true,
			Location:       "Therapy Wing",
			Hours:          "Mon-Sat: 10AM-6PM",
			Treatments:     []string{"Nasya", "Shirodhara", "Udvartana", "Karna Purana"},
		},
		{
			ID:             3,
			Name:           "Dr. Arun Sharma",
			Specialization: "Traditional Ayurveda",
			Experience:     20,
			Rating:         4.7,
			Available:      false,
			Location:       "Treatment Center",
			Hours:          "Tue-Sat: 8AM-4PM",
			Treatments:     []string{"Pizhichil", "Njavarakizhi", "Akshi Tarpana", "Kati Basti"},
		},
		{
			ID:             4,
			Name:           "Dr. Priya Nair",
			Specialization: "Women's Ayurvedic Health",
			Experience:     10,
			Rating:         4.9,
			Available:      true,
			Location:       "Women's Health Wing",
			Hours:          "Mon-Fri: 11AM-7PM",
			Treatments:     []string{"Yoni Pichu", "Uttara Basti", "Abhyanga", "Shirodhara"},
		},
	}
}
