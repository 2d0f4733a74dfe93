package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"ayursutra-server/internal/models"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages line up with request bodies.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("appointment_type", func(fl validator.FieldLevel) bool {
		return models.AppointmentType(fl.Field().String()).IsValid()
	})
	return v
}

var tagMessages = map[string]string{
	"required":         "is required",
	"datetime":         "must be a calendar date (YYYY-MM-DD)",
	"clock":            "must be a 24-hour time (HH:MM)",
	"appointment_type": "must be one of Consultation, Follow-up, Panchakarma, Abhyanga, Shirodhara",
	"gt":               "must be positive",
	"max":              "is too long",
}

// validateStruct runs the struct tags of s and folds every failure into a
// single ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []string{err.Error()}}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "failed " + fe.Tag() + " check"
		}
		fields = append(fields, fe.Field()+" "+msg)
	}
	return &ValidationError{Fields: fields}
}
