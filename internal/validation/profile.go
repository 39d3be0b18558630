package validation

import (
	"sync"

	validator "github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
)

// Result is the outcome of the composite profile-form validation. When Valid
// is false, Error carries the first failing field's user-facing message.
type Result struct {
	Valid bool
	Error string
}

var (
	profileValidatorOnce sync.Once
	profileValidator     *validator.Validate
)

// fieldMessages maps a failing struct field to the message shown to the user.
// Order of evaluation is fixed: name, blood group, provider, number.
var fieldOrder = []struct {
	field   string
	message string
}{
	{"Name", "Name must be at least 2 characters"},
	{"BloodGroup", "Please select a valid blood group"},
	{"InsuranceProvider", "Insurance provider is required"},
	{"InsuranceNumber", "Insurance number is required"},
}

func getProfileValidator() *validator.Validate {
	profileValidatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
			return IsValidBloodGroup(fl.Field().String())
		})
		profileValidator = v
	})
	return profileValidator
}

// ValidateProfileForm checks a profile record against the form rules:
// name/provider/number non-empty with at least 2 characters after trimming,
// blood group a member of the 8-value enumeration. The first failing field
// determines the returned message.
func ValidateProfileForm(p *models.HealthProfile) Result {
	trimmed := models.HealthProfile{
		ID:                p.ID,
		Name:              normalizeSpace(p.Name),
		BloodGroup:        p.BloodGroup,
		InsuranceProvider: normalizeSpace(p.InsuranceProvider),
		InsuranceNumber:   normalizeSpace(p.InsuranceNumber),
		PDFURL:            p.PDFURL,
	}

	err := getProfileValidator().Struct(&trimmed)
	if err == nil {
		return Result{Valid: true}
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Valid: false, Error: err.Error()}
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.StructField()] = true
	}
	for _, f := range fieldOrder {
		if failed[f.field] {
			return Result{Valid: false, Error: f.message}
		}
	}
	return Result{Valid: false, Error: fieldErrs.Error()}
}
