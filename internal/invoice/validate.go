package invoice

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one advisory validation finding. Validation never blocks
// computation; callers display the message next to the offending field and
// proceed with last-known-valid values.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validTaxSlabs = map[float64]bool{0: true, 5: true, 12: true, 18: true, 28: true}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a draft and returns the accumulated field errors, empty for
// a clean draft.
func Validate(d Draft) []FieldError {
	var errs []FieldError
	if err := validate.Struct(d); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				errs = append(errs, FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
			}
		}
	}
	if len(d.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "at least one line item is required"})
	}
	for i, it := range d.Items {
		if strings.TrimSpace(it.Description) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].description", i),
				Message: "description is required",
			})
		}
		if !validTaxSlabs[it.TaxRatePercent] {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].taxRatePercent", i),
				Message: "tax rate must be one of 0, 5, 12, 18, 28",
			})
		}
	}
	return errs
}

func fieldPath(fe validator.FieldError) string {
	// Strip the leading "Draft." and lower-case the first rune of each
	// segment to match the JSON field names.
	path := strings.TrimPrefix(fe.Namespace(), "Draft.")
	parts := strings.Split(path, ".")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "invalid value"
}
