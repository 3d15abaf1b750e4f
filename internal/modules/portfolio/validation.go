package portfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes one rejected field
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError reports holdings that cannot be valued
type ValidationError struct {
	Symbol string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s failed %s", f.Field, f.Rule))
	}
	name := e.Symbol
	if name == "" {
		name = "holding"
	}
	return fmt.Sprintf("invalid %s: %s", name, strings.Join(parts, ", "))
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks a holding before valuation or storage: symbol required,
// quantity not negative, average buy price strictly positive.
func Validate(h Holding) error {
	h.Symbol = strings.TrimSpace(h.Symbol)
	err := validate.Struct(h)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate holding: %w", err)
	}

	ve := &ValidationError{Symbol: h.Symbol}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return ve
}
