package domain

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationRequest is the control metadata submitted for review. Every field is
// opaque text; semantic judgement is left to the generation provider.
type ValidationRequest struct {
	Process            string `json:"process"`
	Subprocess         string `json:"subprocess"`
	Risk               string `json:"risk"`
	Frequency          string `json:"frequency"`
	RiskDescription    string `json:"risk_description"`
	Control            string `json:"control"`
	ControlDescription string `json:"control_description"`
}

// RequestFields lists the wire names of the ValidationRequest fields in order.
var RequestFields = []string{
	"process",
	"subprocess",
	"risk",
	"frequency",
	"risk_description",
	"control",
	"control_description",
}

// boundRequest holds the raw parameters. A nil field was not supplied.
type boundRequest struct {
	Process            *string `query:"process"             validate:"required"`
	Subprocess         *string `query:"subprocess"          validate:"required"`
	Risk               *string `query:"risk"                validate:"required"`
	Frequency          *string `query:"frequency"           validate:"required"`
	RiskDescription    *string `query:"risk_description"    validate:"required"`
	Control            *string `query:"control"             validate:"required"`
	ControlDescription *string `query:"control_description" validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			return field.Tag.Get("query")
		})
	})
	return validate
}

// BindValidationRequest builds a request from lookup, which reports the value
// of a wire name and whether it was supplied at all. Supplied values are taken
// verbatim, empty or blank ones included. When any field was not supplied the
// error is a *ValidationError wrapping ErrValidation that lists those fields in
// RequestFields order.
func BindValidationRequest(lookup func(name string) (string, bool)) (ValidationRequest, error) {
	get := func(name string) *string {
		if v, ok := lookup(name); ok {
			return &v
		}
		return nil
	}

	bound := boundRequest{
		Process:            get("process"),
		Subprocess:         get("subprocess"),
		Risk:               get("risk"),
		Frequency:          get("frequency"),
		RiskDescription:    get("risk_description"),
		Control:            get("control"),
		ControlDescription: get("control_description"),
	}

	err := requestValidator().Struct(bound)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		missing := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			missing = append(missing, fe.Field())
		}
		return ValidationRequest{}, NewValidationError("missing required query parameter(s)", inFieldOrder(missing)...)
	} else if err != nil {
		return ValidationRequest{}, err
	}

	return ValidationRequest{
		Process:            *bound.Process,
		Subprocess:         *bound.Subprocess,
		Risk:               *bound.Risk,
		Frequency:          *bound.Frequency,
		RiskDescription:    *bound.RiskDescription,
		Control:            *bound.Control,
		ControlDescription: *bound.ControlDescription,
	}, nil
}

func inFieldOrder(names []string) []string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	ordered := make([]string, 0, len(names))
	for _, n := range RequestFields {
		if seen[n] {
			ordered = append(ordered, n)
		}
	}
	return ordered
}
