package conversion

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-skyangle/pkg/skyangle"
)

// ErrInvalidInput indicates that a conversion request failed validation.
var ErrInvalidInput = errors.New("invalid conversion input")

// Batch limits.
const (
	// MaxBatchSize caps the number of values accepted by one activity call.
	// It must match the max tag on ConvertAnglesInput.Values.
	MaxBatchSize = 1_000_000
	// ChunkSize is the number of values converted between heartbeats.
	ChunkSize = 4096
)

// Supported payload precisions, in bits.
const (
	Precision32 = 32
	Precision64 = 64
)

// validate is the package-level validator; "angleunit" accepts any name
// skyangle.ParseUnit understands.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("angleunit", func(fl validator.FieldLevel) bool {
		_, err := skyangle.ParseUnit(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// ConvertAnglesInput is the request for the ConvertAngles activity.
type ConvertAnglesInput struct {
	Values Values `json:"values" validate:"max=1000000"`
	From   string `json:"from" validate:"angleunit"`
	To     string `json:"to" validate:"angleunit"`
	// Precision selects float32 or float64 arithmetic; zero means 64.
	Precision int `json:"precision,omitempty" validate:"oneof=0 32 64"`
}

// ConvertAnglesOutput is the result of the ConvertAngles activity.
type ConvertAnglesOutput struct {
	Values Values `json:"values"`
	// Unit is the short name of the unit Values are expressed in.
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// Validate checks units, precision and batch size. Errors wrap ErrInvalidInput;
// unit failures also wrap skyangle.ErrUnknownUnit.
func (in ConvertAnglesInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "angleunit":
		_, perr := skyangle.ParseUnit(fmt.Sprint(fe.Value()))
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, fe.Field(), perr)
	case "oneof":
		return fmt.Errorf("%w: %s must be one of %s, got %v", ErrInvalidInput, fe.Field(), fe.Param(), fe.Value())
	case "max":
		return fmt.Errorf("%w: %d values exceeds batch limit of %d", ErrInvalidInput, len(in.Values), MaxBatchSize)
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidInput, fe.Field(), fe.Tag())
	}
}

// units returns the parsed source and target units. Call Validate first.
func (in ConvertAnglesInput) units() (from, to skyangle.Unit) {
	from, _ = skyangle.ParseUnit(in.From)
	to, _ = skyangle.ParseUnit(in.To)
	return from, to
}
