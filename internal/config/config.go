// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GenerateParams are the invocation parameters of a generation run.
// Degenerate numeric ranges are rejected up front: a min employee bound above
// the max is an error, never a silent clamp that would collapse the sizing
// distribution.
type GenerateParams struct {
	OutDir       string `validate:"required"`
	Seed         uint64
	Orgs         int `validate:"gt=0"`
	MinEmployees int `validate:"gt=0"`
	MaxEmployees int `validate:"gt=0,gtefield=MinEmployees"`
	Months       int `validate:"gt=0"`
}

func (p GenerateParams) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating generation parameters: %w", err)
	}
	return errors.New(describeGenerateError(p, verrs[0]))
}

func describeGenerateError(p GenerateParams, fe validator.FieldError) string {
	switch fe.StructField() {
	case "OutDir":
		return "output directory is required"
	case "Orgs":
		return fmt.Sprintf("organization count must be positive, got %d", p.Orgs)
	case "MinEmployees":
		return fmt.Sprintf("min employees must be positive, got %d", p.MinEmployees)
	case "MaxEmployees":
		if fe.Tag() == "gtefield" {
			return fmt.Sprintf("min employees (%d) must not exceed max employees (%d)", p.MinEmployees, p.MaxEmployees)
		}
		return fmt.Sprintf("max employees must be positive, got %d", p.MaxEmployees)
	case "Months":
		return fmt.Sprintf("invoice months must be positive, got %d", p.Months)
	}
	return fmt.Sprintf("invalid parameter %s", fe.StructField())
}

// LoadParams are the invocation parameters of a warehouse load.
type LoadParams struct {
	Dir        string `validate:"required"`
	ConnString string `validate:"required"`
	Schema     string `validate:"required"`
}

func (p LoadParams) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating load parameters: %w", err)
	}
	switch verrs[0].StructField() {
	case "Dir":
		return errors.New("input directory is required")
	case "ConnString":
		return errors.New("database connection string is required")
	default:
		return errors.New("target schema is required")
	}
}
