package config

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator instance with lockstr's custom rules
// registered.
func newValidator() (*validator.Validate, error) {
	v := validator.New()

	if err := v.RegisterValidation("bytesize", validateByteSize); err != nil {
		return nil, fmt.Errorf("registering bytesize validation: %w", err)
	}

	return v, nil
}

// validateByteSize accepts humanized size strings such as "512MiB" or "2GB".
func validateByteSize(fl validator.FieldLevel) bool {
	_, err := humanize.ParseBytes(fl.Field().String())

	return err == nil
}
