package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom validation rules
func NewValidator() *Validator {
	v := validator.New()
	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration, including the
// cross-field rules the struct tags cannot express.
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	if err := v.Validate(cfg); err != nil {
		return err
	}

	if cfg.Economy.DevelopingMaxLevel <= cfg.Economy.BootstrapMaxLevel {
		return fmt.Errorf("economy.developing_max_level (%d) must exceed economy.bootstrap_max_level (%d)",
			cfg.Economy.DevelopingMaxLevel, cfg.Economy.BootstrapMaxLevel)
	}
	if cfg.Governor.DelayEtaTicks > cfg.Governor.SuppressEtaTicks {
		return fmt.Errorf("governor.delay_eta_ticks (%v) must not exceed governor.suppress_eta_ticks (%v)",
			cfg.Governor.DelayEtaTicks, cfg.Governor.SuppressEtaTicks)
	}
	return nil
}
