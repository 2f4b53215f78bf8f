package config

import (
	"fmt"
	"strings"

	"github.com/giantswarm/tconsole/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateCommandName checks that name could be a command alias: non-empty
// and without spaces, since lines are split on spaces.
func ValidateCommandName(field, name string) error {
	if name == "" {
		return ValidationError{Field: field, Value: name, Message: "must not be empty"}
	}
	if strings.Contains(name, " ") {
		return ValidationError{Field: field, Value: name, Message: "cannot contain spaces"}
	}
	return nil
}

// Validate checks the configuration for values the console cannot use.
// Whether named commands exist is only known once commands are registered
// and is checked by the console builder.
func (c ConsoleConfig) Validate() ValidationErrors {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs.Add("logLevel", err.Error(), c.LogLevel)
	}

	if c.BlankCommand != "" {
		if err := ValidateCommandName("blankCommand", c.BlankCommand); err != nil {
			errs = append(errs, err.(ValidationError))
		}
	}

	for i, name := range c.ActiveCommands {
		if err := ValidateCommandName(fmt.Sprintf("activeCommands[%d]", i), name); err != nil {
			errs = append(errs, err.(ValidationError))
		}
	}

	return errs
}
