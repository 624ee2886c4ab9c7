package filters

import (
	"errors"
	"fmt"
)

// Common filter errors that can be checked with errors.Is().
var (
	// ErrFilterNotFound is returned when no factory is registered under
	// a requested name.
	ErrFilterNotFound = errors.New("filter not found")

	// ErrMissingConfig is returned by factories that require a
	// configuration block when none was supplied.
	ErrMissingConfig = errors.New("filter configuration is required")

	// ErrInvalidConfigValue is returned when a configuration field
	// carries a value outside its accepted set.
	ErrInvalidConfigValue = errors.New("invalid configuration value")
)

// NotFoundError is returned when a chain entry references a name no
// registered factory claims.
type NotFoundError struct {
	// Name is the requested registry key.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("filter %q is not registered", e.Name)
}

// Is implements error matching for errors.Is().
func (e *NotFoundError) Is(target error) bool {
	return target == ErrFilterNotFound
}

// ConvertProtoConfigError is returned when a wire-format configuration
// message carries a value that cannot be mapped into the filter's typed
// configuration.
type ConvertProtoConfigError struct {
	// Field is the configuration field that failed to convert.
	Field string

	// Value is the raw value that was rejected.
	Value any
}

// Error implements the error interface.
func (e *ConvertProtoConfigError) Error() string {
	return fmt.Sprintf("invalid value %v provided for field %q", e.Value, e.Field)
}

// Is implements error matching for errors.Is().
func (e *ConvertProtoConfigError) Is(target error) bool {
	return target == ErrInvalidConfigValue
}
