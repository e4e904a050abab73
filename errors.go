package attrkit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Standard sentinel errors for the generation failure classes.
var (
	// ErrConfig is returned for static misuse detected at composition
	// time, such as mixing explicit and declarative attribute styles.
	ErrConfig = errors.New("attrkit: invalid configuration")

	// ErrMissingArgument is returned when a required attribute has no
	// value after keyword arguments, defaults, and factories.
	ErrMissingArgument = errors.New("attrkit: missing argument")

	// ErrTypeMismatch is returned when a supplied value fails an
	// attribute's type constraint.
	ErrTypeMismatch = errors.New("attrkit: type mismatch")

	// ErrImmutableField is returned when code outside construction
	// writes a protected attribute.
	ErrImmutableField = errors.New("attrkit: immutable field")

	// ErrUnknownArgument is returned when leftover arguments reach a
	// record without a base initializer.
	ErrUnknownArgument = errors.New("attrkit: unknown argument")
)

// ConfigError represents a static misuse of the composition API.
// It signals a programming mistake in the caller, never a runtime
// condition, and is always fatal.
type ConfigError struct {
	Type    string // Record type name (if known)
	Field   string // Attribute name (if applicable)
	Message string
	Cause   error
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("attrkit: configuration error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " attribute %q", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// NewConfigError returns a new ConfigError.
func NewConfigError(typeName, field, message string) *ConfigError {
	return &ConfigError{Type: typeName, Field: field, Message: message}
}

// NewConfigErrorCause returns a new ConfigError wrapping an underlying error.
func NewConfigErrorCause(typeName, field, message string, cause error) *ConfigError {
	return &ConfigError{Type: typeName, Field: field, Message: message, Cause: cause}
}

// IsConfig returns true if the error is a ConfigError.
func IsConfig(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e) || errors.Is(err, ErrConfig)
}

// MissingArgumentError represents a required attribute that received no
// value during construction. The attribute is identified by its
// initializer keyword alias, not its storage name.
type MissingArgumentError struct {
	Type  string // Record type name
	Alias string // Initializer keyword alias
}

// Error returns the error string.
func (e *MissingArgumentError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("attrkit: missing keyword value for %q on %s", e.Alias, e.Type)
	}
	return fmt.Sprintf("attrkit: missing keyword value for %q", e.Alias)
}

// Is reports whether the target matches the sentinel error for
// MissingArgumentError.
func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// NewMissingArgumentError returns a new MissingArgumentError.
func NewMissingArgumentError(typeName, alias string) *MissingArgumentError {
	return &MissingArgumentError{Type: typeName, Alias: alias}
}

// IsMissingArgument returns true if the error is a MissingArgumentError.
func IsMissingArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingArgumentError
	return errors.As(err, &e) || errors.Is(err, ErrMissingArgument)
}

// TypeMismatchError represents a value that failed an attribute's type
// constraint during construction.
type TypeMismatchError struct {
	Type     string       // Record type name
	Field    string       // Attribute name
	Expected reflect.Type // Configured constraint
	Actual   reflect.Type // Runtime type of the supplied value (nil for untyped nil)
}

// Error returns the error string.
func (e *TypeMismatchError) Error() string {
	actual := "untyped nil"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("attrkit: value for attribute %q on %s must be of type %s, got %s",
		e.Field, e.Type, e.Expected, actual)
}

// Is reports whether the target matches the sentinel error for
// TypeMismatchError.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// NewTypeMismatchError returns a new TypeMismatchError.
func NewTypeMismatchError(typeName, field string, expected, actual reflect.Type) *TypeMismatchError {
	return &TypeMismatchError{Type: typeName, Field: field, Expected: expected, Actual: actual}
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMismatch)
}

// ImmutableFieldError represents a write to a protected attribute from
// outside construction.
type ImmutableFieldError struct {
	Type  string // Record type name
	Field string // Attribute name
}

// Error returns the error string.
func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("attrkit: attribute %q of %s is immutable", e.Field, e.Type)
}

// Is reports whether the target matches the sentinel error for
// ImmutableFieldError.
func (e *ImmutableFieldError) Is(target error) bool { return target == ErrImmutableField }

// NewImmutableFieldError returns a new ImmutableFieldError.
func NewImmutableFieldError(typeName, field string) *ImmutableFieldError {
	return &ImmutableFieldError{Type: typeName, Field: field}
}

// IsImmutableField returns true if the error is an ImmutableFieldError.
func IsImmutableField(err error) bool {
	if err == nil {
		return false
	}
	var e *ImmutableFieldError
	return errors.As(err, &e) || errors.Is(err, ErrImmutableField)
}

// UnknownArgumentError represents arguments left over after all attributes
// were consumed, on a record without a base initializer to forward them to.
type UnknownArgumentError struct {
	Type       string // Record type name
	Name       string // Keyword name (empty for positional leftovers)
	Positional bool
}

// Error returns the error string.
func (e *UnknownArgumentError) Error() string {
	if e.Positional {
		return fmt.Sprintf("attrkit: %s takes no positional arguments", e.Type)
	}
	return fmt.Sprintf("attrkit: unknown keyword argument %q for %s", e.Name, e.Type)
}

// Is reports whether the target matches the sentinel error for
// UnknownArgumentError.
func (e *UnknownArgumentError) Is(target error) bool { return target == ErrUnknownArgument }

// NewUnknownArgumentError returns a new UnknownArgumentError for a keyword.
func NewUnknownArgumentError(typeName, name string) *UnknownArgumentError {
	return &UnknownArgumentError{Type: typeName, Name: name}
}

// NewPositionalArgumentError returns a new UnknownArgumentError for
// positional leftovers.
func NewPositionalArgumentError(typeName string) *UnknownArgumentError {
	return &UnknownArgumentError{Type: typeName, Positional: true}
}

// IsUnknownArgument returns true if the error is an UnknownArgumentError.
func IsUnknownArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownArgumentError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownArgument)
}
