package errors

import "fmt"

var (
	ErrValidation                    = fmt.Errorf("validation failed")
	ErrMissingRequiredProperty       = fmt.Errorf("missing required property")
	ErrMalformedProperty             = fmt.Errorf("malformed property")
	ErrPrimitiveConstraint           = fmt.Errorf("primitive constraint violated")
	ErrMalformedDocument             = fmt.Errorf("document is not a JSON object")
	ErrMosaicDefinitionNotFound      = fmt.Errorf("mosaic definition not found")
	ErrMosaicDefinitionAlreadyExists = fmt.Errorf("mosaic definition already exists")
)

// ValidationError is returned when a mandatory constructor parameter is absent.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: parameter %q is required", ErrValidation, e.Param)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingRequiredPropertyError is returned by deserialization when a mandatory key is absent.
type MissingRequiredPropertyError struct {
	Key string
}

func (e *MissingRequiredPropertyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingRequiredProperty, e.Key)
}

func (e *MissingRequiredPropertyError) Unwrap() error {
	return ErrMissingRequiredProperty
}

// MalformedPropertyError is returned when a key is present but its value has the wrong shape.
type MalformedPropertyError struct {
	Key   string
	Cause error
}

func (e *MalformedPropertyError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %q", ErrMalformedProperty, e.Key)
	}
	return fmt.Sprintf("%s: %q: %v", ErrMalformedProperty, e.Key, e.Cause)
}

func (e *MalformedPropertyError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMalformedProperty}
	}
	return []error{ErrMalformedProperty, e.Cause}
}

// PrimitiveConstraintError is raised by primitives such as Quantity or NamespaceID.
type PrimitiveConstraintError struct {
	Primitive string
	Reason    string
}

func (e *PrimitiveConstraintError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPrimitiveConstraint, e.Primitive, e.Reason)
}

func (e *PrimitiveConstraintError) Unwrap() error {
	return ErrPrimitiveConstraint
}

func NewValidationError(param string) error {
	return &ValidationError{Param: param}
}

func NewMissingRequiredPropertyError(key string) error {
	return &MissingRequiredPropertyError{Key: key}
}

func NewMalformedPropertyError(key string, cause error) error {
	return &MalformedPropertyError{Key: key, Cause: cause}
}

func NewPrimitiveConstraintError(primitive, format string, args ...any) error {
	return &PrimitiveConstraintError{Primitive: primitive, Reason: fmt.Sprintf(format, args...)}
}
