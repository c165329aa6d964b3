package apperrors

import "fmt"

// ValidationError reports malformed input on a specific field. It is always
// recoverable at the boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidation creates a field-level validation error
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError means the referenced entity id does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Resource, e.ID)
}

// NewNotFound creates a not-found error for the given resource and id
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// AuthorizationError means the entity exists but the actor does not own it.
// Kept distinct from NotFoundError: the HTTP layer decides whether to mask
// one as the other, the services never do.
type AuthorizationError struct {
	Resource string
	ID       string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("you do not own this %s (id: %s)", e.Resource, e.ID)
}

// NewForbidden creates an authorization error for the given resource and id
func NewForbidden(resource, id string) *AuthorizationError {
	return &AuthorizationError{Resource: resource, ID: id}
}

// ConflictError reports a uniqueness or state conflict, e.g. registering an
// email that is already taken
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a conflict error
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// StoreError wraps an underlying persistence failure. Operations are not
// retried on it: a retried create may duplicate a resource.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStore wraps err as a store failure for the given operation
func NewStore(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
