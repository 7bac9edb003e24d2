// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCustomerNotFound is returned when no row matches a customer reference.
type ErrCustomerNotFound struct {
	CustomerRef string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("Customer not found with id: %s", e.CustomerRef)
}

// NewCustomerNotFound is a helper constructor
func NewCustomerNotFound(ref string) error {
	return &ErrCustomerNotFound{CustomerRef: ref}
}

// ErrPersistenceFailure wraps a store error raised while writing a customer.
type ErrPersistenceFailure struct {
	CustomerRef string
	Err         error
}

func (e *ErrPersistenceFailure) Error() string {
	return fmt.Sprintf("failed to save customer: %s: %v", e.CustomerRef, e.Err)
}

func (e *ErrPersistenceFailure) Unwrap() error {
	return e.Err
}

func NewPersistenceFailure(ref string, err error) error {
	return &ErrPersistenceFailure{CustomerRef: ref, Err: err}
}

// ErrValidation reports a wire record that cannot be stored as sent.
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("%s is %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ErrValidation{Field: field, Reason: reason}
}
