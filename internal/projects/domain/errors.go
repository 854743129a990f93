package domain

import "errors"

var (
	ErrNotAuthorized        = errors.New("Not authorized")
	ErrMissingFields        = errors.New("Missing required fields")
	ErrInvalidCoordinate    = errors.New("Invalid latitude/longitude")
	ErrInvalidVolunteerType = errors.New("Invalid volunteer_type")
	ErrInvalidBody          = errors.New("Invalid request body")
	ErrPersistence          = errors.New("Failed to create project")
)

// ErrorKind is the closed set of failure classes the create endpoint reports.
type ErrorKind string

const (
	KindAuthorization ErrorKind = "authorization"
	KindValidation    ErrorKind = "validation"
	KindPersistence   ErrorKind = "persistence"
	KindInternal      ErrorKind = "internal"
)

// KindOf classifies err. Anything not wrapping a known sentinel is internal.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNotAuthorized):
		return KindAuthorization
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidCoordinate),
		errors.Is(err, ErrInvalidVolunteerType),
		errors.Is(err, ErrInvalidBody):
		return KindValidation
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindInternal
	}
}

// PersistenceError keeps the driver error for logging while matching ErrPersistence.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}
