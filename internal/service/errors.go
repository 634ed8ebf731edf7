package service

import (
	"errors"

	"autoservice/internal/repository"
)

var (
	// ErrNotFound is returned when the addressed entity does not exist (or is not visible to the caller).
	ErrNotFound = repository.ErrNotFound
	// ErrExists is returned when a create or edit would break a uniqueness rule.
	ErrExists = errors.New("already exists")
	// ErrNoSession is returned for a missing, unknown or expired session token.
	ErrNoSession = errors.New("no valid session")
)

// ValidationError carries the outcome token reported to the client, e.g. "no_name".
type ValidationError struct {
	Result string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Result
}

func invalid(result string) error {
	return &ValidationError{Result: result}
}

// Validation outcomes returned by more than one service
const (
	ResultNoName       = "no_name"
	ResultNoEmail      = "no_email"
	ResultNoDepartment = "no_department"
	ResultNoVehicle    = "no_vehicle"
	ResultNoClient     = "no_client"
	ResultNoDates      = "no_dates"
	ResultBadDates     = "bad_dates"
	ResultBadStatus    = "bad_status"
	ResultNoMessage    = "no_message"
	ResultNoQuantity   = "no_quantity"
)
