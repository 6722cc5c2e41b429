package pool

import (
	"fmt"

	"github.com/maxpoletaev/sparkpool/internal/baseerror"
)

var (
	// ErrService is returned when the pool service cannot be reached or
	// rejects the request, for example because the pool ID is unknown.
	ErrService = baseerror.New("pool service error")

	// ErrNotFound is returned when the requested node no longer exists. It is
	// a member of the ErrService family.
	ErrNotFound = ErrService.New("node not found")
)

// ServiceError carries the details of a failed pool service call.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
	Err        error
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("%s: status %d", ErrService.Error(), e.StatusCode)

	if e.Code != "" {
		msg += ", code " + e.Code
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the sentinel matching the failure, so that errors.Is works
// with ErrService and ErrNotFound.
func (e *ServiceError) Unwrap() []error {
	sentinel := ErrService
	if e.Code == "NodeNotFound" {
		sentinel = ErrNotFound
	}

	if e.Err != nil {
		return []error{sentinel, e.Err}
	}

	return []error{sentinel}
}
