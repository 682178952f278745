/*
errors.go - Structured errors for the payroll engine

PURPOSE:
  Every failure path of the engine returns a structured *ReportError;
  no exception-style panic crosses the engine boundary. The taxonomy is
  deliberately small — three terminal, recoverable conditions — and
  each carries the redirect target the caller should route the end
  user to after surfacing the message.

ERROR CATEGORIES:
  MissingParameters  malformed/absent driver id or dates
  DateRangeExceeded  requested range longer than the 7-day cap
  DriverNotFound     driver id does not resolve in the store

USAGE:
  report, err := engine.Generate(ctx, params)
  var rerr *payroll.ReportError
  if errors.As(err, &rerr) {
      // rerr.Type, rerr.Message, rerr.RedirectTo
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingParameters is returned when the driver id or either
	// date fails to parse.
	ErrMissingParameters = errors.New("missing or malformed parameters")

	// ErrDateRangeExceeded is returned when the requested range is
	// longer than the admission cap.
	ErrDateRangeExceeded = errors.New("date range exceeds maximum")

	// ErrDriverNotFound is returned when the driver id does not
	// resolve.
	ErrDriverNotFound = errors.New("driver not found")
)

// =============================================================================
// STRUCTURED ERROR - Carries the caller-facing recovery route
// =============================================================================

// ErrorType names a ReportError variant in serialized form.
type ErrorType string

const (
	ErrorMissingParameters ErrorType = "MissingParameters"
	ErrorDateRangeExceeded ErrorType = "DateRangeExceeded"
	ErrorDriverNotFound    ErrorType = "DriverNotFound"
)

// ReportError is the single error shape the engine returns. It is
// terminal for the request but non-fatal to the process.
type ReportError struct {
	Type       ErrorType
	Message    string
	RedirectTo string
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ReportError) Unwrap() error {
	switch e.Type {
	case ErrorMissingParameters:
		return ErrMissingParameters
	case ErrorDateRangeExceeded:
		return ErrDateRangeExceeded
	case ErrorDriverNotFound:
		return ErrDriverNotFound
	default:
		return nil
	}
}

// haulsPath is the filter screen the dashboard recovers to when the
// request cannot identify a usable driver and range.
const haulsPath = "/hauls"

func missingParameters(message string) *ReportError {
	return &ReportError{
		Type:       ErrorMissingParameters,
		Message:    message,
		RedirectTo: haulsPath,
	}
}

// dateRangeExceeded preserves the offending parameters in the redirect
// so the user can narrow the range instead of retyping it.
func dateRangeExceeded(driverID int64, start, end string) *ReportError {
	return &ReportError{
		Type:    ErrorDateRangeExceeded,
		Message: fmt.Sprintf("date range may not exceed %d days", MaxRangeDays),
		RedirectTo: fmt.Sprintf("%s?driverId=%d&startDate=%s&endDate=%s",
			haulsPath, driverID, start, end),
	}
}

func driverNotFound(driverID int64) *ReportError {
	return &ReportError{
		Type:       ErrorDriverNotFound,
		Message:    fmt.Sprintf("driver %d not found", driverID),
		RedirectTo: haulsPath,
	}
}

// IsClientError reports whether the error is due to invalid input
// rather than a store failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingParameters) ||
		errors.Is(err, ErrDateRangeExceeded)
}

// IsNotFound reports whether the error indicates a missing driver.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDriverNotFound)
}
