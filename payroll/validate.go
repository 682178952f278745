/*
validate.go - Parameter validation

PURPOSE:
  Validates the raw request parameters before any store access. The
  7-day cap is an admission-control device bounding the amount of
  joined data materialized per request, so it is enforced here, ahead
  of the first query.

CONTRACT:
  Input is the raw (driverId, startDate, endDate) triple as strings,
  any of which may be absent. On success the normalized Params are
  returned; on failure a *ReportError. No side effects.

NOTE:
  A reversed range (start after end) is not rejected; it simply yields
  a query with zero results downstream.
*/
package payroll

import (
	"strconv"
	"time"
)

// MaxRangeDays caps the report range. Enforced before any store read.
const MaxRangeDays = 7

// ParamDateFormat is the ISO calendar-date format request parameters
// arrive in.
const ParamDateFormat = "2006-01-02"

// RawParams is the unvalidated request input.
type RawParams struct {
	DriverID  string
	StartDate string
	EndDate   string
}

// Params is the validated, normalized form.
type Params struct {
	DriverID int64
	Period   Period
}

// ValidateParams checks the raw triple and normalizes it. Fails with
// MissingParameters when the driver id is not an integer or either
// date does not parse, and with DateRangeExceeded when the whole-day
// span (partial days rounded up) exceeds MaxRangeDays.
func ValidateParams(raw RawParams) (Params, *ReportError) {
	driverID, err := strconv.ParseInt(raw.DriverID, 10, 64)
	if err != nil {
		return Params{}, missingParameters("driverId must be an integer")
	}

	start, err := time.ParseInLocation(ParamDateFormat, raw.StartDate, time.UTC)
	if err != nil {
		return Params{}, missingParameters("startDate must be a valid date (YYYY-MM-DD)")
	}

	end, err := time.ParseInLocation(ParamDateFormat, raw.EndDate, time.UTC)
	if err != nil {
		return Params{}, missingParameters("endDate must be a valid date (YYYY-MM-DD)")
	}

	period := Period{Start: start, End: end}
	if period.LengthDays() > MaxRangeDays {
		return Params{}, dateRangeExceeded(driverID, raw.StartDate, raw.EndDate)
	}

	return Params{DriverID: driverID, Period: period}, nil
}
