package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terrahaul/payroll-engine/payroll"
)

// =============================================================================
// PARAMETER VALIDATION TESTS
// =============================================================================

func TestValidateParams_ValidTriple(t *testing.T) {
	// GIVEN: A well-formed driverId and a 7-day range
	// WHEN: Validating
	// THEN: Params are normalized with UTC day-granular bounds

	params, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "7",
		StartDate: "2024-06-03",
		EndDate:   "2024-06-09",
	})

	require.Nil(t, rerr)
	assert.Equal(t, int64(7), params.DriverID)
	assert.Equal(t, "2024-06-03", params.Period.Start.Format(payroll.ParamDateFormat))
	assert.Equal(t, "2024-06-09", params.Period.End.Format(payroll.ParamDateFormat))
}

func TestValidateParams_MissingEndDate(t *testing.T) {
	// GIVEN: An absent endDate
	// WHEN: Validating
	// THEN: MissingParameters with the filter-screen redirect

	_, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "7",
		StartDate: "2024-06-03",
	})

	require.NotNil(t, rerr)
	assert.Equal(t, payroll.ErrorMissingParameters, rerr.Type)
	assert.Equal(t, "/hauls", rerr.RedirectTo)
}

func TestValidateParams_NonIntegerDriverID(t *testing.T) {
	_, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "ray",
		StartDate: "2024-06-03",
		EndDate:   "2024-06-09",
	})

	require.NotNil(t, rerr)
	assert.Equal(t, payroll.ErrorMissingParameters, rerr.Type)
	assert.ErrorIs(t, rerr, payroll.ErrMissingParameters)
}

func TestValidateParams_MalformedDate(t *testing.T) {
	_, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "7",
		StartDate: "06/03/2024", // display format, not param format
		EndDate:   "2024-06-09",
	})

	require.NotNil(t, rerr)
	assert.Equal(t, payroll.ErrorMissingParameters, rerr.Type)
}

func TestValidateParams_SevenDayRangeAllowed(t *testing.T) {
	// GIVEN: Monday through the following Monday (span of exactly 7 days)
	// WHEN: Validating
	// THEN: The range is admitted

	_, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "1",
		StartDate: "2024-06-03",
		EndDate:   "2024-06-10",
	})

	assert.Nil(t, rerr)
}

func TestValidateParams_EightDayRangeRejected(t *testing.T) {
	// GIVEN: A span one day over the cap
	// WHEN: Validating
	// THEN: DateRangeExceeded, and the redirect preserves the offending
	//       parameters so the user can narrow the range in place

	_, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "1",
		StartDate: "2024-06-03",
		EndDate:   "2024-06-11",
	})

	require.NotNil(t, rerr)
	assert.Equal(t, payroll.ErrorDateRangeExceeded, rerr.Type)
	assert.ErrorIs(t, rerr, payroll.ErrDateRangeExceeded)
	assert.Equal(t, "/hauls?driverId=1&startDate=2024-06-03&endDate=2024-06-11", rerr.RedirectTo)
}

func TestValidateParams_ReversedRangeAdmitted(t *testing.T) {
	// A reversed range is not an error; it yields an empty report
	// downstream.
	_, rerr := payroll.ValidateParams(payroll.RawParams{
		DriverID:  "1",
		StartDate: "2024-06-09",
		EndDate:   "2024-06-03",
	})

	assert.Nil(t, rerr)
}

func TestPeriod_LengthDays(t *testing.T) {
	mustParams := func(start, end string) payroll.Params {
		p, rerr := payroll.ValidateParams(payroll.RawParams{DriverID: "1", StartDate: start, EndDate: end})
		require.Nil(t, rerr)
		return p
	}

	assert.Equal(t, 0, mustParams("2024-06-03", "2024-06-03").Period.LengthDays())
	assert.Equal(t, 6, mustParams("2024-06-03", "2024-06-09").Period.LengthDays())
	assert.Equal(t, 7, mustParams("2024-06-03", "2024-06-10").Period.LengthDays())
}
