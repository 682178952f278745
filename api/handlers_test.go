/*
handlers_test.go - HTTP tests for the payroll API

Tests for:
- Report endpoint success and error shapes
- Driver CRUD over HTTP
- Workday/haul creation feeding the report
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terrahaul/payroll-engine/payroll"
	"github.com/terrahaul/payroll-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) (*httptest.Server, *Handler) {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler := NewHandler(store)
	server := httptest.NewServer(NewRouter(handler))
	t.Cleanup(server.Close)
	return server, handler
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func seedReportFixture(t *testing.T, h *Handler) payroll.Driver {
	t.Helper()
	ctx := context.Background()

	driver := payroll.Driver{FirstName: "Ray", LastName: "Delgado", EndDumpPayRate: 0.30, FlatBedPayRate: 0.25}
	require.NoError(t, h.Store.SaveDriver(ctx, &driver))

	monday := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	working := payroll.Workday{DriverID: driver.ID, Date: monday, ChHours: 8}
	require.NoError(t, h.Store.SaveWorkday(ctx, &working))
	for _, haul := range []payroll.Haul{
		{WorkdayID: working.ID, DateHaul: monday, Customer: "Hargrove Builders", LoadType: payroll.LoadEndDump, RateMetric: payroll.RatePerTon, Rate: 5, Quantity: 10},
		{WorkdayID: working.ID, DateHaul: monday, Customer: "Summit Landscaping", LoadType: payroll.LoadFlatBed, RateMetric: payroll.RatePerMile, Rate: 5, Quantity: 8},
	} {
		haul := haul
		require.NoError(t, h.Store.SaveHaul(ctx, &haul))
	}

	offDuty := payroll.Workday{
		DriverID:      driver.ID,
		Date:          monday.AddDate(0, 0, 1),
		OffDuty:       true,
		OffDutyReason: payroll.OffDutyReason{Kind: payroll.ReasonStandard, Text: payroll.ReasonNoWork},
	}
	require.NoError(t, h.Store.SaveWorkday(ctx, &offDuty))

	return driver
}

func reportURL(base string, driverID int64, start, end string) string {
	return fmt.Sprintf("%s/api/reports/payroll?driverId=%d&startDate=%s&endDate=%s", base, driverID, start, end)
}

// =============================================================================
// REPORT ENDPOINT TESTS
// =============================================================================

func TestGetPayrollReport_Success(t *testing.T) {
	// GIVEN: A driver with a two-haul day and an off-duty day
	// WHEN: Requesting the week's report
	// THEN: Three rows (two hauls, one placeholder) with computed pay

	server, handler := newTestServer(t)
	driver := seedReportFixture(t, handler)

	var report ReportDTO
	status := getJSON(t, reportURL(server.URL, driver.ID, "2024-06-03", "2024-06-09"), &report)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ray", report.Driver.FirstName)
	require.Len(t, report.Rows, 3)

	// Two-haul day: pay per haul, hours once
	assert.InDelta(t, 50.0, report.Rows[0].FreightPay, 1e-9)
	assert.InDelta(t, 15.0, report.Rows[0].DriverPay, 1e-9)
	assert.True(t, report.Rows[0].IsFirstHaulOfDay)
	assert.InDelta(t, 40.0, report.Rows[1].FreightPay, 1e-9)
	assert.InDelta(t, 10.0, report.Rows[1].DriverPay, 1e-9)
	assert.False(t, report.Rows[1].IsFirstHaulOfDay)

	// Placeholder: negated workday id, workday edit path, resolved label
	placeholder := report.Rows[2]
	assert.Negative(t, placeholder.ID)
	assert.Equal(t, -placeholder.Workday.ID, placeholder.ID)
	assert.Equal(t, fmt.Sprintf("/workdays/%d/edit", placeholder.Workday.ID), placeholder.EditPath)
	assert.Equal(t, "No Work Available", placeholder.Workday.OffDutyReason)
	assert.Zero(t, placeholder.FreightPay)

	assert.InDelta(t, 8.0, report.Totals.TotalChHours, 1e-9)
	assert.InDelta(t, 90.0, report.Totals.TotalFreightPay, 1e-9)
	assert.InDelta(t, 25.0, report.Totals.DriverTotal, 1e-9)
	assert.NotNil(t, report.Totals.NcReasonDetails)
}

func TestGetPayrollReport_MissingParams_400(t *testing.T) {
	server, _ := newTestServer(t)

	var errResp ReportErrorResponse
	status := getJSON(t, server.URL+"/api/reports/payroll?driverId=1&startDate=2024-06-03", &errResp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MissingParameters", errResp.Error.Type)
	assert.Equal(t, "/hauls", errResp.Error.RedirectTo)
}

func TestGetPayrollReport_RangeExceeded_400(t *testing.T) {
	server, handler := newTestServer(t)
	driver := seedReportFixture(t, handler)

	var errResp ReportErrorResponse
	status := getJSON(t, reportURL(server.URL, driver.ID, "2024-06-01", "2024-06-30"), &errResp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DateRangeExceeded", errResp.Error.Type)
	assert.Contains(t, errResp.Error.RedirectTo, "startDate=2024-06-01")
	assert.Contains(t, errResp.Error.RedirectTo, "endDate=2024-06-30")
}

func TestGetPayrollReport_UnknownDriver_404(t *testing.T) {
	server, _ := newTestServer(t)

	var errResp ReportErrorResponse
	status := getJSON(t, reportURL(server.URL, 999, "2024-06-03", "2024-06-09"), &errResp)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "DriverNotFound", errResp.Error.Type)
}

func TestExportPayrollReport_ReturnsWorkbook(t *testing.T) {
	server, handler := newTestServer(t)
	driver := seedReportFixture(t, handler)

	resp, err := http.Get(server.URL + fmt.Sprintf("/api/reports/payroll/export?driverId=%d&startDate=2024-06-03&endDate=2024-06-09", driver.ID))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "payroll_")
}

// =============================================================================
// DRIVER ENDPOINT TESTS
// =============================================================================

func TestSaveAndListDrivers(t *testing.T) {
	server, _ := newTestServer(t)

	var created DriverDTO
	status := postJSON(t, server.URL+"/api/drivers", SaveDriverRequest{
		FirstName:      "Marta",
		LastName:       "Kowalski",
		EndDumpPayRate: 0.28,
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.NotZero(t, created.ID)

	var drivers []DriverDTO
	status = getJSON(t, server.URL+"/api/drivers/", &drivers)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, drivers, 1)
	assert.Equal(t, "Kowalski", drivers[0].LastName)
}

func TestDeleteDriver(t *testing.T) {
	server, _ := newTestServer(t)

	var created DriverDTO
	postJSON(t, server.URL+"/api/drivers", SaveDriverRequest{FirstName: "Ray", LastName: "Delgado"}, &created)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/drivers/%d", server.URL, created.ID), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var drivers []DriverDTO
	getJSON(t, server.URL+"/api/drivers/", &drivers)
	assert.Empty(t, drivers)
}

func TestSaveDriver_EmptyName_400(t *testing.T) {
	server, _ := newTestServer(t)

	status := postJSON(t, server.URL+"/api/drivers", SaveDriverRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

// =============================================================================
// WORKDAY / HAUL FEED TESTS
// =============================================================================

func TestSaveWorkdayAndHaul_FeedsReport(t *testing.T) {
	// GIVEN: A driver created over HTTP
	// WHEN: Posting a workday with NC items and a haul under it
	// THEN: The report reflects the posted records

	server, _ := newTestServer(t)

	var driver DriverDTO
	postJSON(t, server.URL+"/api/drivers", SaveDriverRequest{
		FirstName: "Dale", LastName: "Whitfield", EndDumpPayRate: 0.32,
	}, &driver)

	var wdResp map[string]int64
	status := postJSON(t, server.URL+"/api/workdays", SaveWorkdayRequest{
		DriverID: driver.ID,
		Date:     "2024-07-08",
		ChHours:  10,
		NcHours:  2,
		NCItems:  []NCItemRequest{{Hours: 2, Reason: "Yard cleanup"}},
	}, &wdResp)
	require.Equal(t, http.StatusCreated, status)
	workdayID := wdResp["id"]
	require.NotZero(t, workdayID)

	status = postJSON(t, fmt.Sprintf("%s/api/workdays/%d/hauls", server.URL, workdayID), SaveHaulRequest{
		DateHaul:   "2024-07-08",
		Customer:   "Pioneer Paving",
		LoadType:   "enddump",
		RateMetric: "ton",
		Rate:       10,
		Quantity:   22,
		VendorProduct: &VendorProductRequest{
			Vendor:  "Riverbend Sand",
			Product: "Masonry Sand",
		},
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var report ReportDTO
	status = getJSON(t, reportURL(server.URL, driver.ID, "2024-07-08", "2024-07-14"), &report)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, report.Rows, 1)
	assert.InDelta(t, 220.0, report.Rows[0].FreightPay, 1e-9)
	assert.InDelta(t, 70.4, report.Rows[0].DriverPay, 1e-9)
	assert.InDelta(t, 2*payroll.NCRate, report.Totals.NcTotal, 1e-9)
	assert.Equal(t, []string{"07/08/2024: Yard cleanup (2h)"}, report.Totals.NcReasonDetails)
}
