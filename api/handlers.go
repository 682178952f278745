/*
handlers.go - HTTP API handlers for the payroll reporting service

PURPOSE:
  Exposes the payroll engine and the reference-data feeds via REST.
  Handles HTTP request/response, JSON serialization, and delegates to
  the engine and store.

ENDPOINTS:
  Reports:
    GET  /api/reports/payroll         Haul payroll summary for a driver+range
    GET  /api/reports/payroll/export  Same report as an .xlsx ledger

  Reference data:
    GET  /api/drivers                 List drivers
    POST /api/drivers                 Create/update driver
    GET  /api/drivers/{id}            Get driver
    DELETE /api/drivers/{id}          Delete driver
    POST /api/workdays                Create workday (with NC items)
    POST /api/workdays/{id}/hauls     Create haul under a workday

  Scenarios:
    GET  /api/scenarios               List demo scenarios
    POST /api/scenarios/load          Seed a demo dataset
    POST /api/scenarios/reset         Wipe the database

ERROR HANDLING:
  Engine taxonomy errors serialize as {error:{type,message,redirectTo}}:
  - MissingParameters  -> 400
  - DateRangeExceeded  -> 400
  - DriverNotFound     -> 404
  Anything else is a 500 with the generic error shape.

SEE ALSO:
  - dto.go: Request/response data structures
  - export.go: xlsx ledger rendering
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/terrahaul/payroll-engine/payroll"
	"github.com/terrahaul/payroll-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  *sqlite.Store
	Engine *payroll.Engine

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:  store,
		Engine: payroll.NewEngine(store),
	}
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

func rawParamsFrom(r *http.Request) payroll.RawParams {
	q := r.URL.Query()
	return payroll.RawParams{
		DriverID:  q.Get("driverId"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

// writeEngineError maps a *ReportError to its HTTP shape.
func writeEngineError(w http.ResponseWriter, rerr *payroll.ReportError) {
	status := http.StatusBadRequest
	if rerr.Type == payroll.ErrorDriverNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, toReportErrorResponse(rerr))
}

// GetPayrollReport produces the haul payroll summary.
// GET /api/reports/payroll?driverId=7&startDate=2024-01-01&endDate=2024-01-07
func (h *Handler) GetPayrollReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Engine.Generate(r.Context(), rawParamsFrom(r))
	if err != nil {
		var rerr *payroll.ReportError
		if errors.As(err, &rerr) {
			writeEngineError(w, rerr)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to generate report", err)
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// =============================================================================
// DRIVER HANDLERS
// =============================================================================

// ListDrivers returns all drivers.
func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Store.ListDrivers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list drivers", err)
		return
	}

	dtos := make([]DriverDTO, len(drivers))
	for i, d := range drivers {
		dtos[i] = toDriverDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetDriver returns a single driver.
func (h *Handler) GetDriver(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid driver id", err)
		return
	}

	driver, err := h.Store.FindDriverByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get driver", err)
		return
	}
	if driver == nil {
		writeError(w, http.StatusNotFound, "Driver not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, toDriverDTO(*driver))
}

// SaveDriver creates or updates a driver.
func (h *Handler) SaveDriver(w http.ResponseWriter, r *http.Request) {
	var req SaveDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.FirstName == "" && req.LastName == "" {
		writeError(w, http.StatusBadRequest, "Driver name is required", nil)
		return
	}

	driver := payroll.Driver{
		ID:                req.ID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		EndDumpPayRate:    req.EndDumpPayRate,
		FlatBedPayRate:    req.FlatBedPayRate,
		NonCommissionRate: req.NonCommissionRate,
	}
	if err := h.Store.SaveDriver(r.Context(), &driver); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save driver", err)
		return
	}

	writeJSON(w, http.StatusCreated, toDriverDTO(driver))
}

// DeleteDriver removes a driver.
func (h *Handler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid driver id", err)
		return
	}

	if err := h.Store.DeleteDriver(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete driver", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// WORKDAY / HAUL HANDLERS
// =============================================================================

// SaveWorkday creates or updates a workday with its NC items.
func (h *Handler) SaveWorkday(w http.ResponseWriter, r *http.Request) {
	var req SaveWorkdayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := time.ParseInLocation(payroll.ParamDateFormat, req.Date, time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	wd := payroll.Workday{
		ID:            req.ID,
		DriverID:      req.DriverID,
		Date:          date,
		ChHours:       req.ChHours,
		NcHours:       req.NcHours,
		NcReasons:     req.NcReasons,
		OffDuty:       req.OffDuty,
		OffDutyReason: payroll.ParseOffDutyReason(req.OffDutyReason),
	}
	if err := h.Store.SaveWorkday(r.Context(), &wd); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save workday", err)
		return
	}

	for _, item := range req.NCItems {
		ncItem := payroll.NCItem{WorkdayID: wd.ID, Hours: item.Hours, Reason: item.Reason}
		if err := h.Store.SaveNCItem(r.Context(), &ncItem); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save NC item", err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": wd.ID})
}

// SaveHaul creates a haul under a workday, with optional inline vendor
// product and freight route.
func (h *Handler) SaveHaul(w http.ResponseWriter, r *http.Request) {
	workdayID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid workday id", err)
		return
	}

	var req SaveHaulRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dateHaul, err := time.ParseInLocation(payroll.ParamDateFormat, req.DateHaul, time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dateHaul format (use YYYY-MM-DD)", err)
		return
	}

	haul := payroll.Haul{
		WorkdayID:  workdayID,
		DateHaul:   dateHaul,
		Customer:   req.Customer,
		LoadRefNum: req.LoadRefNum,
		ChInvoice:  req.ChInvoice,
		LoadType:   payroll.LoadType(req.LoadType),
		RateMetric: payroll.RateMetric(req.RateMetric),
		Rate:       req.Rate,
		Quantity:   req.Quantity,
	}

	if req.VendorProduct != nil {
		vp := payroll.VendorProduct{
			VendorID: req.VendorProduct.VendorID,
			Vendor:   req.VendorProduct.Vendor,
			Product:  req.VendorProduct.Product,
			Location: req.VendorProduct.Location,
		}
		if err := h.Store.SaveVendorProduct(r.Context(), &vp); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save vendor product", err)
			return
		}
		haul.VendorProduct = &vp
	}
	if req.FreightRoute != nil {
		fr := payroll.FreightRoute{
			Origin:      req.FreightRoute.Origin,
			Destination: req.FreightRoute.Destination,
			Miles:       req.FreightRoute.Miles,
		}
		if err := h.Store.SaveFreightRoute(r.Context(), &fr); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save freight route", err)
			return
		}
		haul.FreightRoute = &fr
	}

	if err := h.Store.SaveHaul(r.Context(), &haul); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save haul", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": haul.ID})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
