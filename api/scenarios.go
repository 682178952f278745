/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	fleet data. Each scenario creates a driver, a run of workdays with
	hauls or off-duty days, and the settings singleton, so the payroll
	report has something to chew on.

AVAILABLE SCENARIOS:

	single-driver-week: One driver, five hauling days, weekend off-duty
	off-duty-stretch:   Mostly off-duty days with varied reasons
	mixed-loads:        End-dump and flatbed hauls mixed on shared days

HOW SCENARIOS WORK:
 1. Reset database (clear all data, restart id sequences)
 2. Create driver(s) with pay rates
 3. Create workdays, hauls, NC items
 4. Upsert settings with reason-label overrides

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "single-driver-week"}

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/terrahaul/payroll-engine/payroll"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "single-driver-week",
		Name:        "Single Driver Week",
		Description: "One driver, five hauling days, one off-duty day with no hauls",
	},
	{
		ID:          "off-duty-stretch",
		Name:        "Off-Duty Stretch",
		Description: "A week of mostly off-duty days exercising every reason variant",
	},
	{
		ID:          "mixed-loads",
		Name:        "Mixed Loads",
		Description: "End-dump and flatbed hauls sharing workdays, plus NC work",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the database and seeds the requested dataset.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}

	var err error
	switch req.ScenarioID {
	case "single-driver-week":
		err = h.loadSingleDriverWeek(ctx)
	case "off-duty-stretch":
		err = h.loadOffDutyStretch(ctx)
	case "mixed-loads":
		err = h.loadMixedLoads(ctx)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scenario: %s", req.ScenarioID), nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{"loaded": req.ScenarioID})
}

// ResetDatabase wipes everything without seeding.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.currentScenario = ""
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// SEED HELPERS
// =============================================================================

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (h *Handler) seedSettings(ctx context.Context) error {
	ncRate := 20.0
	return h.Store.SaveSettings(ctx, &payroll.Settings{
		OffDutyReasonLabels: map[string]string{
			"Shop Day": "Shop Day (Unscheduled)",
		},
		DriverDefaultNCPayRate: &ncRate,
	})
}

func (h *Handler) seedWorkday(ctx context.Context, wd payroll.Workday, hauls ...payroll.Haul) error {
	if err := h.Store.SaveWorkday(ctx, &wd); err != nil {
		return err
	}
	for i := range hauls {
		hauls[i].WorkdayID = wd.ID
		if hauls[i].DateHaul.IsZero() {
			hauls[i].DateHaul = wd.Date
		}
		if err := h.Store.SaveHaul(ctx, &hauls[i]); err != nil {
			return err
		}
	}
	for i := range wd.NCItems {
		wd.NCItems[i].WorkdayID = wd.ID
		if err := h.Store.SaveNCItem(ctx, &wd.NCItems[i]); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

func (h *Handler) loadSingleDriverWeek(ctx context.Context) error {
	driver := payroll.Driver{
		FirstName:      "Ray",
		LastName:       "Delgado",
		EndDumpPayRate: 0.30,
		FlatBedPayRate: 0.25,
	}
	if err := h.Store.SaveDriver(ctx, &driver); err != nil {
		return err
	}

	gravel := payroll.VendorProduct{Vendor: "Cascade Quarry", Product: "3/4 Crushed Gravel", Location: "North Pit"}
	if err := h.Store.SaveVendorProduct(ctx, &gravel); err != nil {
		return err
	}
	route := payroll.FreightRoute{Origin: "North Pit", Destination: "Ridgeview Yard", Miles: 34}
	if err := h.Store.SaveFreightRoute(ctx, &route); err != nil {
		return err
	}

	monday := date(2024, time.June, 3)
	for i := 0; i < 5; i++ {
		day := monday.AddDate(0, 0, i)
		err := h.seedWorkday(ctx,
			payroll.Workday{DriverID: driver.ID, Date: day, ChHours: 8},
			payroll.Haul{
				Customer:      "Hargrove Builders",
				LoadRefNum:    fmt.Sprintf("LR-10%d", i+1),
				ChInvoice:     fmt.Sprintf("INV-55%d", i+1),
				LoadType:      payroll.LoadEndDump,
				RateMetric:    payroll.RatePerTon,
				Rate:          11.50,
				Quantity:      24,
				VendorProduct: &gravel,
				FreightRoute:  &route,
			},
		)
		if err != nil {
			return err
		}
	}

	// Saturday off, no hauls: the report should synthesize a line.
	err := h.seedWorkday(ctx, payroll.Workday{
		DriverID:      driver.ID,
		Date:          monday.AddDate(0, 0, 5),
		OffDuty:       true,
		OffDutyReason: payroll.OffDutyReason{Kind: payroll.ReasonStandard, Text: payroll.ReasonNoWork},
	})
	if err != nil {
		return err
	}

	return h.seedSettings(ctx)
}

func (h *Handler) loadOffDutyStretch(ctx context.Context) error {
	driver := payroll.Driver{
		FirstName:      "Marta",
		LastName:       "Kowalski",
		EndDumpPayRate: 0.28,
		FlatBedPayRate: 0.22,
	}
	if err := h.Store.SaveDriver(ctx, &driver); err != nil {
		return err
	}

	monday := date(2024, time.November, 25)
	reasons := []payroll.OffDutyReason{
		{Kind: payroll.ReasonStandard, Text: payroll.ReasonWeather},
		{Kind: payroll.ReasonStandard, Text: payroll.ReasonMaintenance},
		{Kind: payroll.ReasonHoliday, Text: "Thanksgiving"},
		{Kind: payroll.ReasonOther, Text: "DOT inspection"},
		{Kind: payroll.ReasonStandard, Text: payroll.ReasonSick},
	}
	for i, reason := range reasons {
		err := h.seedWorkday(ctx, payroll.Workday{
			DriverID:      driver.ID,
			Date:          monday.AddDate(0, 0, i),
			OffDuty:       true,
			OffDutyReason: reason,
		})
		if err != nil {
			return err
		}
	}

	return h.seedSettings(ctx)
}

func (h *Handler) loadMixedLoads(ctx context.Context) error {
	driver := payroll.Driver{
		FirstName:      "Dale",
		LastName:       "Whitfield",
		EndDumpPayRate: 0.32,
		FlatBedPayRate: 0.26,
	}
	if err := h.Store.SaveDriver(ctx, &driver); err != nil {
		return err
	}

	sand := payroll.VendorProduct{Vendor: "Riverbend Sand", Product: "Masonry Sand", Location: "East Bank"}
	if err := h.Store.SaveVendorProduct(ctx, &sand); err != nil {
		return err
	}

	monday := date(2024, time.July, 8)

	// Two hauls on the same workday: hours must still count once.
	err := h.seedWorkday(ctx,
		payroll.Workday{DriverID: driver.ID, Date: monday, ChHours: 10},
		payroll.Haul{
			Customer:      "Pioneer Paving",
			LoadType:      payroll.LoadEndDump,
			RateMetric:    payroll.RatePerTon,
			Rate:          10,
			Quantity:      22,
			VendorProduct: &sand,
		},
		payroll.Haul{
			Customer:   "Summit Landscaping",
			LoadType:   payroll.LoadFlatBed,
			RateMetric: payroll.RatePerMile,
			Rate:       3.25,
			Quantity:   48,
		},
	)
	if err != nil {
		return err
	}

	// A day of shop work paid as NC hours. Marked off-duty so the
	// ledger still shows a line for it.
	err = h.seedWorkday(ctx, payroll.Workday{
		DriverID:      driver.ID,
		Date:          monday.AddDate(0, 0, 1),
		OffDuty:       true,
		OffDutyReason: payroll.OffDutyReason{Kind: payroll.ReasonStandard, Text: payroll.ReasonMaintenance},
		NcHours:       6,
		NCItems: []payroll.NCItem{
			{Hours: 4, Reason: "Trailer brake service"},
			{Hours: 2, Reason: "Yard cleanup"},
		},
	})
	if err != nil {
		return err
	}

	err = h.seedWorkday(ctx,
		payroll.Workday{DriverID: driver.ID, Date: monday.AddDate(0, 0, 2), ChHours: 9},
		payroll.Haul{
			Customer:   "Hargrove Builders",
			LoadType:   payroll.LoadFlatBed,
			RateMetric: payroll.RatePerHour,
			Rate:       95,
			Quantity:   4.5,
		},
	)
	if err != nil {
		return err
	}

	return h.seedSettings(ctx)
}
