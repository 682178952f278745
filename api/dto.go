/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the engine's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SERIALIZED ROW IDS:
  Report rows keep the historical id encoding on the wire: real rows
  carry the positive haul id, placeholder rows carry the negated
  workday id. The editPath field spares clients from inferring the
  edit target from the id sign.

SEE ALSO:
  - handlers.go: Uses these types
  - payroll/types.go: the domain structures these mirror
*/
package api

import (
	"fmt"

	"github.com/terrahaul/payroll-engine/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// DriverDTO represents a driver in API responses.
type DriverDTO struct {
	ID                int64   `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	EndDumpPayRate    float64 `json:"endDumpPayRate"`
	FlatBedPayRate    float64 `json:"flatBedPayRate"`
	NonCommissionRate float64 `json:"nonCommissionRate"`
}

// SaveDriverRequest creates or updates a driver.
type SaveDriverRequest struct {
	ID                int64   `json:"id,omitempty"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	EndDumpPayRate    float64 `json:"endDumpPayRate"`
	FlatBedPayRate    float64 `json:"flatBedPayRate"`
	NonCommissionRate float64 `json:"nonCommissionRate"`
}

// WorkdayDTO is the denormalized workday snapshot carried on report rows.
type WorkdayDTO struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	ChHours       float64 `json:"chHours"`
	NcHours       float64 `json:"ncHours"`
	OffDuty       bool    `json:"offDuty"`
	OffDutyReason string  `json:"offDutyReason"`
}

// ReportRowDTO is one ledger line.
type ReportRowDTO struct {
	ID               int64      `json:"id"`
	DateHaul         string     `json:"dateHaul"`
	Customer         string     `json:"customer"`
	LoadRefNum       string     `json:"loadRefNum"`
	ChInvoice        string     `json:"chInvoice"`
	LoadType         string     `json:"loadType"`
	RateMetric       string     `json:"rateMetric"`
	Rate             float64    `json:"rate"`
	Quantity         float64    `json:"quantity"`
	FreightPay       float64    `json:"freightPay"`
	DriverPay        float64    `json:"driverPay"`
	IsFirstHaulOfDay bool       `json:"isFirstHaulOfDay"`
	Workday          WorkdayDTO `json:"workday"`
	EditPath         string     `json:"editPath"`
}

// TotalsDTO holds the period aggregates.
type TotalsDTO struct {
	TotalChHours    float64  `json:"totalChHours"`
	TotalNcHours    float64  `json:"totalNcHours"`
	TotalFreightPay float64  `json:"totalFreightPay"`
	TotalDriverPay  float64  `json:"totalDriverPay"`
	NcTotal         float64  `json:"ncTotal"`
	DriverTotal     float64  `json:"driverTotal"`
	NcReasonDetails []string `json:"ncReasonDetails"`
}

// ReportDTO is the full payroll report response.
type ReportDTO struct {
	Driver    DriverDTO      `json:"driver"`
	Rows      []ReportRowDTO `json:"rows"`
	Totals    TotalsDTO      `json:"totals"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
}

// SaveWorkdayRequest creates or updates a workday.
type SaveWorkdayRequest struct {
	ID            int64           `json:"id,omitempty"`
	DriverID      int64           `json:"driverId"`
	Date          string          `json:"date"`
	ChHours       float64         `json:"chHours"`
	NcHours       float64         `json:"ncHours"`
	NcReasons     string          `json:"ncReasons,omitempty"`
	OffDuty       bool            `json:"offDuty"`
	OffDutyReason string          `json:"offDutyReason,omitempty"`
	NCItems       []NCItemRequest `json:"ncItems,omitempty"`
}

// NCItemRequest is one itemized non-commission entry.
type NCItemRequest struct {
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason"`
}

// SaveHaulRequest creates a haul under a workday.
type SaveHaulRequest struct {
	DateHaul   string  `json:"dateHaul"`
	Customer   string  `json:"customer"`
	LoadRefNum string  `json:"loadRefNum,omitempty"`
	ChInvoice  string  `json:"chInvoice,omitempty"`
	LoadType   string  `json:"loadType"`
	RateMetric string  `json:"rateMetric"`
	Rate       float64 `json:"rate"`
	Quantity   float64 `json:"quantity"`

	VendorProduct *VendorProductRequest `json:"vendorProduct,omitempty"`
	FreightRoute  *FreightRouteRequest  `json:"freightRoute,omitempty"`
}

// VendorProductRequest creates an inline vendor product.
type VendorProductRequest struct {
	VendorID int64  `json:"vendorId,omitempty"`
	Vendor   string `json:"vendor"`
	Product  string `json:"product"`
	Location string `json:"location,omitempty"`
}

// FreightRouteRequest creates an inline freight route.
type FreightRouteRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Miles       float64 `json:"miles,omitempty"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to seed.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorDetailDTO is the structured engine error crossing the boundary.
type ErrorDetailDTO struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo"`
}

// ReportErrorResponse wraps an engine error.
type ReportErrorResponse struct {
	Error ErrorDetailDTO `json:"error"`
}

// ErrorResponse is the generic error response for non-engine failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toDriverDTO(d payroll.Driver) DriverDTO {
	return DriverDTO{
		ID:                d.ID,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		EndDumpPayRate:    d.EndDumpPayRate,
		FlatBedPayRate:    d.FlatBedPayRate,
		NonCommissionRate: d.NonCommissionRate,
	}
}

func toReportRowDTO(row payroll.ReportRow) ReportRowDTO {
	editPath := fmt.Sprintf("/hauls/%d/edit", row.Haul.ID)
	if row.IsPlaceholder() {
		editPath = fmt.Sprintf("/workdays/%d/edit", row.Workday.ID)
	}

	return ReportRowDTO{
		ID:               row.RowID(),
		DateHaul:         row.Haul.DateHaul.Format(payroll.ParamDateFormat),
		Customer:         row.Haul.Customer,
		LoadRefNum:       row.Haul.LoadRefNum,
		ChInvoice:        row.Haul.ChInvoice,
		LoadType:         string(row.Haul.LoadType),
		RateMetric:       string(row.Haul.RateMetric),
		Rate:             row.Haul.Rate,
		Quantity:         row.Haul.Quantity,
		FreightPay:       row.FreightPay,
		DriverPay:        row.DriverPay,
		IsFirstHaulOfDay: row.FirstHaulOfDay,
		Workday: WorkdayDTO{
			ID:            row.Workday.ID,
			Date:          row.Workday.Date.Format(payroll.ParamDateFormat),
			ChHours:       row.Workday.ChHours,
			NcHours:       row.Workday.NcHours,
			OffDuty:       row.Workday.OffDuty,
			OffDutyReason: row.Workday.ReasonLabel,
		},
		EditPath: editPath,
	}
}

func toReportDTO(report *payroll.Report) ReportDTO {
	rows := make([]ReportRowDTO, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = toReportRowDTO(row)
	}

	return ReportDTO{
		Driver: toDriverDTO(report.Driver),
		Rows:   rows,
		Totals: TotalsDTO{
			TotalChHours:    report.Totals.TotalChHours,
			TotalNcHours:    report.Totals.TotalNcHours,
			TotalFreightPay: report.Totals.TotalFreightPay,
			TotalDriverPay:  report.Totals.TotalDriverPay,
			NcTotal:         report.Totals.NcTotal,
			DriverTotal:     report.Totals.DriverTotal,
			NcReasonDetails: report.Totals.NcReasonDetails,
		},
		StartDate: report.StartDate.Format(payroll.ParamDateFormat),
		EndDate:   report.EndDate.Format(payroll.ParamDateFormat),
	}
}

func toReportErrorResponse(rerr *payroll.ReportError) ReportErrorResponse {
	return ReportErrorResponse{Error: ErrorDetailDTO{
		Type:       string(rerr.Type),
		Message:    rerr.Message,
		RedirectTo: rerr.RedirectTo,
	}}
}
