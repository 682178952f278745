/*
export.go - XLSX ledger export

PURPOSE:
  Renders the payroll report as a spreadsheet mirroring the printed
  ledger: one line per report row, first-haul-of-day rows carrying the
  day's hours, and a totals block at the bottom. Takes the same query
  parameters as the JSON report endpoint.

SEE ALSO:
  - handlers.go: GetPayrollReport (the JSON sibling)
*/
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/terrahaul/payroll-engine/payroll"
	"github.com/xuri/excelize/v2"
)

const ledgerSheet = "Payroll"

// ExportPayrollReport streams the report as an .xlsx download.
// GET /api/reports/payroll/export?driverId=7&startDate=...&endDate=...
func (h *Handler) ExportPayrollReport(w http.ResponseWriter, r *http.Request) {
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

	f, err := buildLedgerWorkbook(report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build workbook", err)
		return
	}

	filename := fmt.Sprintf("payroll_%d_%s_%s.xlsx",
		report.Driver.ID,
		report.StartDate.Format(payroll.ParamDateFormat),
		report.EndDate.Format(payroll.ParamDateFormat))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		// Headers are already gone; nothing useful left to send.
		return
	}
}

var ledgerHeaders = []string{
	"Date", "Customer", "Load Ref", "CH Invoice", "Load Type", "Metric",
	"Rate", "Quantity", "Freight Pay", "Driver Pay", "CH Hours", "NC Hours", "Off Duty",
}

// buildLedgerWorkbook lays the report out on a single sheet. Hours
// print only on the first row of each day, matching the deduplicated
// totals.
func buildLedgerWorkbook(report *payroll.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(ledgerSheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	title := fmt.Sprintf("Haul Payroll Summary - %s %s (%s to %s)",
		report.Driver.FirstName, report.Driver.LastName,
		payroll.FormatDisplayDate(report.StartDate),
		payroll.FormatDisplayDate(report.EndDate))
	f.SetCellValue(ledgerSheet, "A1", title)

	for i, header := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(ledgerSheet, cell, header)
	}

	rowIndex := 3
	for _, row := range report.Rows {
		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", rowIndex), payroll.FormatDisplayDate(row.Haul.DateHaul))

		if row.IsPlaceholder() {
			f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", rowIndex), row.Workday.ReasonLabel)
		} else {
			f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", rowIndex), row.Haul.Customer)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", rowIndex), row.Haul.LoadRefNum)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", rowIndex), row.Haul.ChInvoice)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", rowIndex), string(row.Haul.LoadType))
			f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", rowIndex), string(row.Haul.RateMetric))
			f.SetCellValue(ledgerSheet, fmt.Sprintf("G%d", rowIndex), row.Haul.Rate)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("H%d", rowIndex), row.Haul.Quantity)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("I%d", rowIndex), row.FreightPay)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("J%d", rowIndex), row.DriverPay)
		}

		if row.FirstHaulOfDay {
			f.SetCellValue(ledgerSheet, fmt.Sprintf("K%d", rowIndex), row.Workday.ChHours)
			f.SetCellValue(ledgerSheet, fmt.Sprintf("L%d", rowIndex), row.Workday.NcHours)
		}
		if row.Workday.OffDuty {
			f.SetCellValue(ledgerSheet, fmt.Sprintf("M%d", rowIndex), row.Workday.ReasonLabel)
		}
		rowIndex++
	}

	totals := []struct {
		label string
		value float64
	}{
		{"Total CH Hours", report.Totals.TotalChHours},
		{"Total NC Hours", report.Totals.TotalNcHours},
		{"Total Freight Pay", report.Totals.TotalFreightPay},
		{"Total Driver Pay", report.Totals.TotalDriverPay},
		{"NC Pay", report.Totals.NcTotal},
		{"Driver Total", report.Totals.DriverTotal},
	}

	rowIndex++ // blank separator line
	for _, t := range totals {
		f.SetCellValue(ledgerSheet, fmt.Sprintf("H%d", rowIndex), t.label)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("J%d", rowIndex), t.value)
		rowIndex++
	}

	for _, detail := range report.Totals.NcReasonDetails {
		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", rowIndex), detail)
		rowIndex++
	}

	return f, nil
}
