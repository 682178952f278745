/*
totals.go - Hour deduplication and period totals

PURPOSE:
  Single left-to-right pass over the sorted rows. Pay accumulates for
  every row; a workday's hours accumulate only the first time that
  workday id appears, so a day with three hauls still contributes its
  hours exactly once.

NC PAY:
  Non-commission hours are paid at the fixed NCRate for the whole
  period, not at the per-driver NonCommissionRate:

    ncTotal     = totalNcHours * NCRate
    driverTotal = totalDriverPay + ncTotal
*/
package payroll

import (
	"fmt"
	"strconv"
)

// NCRate is the fixed hourly rate paid for non-commission hours.
const NCRate = 20.0

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// ncDetailsFor renders one detail line per NC entry on a workday,
// falling back to the legacy free-text reasons field when no itemized
// entries exist.
func ncDetailsFor(snap WorkdaySnapshot, items []NCItem) []string {
	date := FormatDisplayDate(snap.Date)

	var details []string
	for _, item := range items {
		details = append(details,
			fmt.Sprintf("%s: %s (%sh)", date, item.Reason, formatHours(item.Hours)))
	}
	if len(details) == 0 && snap.NcHours != 0 && snap.NcReasons != "" {
		details = append(details,
			fmt.Sprintf("%s: %s (%sh)", date, snap.NcReasons, formatHours(snap.NcHours)))
	}
	return details
}

// ComputeTotals aggregates period totals over the computed rows. The
// seen-workday set is function-local; nothing here is shared state.
// ncItems maps workday id to its itemized NC entries (may be nil).
func ComputeTotals(rows []ReportRow, ncItems map[int64][]NCItem) Totals {
	totals := Totals{NcReasonDetails: []string{}}
	seen := make(map[int64]bool)

	for _, row := range rows {
		totals.TotalFreightPay += row.FreightPay
		totals.TotalDriverPay += row.DriverPay

		if seen[row.Workday.ID] {
			continue
		}
		seen[row.Workday.ID] = true

		totals.TotalChHours += row.Workday.ChHours
		totals.TotalNcHours += row.Workday.NcHours
		totals.NcReasonDetails = append(totals.NcReasonDetails,
			ncDetailsFor(row.Workday, ncItems[row.Workday.ID])...)
	}

	totals.NcTotal = totals.TotalNcHours * NCRate
	totals.DriverTotal = totals.TotalDriverPay + totals.NcTotal
	return totals
}
