/*
calc.go - Per-row pay computation

PURPOSE:
  Pure pass over the sorted rows filling freight pay, driver pay, and
  the first-haul-of-day markers the ledger uses to group days.

RULES:
  freightPay = quantity * rate
  driverPay  = freightPay * driver rate for the load type
               (enddump -> EndDumpPayRate, flatbed -> FlatBedPayRate,
                anything else -> 0)

  Placeholder rows are skipped; their pay stays 0 by construction.

  Zero or negative rate/quantity is accepted and propagates
  arithmetically — negative entries act as manual adjustments.
*/
package payroll

// driverPayRate selects the load-type multiplier. Unknown or empty
// load types pay 0.
func driverPayRate(driver Driver, loadType LoadType) float64 {
	switch loadType {
	case LoadEndDump:
		return driver.EndDumpPayRate
	case LoadFlatBed:
		return driver.FlatBedPayRate
	default:
		return 0
	}
}

// ComputePay fills pay fields and day markers in place. Rows must
// already be sorted by haul date. A row is first-haul-of-day when it
// opens the sequence or its formatted calendar date differs from the
// preceding row's.
func ComputePay(rows []ReportRow, driver Driver) {
	for i := range rows {
		row := &rows[i]

		row.FirstHaulOfDay = i == 0 ||
			!SameCalendarDay(rows[i-1].Haul.DateHaul, row.Haul.DateHaul)

		if row.Kind == RowPlaceholder {
			continue
		}

		row.FreightPay = row.Haul.Quantity * row.Haul.Rate
		row.DriverPay = row.FreightPay * driverPayRate(driver, row.Haul.LoadType)
	}
}
