/*
report.go - Engine orchestration

PURPOSE:
  The single synchronous read-only transformation: one request, one
  store read batch, one deterministic pass to produce a report.

CONTROL FLOW:
  validate -> driver lookup -> workdays in range -> settings ->
  row synthesis (rows.go) -> pay (calc.go) -> totals (totals.go) ->
  assemble

CONCURRENCY:
  No shared mutable state. Concurrent Generate calls for different
  drivers or ranges are fully independent. There are no retries here;
  store connectivity failures propagate as plain errors outside the
  report taxonomy.
*/
package payroll

import "context"

// Engine produces haul payroll reports from a Store.
type Engine struct {
	store Store
}

// NewEngine creates an engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Generate validates the raw parameters, reads the driver's period
// from the store, and returns the fully computed report. Every
// taxonomy failure comes back as a *ReportError; either the full
// report is produced or a single structured error is returned.
func (e *Engine) Generate(ctx context.Context, raw RawParams) (*Report, error) {
	params, rerr := ValidateParams(raw)
	if rerr != nil {
		return nil, rerr
	}

	driver, err := e.store.FindDriverByID(ctx, params.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, driverNotFound(params.DriverID)
	}

	workdays, err := e.store.FindWorkdaysInRange(ctx, params.DriverID, params.Period.Start, params.Period.End)
	if err != nil {
		return nil, err
	}

	settings, err := e.store.FindSettings(ctx)
	if err != nil {
		return nil, err
	}

	rows := BuildRows(workdays, settings)
	ComputePay(rows, *driver)

	ncItems := make(map[int64][]NCItem, len(workdays))
	for _, wd := range workdays {
		if len(wd.NCItems) > 0 {
			ncItems[wd.ID] = wd.NCItems
		}
	}

	return &Report{
		Driver:    *driver,
		Rows:      rows,
		Totals:    ComputeTotals(rows, ncItems),
		StartDate: params.Period.Start,
		EndDate:   params.Period.End,
	}, nil
}
