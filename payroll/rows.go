/*
rows.go - Row synthesis and ordering

PURPOSE:
  Turns the store's workday stream into the flat, date-ordered row
  sequence the ledger prints. Two cases per workday:

    off-duty, zero hauls  -> one synthesized placeholder row, so the
                             period ledger shows a line for every
                             working day in range
    otherwise             -> one row per haul, each carrying a
                             denormalized snapshot of its parent
                             workday

  An off-duty workday that still has hauls yields one row per haul and
  NO placeholder — off-duty status is informational context on those
  rows, not a suppression rule.

SEE ALSO:
  - calc.go: fills pay fields and first-haul-of-day markers afterwards
*/
package payroll

import "sort"

// snapshotOf denormalizes the parent workday onto a row, resolving
// the off-duty reason display label once.
func snapshotOf(wd Workday, settings *Settings) WorkdaySnapshot {
	return WorkdaySnapshot{
		ID:            wd.ID,
		Date:          wd.Date,
		ChHours:       wd.ChHours,
		NcHours:       wd.NcHours,
		NcReasons:     wd.NcReasons,
		OffDuty:       wd.OffDuty,
		OffDutyReason: wd.OffDutyReason,
		ReasonLabel:   wd.OffDutyReason.DisplayLabel(settings),
	}
}

// placeholderRow fabricates the zero-value row for an off-duty
// workday with no hauls. The haul fields are zeroed on purpose:
// quantity and rate at 0 make the pay properties hold trivially.
func placeholderRow(wd Workday, settings *Settings) ReportRow {
	return ReportRow{
		Kind: RowPlaceholder,
		Haul: Haul{
			WorkdayID: wd.ID,
			DateHaul:  wd.Date,
		},
		Workday: snapshotOf(wd, settings),
	}
}

// BuildRows flattens workdays into report rows and sorts them
// ascending by haul date. The sort is stable so repeated runs over an
// unchanged store produce identical output.
func BuildRows(workdays []Workday, settings *Settings) []ReportRow {
	var rows []ReportRow

	for _, wd := range workdays {
		if wd.OffDuty && len(wd.Hauls) == 0 {
			rows = append(rows, placeholderRow(wd, settings))
			continue
		}
		snap := snapshotOf(wd, settings)
		for _, haul := range wd.Hauls {
			rows = append(rows, ReportRow{
				Kind:    RowHaul,
				Haul:    haul,
				Workday: snap,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Haul.DateHaul.Before(rows[j].Haul.DateHaul)
	})

	return rows
}
