/*
Package payroll implements the haul payroll summary engine.

PURPOSE:
  Given a driver and a bounded date range, the engine reconstructs the
  driver's work period from two loosely related record streams (workdays
  and hauls), synthesizes placeholder rows for off-duty days with no
  hauls, computes per-haul freight and driver pay using load-type rules,
  deduplicates hour totals across multiple hauls on the same day, and
  produces a fully computed ledger with period totals.

KEY CONCEPTS IN THIS FILE (types.go):
  - Driver:    pay-rate reference data, immutable during a report run
  - Workday:   one driver-day; the unit of hour deduplication
  - Haul:      one delivery trip, priced per ton/mile/hour
  - ReportRow: a tagged variant — either a real haul or a placeholder
               standing in for an off-duty day with no hauls
  - Totals:    period-level pay and hour aggregates

DESIGN PRINCIPLES:
  1. Read-only: the engine never mutates Driver, Workday, or Haul state
  2. Single normalization: store decimals become float64 exactly once,
     at the store boundary (see numeric.go)
  3. Explicit variants: placeholder rows are a tagged kind, not an id
     sign convention; the negative-id encoding survives only in the
     serialized form (RowID)

SEE ALSO:
  - report.go:  engine orchestration
  - rows.go:    row synthesis and ordering
  - calc.go:    freight/driver pay rules
  - totals.go:  hour deduplication and period totals
*/
package payroll

import "time"

// =============================================================================
// REFERENCE DATA
// =============================================================================

// Driver holds identity and the pay-rate fields consulted by the pay
// calculator. EndDumpPayRate and FlatBedPayRate are multipliers applied
// to freight pay. NonCommissionRate is carried for callers but the
// engine pays NC hours at the fixed NCRate.
type Driver struct {
	ID                int64
	FirstName         string
	LastName          string
	EndDumpPayRate    float64
	FlatBedPayRate    float64
	NonCommissionRate float64
}

// Settings is the optional singleton configuration record. The engine
// reads it only to resolve human-friendly off-duty reason labels.
// DriverDefaultNCPayRate is nil when no default has been configured;
// the report pays NC hours at the fixed NCRate either way.
type Settings struct {
	ID                     int64
	OffDutyReasonLabels    map[string]string
	DriverDefaultNCPayRate *float64
}

// =============================================================================
// WORK RECORDS
// =============================================================================

// Workday is one record per driver per calendar date. Its hours are
// counted exactly once in period totals regardless of haul count.
type Workday struct {
	ID            int64
	DriverID      int64
	Date          time.Time
	ChHours       float64
	NcHours       float64
	NcReasons     string
	OffDuty       bool
	OffDutyReason OffDutyReason
	Hauls         []Haul
	NCItems       []NCItem
}

// LoadType distinguishes the trailer configuration a haul was run with.
// The driver pay rate depends on it.
type LoadType string

const (
	LoadEndDump LoadType = "enddump"
	LoadFlatBed LoadType = "flatbed"
)

// RateMetric is the unit a haul's rate is quoted in.
type RateMetric string

const (
	RatePerTon  RateMetric = "ton"
	RatePerMile RateMetric = "mile"
	RatePerHour RateMetric = "hour"
)

// Haul is one delivery trip belonging to exactly one workday.
type Haul struct {
	ID         int64
	WorkdayID  int64
	DateHaul   time.Time
	Customer   string
	LoadRefNum string
	ChInvoice  string
	LoadType   LoadType
	RateMetric RateMetric
	Rate       float64
	Quantity   float64

	// Nil for placeholder rows and for hauls recorded without a
	// product/route pairing.
	VendorProduct *VendorProduct
	FreightRoute  *FreightRoute
}

// VendorProduct identifies what material was hauled and from whom.
type VendorProduct struct {
	ID       int64
	VendorID int64
	Vendor   string
	Product  string
	Location string
}

// FreightRoute identifies the priced origin/destination pairing.
type FreightRoute struct {
	ID          int64
	Origin      string
	Destination string
	Miles       float64
}

// NCItem is one non-commission work entry attached to a workday.
type NCItem struct {
	ID        int64
	WorkdayID int64
	Hours     float64
	Reason    string
}

// =============================================================================
// DERIVED REPORT STRUCTURES
// =============================================================================

// RowKind discriminates real haul rows from synthesized placeholders.
type RowKind int

const (
	// RowHaul is a row backed by a persisted haul record.
	RowHaul RowKind = iota
	// RowPlaceholder stands in for an off-duty workday with no hauls,
	// so the printed ledger shows a line for every day in range.
	RowPlaceholder
)

// WorkdaySnapshot is the denormalized copy of a row's parent workday
// carried on every report row.
type WorkdaySnapshot struct {
	ID            int64
	Date          time.Time
	ChHours       float64
	NcHours       float64
	NcReasons     string
	OffDuty       bool
	OffDutyReason OffDutyReason

	// ReasonLabel is the display text resolved against the fixed
	// reason table and any Settings overrides (see reasons.go).
	ReasonLabel string
}

// ReportRow is a haul merged with its computed pay fields, or a
// placeholder for an off-duty day. Placeholders carry a zero-valued
// Haul with DateHaul set to the workday date.
type ReportRow struct {
	Kind           RowKind
	Haul           Haul
	Workday        WorkdaySnapshot
	FreightPay     float64
	DriverPay      float64
	FirstHaulOfDay bool
}

// RowID returns the row identifier in its serialized encoding: real
// rows use the positive haul id, placeholders use the negated workday
// id. The two spaces are disjoint because store ids start at 1.
func (r ReportRow) RowID() int64 {
	if r.Kind == RowPlaceholder {
		return -r.Workday.ID
	}
	return r.Haul.ID
}

// IsPlaceholder reports whether the row was synthesized for an
// off-duty day. Link-target logic switches on this, not on id sign.
func (r ReportRow) IsPlaceholder() bool { return r.Kind == RowPlaceholder }

// Totals are the period-level aggregates for the whole queried range.
type Totals struct {
	TotalChHours    float64
	TotalNcHours    float64
	TotalFreightPay float64
	TotalDriverPay  float64
	NcTotal         float64
	DriverTotal     float64
	NcReasonDetails []string
}

// Report is the final immutable structure returned to the caller.
type Report struct {
	Driver    Driver
	Rows      []ReportRow
	Totals    Totals
	StartDate time.Time
	EndDate   time.Time
}
