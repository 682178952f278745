/*
reasons.go - Structured off-duty reasons

PURPOSE:
  The store historically encoded off-duty reasons as free text with ad
  hoc "Holiday: <text>" / "Other: <text>" prefixes alongside a fixed
  set of canonical labels. This file replaces the stringly encoding
  with an explicit variant parsed once at the store boundary, plus the
  display-label resolution used by the report ledger.

RESOLUTION ORDER (display label):
  1. Fixed lookup table keyed by the canonical label
  2. Settings-configured overrides
  3. The raw reason text unchanged (lets free-text Holiday:/Other:
     reasons pass through verbatim)

SEE ALSO:
  - types.go: WorkdaySnapshot.ReasonLabel
  - store/sqlite: calls ParseOffDutyReason when scanning workdays
*/
package payroll

import "strings"

// =============================================================================
// VARIANT
// =============================================================================

// ReasonKind discriminates the off-duty reason variants.
type ReasonKind int

const (
	// ReasonNone means the workday carries no off-duty reason.
	ReasonNone ReasonKind = iota
	// ReasonStandard is one of the canonical labels (No Work, Sick, ...).
	ReasonStandard
	// ReasonHoliday carries free text naming the holiday.
	ReasonHoliday
	// ReasonOther carries arbitrary free text.
	ReasonOther
	// ReasonFreeform preserves legacy text that matches no known shape.
	ReasonFreeform
)

// OffDutyReason is the structured form of a workday's off-duty reason.
// Text holds the canonical label for ReasonStandard and the free text
// for the other populated kinds.
type OffDutyReason struct {
	Kind ReasonKind
	Text string
}

// Canonical off-duty reason labels. These match the values the store
// writes for standard reasons.
const (
	ReasonNoWork      = "No Work"
	ReasonMaintenance = "Maintenance"
	ReasonSick        = "Sick"
	ReasonVacation    = "Vacation"
	ReasonWeather     = "Weather"
	ReasonPersonal    = "Personal"
	ReasonBereavement = "Bereavement"
)

const (
	holidayPrefix = "Holiday:"
	otherPrefix   = "Other:"
)

// standardReasonLabels is the fixed display table. Settings overrides
// take precedence when present.
var standardReasonLabels = map[string]string{
	ReasonNoWork:      "No Work Available",
	ReasonMaintenance: "Truck Maintenance",
	ReasonSick:        "Sick Day",
	ReasonVacation:    "Vacation Day",
	ReasonWeather:     "Weather Delay",
	ReasonPersonal:    "Personal Day",
	ReasonBereavement: "Bereavement Leave",
}

func isStandardReason(s string) bool {
	_, ok := standardReasonLabels[s]
	return ok
}

// =============================================================================
// PARSE / FORMAT
// =============================================================================

// ParseOffDutyReason converts the stored reason text into its
// structured form. Total: every input maps to some variant.
func ParseOffDutyReason(raw string) OffDutyReason {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return OffDutyReason{Kind: ReasonNone}
	case strings.HasPrefix(raw, holidayPrefix):
		return OffDutyReason{Kind: ReasonHoliday, Text: strings.TrimSpace(strings.TrimPrefix(raw, holidayPrefix))}
	case strings.HasPrefix(raw, otherPrefix):
		return OffDutyReason{Kind: ReasonOther, Text: strings.TrimSpace(strings.TrimPrefix(raw, otherPrefix))}
	case isStandardReason(raw):
		return OffDutyReason{Kind: ReasonStandard, Text: raw}
	default:
		return OffDutyReason{Kind: ReasonFreeform, Text: raw}
	}
}

// Format renders the reason back into its stored encoding. Parse and
// Format round-trip for every variant.
func (r OffDutyReason) Format() string {
	switch r.Kind {
	case ReasonNone:
		return ""
	case ReasonHoliday:
		return holidayPrefix + " " + r.Text
	case ReasonOther:
		return otherPrefix + " " + r.Text
	default:
		return r.Text
	}
}

// IsZero reports whether no reason was recorded.
func (r OffDutyReason) IsZero() bool { return r.Kind == ReasonNone }

// DisplayLabel resolves the human-friendly text for the ledger: the
// fixed table first, then Settings-configured overrides, then the raw
// reason text unchanged. Holiday:/Other: reasons never match either
// table, so they pass through verbatim. Settings may be nil.
func (r OffDutyReason) DisplayLabel(settings *Settings) string {
	if r.Kind == ReasonNone {
		return ""
	}
	raw := r.Format()
	if label, ok := standardReasonLabels[raw]; ok {
		return label
	}
	if settings != nil {
		if label, ok := settings.OffDutyReasonLabels[raw]; ok && label != "" {
			return label
		}
	}
	return raw
}
