/*
numeric.go - Store-boundary numeric normalization

PURPOSE:
  Monetary and hour columns arrive from the store as arbitrary-precision
  decimals (stored as TEXT, scanned through shopspring/decimal). These
  two total functions collapse that representation into the engine's
  single float64 semantic exactly once, at the store adapter boundary.

INVARIANT:
  Downstream code never re-normalizes. A value that has passed through
  ToNum or ToNumOrNull is already a plain float64; applying the
  conversion twice is a bug these functions make structurally
  impossible (they only accept the store-native type).
*/
package payroll

import "github.com/shopspring/decimal"

// ToNum converts a nullable store decimal to float64. Null maps to 0.
func ToNum(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	f, _ := d.Decimal.Float64()
	return f
}

// ToNumOrNull converts a nullable store decimal to *float64. Null maps
// to nil, preserving absence for fields where zero is meaningful.
func ToNumOrNull(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}
