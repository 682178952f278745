/*
store.go - Data Store contract

PURPOSE:
  The engine is read-only over an external store. This interface is
  everything it consumes: exactly two logical reads per report (driver
  by id, workdays in range with eager hauls and NC items) plus the
  optional settings singleton used for reason labels.

IMPLEMENTATIONS:
  store/sqlite:          SQLite-backed production store
  payroll/store (memory): in-memory store for engine tests

GUARANTEES EXPECTED:
  - FindWorkdaysInRange returns workdays ordered by date ascending,
    bounds inclusive, each with its hauls (vendor product and freight
    route attached where present) and NC items populated.
  - A point-in-time consistent read across the batch; connectivity
    failures propagate as plain errors, outside the report taxonomy.
*/
package payroll

import (
	"context"
	"time"
)

// Store is the read contract the engine consumes.
type Store interface {
	// FindDriverByID returns the driver or nil when the id does not
	// resolve.
	FindDriverByID(ctx context.Context, id int64) (*Driver, error)

	// FindWorkdaysInRange returns the driver's workdays with date in
	// [start, end], eagerly including hauls and NC items.
	FindWorkdaysInRange(ctx context.Context, driverID int64, start, end time.Time) ([]Workday, error)

	// FindSettings returns the singleton settings record or nil when
	// absent.
	FindSettings(ctx context.Context) (*Settings, error)
}
