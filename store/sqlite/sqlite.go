/*
Package sqlite provides the SQLite-backed Data Store for the payroll engine.

PURPOSE:
  Implements payroll.Store (the engine's read contract) plus the write
  operations that feed reference data: drivers, workdays, hauls, vendor
  products, freight routes, NC items, and the settings singleton. In
  production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

KEY TABLES:
  drivers:         pay-rate reference data
  workdays:        one row per driver per calendar date
  hauls:           delivery trips, each owned by a workday
  vendor_products: material/vendor pairings referenced by hauls
  freight_routes:  priced origin/destination pairings
  nc_items:        itemized non-commission work entries
  settings:        singleton configuration row (id = 1)

NUMERIC COLUMNS:
  Monetary and hour columns are stored as TEXT decimals and scanned
  through decimal.NullDecimal. Normalization to float64 happens here,
  once, via payroll.ToNum - downstream code
  never re-normalizes.

EAGER LOADING:
  FindWorkdaysInRange issues three queries (workdays, hauls joined to
  their product/route, NC items) and assembles the object graph in Go.
  The result is a point-in-time consistent read batch for the report.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers do not
  block each other while a writer is active.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  engine := payroll.NewEngine(store)

SEE ALSO:
  - payroll/store.go: the read interface this package implements
  - payroll/store/memory.go: in-memory implementation for engine tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/terrahaul/payroll-engine/payroll"
)

const dateFormat = "2006-01-02"

// Store implements the payroll storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Drivers (pay-rate reference data)
	CREATE TABLE IF NOT EXISTS drivers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		end_dump_pay_rate TEXT,
		flat_bed_pay_rate TEXT,
		non_commission_rate TEXT,
		created_at TEXT NOT NULL
	);

	-- Workdays (one per driver per calendar date)
	CREATE TABLE IF NOT EXISTS workdays (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		driver_id INTEGER NOT NULL REFERENCES drivers(id),
		date TEXT NOT NULL,
		ch_hours TEXT,
		nc_hours TEXT,
		nc_reasons TEXT,
		off_duty BOOLEAN NOT NULL DEFAULT FALSE,
		off_duty_reason TEXT,
		created_at TEXT NOT NULL,
		UNIQUE(driver_id, date)
	);

	-- Hot path: the report range query
	CREATE INDEX IF NOT EXISTS idx_workdays_driver_date
		ON workdays(driver_id, date);

	-- Vendor products (what was hauled, from whom)
	CREATE TABLE IF NOT EXISTS vendor_products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vendor_id INTEGER NOT NULL DEFAULT 0,
		vendor TEXT NOT NULL,
		product TEXT NOT NULL,
		location TEXT
	);

	-- Freight routes (priced origin/destination pairings)
	CREATE TABLE IF NOT EXISTS freight_routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		miles TEXT
	);

	-- Hauls (delivery trips, each owned by a workday)
	CREATE TABLE IF NOT EXISTS hauls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workday_id INTEGER NOT NULL REFERENCES workdays(id),
		date_haul TEXT NOT NULL,
		customer TEXT,
		load_ref_num TEXT,
		ch_invoice TEXT,
		load_type TEXT NOT NULL DEFAULT '',
		rate_metric TEXT NOT NULL DEFAULT '',
		rate TEXT,
		quantity TEXT,
		vendor_product_id INTEGER REFERENCES vendor_products(id),
		freight_route_id INTEGER REFERENCES freight_routes(id),
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_hauls_workday
		ON hauls(workday_id);
	CREATE INDEX IF NOT EXISTS idx_hauls_date
		ON hauls(date_haul);

	-- Itemized non-commission work entries
	CREATE TABLE IF NOT EXISTS nc_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workday_id INTEGER NOT NULL REFERENCES workdays(id),
		hours TEXT,
		reason TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_nc_items_workday
		ON nc_items(workday_id);

	-- Settings singleton (id is always 1)
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		off_duty_reason_labels_json TEXT,
		driver_default_nc_pay_rate TEXT
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// READ SIDE (payroll.Store interface)
// =============================================================================

// FindDriverByID returns the driver or nil when the id does not resolve.
func (s *Store) FindDriverByID(ctx context.Context, id int64) (*payroll.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		d                payroll.Driver
		endDump, flatBed decimal.NullDecimal
		nonCommission    decimal.NullDecimal
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, end_dump_pay_rate, flat_bed_pay_rate, non_commission_rate
		 FROM drivers WHERE id = ?`, id,
	).Scan(&d.ID, &d.FirstName, &d.LastName, &endDump, &flatBed, &nonCommission)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query driver: %w", err)
	}

	d.EndDumpPayRate = payroll.ToNum(endDump)
	d.FlatBedPayRate = payroll.ToNum(flatBed)
	d.NonCommissionRate = payroll.ToNum(nonCommission)
	return &d, nil
}

// FindWorkdaysInRange returns the driver's workdays with date in
// [start, end] inclusive, ordered by date ascending, each eagerly
// including its hauls (with vendor product and freight route) and NC
// items.
func (s *Store) FindWorkdaysInRange(ctx context.Context, driverID int64, start, end time.Time) ([]payroll.Workday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	workdays, index, err := s.queryWorkdays(ctx, driverID, start, end)
	if err != nil {
		return nil, err
	}
	if len(workdays) == 0 {
		return nil, nil
	}

	if err := s.attachHauls(ctx, driverID, start, end, workdays, index); err != nil {
		return nil, err
	}
	if err := s.attachNCItems(ctx, driverID, start, end, workdays, index); err != nil {
		return nil, err
	}

	return workdays, nil
}

// queryWorkdays returns the bare workdays plus an id -> slice index
// lookup used to hang hauls and NC items off their parents.
func (s *Store) queryWorkdays(ctx context.Context, driverID int64, start, end time.Time) ([]payroll.Workday, map[int64]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, driver_id, date, ch_hours, nc_hours, nc_reasons, off_duty, off_duty_reason
		 FROM workdays
		 WHERE driver_id = ? AND date >= ? AND date <= ?
		 ORDER BY date ASC`,
		driverID, start.Format(dateFormat), end.Format(dateFormat),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query workdays: %w", err)
	}
	defer rows.Close()

	var workdays []payroll.Workday
	index := make(map[int64]int)

	for rows.Next() {
		var (
			wd               payroll.Workday
			date             string
			chHours, ncHours decimal.NullDecimal
			ncReasons        sql.NullString
			offDutyReason    sql.NullString
		)
		if err := rows.Scan(&wd.ID, &wd.DriverID, &date, &chHours, &ncHours,
			&ncReasons, &wd.OffDuty, &offDutyReason); err != nil {
			return nil, nil, fmt.Errorf("failed to scan workday: %w", err)
		}

		wd.Date, _ = time.ParseInLocation(dateFormat, date, time.UTC)
		wd.ChHours = payroll.ToNum(chHours)
		wd.NcHours = payroll.ToNum(ncHours)
		wd.NcReasons = ncReasons.String
		wd.OffDutyReason = payroll.ParseOffDutyReason(offDutyReason.String)

		index[wd.ID] = len(workdays)
		workdays = append(workdays, wd)
	}
	return workdays, index, rows.Err()
}

func (s *Store) attachHauls(ctx context.Context, driverID int64, start, end time.Time, workdays []payroll.Workday, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT h.id, h.workday_id, h.date_haul, h.customer, h.load_ref_num, h.ch_invoice,
		        h.load_type, h.rate_metric, h.rate, h.quantity,
		        vp.id, vp.vendor_id, vp.vendor, vp.product, vp.location,
		        fr.id, fr.origin, fr.destination, fr.miles
		 FROM hauls h
		 JOIN workdays w ON w.id = h.workday_id
		 LEFT JOIN vendor_products vp ON vp.id = h.vendor_product_id
		 LEFT JOIN freight_routes fr ON fr.id = h.freight_route_id
		 WHERE w.driver_id = ? AND w.date >= ? AND w.date <= ?
		 ORDER BY h.date_haul ASC, h.id ASC`,
		driverID, start.Format(dateFormat), end.Format(dateFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to query hauls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		haul, err := scanHaul(rows)
		if err != nil {
			return err
		}
		if i, ok := index[haul.WorkdayID]; ok {
			workdays[i].Hauls = append(workdays[i].Hauls, haul)
		}
	}
	return rows.Err()
}

func scanHaul(rows *sql.Rows) (payroll.Haul, error) {
	var (
		h                               payroll.Haul
		dateHaul                        string
		customer, loadRefNum, chInvoice sql.NullString
		loadType, rateMetric            string
		rate, quantity                  decimal.NullDecimal
		vpID, vpVendorID                sql.NullInt64
		vpVendor, vpProduct, vpLocation sql.NullString
		frID                            sql.NullInt64
		frOrigin, frDestination         sql.NullString
		frMiles                         decimal.NullDecimal
	)

	err := rows.Scan(
		&h.ID, &h.WorkdayID, &dateHaul, &customer, &loadRefNum, &chInvoice,
		&loadType, &rateMetric, &rate, &quantity,
		&vpID, &vpVendorID, &vpVendor, &vpProduct, &vpLocation,
		&frID, &frOrigin, &frDestination, &frMiles,
	)
	if err != nil {
		return h, fmt.Errorf("failed to scan haul: %w", err)
	}

	h.DateHaul, _ = time.ParseInLocation(dateFormat, dateHaul, time.UTC)
	h.Customer = customer.String
	h.LoadRefNum = loadRefNum.String
	h.ChInvoice = chInvoice.String
	h.LoadType = payroll.LoadType(loadType)
	h.RateMetric = payroll.RateMetric(rateMetric)
	h.Rate = payroll.ToNum(rate)
	h.Quantity = payroll.ToNum(quantity)

	if vpID.Valid {
		h.VendorProduct = &payroll.VendorProduct{
			ID:       vpID.Int64,
			VendorID: vpVendorID.Int64,
			Vendor:   vpVendor.String,
			Product:  vpProduct.String,
			Location: vpLocation.String,
		}
	}
	if frID.Valid {
		h.FreightRoute = &payroll.FreightRoute{
			ID:          frID.Int64,
			Origin:      frOrigin.String,
			Destination: frDestination.String,
			Miles:       payroll.ToNum(frMiles),
		}
	}
	return h, nil
}

func (s *Store) attachNCItems(ctx context.Context, driverID int64, start, end time.Time, workdays []payroll.Workday, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT n.id, n.workday_id, n.hours, n.reason
		 FROM nc_items n
		 JOIN workdays w ON w.id = n.workday_id
		 WHERE w.driver_id = ? AND w.date >= ? AND w.date <= ?
		 ORDER BY n.id ASC`,
		driverID, start.Format(dateFormat), end.Format(dateFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to query nc items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item   payroll.NCItem
			hours  decimal.NullDecimal
			reason sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.WorkdayID, &hours, &reason); err != nil {
			return fmt.Errorf("failed to scan nc item: %w", err)
		}
		item.Hours = payroll.ToNum(hours)
		item.Reason = reason.String

		if i, ok := index[item.WorkdayID]; ok {
			workdays[i].NCItems = append(workdays[i].NCItems, item)
		}
	}
	return rows.Err()
}

// FindSettings returns the singleton settings record or nil when absent.
func (s *Store) FindSettings(ctx context.Context) (*payroll.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		st         payroll.Settings
		labelsJSON sql.NullString
		ncRate     decimal.NullDecimal
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, off_duty_reason_labels_json, driver_default_nc_pay_rate
		 FROM settings WHERE id = 1`,
	).Scan(&st.ID, &labelsJSON, &ncRate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	if labelsJSON.Valid && labelsJSON.String != "" {
		json.Unmarshal([]byte(labelsJSON.String), &st.OffDutyReasonLabels)
	}
	st.DriverDefaultNCPayRate = payroll.ToNumOrNull(ncRate)
	return &st, nil
}

// =============================================================================
// WRITE SIDE (reference data feeds)
// =============================================================================

// SaveDriver inserts (ID == 0) or updates a driver, filling the id on
// insert.
func (s *Store) SaveDriver(ctx context.Context, d *payroll.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO drivers (first_name, last_name, end_dump_pay_rate, flat_bed_pay_rate, non_commission_rate, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.FirstName, d.LastName,
			decimalText(d.EndDumpPayRate), decimalText(d.FlatBedPayRate), decimalText(d.NonCommissionRate),
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert driver: %w", err)
		}
		d.ID, err = res.LastInsertId()
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE drivers SET first_name = ?, last_name = ?, end_dump_pay_rate = ?, flat_bed_pay_rate = ?, non_commission_rate = ?
		 WHERE id = ?`,
		d.FirstName, d.LastName,
		decimalText(d.EndDumpPayRate), decimalText(d.FlatBedPayRate), decimalText(d.NonCommissionRate),
		d.ID,
	)
	return err
}

// ListDrivers returns all drivers ordered by name.
func (s *Store) ListDrivers(ctx context.Context) ([]payroll.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, end_dump_pay_rate, flat_bed_pay_rate, non_commission_rate
		 FROM drivers ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []payroll.Driver
	for rows.Next() {
		var (
			d                payroll.Driver
			endDump, flatBed decimal.NullDecimal
			nonCommission    decimal.NullDecimal
		)
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &endDump, &flatBed, &nonCommission); err != nil {
			return nil, err
		}
		d.EndDumpPayRate = payroll.ToNum(endDump)
		d.FlatBedPayRate = payroll.ToNum(flatBed)
		d.NonCommissionRate = payroll.ToNum(nonCommission)
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

// DeleteDriver removes a driver record.
func (s *Store) DeleteDriver(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM drivers WHERE id = ?", id)
	return err
}

// SaveWorkday inserts (ID == 0) or updates a workday, filling the id
// on insert.
func (s *Store) SaveWorkday(ctx context.Context, wd *payroll.Workday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wd.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO workdays (driver_id, date, ch_hours, nc_hours, nc_reasons, off_duty, off_duty_reason, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			wd.DriverID, wd.Date.Format(dateFormat),
			decimalText(wd.ChHours), decimalText(wd.NcHours),
			wd.NcReasons, wd.OffDuty, wd.OffDutyReason.Format(),
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert workday: %w", err)
		}
		wd.ID, err = res.LastInsertId()
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE workdays SET date = ?, ch_hours = ?, nc_hours = ?, nc_reasons = ?, off_duty = ?, off_duty_reason = ?
		 WHERE id = ?`,
		wd.Date.Format(dateFormat),
		decimalText(wd.ChHours), decimalText(wd.NcHours),
		wd.NcReasons, wd.OffDuty, wd.OffDutyReason.Format(),
		wd.ID,
	)
	return err
}

// SaveHaul inserts (ID == 0) or updates a haul, filling the id on
// insert.
func (s *Store) SaveHaul(ctx context.Context, h *payroll.Haul) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var vendorProductID, freightRouteID any
	if h.VendorProduct != nil {
		vendorProductID = h.VendorProduct.ID
	}
	if h.FreightRoute != nil {
		freightRouteID = h.FreightRoute.ID
	}

	if h.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO hauls (workday_id, date_haul, customer, load_ref_num, ch_invoice,
			                    load_type, rate_metric, rate, quantity, vendor_product_id, freight_route_id, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.WorkdayID, h.DateHaul.Format(dateFormat), h.Customer, h.LoadRefNum, h.ChInvoice,
			string(h.LoadType), string(h.RateMetric),
			decimalText(h.Rate), decimalText(h.Quantity),
			vendorProductID, freightRouteID,
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert haul: %w", err)
		}
		h.ID, err = res.LastInsertId()
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE hauls SET date_haul = ?, customer = ?, load_ref_num = ?, ch_invoice = ?,
		        load_type = ?, rate_metric = ?, rate = ?, quantity = ?, vendor_product_id = ?, freight_route_id = ?
		 WHERE id = ?`,
		h.DateHaul.Format(dateFormat), h.Customer, h.LoadRefNum, h.ChInvoice,
		string(h.LoadType), string(h.RateMetric),
		decimalText(h.Rate), decimalText(h.Quantity),
		vendorProductID, freightRouteID,
		h.ID,
	)
	return err
}

// SaveVendorProduct inserts a vendor product, filling the id.
func (s *Store) SaveVendorProduct(ctx context.Context, vp *payroll.VendorProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO vendor_products (vendor_id, vendor, product, location) VALUES (?, ?, ?, ?)`,
		vp.VendorID, vp.Vendor, vp.Product, vp.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vendor product: %w", err)
	}
	vp.ID, err = res.LastInsertId()
	return err
}

// SaveFreightRoute inserts a freight route, filling the id.
func (s *Store) SaveFreightRoute(ctx context.Context, fr *payroll.FreightRoute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO freight_routes (origin, destination, miles) VALUES (?, ?, ?)`,
		fr.Origin, fr.Destination, decimalText(fr.Miles),
	)
	if err != nil {
		return fmt.Errorf("failed to insert freight route: %w", err)
	}
	fr.ID, err = res.LastInsertId()
	return err
}

// SaveNCItem inserts a non-commission work entry, filling the id.
func (s *Store) SaveNCItem(ctx context.Context, item *payroll.NCItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO nc_items (workday_id, hours, reason) VALUES (?, ?, ?)`,
		item.WorkdayID, decimalText(item.Hours), item.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to insert nc item: %w", err)
	}
	item.ID, err = res.LastInsertId()
	return err
}

// SaveSettings upserts the singleton settings row.
func (s *Store) SaveSettings(ctx context.Context, st *payroll.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	labelsJSON, _ := json.Marshal(st.OffDutyReasonLabels)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, off_duty_reason_labels_json, driver_default_nc_pay_rate)
		 VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			off_duty_reason_labels_json = excluded.off_duty_reason_labels_json,
			driver_default_nc_pay_rate = excluded.driver_default_nc_pay_rate`,
		string(labelsJSON), decimalTextOrNull(st.DriverDefaultNCPayRate),
	)
	if err == nil {
		st.ID = 1
	}
	return err
}

// Reset wipes all rows. Used by demo scenario loading and tests.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"nc_items", "hauls", "workdays", "vendor_products", "freight_routes", "drivers", "settings"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	// Restart the id sequences so real and placeholder id spaces stay
	// disjoint across reloads.
	_, err := s.db.ExecContext(ctx, "DELETE FROM sqlite_sequence")
	return err
}

// decimalText renders a float as the TEXT decimal the schema stores.
func decimalText(f float64) string {
	return decimal.NewFromFloat(f).String()
}

// decimalTextOrNull renders an optional float, preserving NULL.
func decimalTextOrNull(f *float64) any {
	if f == nil {
		return nil
	}
	return decimalText(*f)
}
