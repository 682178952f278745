package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terrahaul/payroll-engine/payroll"
	"github.com/terrahaul/payroll-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func june(day int) time.Time {
	return time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC)
}

func seedDriver(t *testing.T, store *sqlite.Store) payroll.Driver {
	t.Helper()
	d := payroll.Driver{
		FirstName:      "Ray",
		LastName:       "Delgado",
		EndDumpPayRate: 0.30,
		FlatBedPayRate: 0.25,
	}
	require.NoError(t, store.SaveDriver(context.Background(), &d))
	require.NotZero(t, d.ID)
	return d
}

// =============================================================================
// DRIVER TESTS
// =============================================================================

func TestDriver_SaveAndFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d := seedDriver(t, store)

	found, err := store.FindDriverByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ray", found.FirstName)
	assert.InDelta(t, 0.30, found.EndDumpPayRate, 1e-9)
	assert.InDelta(t, 0.25, found.FlatBedPayRate, 1e-9)
}

func TestDriver_FindUnknown_ReturnsNil(t *testing.T) {
	store := newTestStore(t)

	found, err := store.FindDriverByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDriver_Update(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d := seedDriver(t, store)
	d.EndDumpPayRate = 0.35
	require.NoError(t, store.SaveDriver(ctx, &d))

	found, err := store.FindDriverByID(ctx, d.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.35, found.EndDumpPayRate, 1e-9)
}

func TestListDrivers_OrderedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range [][2]string{{"Dale", "Whitfield"}, {"Ray", "Delgado"}, {"Marta", "Kowalski"}} {
		d := payroll.Driver{FirstName: name[0], LastName: name[1]}
		require.NoError(t, store.SaveDriver(ctx, &d))
	}

	drivers, err := store.ListDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 3)
	assert.Equal(t, "Delgado", drivers[0].LastName)
	assert.Equal(t, "Kowalski", drivers[1].LastName)
	assert.Equal(t, "Whitfield", drivers[2].LastName)
}

// =============================================================================
// WORKDAY RANGE QUERY TESTS
// =============================================================================

func TestFindWorkdaysInRange_EagerLoadsGraph(t *testing.T) {
	// GIVEN: A workday with a haul referencing a vendor product and a
	//        freight route, plus two NC items
	// WHEN: Querying the range
	// THEN: The whole object graph comes back assembled

	store := newTestStore(t)
	ctx := context.Background()
	d := seedDriver(t, store)

	wd := payroll.Workday{DriverID: d.ID, Date: june(3), ChHours: 8.5, NcHours: 1.5, OffDuty: false}
	require.NoError(t, store.SaveWorkday(ctx, &wd))

	vp := payroll.VendorProduct{Vendor: "Cascade Quarry", Product: "3/4 Crushed Gravel", Location: "North Pit"}
	require.NoError(t, store.SaveVendorProduct(ctx, &vp))
	fr := payroll.FreightRoute{Origin: "North Pit", Destination: "Ridgeview Yard", Miles: 34}
	require.NoError(t, store.SaveFreightRoute(ctx, &fr))

	haul := payroll.Haul{
		WorkdayID:     wd.ID,
		DateHaul:      june(3),
		Customer:      "Hargrove Builders",
		LoadRefNum:    "LR-101",
		ChInvoice:     "INV-551",
		LoadType:      payroll.LoadEndDump,
		RateMetric:    payroll.RatePerTon,
		Rate:          11.50,
		Quantity:      24,
		VendorProduct: &vp,
		FreightRoute:  &fr,
	}
	require.NoError(t, store.SaveHaul(ctx, &haul))

	for _, item := range []payroll.NCItem{
		{WorkdayID: wd.ID, Hours: 1, Reason: "Pre-trip inspection"},
		{WorkdayID: wd.ID, Hours: 0.5, Reason: "Fueling"},
	} {
		item := item
		require.NoError(t, store.SaveNCItem(ctx, &item))
	}

	workdays, err := store.FindWorkdaysInRange(ctx, d.ID, june(1), june(7))
	require.NoError(t, err)
	require.Len(t, workdays, 1)

	got := workdays[0]
	assert.InDelta(t, 8.5, got.ChHours, 1e-9)
	assert.InDelta(t, 1.5, got.NcHours, 1e-9)

	require.Len(t, got.Hauls, 1)
	gotHaul := got.Hauls[0]
	assert.Equal(t, "Hargrove Builders", gotHaul.Customer)
	assert.Equal(t, payroll.LoadEndDump, gotHaul.LoadType)
	assert.InDelta(t, 11.50, gotHaul.Rate, 1e-9)
	assert.InDelta(t, 24.0, gotHaul.Quantity, 1e-9)
	require.NotNil(t, gotHaul.VendorProduct)
	assert.Equal(t, "Cascade Quarry", gotHaul.VendorProduct.Vendor)
	require.NotNil(t, gotHaul.FreightRoute)
	assert.Equal(t, "Ridgeview Yard", gotHaul.FreightRoute.Destination)

	require.Len(t, got.NCItems, 2)
	assert.Equal(t, "Pre-trip inspection", got.NCItems[0].Reason)
}

func TestFindWorkdaysInRange_BoundsInclusive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	d := seedDriver(t, store)

	for _, day := range []int{2, 3, 9, 10} {
		wd := payroll.Workday{DriverID: d.ID, Date: june(day)}
		require.NoError(t, store.SaveWorkday(ctx, &wd))
	}

	workdays, err := store.FindWorkdaysInRange(ctx, d.ID, june(3), june(9))
	require.NoError(t, err)
	require.Len(t, workdays, 2)
	assert.Equal(t, june(3), workdays[0].Date)
	assert.Equal(t, june(9), workdays[1].Date)
}

func TestFindWorkdaysInRange_EmptyRange_ReturnsNil(t *testing.T) {
	store := newTestStore(t)
	d := seedDriver(t, store)

	workdays, err := store.FindWorkdaysInRange(context.Background(), d.ID, june(1), june(7))
	require.NoError(t, err)
	assert.Nil(t, workdays)
}

func TestWorkday_OffDutyReasonRoundTrips(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	d := seedDriver(t, store)

	wd := payroll.Workday{
		DriverID:      d.ID,
		Date:          june(3),
		OffDuty:       true,
		OffDutyReason: payroll.OffDutyReason{Kind: payroll.ReasonHoliday, Text: "Independence Day"},
	}
	require.NoError(t, store.SaveWorkday(ctx, &wd))

	workdays, err := store.FindWorkdaysInRange(ctx, d.ID, june(1), june(7))
	require.NoError(t, err)
	require.Len(t, workdays, 1)
	assert.True(t, workdays[0].OffDuty)
	assert.Equal(t, payroll.ReasonHoliday, workdays[0].OffDutyReason.Kind)
	assert.Equal(t, "Independence Day", workdays[0].OffDutyReason.Text)
}

func TestWorkday_DuplicateDriverDate_Rejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	d := seedDriver(t, store)

	wd1 := payroll.Workday{DriverID: d.ID, Date: june(3)}
	require.NoError(t, store.SaveWorkday(ctx, &wd1))

	wd2 := payroll.Workday{DriverID: d.ID, Date: june(3)}
	assert.Error(t, store.SaveWorkday(ctx, &wd2))
}

// =============================================================================
// SETTINGS TESTS
// =============================================================================

func TestSettings_AbsentReturnsNil(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.FindSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestSettings_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	firstRate := 18.0
	first := payroll.Settings{
		OffDutyReasonLabels:    map[string]string{"Shop Day": "Shop Day (Unscheduled)"},
		DriverDefaultNCPayRate: &firstRate,
	}
	require.NoError(t, store.SaveSettings(ctx, &first))

	secondRate := 20.0
	second := payroll.Settings{
		OffDutyReasonLabels:    map[string]string{"Shop Day": "Shop Day (Scheduled)"},
		DriverDefaultNCPayRate: &secondRate,
	}
	require.NoError(t, store.SaveSettings(ctx, &second))

	found, err := store.FindSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)
	assert.Equal(t, "Shop Day (Scheduled)", found.OffDutyReasonLabels["Shop Day"])
	require.NotNil(t, found.DriverDefaultNCPayRate)
	assert.InDelta(t, 20.0, *found.DriverDefaultNCPayRate, 1e-9)
}

func TestSettings_NilNCRatePreservedAsNull(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSettings(ctx, &payroll.Settings{
		OffDutyReasonLabels: map[string]string{"Shop Day": "Shop Day"},
	}))

	found, err := store.FindSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.DriverDefaultNCPayRate)
}

// =============================================================================
// RESET TESTS
// =============================================================================

func TestReset_ClearsDataAndRestartsSequences(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d := seedDriver(t, store)
	firstID := d.ID

	require.NoError(t, store.Reset(ctx))

	drivers, err := store.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, drivers)

	d2 := seedDriver(t, store)
	assert.Equal(t, firstID, d2.ID, "id sequence should restart after reset")
}
