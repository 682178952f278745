// Package store provides payroll.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/terrahaul/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory holds drivers, workdays, and settings in maps. Reads return
// copies so callers cannot mutate stored state. Reads counts each
// query so tests can assert how many store reads an operation issued.
type Memory struct {
	mu       sync.RWMutex
	drivers  map[int64]payroll.Driver
	workdays map[int64][]payroll.Workday // keyed by driver id
	settings *payroll.Settings

	// Reads counts every Find* call.
	Reads int
}

func NewMemory() *Memory {
	return &Memory{
		drivers:  make(map[int64]payroll.Driver),
		workdays: make(map[int64][]payroll.Workday),
	}
}

// PutDriver inserts or replaces a driver.
func (m *Memory) PutDriver(d payroll.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[d.ID] = d
}

// PutWorkday inserts a workday, keeping the driver's slice ordered by
// date ascending the way FindWorkdaysInRange promises to return it.
func (m *Memory) PutWorkday(wd payroll.Workday) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wds := m.workdays[wd.DriverID]
	i := sort.Search(len(wds), func(i int) bool {
		return wds[i].Date.After(wd.Date)
	})
	wds = append(wds, payroll.Workday{})
	copy(wds[i+1:], wds[i:])
	wds[i] = wd
	m.workdays[wd.DriverID] = wds
}

// PutSettings sets the singleton settings record.
func (m *Memory) PutSettings(s payroll.Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
}

// FindDriverByID implements payroll.Store.
func (m *Memory) FindDriverByID(_ context.Context, id int64) (*payroll.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reads++
	d, ok := m.drivers[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// FindWorkdaysInRange implements payroll.Store. Bounds are inclusive.
func (m *Memory) FindWorkdaysInRange(_ context.Context, driverID int64, start, end time.Time) ([]payroll.Workday, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reads++
	var result []payroll.Workday
	for _, wd := range m.workdays[driverID] {
		if !wd.Date.Before(start) && !wd.Date.After(end) {
			result = append(result, wd)
		}
	}
	return result, nil
}

// FindSettings implements payroll.Store.
func (m *Memory) FindSettings(_ context.Context) (*payroll.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reads++
	if m.settings == nil {
		return nil, nil
	}
	s := *m.settings
	return &s, nil
}
