package table

import (
	"errors"
	"sync"
	"time"

	"cardtable-server/internal/rng"

	"github.com/sirupsen/logrus"
)

// ErrTooManyTables happens when the registry is at capacity
var ErrTooManyTables = errors.New("too many open tables")

// sweepInterval is how often the registry checks for idle tables
const sweepInterval = time.Minute

// Registry keeps the open tables. Tables live only in memory; they are
// gone when the process exits.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table

	maxTables   int
	idleTimeout time.Duration
	newRNG      func() rng.Generator

	close chan bool
}

// RegistryOptions configures a Registry
type RegistryOptions struct {
	// MaxTables bounds how many tables may be open at once. <= 0 means unbounded.
	MaxTables int

	// IdleTimeout is how long a table may sit untouched before the sweeper
	// closes it. <= 0 disables sweeping.
	IdleTimeout time.Duration
}

// NewRegistry returns a new, empty registry
func NewRegistry(opts RegistryOptions) *Registry {
	return &Registry{
		tables:      make(map[string]*Table),
		maxTables:   opts.MaxTables,
		idleTimeout: opts.IdleTimeout,
		newRNG:      func() rng.Generator { return rng.Crypto{} },
		close:       make(chan bool),
	}
}

// SetRNGFactory overrides the generator used for new tables.
// This should only be used by tests.
func (r *Registry) SetRNGFactory(factory func() rng.Generator) {
	r.newRNG = factory
}

// Create opens a new table and registers it
func (r *Registry) Create(name string) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxTables > 0 && len(r.tables) >= r.maxTables {
		return nil, ErrTooManyTables
	}

	t := NewWithRNG(name, r.newRNG())
	r.tables[t.UUID] = t

	logrus.WithFields(logrus.Fields{
		"uuid": t.UUID,
		"name": t.Name,
	}).Debug("table opened")

	return t, nil
}

// Get returns the table with the given UUID
func (r *Registry) Get(uuid string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[uuid]
	return t, ok
}

// Delete closes the table with the given UUID
func (r *Registry) Delete(uuid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[uuid]; !ok {
		return false
	}

	delete(r.tables, uuid)
	logrus.WithField("uuid", uuid).Debug("table closed")
	return true
}

// List returns snapshots of all open tables
func (r *Registry) List() []*State {
	r.mu.RLock()
	tables := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		tables = append(tables, t)
	}
	r.mu.RUnlock()

	states := make([]*State, len(tables))
	for i, t := range tables {
		states[i] = t.State()
	}

	return states
}

// Len returns the number of open tables
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tables)
}

// StartSweeping starts the idle-table sweeper run loop
func (r *Registry) StartSweeping() {
	if r.idleTimeout <= 0 {
		return
	}

	go r.runLoop()
}

// StopSweeping terminates the sweeper run loop
func (r *Registry) StopSweeping() {
	close(r.close)
}

func (r *Registry) runLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(time.Now())
		case <-r.close:
			return
		}
	}
}

func (r *Registry) sweep(now time.Time) {
	for _, state := range r.List() {
		t, ok := r.Get(state.UUID)
		if !ok {
			continue
		}

		if now.Sub(t.LastActive()) >= r.idleTimeout {
			logrus.WithField("uuid", t.UUID).Info("closing idle table")
			r.Delete(t.UUID)
		}
	}
}
