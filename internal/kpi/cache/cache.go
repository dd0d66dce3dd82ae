// Package cache provides the persistent KPI value cache keyed by
// (project id, normalized timestamp).
//
// Cached values never expire and are never updated in place: a cached KPI
// is treated as historical fact even if the underlying issue data changes
// retroactively. A failing backend disables caching for the affected
// operations only; the engine keeps computing, just without cache hits.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entry is one cached KPI value.
// Matches the cached_kpi_numbers table schema.
type Entry struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	ProjectID  int64     `gorm:"column:project_id;not null"`
	TimeForKpi time.Time `gorm:"column:time_for_kpi;type:timestamptz;not null"`
	KpiValue   float64   `gorm:"column:kpi_value;not null"`
}

// TableName specifies the table name for GORM.
func (Entry) TableName() string {
	return "cached_kpi_numbers"
}

// Cache defines the best-effort KPI value cache. Neither operation ever
// returns an error: backend failures degrade Get to a miss and Put to a
// no-op.
type Cache interface {
	// Get returns the cached value for the key and whether it was found.
	Get(ctx context.Context, projectID int64, ts time.Time) (float64, bool)

	// Put stores a freshly computed value. Failures are logged and ignored.
	Put(ctx context.Context, projectID int64, ts time.Time, value float64)

	// Close releases the backend connection.
	Close() error
}

// Connect opens a backend connection. It is invoked lazily before cache
// operations whenever no healthy connection is held, so a transient
// backend outage recovers without restarting the process.
type Connect func() (*gorm.DB, error)

type store struct {
	mu      sync.Mutex
	db      *gorm.DB
	connect Connect
	logger  *zap.SugaredLogger
}

// New creates a cache backed by the given connect function. The first
// connection attempt happens on first use.
func New(connect Connect, logger *zap.SugaredLogger) Cache {
	return &store{
		connect: connect,
		logger:  logger,
	}
}

// ensure returns a healthy backend connection, reconnecting if needed.
// A nil result means caching is disabled for this operation.
func (s *store) ensure(ctx context.Context) *gorm.DB {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			return s.db
		}
		s.db = nil
	}

	db, err := s.connect()
	if err != nil {
		s.logger.Warnw("kpi cache backend unavailable, proceeding uncached", "error", err)
		return nil
	}
	s.db = db
	return db
}

// Get returns the cached value for (projectID, ts) and whether it was
// found. Any backend failure reports a miss.
func (s *store) Get(ctx context.Context, projectID int64, ts time.Time) (float64, bool) {
	db := s.ensure(ctx)
	if db == nil {
		return 0, false
	}

	var entry Entry
	err := db.WithContext(ctx).
		Where("project_id = ? AND time_for_kpi = ?", projectID, ts).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false
	}
	if err != nil {
		s.logger.Warnw("kpi cache lookup failed, reporting miss", "project_id", projectID, "error", err)
		return 0, false
	}
	return entry.KpiValue, true
}

// Put stores a freshly computed value for (projectID, ts). Duplicate
// concurrent computations may race here; both write the same value, so
// last writer wins is harmless.
func (s *store) Put(ctx context.Context, projectID int64, ts time.Time, value float64) {
	db := s.ensure(ctx)
	if db == nil {
		return
	}

	entry := Entry{
		ProjectID:  projectID,
		TimeForKpi: ts,
		KpiValue:   value,
	}
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		s.logger.Warnw("kpi cache store failed", "project_id", projectID, "error", err)
	}
}

// Close releases the backend connection if one is held.
func (s *store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}
