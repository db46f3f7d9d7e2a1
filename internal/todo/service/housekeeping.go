package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/store"
)

// DatabaseGauge receives the result of each database check.
type DatabaseGauge interface {
	SetDatabaseUp(up bool)
}

// HousekeepingService periodically pings the database, publishes its
// availability and runs routine maintenance.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Gauge    DatabaseGauge
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour.
func NewHousekeepingService(s store.Store, logger *slog.Logger, gauge DatabaseGauge, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    s,
		Logger:   logger,
		Gauge:    gauge,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to end it.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress run has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single check and maintenance pass. Maintenance is
// skipped while the database is unreachable.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := s.Store.Ping(ctx)
	if s.Gauge != nil {
		s.Gauge.SetDatabaseUp(err == nil)
	}
	if err != nil {
		s.Logger.Error("housekeeping: database ping failed", "error", err)
		return
	}

	if err := s.Store.Optimize(ctx); err != nil {
		s.Logger.Error("housekeeping: optimize failed", "error", err)
		return
	}
	s.Logger.Debug("housekeeping completed")
}
