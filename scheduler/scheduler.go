// Package scheduler manages catalog loads for the knowledge base: the
// initial load at startup and periodic reloads honoring the configured
// freshness window. Today's loader is pure and local, so reloads are cheap;
// the window models a future external data source without requiring one.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/peacematcher/assistant-api/catalog/entities"
	"github.com/peacematcher/assistant-api/data"
	"github.com/peacematcher/assistant-api/logging"
	"github.com/peacematcher/assistant-api/validation"
)

// Loader produces a validated catalog. catalog.Load satisfies this.
type Loader func() ([]entities.Medicine, []entities.AgeDosage, error)

// Scheduler drives catalog loads into the injected container.
type Scheduler struct {
	store     *data.Container
	load      Loader
	freshness time.Duration
	scheduler *gocron.Scheduler
}

// NewScheduler creates a scheduler with injected dependencies.
func NewScheduler(store *data.Container, load Loader, freshness time.Duration) *Scheduler {
	return &Scheduler{
		store:     store,
		load:      load,
		freshness: freshness,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial load and schedules periodic reloads. A failed
// initial load is fatal: the knowledge base must never come up empty.
func (s *Scheduler) Start() error {
	if err := s.Reload(); err != nil {
		logging.Error("Failed to perform initial catalog load", "error", err)
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	_, err := s.scheduler.Every(s.freshness).Do(func() {
		if err := s.Reload(); err != nil {
			logging.Error("Failed to reload catalog", "error", err)
		}
	})
	if err != nil {
		logging.Error("Failed to schedule catalog reloads", "error", err)
		return fmt.Errorf("failed to schedule catalog reloads: %w", err)
	}

	s.scheduler.StartAsync()
	s.startStalenessMonitoring()

	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Reload loads the catalog into the container. Idempotent and re-entrant: a
// reload within the freshness window is a no-op, and concurrent reloads are
// serialized by the container's reload slot.
func (s *Scheduler) Reload() error {
	lastLoaded := s.store.GetLastLoaded()
	if !lastLoaded.IsZero() && time.Since(lastLoaded) < s.freshness {
		logging.Debug("Catalog still fresh, skipping reload", "last_loaded", lastLoaded)
		return nil
	}

	if !s.store.BeginReload() {
		logging.Info("Catalog reload already in progress, skipping")
		return nil
	}
	defer s.store.EndReload()

	start := time.Now()

	medicines, dosages, err := s.load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Non-fatal gaps (medicines without dosing rules) are logged here; hard
	// integrity violations already failed the load.
	validation.ReportCatalogQuality(medicines, dosages)

	s.store.ReplaceCatalog(medicines, dosages)

	logging.Info("Catalog load completed",
		"duration", time.Since(start).String(),
		"medicine_count", len(medicines),
		"dosage_rules", len(dosages),
	)

	return nil
}

// startStalenessMonitoring warns when the catalog has not refreshed for
// several freshness windows, which means scheduled reloads are failing.
func (s *Scheduler) startStalenessMonitoring() {
	go func() {
		ticker := time.NewTicker(s.freshness)
		defer ticker.Stop()

		for range ticker.C {
			lastLoaded := s.store.GetLastLoaded()
			if time.Since(lastLoaded) > 6*s.freshness {
				logging.Warn("Catalog has not refreshed recently", "last_loaded", lastLoaded)
			}
		}
	}()
}
