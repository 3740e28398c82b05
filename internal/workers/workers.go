package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers builds the workers enabled by cfg. The change listener only
// runs on PostgreSQL.
func NewWorkers(cfg *config.StructuredConfig, notifier service.ChangeNotifier, logger *logger.Logger) (*Workers, error) {
	w := &Workers{logger: logger}

	if !cfg.Workers.ListenerEnabled {
		return w, nil
	}

	driver, err := config.DriverFromDSN(cfg.Storage.DB.DSN)
	if err != nil {
		return nil, err
	}
	if driver != config.DriverPostgres {
		logger.Warn().Str("driver", string(driver)).Msg("change listener needs PostgreSQL, not started")
		return w, nil
	}

	w.Add(NewChangeListener(cfg.Storage.DB.DSN, cfg.Workers.ChangeChannel, notifier, logger))
	return w, nil
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			if err := worker.Run(ctx); err != nil {
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
