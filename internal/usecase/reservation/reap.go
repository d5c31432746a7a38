package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/metrics"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// RunLock impede duas execuções simultâneas do reaper.
type RunLock interface {
	// TryLock devolve acquired=false quando outra execução segura a trava.
	TryLock(ctx context.Context, runID string) (release func(), acquired bool, err error)
}

// Archiver guarda as reservas antes de apagá-las.
type Archiver interface {
	Archive(ctx context.Context, runID string, asOf time.Time, rows []models.Reservation) (key string, err error)
}

type ReapResult struct {
	RunID      string `json:"run_id"`
	AsOf       string `json:"as_of"`
	Deleted    int64  `json:"deleted"`
	Skipped    bool   `json:"skipped"`
	ArchiveKey string `json:"archive_key,omitempty"`
}

type Reap struct {
	store    domain.StaleStore
	lock     RunLock
	archiver Archiver
	audit    *audit.Dispatcher
	metrics  *metrics.Metrics
}

// NewReap: lock e archiver são opcionais (nil desliga).
func NewReap(
	store domain.StaleStore,
	lock RunLock,
	archiver Archiver,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *Reap {
	return &Reap{
		store:    store,
		lock:     lock,
		archiver: archiver,
		audit:    audit,
		metrics:  metrics,
	}
}

// Execute apaga todas as reservas com data anterior a asOf, de qualquer
// status. Em caso de falha o resultado informa zero apagadas.
func (uc *Reap) Execute(ctx context.Context, asOf time.Time) (ReapResult, error) {
	asOf = schedule.DateOf(asOf)
	res := ReapResult{
		RunID: uuid.NewString(),
		AsOf:  asOf.Format("2006-01-02"),
	}

	if uc.lock != nil {
		release, acquired, err := uc.lock.TryLock(ctx, res.RunID)
		if err != nil {
			uc.metrics.ReaperRun("failed", 0)
			return res, fmt.Errorf("reaper lock: %w", err)
		}
		if !acquired {
			log.Printf("reaper %s skipped: another run holds the lock", res.RunID)
			res.Skipped = true
			uc.metrics.ReaperRun("skipped", 0)
			return res, nil
		}
		defer release()
	}

	if uc.archiver != nil {
		rows, err := uc.store.ListStale(ctx, asOf)
		if err != nil {
			uc.metrics.ReaperRun("failed", 0)
			return res, fmt.Errorf("list stale reservations: %w", err)
		}
		if len(rows) > 0 {
			key, err := uc.archiver.Archive(ctx, res.RunID, asOf, rows)
			if err != nil {
				uc.metrics.ReaperRun("failed", 0)
				return res, fmt.Errorf("archive stale reservations: %w", err)
			}
			res.ArchiveKey = key
		}
	}

	deleted, err := uc.store.DeleteStale(ctx, asOf)
	if err != nil {
		uc.metrics.ReaperRun("failed", 0)
		return ReapResult{RunID: res.RunID, AsOf: res.AsOf}, fmt.Errorf("delete stale reservations: %w", err)
	}
	res.Deleted = deleted

	log.Printf("reaper %s: %d reservations before %s deleted", res.RunID, deleted, res.AsOf)
	uc.metrics.ReaperRun("ok", deleted)

	uc.audit.Dispatch(audit.Event{
		Action: "reservations_reaped",
		Entity: "reservation",
		Source: "reaper",
		Metadata: map[string]any{
			"run_id":      res.RunID,
			"as_of":       res.AsOf,
			"deleted":     deleted,
			"archive_key": res.ArchiveKey,
		},
	})

	return res, nil
}
