// Package bootstrap monta as dependências opcionais compartilhadas pelos
// binários da API e do reaper.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/config"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/archive"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/lock"
	ucReservation "github.com/BruksfildServices01/barber-turnos/internal/usecase/reservation"
)

// ReaperExtras devolve a trava Redis e o arquivo S3 quando configurados.
// Interfaces nil desligam o recurso no caso de uso.
type ReaperExtras struct {
	Lock     ucReservation.RunLock
	Archiver ucReservation.Archiver
	close    []func() error
}

func (e *ReaperExtras) Close() {
	for _, fn := range e.close {
		if err := fn(); err != nil {
			log.Printf("bootstrap: close: %v", err)
		}
	}
}

func NewReaperExtras(ctx context.Context, cfg *config.Config) (*ReaperExtras, error) {
	extras := &ReaperExtras{}

	if cfg.LockEnabled() {
		client, err := lock.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}

		extras.Lock = lock.NewRedisLock(client, lock.DefaultKey, cfg.ReaperLockTTL)
		extras.close = append(extras.close, client.Close)
		log.Printf("reaper lock: redis enabled (ttl %s)", cfg.ReaperLockTTL)
	}

	if cfg.ArchiveEnabled() {
		a, err := archive.NewS3Archiver(archive.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			extras.Close()
			return nil, err
		}
		extras.Archiver = a
		log.Printf("reaper archive: s3 bucket %s", cfg.S3Bucket)
	}

	return extras, nil
}
