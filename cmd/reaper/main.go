// Command reaper apaga reservas com data anterior ao dia de referência.
// Pensado para rodar por cron ou agendador externo; sai com código 1 em falha.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/bootstrap"
	"github.com/BruksfildServices01/barber-turnos/internal/config"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/repository"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
	ucReservation "github.com/BruksfildServices01/barber-turnos/internal/usecase/reservation"
)

func main() {
	asOfFlag := flag.String("as-of", "", "data de referência YYYY-MM-DD (padrão: hoje no fuso padrão)")
	timeout := flag.Duration("timeout", 5*time.Minute, "tempo máximo da execução")
	flag.Parse()

	cfg := config.Load()
	timezone.SetDefault(cfg.DefaultTimezone)

	asOf := schedule.DateOf(timezone.NowIn(timezone.SystemClock{}, cfg.DefaultTimezone))
	if *asOfFlag != "" {
		d, err := schedule.ParseDate(*asOfFlag)
		if err != nil {
			log.Fatalf("invalid -as-of %q: %v", *asOfFlag, err)
		}
		asOf = d
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := repository.OpenStaleSQLStore(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer store.Close()

	extras, err := bootstrap.NewReaperExtras(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to set up reaper dependencies: %v", err)
	}
	defer extras.Close()

	reap := ucReservation.NewReap(store, extras.Lock, extras.Archiver, nil, nil)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	type outcome struct {
		res ucReservation.ReapResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := reap.Execute(ctx, asOf)
		done <- outcome{res, err}
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
		cancel()
		o := <-done
		if o.err != nil {
			log.Printf("reaper run %s interrupted: %v", o.res.RunID, o.err)
			exit(1, extras, store)
		}
	case o := <-done:
		if o.err != nil {
			log.Printf("reaper run %s failed: %v", o.res.RunID, o.err)
			exit(1, extras, store)
		}
		if o.res.Skipped {
			log.Printf("reaper run %s skipped", o.res.RunID)
			return
		}
		log.Printf("reaper run %s completed: %d deleted before %s", o.res.RunID, o.res.Deleted, o.res.AsOf)
	}
}

// exit fecha os recursos antes do os.Exit, que ignora os defers.
func exit(code int, extras *bootstrap.ReaperExtras, store *repository.StaleSQLStore) {
	extras.Close()
	_ = store.Close()
	os.Exit(code)
}
