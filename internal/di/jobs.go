package di

import (
	"fmt"

	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/config"
	"github.com/aristath/bazaar/internal/reliability"
	"github.com/aristath/bazaar/internal/scheduler"
	"github.com/rs/zerolog"
)

// Database maintenance schedules
const (
	checkDatabasesSchedule = "0 30 4 * * *"
	checkpointWALSchedule  = "0 */15 * * * *"
)

// RegisterJobs creates the scheduler and registers every background job.
// The scheduler is not started.
func RegisterJobs(container *Container, cfg *config.Config, log zerolog.Logger) (*scheduler.Scheduler, error) {
	if container == nil {
		return nil, fmt.Errorf("container cannot be nil")
	}

	sched := scheduler.New(log)
	sched.SetErrorEmitter(container.EventManager)

	tick := scheduler.NewMarketTickJob(container.MarketService, container.CacheRepo, container.EventManager)
	tick.SetLogger(log.With().Str("job", "market_tick").Logger())
	if err := sched.AddJob(cfg.TickSchedule, tick); err != nil {
		return nil, err
	}

	cleanup := clientdata.NewCleanupJob(container.CacheRepo, log)
	cleanup.SetEventManager(container.EventManager)
	if err := sched.AddJob(cfg.CacheCleanupSchedule, cleanup); err != nil {
		return nil, err
	}

	integrity := scheduler.NewCheckDatabasesJob(container.Databases()...)
	integrity.SetLogger(log.With().Str("job", "check_databases").Logger())
	if err := sched.AddJob(checkDatabasesSchedule, integrity); err != nil {
		return nil, err
	}

	wal := scheduler.NewCheckpointWALJob(container.Databases()...)
	wal.SetLogger(log.With().Str("job", "checkpoint_wal").Logger())
	if err := sched.AddJob(checkpointWALSchedule, wal); err != nil {
		return nil, err
	}

	if container.BackupService != nil {
		backup := reliability.NewBackupJob(container.BackupService, cfg.Backup.RetentionDays, log)
		if err := sched.AddJob(cfg.Backup.Schedule, backup); err != nil {
			return nil, err
		}
	}

	container.Scheduler = sched
	log.Info().Int("jobs", len(sched.JobNames())).Msg("Jobs registered")
	return sched, nil
}
