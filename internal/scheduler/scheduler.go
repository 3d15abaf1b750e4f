// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ErrUnknownJob is returned when running a job that was never registered
var ErrUnknownJob = errors.New("unknown job")

// Job represents a scheduled job
type Job interface {
	Run() error
	Name() string
}

// ErrorEmitter publishes job failures
type ErrorEmitter interface {
	EmitError(module string, err error, context map[string]interface{})
}

// Scheduler manages background jobs
type Scheduler struct {
	cron   *cron.Cron
	jobs   map[string]Job
	errors ErrorEmitter
	log    zerolog.Logger
}

// New creates a new scheduler. Schedules accept a leading seconds field.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		jobs: make(map[string]Job),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// SetErrorEmitter publishes an ERROR_OCCURRED event for every failed run
func (s *Scheduler) SetErrorEmitter(e ErrorEmitter) {
	s.errors = e
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.jobs)).Msg("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}

// AddJob registers a new job with cron schedule
// Schedule examples:
//   - "0 */5 * * * *"      - Every 5 minutes
//   - "@daily"             - Every day at midnight
//   - "0 0 3 * * *"        - 3 AM every day
//   - "@every 30s"         - Every 30 seconds
func (s *Scheduler) AddJob(schedule string, job Job) error {
	if _, exists := s.jobs[job.Name()]; exists {
		return fmt.Errorf("job %s already registered", job.Name())
	}

	_, err := s.cron.AddFunc(schedule, func() {
		s.execute(job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", schedule, job.Name(), err)
	}
	s.jobs[job.Name()] = job

	s.log.Info().
		Str("schedule", schedule).
		Str("job", job.Name()).
		Msg("Job registered")

	return nil
}

// RunNow executes a job immediately (outside schedule)
func (s *Scheduler) RunNow(job Job) error {
	s.log.Info().Str("job", job.Name()).Msg("Running job immediately")
	if err := job.Run(); err != nil {
		s.reportFailure(job, err)
		return err
	}
	return nil
}

// RunByName executes a registered job immediately
func (s *Scheduler) RunByName(name string) error {
	job, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return s.RunNow(job)
}

// JobNames lists the registered jobs
func (s *Scheduler) JobNames() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) execute(job Job) {
	s.log.Debug().Str("job", job.Name()).Msg("Running job")

	if err := job.Run(); err != nil {
		s.reportFailure(job, err)
		return
	}

	s.log.Debug().Str("job", job.Name()).Msg("Job completed")
}

func (s *Scheduler) reportFailure(job Job, err error) {
	s.log.Error().
		Err(err).
		Str("job", job.Name()).
		Msg("Job failed")

	if s.errors != nil {
		s.errors.EmitError("scheduler", err, map[string]interface{}{"job": job.Name()})
	}
}
