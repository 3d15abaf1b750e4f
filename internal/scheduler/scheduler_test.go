package scheduler

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/bazaar/internal/events"
)

type countingJob struct {
	name string
	runs int
	err  error
}

func (j *countingJob) Run() error {
	j.runs++
	return j.err
}

func (j *countingJob) Name() string { return j.name }

func TestAddJob(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("@every 30s", &countingJob{name: "tick"}))
	require.NoError(t, s.AddJob("0 0 3 * * *", &countingJob{name: "backup"}))
	assert.ElementsMatch(t, []string{"tick", "backup"}, s.JobNames())
}

func TestAddJob_Duplicate(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("@every 30s", &countingJob{name: "tick"}))
	assert.Error(t, s.AddJob("@every 1m", &countingJob{name: "tick"}))
}

func TestAddJob_InvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())

	err := s.AddJob("every now and then", &countingJob{name: "tick"})
	assert.Error(t, err)
	assert.Empty(t, s.JobNames())
}

func TestRunByName(t *testing.T) {
	s := New(zerolog.Nop())
	job := &countingJob{name: "tick"}
	require.NoError(t, s.AddJob("@every 30s", job))

	require.NoError(t, s.RunByName("tick"))
	assert.Equal(t, 1, job.runs)

	assert.ErrorIs(t, s.RunByName("missing"), ErrUnknownJob)
}

func TestExecute_SwallowsJobError(t *testing.T) {
	s := New(zerolog.Nop())
	job := &countingJob{name: "flaky", err: errors.New("boom")}

	assert.NotPanics(t, func() { s.execute(job) })
	assert.Equal(t, 1, job.runs)
	assert.Error(t, s.RunNow(job))
}

func TestFailedJobEmitsErrorEvent(t *testing.T) {
	bus := events.NewBus(events.DefaultBufferSize, zerolog.Nop())
	sub := bus.Subscribe(events.ErrorOccurred)
	defer bus.Unsubscribe(sub)

	s := New(zerolog.Nop())
	s.SetErrorEmitter(events.NewManager(bus, zerolog.Nop()))
	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "flaky", err: errors.New("disk full")}))
	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "steady"}))

	s.execute(s.jobs["steady"])
	s.execute(s.jobs["flaky"])

	require.Len(t, sub.C, 1)
	event := <-sub.C
	assert.Equal(t, events.ErrorOccurred, event.Type)
	assert.Equal(t, "scheduler", event.Module)

	data, ok := event.Data.(*events.ErrorEventData)
	require.True(t, ok)
	assert.Equal(t, "disk full", data.Error)
	assert.Equal(t, "flaky", data.Context["job"])

	assert.Error(t, s.RunByName("flaky"))
	require.Len(t, sub.C, 1)
}

func TestStartStop(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "idle"}))

	s.Start()
	s.Stop()
}
