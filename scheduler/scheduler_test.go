package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/rasp63/config"
	"github.com/notaneet/rasp63/model"
)

type fakeSource struct {
	mu    sync.Mutex
	weeks []int
	err   error
}

func (f *fakeSource) GetWeek(week int) (model.Week, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weeks = append(f.weeks, week)
	if f.err != nil {
		return model.Week{}, f.err
	}
	return model.Week{Number: week, Days: make([]model.Day, model.DaysPerWeek)}, nil
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []model.Week
	cutoffs []time.Time
	swept   chan struct{}
}

func (f *fakeStore) SaveWeek(week model.Week) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, week)
	return nil
}

func (f *fakeStore) Sweep(cutoff time.Time) ([]string, error) {
	f.mu.Lock()
	f.cutoffs = append(f.cutoffs, cutoff)
	f.mu.Unlock()
	if f.swept != nil {
		f.swept <- struct{}{}
	}
	return []string{"shedules/2205/shedule-10-20-2021.json"}, nil
}

func testConfig() config.Config {
	return config.Config{
		Source: config.SourceConfig{Week: 7},
		Schedule: config.ScheduleConfig{
			Location:      time.UTC,
			UpdateCron:    "0 */6 * * *",
			SweepCron:     "30 3 * * *",
			RetentionDays: 2,
		},
	}
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCurrentWeek(t *testing.T) {
	s := New(&fakeSource{}, &fakeStore{}, testConfig(), nil)
	assert.Equal(t, 7, s.CurrentWeek())

	cfg := testConfig()
	start := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)
	cfg.Source.SemesterStart = &start
	s = New(&fakeSource{}, &fakeStore{}, cfg, nil)
	s.now = fixedNow(time.Date(2021, 10, 27, 11, 0, 0, 0, time.UTC))
	assert.Equal(t, 9, s.CurrentWeek())
}

func TestUpdate(t *testing.T) {
	source := &fakeSource{}
	store := &fakeStore{}
	s := New(source, store, testConfig(), nil)

	require.NoError(t, s.Update())
	assert.Equal(t, []int{7}, source.weeks)
	require.Len(t, store.saved, 1)
	assert.Equal(t, 7, store.saved[0].Number)

	source.err = errors.New("ssau is down")
	assert.ErrorContains(t, s.Update(), "ssau is down")
	assert.Len(t, store.saved, 1)
}

func TestSweep(t *testing.T) {
	store := &fakeStore{}
	s := New(&fakeSource{}, store, testConfig(), nil)
	s.now = fixedNow(time.Date(2021, 10, 29, 23, 30, 0, 0, time.UTC))

	require.NoError(t, s.Sweep())
	require.Len(t, store.cutoffs, 1)
	assert.Equal(t, time.Date(2021, 10, 27, 0, 0, 0, 0, time.UTC), store.cutoffs[0])
}

func TestStartRunsJobsImmediately(t *testing.T) {
	source := &fakeSource{}
	store := &fakeStore{swept: make(chan struct{}, 1)}
	s := New(source, store, testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case <-store.swept:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep job did not run")
	}
	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.saved) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestStartBadCron(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule.SweepCron = "every day"
	s := New(&fakeSource{}, &fakeStore{}, cfg, nil)

	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "sweep schedule")
}
