package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

func TestScheduleRecurringTask(t *testing.T) {
	ts := NewTaskScheduler(logging.NewTestLogger())
	defer ts.Stop()

	var runs atomic.Int32
	_, err := ts.AddTask("cleanup", "cleanup", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, ts.ScheduleTask("cleanup", 0))

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestTaskRecordsError(t *testing.T) {
	ts := NewTaskScheduler(logging.NewTestLogger())
	defer ts.Stop()

	boom := errors.New("boom")
	task, err := ts.AddTask("once", "once", func(ctx context.Context) error { return boom }, 0)
	require.NoError(t, err)
	require.NoError(t, ts.ScheduleTask("once", 0))

	require.Eventually(t, func() bool {
		_, lastErr := task.LastRun()
		return errors.Is(lastErr, boom)
	}, time.Second, 5*time.Millisecond)
}

func TestDuplicateAndMissingTask(t *testing.T) {
	ts := NewTaskScheduler(logging.NewTestLogger())
	defer ts.Stop()

	_, err := ts.AddTask("a", "a", func(context.Context) error { return nil }, 0)
	require.NoError(t, err)
	_, err = ts.AddTask("a", "a", func(context.Context) error { return nil }, 0)
	require.Error(t, err)

	require.Error(t, ts.ScheduleTask("missing", 0))
	_, err = ts.GetTask("missing")
	require.Error(t, err)
}
