package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

// Task represents a scheduled task
type Task struct {
	ID       string
	Name     string
	Fn       func(context.Context) error
	Interval time.Duration // zero means run once

	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

func (t *Task) LastRun() (time.Time, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRun, t.lastErr
}

func (t *Task) record(err error) {
	t.mu.Lock()
	t.lastRun = time.Now()
	t.lastErr = err
	t.mu.Unlock()
}

// TaskScheduler runs background maintenance jobs until Stop is called.
type TaskScheduler struct {
	tasks  map[string]*Task
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *logging.Logger
}

func NewTaskScheduler(logger *logging.Logger) *TaskScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskScheduler{
		tasks:  make(map[string]*Task),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

func (ts *TaskScheduler) AddTask(id, name string, fn func(context.Context) error, interval time.Duration) (*Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.tasks[id]; exists {
		return nil, fmt.Errorf("task with ID %s already exists", id)
	}

	task := &Task{ID: id, Name: name, Fn: fn, Interval: interval}
	ts.tasks[id] = task
	ts.logger.WithField("task", id).Info("Added task to scheduler")
	return task, nil
}

// ScheduleTask runs the task after delay, then every Interval if it recurs.
func (ts *TaskScheduler) ScheduleTask(id string, delay time.Duration) error {
	ts.mu.RLock()
	task, exists := ts.tasks[id]
	ts.mu.RUnlock()

	if !exists {
		return fmt.Errorf("task with ID %s not found", id)
	}

	ts.wg.Add(1)
	go func() {
		defer ts.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		for {
			select {
			case <-ts.ctx.Done():
				return
			case <-timer.C:
				err := task.Fn(ts.ctx)
				task.record(err)
				if err != nil {
					ts.logger.WithFields(logrus.Fields{"task": task.Name, "error": err.Error()}).Error("Task failed")
				}
				if task.Interval <= 0 {
					return
				}
				timer.Reset(task.Interval)
			}
		}
	}()

	return nil
}

func (ts *TaskScheduler) GetTask(id string) (*Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	task, exists := ts.tasks[id]
	if !exists {
		return nil, fmt.Errorf("task with ID %s not found", id)
	}
	return task, nil
}

// Stop cancels all scheduled tasks and waits for running ones to return.
func (ts *TaskScheduler) Stop() {
	ts.cancel()
	ts.wg.Wait()
}
