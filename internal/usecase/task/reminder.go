package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

// reminderTTL outlives the day a reminder key refers to
const reminderTTL = 24 * time.Hour

// DedupeStore remembers which reminders were already sent.
// Claim returns true only for the first caller of a key within ttl.
// Release drops a claim so a later check can retry the key.
type DedupeStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Notifier delivers due-task reminders
type Notifier interface {
	NotifyDue(ctx context.Context, reminder entities.DueReminder) error
}

// Reminder periodically announces pending tasks that are due today
type Reminder struct {
	repo     repositories.TaskRepository
	dedupe   DedupeStore
	notifier Notifier
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu        sync.Mutex
	running   bool
	stopChan  chan struct{}
	waitGroup sync.WaitGroup
}

// NewReminder creates a reminder worker ticking every interval
func NewReminder(repo repositories.TaskRepository, dedupe DedupeStore, notifier Notifier, interval time.Duration, logger *zap.Logger) *Reminder {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Reminder{
		repo:     repo,
		dedupe:   dedupe,
		notifier: notifier,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// StartReminders runs one check immediately and then one per interval until
// StopReminders is called or ctx ends.
func (r *Reminder) StartReminders(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("reminder worker already running")
	}
	r.running = true
	r.stopChan = make(chan struct{})

	if r.logger != nil {
		r.logger.Info("🚀 Starting due-task reminder worker", zap.Duration("interval", r.interval))
	}

	r.waitGroup.Add(1)
	go r.loop(ctx, r.stopChan)
	return nil
}

// StopReminders stops the worker and waits for an in-flight check to finish
func (r *Reminder) StopReminders() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return fmt.Errorf("reminder worker not running")
	}

	if r.logger != nil {
		r.logger.Info("🛑 Stopping due-task reminder worker...")
	}

	close(r.stopChan)
	r.waitGroup.Wait()
	r.running = false

	if r.logger != nil {
		r.logger.Info("✅ Due-task reminder worker stopped")
	}
	return nil
}

func (r *Reminder) loop(ctx context.Context, stop <-chan struct{}) {
	defer r.waitGroup.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// runOnce bounds a check by the interval so a stuck store cannot stack runs
func (r *Reminder) runOnce(ctx context.Context) {
	ctx, cancel := jobcontext.JobBegin(ctx, "due_task_reminder", r.interval)
	defer cancel()

	sent, err := r.CheckDueTasks(ctx)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("⚠️ Due-task check failed", append(jobcontext.Fields(ctx), zap.Error(err))...)
		}
		return
	}
	if sent > 0 && r.logger != nil {
		r.logger.Info("🔔 Sent due-task reminders", append(jobcontext.Fields(ctx), zap.Int("count", sent))...)
	}
}

// CheckDueTasks sends one reminder per pending task due today that has not
// been announced yet today. It returns how many reminders were sent.
func (r *Reminder) CheckDueTasks(ctx context.Context) (int, error) {
	today := startOfDay(r.now())
	tomorrow := today.AddDate(0, 0, 1)
	pending := entities.TaskStatusPending

	tasks, err := r.repo.List(ctx, repositories.TaskFilters{
		Status:         &pending,
		DeadlineFrom:   &today,
		DeadlineBefore: &tomorrow,
	})
	if err != nil {
		return 0, fmt.Errorf("list due tasks: %w", err)
	}

	sent := 0
	for _, t := range tasks {
		if !t.IsDueOn(today) {
			continue
		}

		key := fmt.Sprintf("reminder:%s:%s", t.ID, today.Format("2006-01-02"))
		claimed, err := r.dedupe.Claim(ctx, key, reminderTTL)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("⚠️ Failed to claim reminder", zap.String("key", key), zap.Error(err))
			}
			continue
		}
		if !claimed {
			continue
		}

		if err := r.notifier.NotifyDue(ctx, entities.NewDueReminder(t)); err != nil {
			if r.logger != nil {
				r.logger.Warn("⚠️ Failed to send reminder", zap.String("task_id", t.ID), zap.Error(err))
			}
			if rerr := r.dedupe.Release(ctx, key); rerr != nil && r.logger != nil {
				r.logger.Warn("⚠️ Failed to release reminder claim", zap.String("key", key), zap.Error(rerr))
			}
			continue
		}
		sent++
	}
	return sent, nil
}
