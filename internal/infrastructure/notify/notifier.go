package notify

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// RedisPublisher publishes due-task reminders as JSON on a pub/sub channel
type RedisPublisher struct {
	client  redis.Cmdable
	channel string
}

// NewRedisPublisher creates a publisher for channel
func NewRedisPublisher(client redis.Cmdable, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) NotifyDue(ctx context.Context, reminder entities.DueReminder) error {
	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("encode reminder: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish reminder to %s: %w", p.channel, err)
	}
	return nil
}

// LogNotifier writes reminders to the application log
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyDue(_ context.Context, reminder entities.DueReminder) error {
	n.logger.Info("🔔 Task due today",
		zap.String("task_id", reminder.TaskID),
		zap.String("meeting_id", reminder.MeetingID),
		zap.String("task", reminder.Task),
		zap.String("assignee", reminder.Assignee),
		zap.Time("deadline", reminder.Deadline),
	)
	return nil
}
