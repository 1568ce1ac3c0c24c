// Package notify dispatches bulk notifications queued from the admin
// panel. With an AMQP broker configured messages publish to a queue for
// downstream delivery; without one they are marked dispatched locally so
// the admin flow still completes.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
)

const (
	queueName = "notifications"

	publishAttempts  = 3
	publishDelay     = 200 * time.Millisecond
	maxDispatchTries = 5
	drainBatchSize   = 50
)

// Publisher pushes one notification message to a delivery channel.
type Publisher interface {
	Publish(ctx context.Context, id, message string) error
	Close() error
}

// AMQPPublisher publishes to a RabbitMQ queue.
type AMQPPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher connects to the broker and declares the durable
// notifications queue.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declaring queue: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch}, nil
}

// Publish sends one message, retrying transient broker failures.
func (p *AMQPPublisher) Publish(ctx context.Context, id, message string) error {
	body, err := json.Marshal(map[string]string{"id": id, "message": message})
	if err != nil {
		return err
	}
	return retry.Do(
		func() error {
			return p.ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    id,
				Body:         body,
			})
		},
		retry.Attempts(publishAttempts),
		retry.Delay(publishDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}

func (p *AMQPPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher accepts every message without delivering anywhere. Used
// when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, id, message string) error { return nil }
func (NoopPublisher) Close() error                                          { return nil }

// Dispatcher queues and drains bulk notifications.
type Dispatcher struct {
	q   *store.Queries
	pub Publisher
	now func() time.Time
}

// NewDispatcher creates a dispatcher. pub may be a NoopPublisher.
func NewDispatcher(q *store.Queries, pub Publisher) *Dispatcher {
	return &Dispatcher{q: q, pub: pub, now: time.Now}
}

// Enqueue stores a bulk notification for asynchronous dispatch and
// returns its id.
func (d *Dispatcher) Enqueue(ctx context.Context, message string) (string, error) {
	id := uuid.NewString()
	if err := d.q.EnqueueNotification(ctx, id, message, d.now()); err != nil {
		return "", fmt.Errorf("queueing notification: %w", err)
	}
	return id, nil
}

// Drain publishes every queued notification. Failed publishes stay queued
// until the attempt limit moves them to failed. Returns the number
// dispatched.
func (d *Dispatcher) Drain(ctx context.Context) (int, error) {
	queued, err := d.q.ListQueuedNotifications(ctx, drainBatchSize)
	if err != nil {
		return 0, fmt.Errorf("listing queued notifications: %w", err)
	}

	dispatched := 0
	for _, n := range queued {
		if err := d.pub.Publish(ctx, n.ID, n.Message); err != nil {
			slog.Warn("notification publish failed",
				"category", "notify",
				"id", n.ID,
				"error", err,
			)
			if err := d.q.MarkNotificationFailed(ctx, n.ID, maxDispatchTries); err != nil {
				return dispatched, err
			}
			continue
		}
		if err := d.q.MarkNotificationDispatched(ctx, n.ID, d.now()); err != nil {
			return dispatched, err
		}
		dispatched++
	}
	return dispatched, nil
}
