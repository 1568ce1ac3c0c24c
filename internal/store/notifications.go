package store

import (
	"context"
	"database/sql"
	"time"
)

// Notification queue statuses.
const (
	QueueStatusQueued     = "queued"
	QueueStatusDispatched = "dispatched"
	QueueStatusFailed     = "failed"
)

// QueuedNotification is one row of the local bulk notification queue.
type QueuedNotification struct {
	ID           string
	Message      string
	Status       string
	Attempts     int
	CreatedAt    time.Time
	DispatchedAt sql.NullTime
}

// EnqueueNotification adds a bulk notification to the local queue.
func (q *Queries) EnqueueNotification(ctx context.Context, id, message string, at time.Time) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO notification_queue (id, message, status, created_at) VALUES (?, ?, ?, ?)`,
		id, message, QueueStatusQueued, at,
	)
	return err
}

// ListQueuedNotifications returns notifications still waiting for dispatch.
func (q *Queries) ListQueuedNotifications(ctx context.Context, limit int64) ([]QueuedNotification, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, message, status, attempts, created_at, dispatched_at
		 FROM notification_queue WHERE status = ? ORDER BY created_at LIMIT ?`,
		QueueStatusQueued, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var queued []QueuedNotification
	for rows.Next() {
		var n QueuedNotification
		if err := rows.Scan(&n.ID, &n.Message, &n.Status, &n.Attempts, &n.CreatedAt, &n.DispatchedAt); err != nil {
			return nil, err
		}
		queued = append(queued, n)
	}
	return queued, rows.Err()
}

// MarkNotificationDispatched records a successful dispatch.
func (q *Queries) MarkNotificationDispatched(ctx context.Context, id string, at time.Time) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE notification_queue SET status = ?, dispatched_at = ? WHERE id = ?`,
		QueueStatusDispatched, at, id)
	return err
}

// MarkNotificationFailed increments the attempt counter and, past maxAttempts,
// moves the notification to the failed status.
func (q *Queries) MarkNotificationFailed(ctx context.Context, id string, maxAttempts int) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE notification_queue SET attempts = attempts + 1,
		 status = CASE WHEN attempts + 1 >= ? THEN ? ELSE status END
		 WHERE id = ?`,
		maxAttempts, QueueStatusFailed, id)
	return err
}
