package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-system/internal/domain"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS notification_log (
    id          BIGSERIAL PRIMARY KEY,
    event_type  TEXT        NOT NULL,
    order_id    TEXT,
    payment_id  TEXT,
    actor       TEXT        NOT NULL,
    role        TEXT        NOT NULL,
    message     TEXT        NOT NULL,
    payload     JSONB       NOT NULL,
    occurred_at TIMESTAMPTZ NOT NULL
)`

// NotificationJournal appends every event it is notified of to
// notification_log. It records notifications only; orders themselves
// are never stored.
type NotificationJournal struct {
	db execer
}

func NewNotificationJournal(db execer) *NotificationJournal {
	return &NotificationJournal{db: db}
}

func (j *NotificationJournal) EnsureSchema(ctx context.Context) error {
	if _, err := j.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create notification_log: %w", err)
	}
	return nil
}

func (j *NotificationJournal) Notify(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}
	_, err = j.db.Exec(ctx, `
INSERT INTO notification_log (event_type, order_id, payment_id, actor, role, message, payload, occurred_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`, string(ev.Type), nullIfEmpty(ev.OrderID), nullIfEmpty(ev.PaymentID), ev.Actor, ev.Role, ev.Message, payload, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert notification %s: %w", ev.Type, err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
