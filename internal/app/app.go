package app

import (
	"context"
	"fmt"
	"io"

	"restaurant-system/internal/common/db"
	"restaurant-system/internal/common/logger"
	"restaurant-system/internal/config"
	"restaurant-system/internal/connections/rabbitmq"
	"restaurant-system/internal/domain"
	"restaurant-system/internal/notify"
	"restaurant-system/internal/repository"
)

// App holds the process-wide pieces: the order-total ledger and the
// notifier built from config.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	Ledger   *domain.Ledger
	Notifier notify.Notifier

	closers []func()
}

// New connects every enabled notification target. Terminal lines go to
// out when stdout notifications are on.
func New(ctx context.Context, cfg *config.Config, lg *logger.Logger, out io.Writer) (*App, error) {
	a := &App{Config: cfg, Log: lg, Ledger: domain.NewLedger()}

	var targets []notify.Notifier
	if cfg.Notify.Stdout {
		targets = append(targets, notify.NewWriter(out))
	}

	if cfg.RabbitMQ.Enabled {
		rmq, err := DialRabbit(cfg.RabbitMQ)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, rmq.Close)
		if err := rmq.DeclareNotifications(); err != nil {
			a.Close()
			return nil, err
		}
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host, "port": cfg.RabbitMQ.Port, "vhost": cfg.RabbitMQ.VHost})
		targets = append(targets, notify.NewAMQP(rmq, cfg.Service))
	}

	if cfg.Database.Enabled {
		conn, err := db.Connect(ctx, cfg.Database.DSN())
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		journal := repository.NewNotificationJournal(conn.Pool)
		if err := journal.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, err
		}
		lg.Info("postgres_connected", map[string]any{"host": cfg.Database.Host, "port": cfg.Database.Port, "database": cfg.Database.Database})
		targets = append(targets, journal)
	}

	a.Notifier = &logged{next: notify.NewFanout(targets...), lg: lg.With(cfg.Service + "-notify")}
	return a, nil
}

func DialRabbit(cfg config.RabbitMQConfig) (*rabbitmq.Client, error) {
	rmq, err := rabbitmq.Dial(rabbitmq.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		VHost:    cfg.VHost,
		UseTLS:   cfg.UseTLS,
	})
	if err != nil {
		return nil, err
	}
	if err := rmq.Ping(); err != nil {
		rmq.Close()
		return nil, fmt.Errorf("rabbitmq ping: %w", err)
	}
	return rmq, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

type logged struct {
	next notify.Notifier
	lg   *logger.Logger
}

func (l *logged) Notify(ctx context.Context, ev domain.Event) error {
	if err := l.next.Notify(ctx, ev); err != nil {
		l.lg.Error("notification_failed", err, map[string]any{"event_type": ev.Type, "order_id": ev.OrderID, "payment_id": ev.PaymentID})
		return err
	}
	l.lg.Debug("notification_sent", map[string]any{"event_type": ev.Type, "order_id": ev.OrderID, "payment_id": ev.PaymentID})
	return nil
}
