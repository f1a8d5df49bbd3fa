package notify

import (
	"context"

	"restaurant-system/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, ev domain.Event) error
}

// Func adapts a plain function to Notifier.
type Func func(ctx context.Context, ev domain.Event) error

func (f Func) Notify(ctx context.Context, ev domain.Event) error { return f(ctx, ev) }

// Discard drops every event.
var Discard Notifier = Func(func(context.Context, domain.Event) error { return nil })
