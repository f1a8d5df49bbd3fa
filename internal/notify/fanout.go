package notify

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"restaurant-system/internal/domain"
)

// Fanout sends each event to every target concurrently and waits for
// all of them. One failing target does not stop the others.
type Fanout struct {
	targets []Notifier
}

func NewFanout(targets ...Notifier) *Fanout {
	return &Fanout{targets: targets}
}

func (f *Fanout) Len() int { return len(f.targets) }

func (f *Fanout) Notify(ctx context.Context, ev domain.Event) error {
	errs := make([]error, len(f.targets))
	var g errgroup.Group
	for i, t := range f.targets {
		i, t := i, t
		g.Go(func() error {
			if err := t.Notify(ctx, ev); err != nil {
				errs[i] = fmt.Errorf("notifier %d: %w", i, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
