package notify

import (
	"context"
	"errors"
)

// Multi fans a notification out to several notifiers. Every notifier is
// attempted; errors are joined rather than short-circuiting.
type Multi struct {
	Notifiers []Notifier
}

// Notify implements Notifier.
func (m *Multi) Notify(ctx context.Context, p Payload) error {
	var errs []error
	for _, n := range m.Notifiers {
		if err := n.Notify(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
