package notify

import (
	"context"

	"github.com/raoulx24/dir-archiver/internal/logging"
)

// LogNotifier writes notifications to the application log instead of the
// network. Useful when no webhook is configured and in tests.
type LogNotifier struct {
	Log logging.Logger
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, p Payload) error {
	n.Log.Info("backup notification",
		"project", p.Project,
		"date", p.Date,
		"status", p.Status,
	)
	return nil
}
