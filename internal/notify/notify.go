// Package notify delivers best-effort backup notifications.
package notify

import "context"

// StatusBackupSuccessful is the only status ever sent; notifications
// fire solely on a successful upload.
const StatusBackupSuccessful = "BackupSuccessful"

// Payload is the JSON body posted to the notification endpoint.
type Payload struct {
	Project string `json:"project"`
	Date    string `json:"date"` // ISO-8601
	Status  string `json:"status"`
}

// Notifier sends a notification about a completed backup.
// Implementations should handle errors gracefully; the caller logs a
// failure and moves on, it never escalates.
type Notifier interface {
	Notify(ctx context.Context, p Payload) error
}
