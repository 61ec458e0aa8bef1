// Package upload pushes artifacts to a remote storage target.
package upload

import "context"

// Uploader ships one local artifact to a remote destination.
// A nil error means the remote accepted the artifact; any error is
// recorded by the caller but never blocks retention cleanup.
type Uploader interface {
	Upload(ctx context.Context, localPath, remote, folder string) error
}
