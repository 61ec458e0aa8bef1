package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/raoulx24/dir-archiver/internal/logging"
)

// Rclone uploads by invoking the rclone binary:
//
//	rclone copy <localPath> <remote>:<folder>
//
// Exit code 0 is success; anything else is surfaced as an error carrying
// the exit code. No timeout is imposed here; callers wanting bounded
// execution cancel the context.
type Rclone struct {
	log logging.Logger
	bin string
}

func NewRclone(log logging.Logger) *Rclone {
	return &Rclone{log: log, bin: "rclone"}
}

func (r *Rclone) Upload(ctx context.Context, localPath, remote, folder string) error {
	dest := fmt.Sprintf("%s:%s", remote, folder)
	r.log.Info("uploading artifact", "path", localPath, "dest", dest)

	cmd := exec.CommandContext(ctx, r.bin, "copy", localPath, dest)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("rclone exited with code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("running rclone: %w", err)
	}

	return nil
}
