// Package runner orchestrates one backup run: archive, upload, history,
// notification, retention. Steps execute strictly in that order, each
// blocking until complete; one invocation at a time is assumed and
// enforced externally by whatever schedules the binary.
package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/raoulx24/dir-archiver/internal/artifact"
	"github.com/raoulx24/dir-archiver/internal/config"
	"github.com/raoulx24/dir-archiver/internal/fs"
	"github.com/raoulx24/dir-archiver/internal/history"
	"github.com/raoulx24/dir-archiver/internal/logging"
	"github.com/raoulx24/dir-archiver/internal/notify"
	"github.com/raoulx24/dir-archiver/internal/retention"
	"github.com/raoulx24/dir-archiver/internal/upload"
)

// Archiver produces one compressed artifact from a source tree.
type Archiver interface {
	Create(ctx context.Context, sourceDir, destPath string) error
}

// Runner wires the collaborators of a single backup run.
type Runner struct {
	cfg       *config.Config
	fs        fs.FS
	archiver  Archiver
	uploader  upload.Uploader
	notifier  notify.Notifier
	hist      *history.Log
	retention *retention.Engine
	log       logging.Logger
}

func New(
	cfg *config.Config,
	filesystem fs.FS,
	archiver Archiver,
	uploader upload.Uploader,
	notifier notify.Notifier,
	hist *history.Log,
	ret *retention.Engine,
	log logging.Logger,
) *Runner {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Runner{
		cfg:       cfg,
		fs:        filesystem,
		archiver:  archiver,
		uploader:  uploader,
		notifier:  notifier,
		hist:      hist,
		retention: ret,
		log:       log,
	}
}

// Run executes one backup taken at now.
//
// Failure to create the destination directory or the archive itself
// aborts the run; there is nothing meaningful to upload or log. Every
// later step is best-effort: an upload failure suppresses the
// notification but never blocks retention, and retention failures are
// per-file outcomes, not errors.
func (r *Runner) Run(ctx context.Context, now time.Time) error {
	log := r.log.With("run_id", uuid.NewString())

	namer := artifact.Namer{
		Root:    r.cfg.BackupDir,
		Project: r.cfg.ProjectName,
		Ext:     artifact.DefaultExt,
	}
	dest := namer.Name(now)

	if err := r.fs.MkdirAll(filepath.Dir(dest)); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}

	log.Info("creating backup", "source", r.cfg.SourceDir, "artifact", dest)
	if err := r.archiver.Create(ctx, r.cfg.SourceDir, dest); err != nil {
		return err
	}

	uploadErr := r.uploader.Upload(ctx, dest, r.cfg.Rclone.Remote, r.cfg.Rclone.Folder)
	if uploadErr != nil {
		log.Error("upload failed", "artifact", dest, "error", uploadErr)
	}

	r.recordUpload(log, now, filepath.Base(dest), uploadErr)

	if uploadErr == nil {
		r.maybeNotify(ctx, log, now)
	}

	// Retention runs last, regardless of upload outcome.
	windows := retention.Windows{
		Days:   r.cfg.Retention.Days,
		Weeks:  r.cfg.Retention.Weeks,
		Months: r.cfg.Retention.Months,
	}
	outcomes, err := r.retention.Apply(ctx, r.cfg.BackupDir, windows.Cutoff(), now)
	if err != nil {
		log.Error("retention aborted", "error", err)
		return nil
	}

	var deleted, failed int
	for _, o := range outcomes {
		if o.Deleted {
			deleted++
		} else {
			failed++
		}
	}
	log.Info("retention complete", "deleted", deleted, "failed", failed)

	return nil
}

func (r *Runner) recordUpload(log logging.Logger, now time.Time, name string, uploadErr error) {
	outcome := "Success"
	if uploadErr != nil {
		outcome = "Failed"
	}

	if err := r.hist.Append(history.Entry{
		Time:     now,
		Kind:     history.KindUploaded,
		Artifact: name,
		Outcome:  outcome,
	}); err != nil {
		log.Warn("history append failed", "artifact", name, "error", err)
	}
}

func (r *Runner) maybeNotify(ctx context.Context, log logging.Logger, now time.Time) {
	if !r.cfg.Webhook.Enabled || r.notifier == nil {
		return
	}

	payload := notify.Payload{
		Project: r.cfg.ProjectName,
		Date:    now.Format(time.RFC3339),
		Status:  notify.StatusBackupSuccessful,
	}
	if err := r.notifier.Notify(ctx, payload); err != nil {
		log.Error("notification failed", "error", err)
		return
	}
	log.Info("notification sent", "url", r.cfg.Webhook.URL)
}
