// Package retention decides which backup artifacts survive and deletes
// the rest. It owns no state between runs: every Apply reads filesystem
// metadata fresh and is idempotent across invocations.
package retention

import (
	"context"
	"path/filepath"
	"time"

	"github.com/raoulx24/dir-archiver/internal/artifact"
	"github.com/raoulx24/dir-archiver/internal/fs"
	"github.com/raoulx24/dir-archiver/internal/history"
	"github.com/raoulx24/dir-archiver/internal/logging"
)

// Outcome records what happened to one deletion candidate.
type Outcome struct {
	Artifact artifact.Artifact
	Deleted  bool
	Err      error
}

// Engine scans an artifact store and removes artifacts older than a
// cutoff. Files without the configured archive extension are never
// candidates: the engine only ever touches files the backup job created.
type Engine struct {
	fs   fs.FS
	hist *history.Log
	log  logging.Logger
	ext  string
}

func New(filesystem fs.FS, hist *history.Log, log logging.Logger, ext string) *Engine {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if ext == "" {
		ext = artifact.DefaultExt
	}
	return &Engine{fs: filesystem, hist: hist, log: log, ext: ext}
}

// Apply recursively scans root and deletes every artifact whose age at
// now exceeds cutoffDays. One Outcome is returned per candidate.
//
// Deletion is attempted independently per file: a failure is recorded in
// the outcome and the scan continues, so cleanup stays maximally
// effective under partial failure. Nothing here is fatal; an unreadable
// subtree is logged and skipped.
func (e *Engine) Apply(ctx context.Context, root string, cutoffDays float64, now time.Time) ([]Outcome, error) {
	var outcomes []Outcome

	err := e.fs.Walk(root, func(info fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			e.log.Warn("retention: skipping unreadable path", "path", info.Path, "error", walkErr)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if filepath.Ext(info.Path) != e.ext {
			return nil
		}

		a := artifact.FromFileInfo(info)
		if a.AgeDays(now) <= cutoffDays {
			return nil
		}

		outcomes = append(outcomes, e.delete(ctx, a))
		return nil
	})
	if err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

func (e *Engine) delete(ctx context.Context, a artifact.Artifact) Outcome {
	if err := e.fs.Remove(ctx, a.Path); err != nil {
		e.log.Error("retention: could not delete artifact", "path", a.Path, "error", err)
		return Outcome{Artifact: a, Err: err}
	}

	// Log append and unlink are not atomic together; a crash between
	// them may leave either side ahead, which the append-only
	// best-effort log tolerates.
	if err := e.hist.Append(history.Entry{
		Time:     time.Now(),
		Kind:     history.KindDeleted,
		Artifact: a.Name(),
	}); err != nil {
		e.log.Warn("retention: history append failed", "artifact", a.Name(), "error", err)
	}

	e.log.Info("retention: deleted old artifact", "path", a.Path)
	return Outcome{Artifact: a, Deleted: true}
}
