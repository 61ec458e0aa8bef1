package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raoulx24/dir-archiver/internal/archive"
	"github.com/raoulx24/dir-archiver/internal/config"
	"github.com/raoulx24/dir-archiver/internal/fs"
	"github.com/raoulx24/dir-archiver/internal/history"
	"github.com/raoulx24/dir-archiver/internal/logging"
	"github.com/raoulx24/dir-archiver/internal/notify"
	"github.com/raoulx24/dir-archiver/internal/retention"
	"github.com/raoulx24/dir-archiver/internal/runner"
	"github.com/raoulx24/dir-archiver/internal/upload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logg := logging.New(cfg.Logging)

	// Collaborators
	filesystem := fs.New()
	hist := history.New(cfg.LogFile)

	var notifier notify.Notifier
	if cfg.Webhook.URL != "" {
		notifier = notify.NewWebhook(cfg.Webhook.URL)
	} else {
		notifier = &notify.LogNotifier{Log: logg}
	}

	run := runner.New(
		cfg,
		filesystem,
		archive.NewZipper(filesystem, logg),
		upload.NewRclone(logg),
		notifier,
		hist,
		retention.New(filesystem, hist, logg, ""),
		logg,
	)

	// One backup per invocation; scheduling lives outside this binary.
	if err := run.Run(ctx, time.Now()); err != nil {
		logg.Error("backup run failed", "error", err)
		os.Exit(1)
	}
}
