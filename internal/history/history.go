// Package history appends run outcomes to the durable backup log.
// Appends are best-effort: callers log write failures and keep going.
package history

import (
	"fmt"
	"os"
	"time"
)

type Kind string

const (
	KindCreated  Kind = "created"
	KindUploaded Kind = "uploaded"
	KindDeleted  Kind = "deleted"
	KindFailed   Kind = "failed"
)

// Entry is one immutable history record.
type Entry struct {
	Time     time.Time
	Kind     Kind
	Artifact string // file name, not full path
	Outcome  string // "Success" or "Failed" for uploads
}

// timeLayout matches the log lines historically written by the backup job.
const timeLayout = "2006-01-02 15:04:05"

// Log is an append-only line-oriented history file. A Log with an empty
// path discards every entry, which keeps call sites unconditional.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Append writes a single line for the entry. The line format is part of
// the log contract and must stay stable:
//
//	<ts> | Backup: <name> | Upload: Success|Failed
//	<ts> | Deleted: <name>
func (l *Log) Append(e Entry) error {
	if l.path == "" {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(e.line()); err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}

	return nil
}

func (e Entry) line() string {
	ts := e.Time.Format(timeLayout)

	switch e.Kind {
	case KindDeleted:
		return fmt.Sprintf("%s | Deleted: %s\n", ts, e.Artifact)
	case KindUploaded:
		return fmt.Sprintf("%s | Backup: %s | Upload: %s\n", ts, e.Artifact, e.Outcome)
	default:
		return fmt.Sprintf("%s | %s: %s\n", ts, e.Kind, e.Artifact)
	}
}
