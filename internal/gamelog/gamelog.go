// Package gamelog builds charm loggers for the CLI and adapts them to game
// events.
package gamelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// New returns a logger writing to w at the named level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("gamelog: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending, creating parent directories, and
// returns a logger on it along with the file to close. A leading ~ expands
// to the home directory.
func OpenFile(path, level, prefix string) (*log.Logger, io.Closer, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("gamelog: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("gamelog: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("gamelog: cannot open %s: %w", path, err)
	}

	logger, err := New(f, level, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Observer logs line clears at debug level and top-outs at info level.
type Observer struct {
	logger *log.Logger
}

var _ tetris.Observer = (*Observer)(nil)

// NewObserver adapts logger to tetris.Observer. Extra key/value pairs are
// attached to every entry.
func NewObserver(logger *log.Logger, keyvals ...any) *Observer {
	if len(keyvals) > 0 {
		logger = logger.With(keyvals...)
	}
	return &Observer{logger: logger}
}

// LinesCleared implements tetris.Observer.
func (o *Observer) LinesCleared(rows, points, score int) {
	o.logger.Debug("lines cleared", "rows", rows, "points", points, "score", score)
}

// ToppedOut implements tetris.Observer.
func (o *Observer) ToppedOut(score, highScore int) {
	o.logger.Info("topped out", "score", score, "high_score", highScore)
}
