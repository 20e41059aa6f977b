// Package shared holds the context passed to all CLI commands.
package shared

import (
	"io"
	"log/slog"

	"github.com/go-ports/notes/internal/config"
	"github.com/go-ports/notes/internal/service"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Verbose enables debug-level logging on stderr.
	Verbose bool
}

// ConfigureLogging installs the default slog logger writing to w.
func (c *Context) ConfigureLogging(w io.Writer) {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Service resolves the store file, creating its directory if needed, and
// returns a service bound to it. A resolution error is fatal for the command.
func (c *Context) Service() (*service.Service, error) {
	path, err := config.ResolveStoreFilePath()
	if err != nil {
		return nil, err
	}
	slog.Debug("resolved store", "path", path)
	return service.New(path), nil
}
