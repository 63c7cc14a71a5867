// Package editor opens solution files for editing.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// ErrCommandFailed is returned when the editor process exits non-zero.
var ErrCommandFailed = errors.New("failed to open file")

// Options controls how a file is opened.
type Options struct {
	// XcodeProject, when set and present on disk, is opened with xed so
	// the file shows up inside the project.
	XcodeProject string
	// Goos overrides runtime.GOOS.
	Goos string
	// Getenv overrides os.Getenv.
	Getenv func(string) string
}

func (o Options) goos() string {
	if o.Goos != "" {
		return o.Goos
	}
	return runtime.GOOS
}

func (o Options) getenv(key string) string {
	if o.Getenv != nil {
		return o.Getenv(key)
	}
	return os.Getenv(key)
}

// Command builds the process that opens file.
func Command(ctx context.Context, file string, opts Options) *exec.Cmd {
	if opts.goos() == "darwin" && opts.XcodeProject != "" && fileExists(opts.XcodeProject) {
		return exec.CommandContext(ctx, "xed", "-p", opts.XcodeProject, file)
	}
	return DefaultCommand(ctx, file, opts)
}

// DefaultCommand ignores any Xcode project: $VISUAL, then $EDITOR, then the
// system opener.
func DefaultCommand(ctx context.Context, file string, opts Options) *exec.Cmd {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(opts.getenv(key)); len(fields) > 0 {
			return exec.CommandContext(ctx, fields[0], append(fields[1:], file)...)
		}
	}
	switch opts.goos() {
	case "darwin":
		return exec.CommandContext(ctx, "open", file)
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "", file)
	default:
		return exec.CommandContext(ctx, "xdg-open", file)
	}
}

// Open runs Command for file, attached to the terminal. If xed fails the
// default opener is tried instead.
func Open(ctx context.Context, file string, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	cmd := Command(ctx, file, opts)
	err := run(cmd)
	if err == nil {
		return nil
	}
	if cmd.Args[0] != "xed" {
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, strings.Join(cmd.Args, " "), err)
	}

	logger.Warn("xed failed, falling back to default editor", zap.Error(err))
	fallback := DefaultCommand(ctx, file, opts)
	if err := run(fallback); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, strings.Join(fallback.Args, " "), err)
	}
	return nil
}

func run(cmd *exec.Cmd) error {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
