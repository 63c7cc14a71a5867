package sync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kpscli/kps/pkg/problem"
	"go.uber.org/zap"
)

var (
	ErrGitNotAvailable  = errors.New("git is not installed or not in PATH (install: https://git-scm.com/downloads)")
	ErrNotGitRepository = errors.New("not a git repository: run 'git init' first")
	ErrNothingToCommit  = errors.New("no changes to commit: did you save your solution file?")
)

// DefaultCommitPrefix starts solve commit messages.
const DefaultCommitPrefix = "add"

var lookPath = exec.LookPath

// CommandError carries the output of a failed git invocation.
type CommandError struct {
	Args   []string
	Output string
	Push   bool
	Err    error
}

func (e *CommandError) Error() string {
	what := "git command failed"
	if e.Push {
		what = "git push failed"
	}
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s: git %s: %v", what, strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("%s: %s", what, out)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommitMessage formats "<prefix>: [BOJ] 1000 solve".
func CommitMessage(prefix string, p problem.Problem) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultCommitPrefix
	}
	return fmt.Sprintf("%s: %s solve", prefix, p)
}

// Git runs git inside a working tree.
type Git struct {
	Dir    string
	Logger *zap.Logger
}

// New returns a Git for dir, failing if git is missing or dir is not inside
// a work tree.
func New(ctx context.Context, dir string, logger *zap.Logger) (*Git, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := lookPath("git"); err != nil {
		return nil, ErrGitNotAvailable
	}
	g := &Git{Dir: dir, Logger: logger}
	out, err := g.output(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil || strings.TrimSpace(out) != "true" {
		return nil, ErrNotGitRepository
	}
	return g, nil
}

// SolveOptions describes one solve commit.
type SolveOptions struct {
	File    string
	Message string
	Push    bool
}

// Step reports progress to the caller before each git operation.
type Step int

const (
	StepAdd Step = iota
	StepCommit
	StepPush
)

// Solve stages opts.File, commits it and optionally pushes. onStep may be
// nil.
func (g *Git) Solve(ctx context.Context, opts SolveOptions, onStep func(Step)) error {
	notify := func(s Step) {
		if onStep != nil {
			onStep(s)
		}
	}

	notify(StepAdd)
	if _, err := g.run(ctx, false, "add", "--", opts.File); err != nil {
		return err
	}

	// diff --cached --quiet exits 0 when nothing is staged.
	if _, err := g.output(ctx, "diff", "--cached", "--quiet", "--", opts.File); err == nil {
		return ErrNothingToCommit
	}

	notify(StepCommit)
	if _, err := g.run(ctx, false, "commit", "-m", opts.Message, "--", opts.File); err != nil {
		return err
	}

	if !opts.Push {
		return nil
	}
	notify(StepPush)
	_, err := g.run(ctx, true, "push")
	return err
}

func (g *Git) run(ctx context.Context, push bool, args ...string) (string, error) {
	out, err := g.output(ctx, args...)
	if err != nil {
		return out, &CommandError{Args: args, Output: out, Push: push, Err: err}
	}
	return out, nil
}

func (g *Git) output(ctx context.Context, args ...string) (string, error) {
	g.Logger.Debug("running git", zap.String("dir", g.Dir), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", g.Dir}, args...)...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	if err != nil {
		g.Logger.Debug("git failed", zap.Strings("args", args), zap.Error(err), zap.String("output", buf.String()))
	}
	return buf.String(), err
}
