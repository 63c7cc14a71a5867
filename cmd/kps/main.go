package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kpscli/kps/pkg/console"
	"github.com/kpscli/kps/pkg/problem"
	"github.com/kpscli/kps/pkg/project"
	"github.com/kpscli/kps/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// now is replaced in tests.
var now = time.Now

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := newApp()
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	stop()
	if err != nil {
		console.New().Error("Error: " + err.Error())
		os.Exit(1)
	}
}

// app carries state shared by every subcommand.
type app struct {
	verbose   bool
	logger    *zap.Logger
	console   *console.Console
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{logger: zap.NewNop(), newLogger: buildLogger}
}

// close flushes the logger. It runs whether or not the command failed.
func (a *app) close() {
	_ = a.logger.Sync()
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCmd(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:   "kps",
		Short: "Scaffold and commit competitive-programming solutions",
		Long: `kps manages Swift solution files for BOJ (acmicpc.net) and Programmers.

Quick Start:
  1. Initialize:   kps init -a "Your Name"
  2. New problem:  kps new https://acmicpc.net/problem/1000
                   kps new 1000 -b
  3. Edit:         kps open
  4. Commit+push:  kps solve 1000 -b`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.console = &console.Console{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}

			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newInitCmd(a),
		newNewCmd(a),
		newOpenCmd(a),
		newSolveCmd(a),
		newConfigCmd(a),
		newBrowseCmd(a),
	)
	return root
}

// platformFlags binds -b/--boj and -p/--programmers on cmd.
func platformFlags(cmd *cobra.Command) *problem.Flags {
	var f problem.Flags
	cmd.Flags().BoolVarP(&f.BOJ, "boj", "b", false, "BOJ (acmicpc.net)")
	cmd.Flags().BoolVarP(&f.Programmers, "programmers", "p", false, "Programmers (programmers.co.kr)")
	return &f
}

// openStore locates the project from the working directory and loads its
// config.
func (a *app) openStore() (*store.Store, error) {
	outcome, err := project.LocateFromCwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	a.logger.Debug("located project",
		zap.Stringer("status", outcome.Status),
		zap.String("root", outcome.Root.Dir))
	if err := outcome.Err(); err != nil {
		return nil, err
	}
	return store.Open(outcome.Root)
}

// resolve parses a problem argument and logs how it was interpreted.
func (a *app) resolve(input string, flags *problem.Flags) (problem.Problem, error) {
	p, err := problem.Resolve(input, *flags)
	if err != nil {
		return problem.Problem{}, err
	}
	a.logger.Debug("resolved problem",
		zap.String("input", input),
		zap.String("platform", string(p.Platform)),
		zap.String("number", p.Number))
	return p, nil
}
