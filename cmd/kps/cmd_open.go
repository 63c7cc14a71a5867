package main

import (
	"path/filepath"

	"github.com/kpscli/kps/pkg/editor"
	"github.com/kpscli/kps/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newOpenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [url|number]",
		Short: "Open a solution file in your editor",
		Long: `Open a solution file. Without arguments the most recently created or
opened file is used.

If xcodeProjectPath is configured and you are on macOS, the file is opened
inside that project with xed. Otherwise $VISUAL, $EDITOR or the system
opener is used.

Examples:
  kps open
  kps open 1000 -b
  kps open https://boj.kr/1000`,
		Args: cobra.MaximumNArgs(1),
	}
	pf := platformFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := a.openStore()
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			p, err := a.resolve(args[0], pf)
			if err != nil {
				return err
			}
			if path, err = s.ExistingSolution(p); err != nil {
				return err
			}
			if err := s.RecordHistory(p, now()); err != nil {
				a.logger.Warn("failed to record history", zap.Error(err))
			}
		} else {
			if _, path, err = s.RecentSolution(); err != nil {
				return err
			}
		}

		if err := editor.Open(cmd.Context(), path, editorOptions(s), a.logger); err != nil {
			return err
		}
		a.console.Success("Opened: " + path)
		return nil
	}
	return cmd
}

func editorOptions(s *store.Store) editor.Options {
	var opts editor.Options
	if xp := s.Config.XcodeProjectPath; xp != "" {
		opts.XcodeProject = filepath.Join(s.Root.Dir, xp)
	}
	return opts
}
