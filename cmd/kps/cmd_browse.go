package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kpscli/kps/pkg/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse solutions in an interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			m := tui.NewModel(s)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

			// Watch the source folder when it exists, otherwise the whole
			// project so the first `kps new` is picked up.
			watchDir := filepath.Join(s.Root.Dir, s.Config.SourceFolder)
			if info, err := os.Stat(watchDir); err != nil || !info.IsDir() {
				watchDir = s.Root.Dir
			}
			cleanup, err := tui.StartWatcher(watchDir, p)
			if err != nil {
				a.logger.Warn("file watcher failed", zap.Error(err))
			} else {
				defer cleanup()
			}

			_, err = p.Run()
			return err
		},
	}
}
