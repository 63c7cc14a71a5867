package main

import (
	gsync "github.com/kpscli/kps/pkg/sync"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		prefix string
		noPush bool
	)

	cmd := &cobra.Command{
		Use:   "solve <url|number>",
		Short: "Commit and push a solution",
		Long: `Stage the solution file, commit it and push.

The commit message is "<prefix>: [<platform>] <number> solve".

Examples:
  kps solve 1000 -b
  kps solve https://boj.kr/1000 --prefix feat
  kps solve 340207 -p --no-push`,
		Args: cobra.ExactArgs(1),
	}
	pf := platformFlags(cmd)
	cmd.Flags().StringVar(&prefix, "prefix", gsync.DefaultCommitPrefix, "Commit message prefix")
	cmd.Flags().BoolVarP(&noPush, "no-push", "n", false, "Commit only, do not push")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := a.resolve(args[0], pf)
		if err != nil {
			return err
		}

		s, err := a.openStore()
		if err != nil {
			return err
		}
		path, err := s.ExistingSolution(p)
		if err != nil {
			return err
		}

		g, err := gsync.New(cmd.Context(), s.Root.Dir, a.logger)
		if err != nil {
			return err
		}

		message := gsync.CommitMessage(prefix, p)
		err = g.Solve(cmd.Context(), gsync.SolveOptions{
			File:    path,
			Message: message,
			Push:    !noPush,
		}, func(step gsync.Step) {
			switch step {
			case gsync.StepAdd:
				a.console.File("Adding " + s.Root.Rel(path))
			case gsync.StepCommit:
				a.console.Save("Committing: " + message)
			case gsync.StepPush:
				a.console.Deploy("Pushing...")
			}
		})
		if err != nil {
			return err
		}

		a.console.Success("Done!")
		a.console.URL(p.URL())
		return nil
	}
	return cmd
}
