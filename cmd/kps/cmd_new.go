package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <url|number>",
		Short: "Create a solution file",
		Long: `Create a solution file from a problem URL or a number plus platform flag.

Examples:
  kps new https://www.acmicpc.net/problem/1000
  kps new https://boj.kr/1000
  kps new https://school.programmers.co.kr/learn/courses/30/lessons/340207
  kps new 1000 -b
  kps new 340207 -p`,
		Args: cobra.ExactArgs(1),
	}
	pf := platformFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := a.resolve(args[0], pf)
		if err != nil {
			return err
		}

		s, err := a.openStore()
		if err != nil {
			return err
		}

		path, err := s.CreateSolution(p, now())
		if err != nil {
			return err
		}
		if err := s.RecordHistory(p, now()); err != nil {
			a.logger.Warn("failed to record history", zap.Error(err))
		}

		a.console.Success("File created!")
		a.console.File("File: " + path)
		a.console.URL("URL: " + p.URL())
		a.console.Tip(fmt.Sprintf("Next: solve with 'kps solve %s %s'", p.Number, p.Platform.Flag()))
		return nil
	}
	return cmd
}
