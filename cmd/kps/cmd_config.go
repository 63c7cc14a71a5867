package main

import (
	"encoding/json"
	"fmt"

	"github.com/kpscli/kps/pkg/store"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var (
		list    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or update the project config",
		Long: `View or update .kps/config.json.

Keys: author, sourceFolder, projectName, xcodeProjectPath

Examples:
  kps config --list
  kps config author
  kps config author "Jane Doe"
  kps config xcodeProjectPath ""`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			if list || len(args) == 0 {
				return a.listConfig(cmd, s.Config, jsonOut)
			}

			key, err := store.ParseConfigKey(args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), s.Config.Get(key))
				return nil
			}

			if err := s.UpdateConfig(key, args[1]); err != nil {
				return err
			}
			a.console.Success(fmt.Sprintf("Updated %s = %s", key, s.Config.Get(key)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "Show all config values")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func (a *app) listConfig(cmd *cobra.Command, cfg *store.Config, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg.Map())
	}

	a.console.Info("Current config:", "📋")
	for _, k := range store.ConfigKeys {
		v := cfg.Get(k)
		if v == "" {
			v = "(not set)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "   %s: %s\n", k, v)
	}
	return nil
}
