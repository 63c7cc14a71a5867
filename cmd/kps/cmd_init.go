package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpscli/kps/pkg/project"
	"github.com/kpscli/kps/pkg/store"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		author       string
		source       string
		xcodeProject string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the current directory as a kps project",
		Long: `Create .kps/config.json in the current directory.

The directory name becomes the project name.

Examples:
  kps init -a "Jane Doe"
  kps init -a "Jane Doe" -s Solutions
  kps init -a "Jane Doe" --xcode-project Algorithms.xcodeproj`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			cfg := &store.Config{
				Author:           author,
				SourceFolder:     source,
				ProjectName:      filepath.Base(cwd),
				XcodeProjectPath: xcodeProject,
			}
			if _, err := store.InitProject(cwd, cfg, force); err != nil {
				return err
			}

			a.console.Success("kps initialized!")
			a.console.Info("Project: "+cfg.ProjectName, "")
			a.console.Info("Author: "+cfg.Author, "")
			a.console.Info("Source folder: "+cfg.SourceFolder, "")
			if cfg.XcodeProjectPath != "" {
				a.console.Info("Xcode project: "+cfg.XcodeProjectPath, "")
			}
			a.console.Save("Config saved to: " + filepath.Join(project.MarkerDir, project.ConfigFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Author name for file headers")
	cmd.Flags().StringVarP(&source, "source", "s", store.DefaultSourceFolder, "Source folder name")
	cmd.Flags().StringVar(&xcodeProject, "xcode-project", "", "Xcode project to open solutions in (relative to the project root)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	_ = cmd.MarkFlagRequired("author")
	return cmd
}
