/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stitch/core/config"
	"github.com/tristendillon/stitch/core/logger"
)

var (
	force bool
)

const starterConfig = `app_name: stitch
layout:
  structure: nested
  type_directories:
    model: models
    enum: enums
  file_extension: .ts
  output_dir: ./src/generated
  source_dir: ./src
  naming_convention: PascalCase
generate:
  manifest: imports.yaml
  output: ""
`

const starterManifest = `imports:
  - source: ./app/components/UserComponent.ts
    name: User
    type: model
    kind: typed-import
    named: [User]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Stitch project",
	Long:  `Creates a starter stitch.yaml and imports.yaml in the given directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		dir := args[0]
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}

		files := map[string]string{
			config.FileName: starterConfig,
			"imports.yaml":  starterManifest,
		}
		for name, content := range files {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Printf("%s already exists. Use --force to overwrite.\n", path)
				continue
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Debug("Wrote %s", path)
		}

		fmt.Printf("Initialized stitch project in %s\n", dir)
		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - cd %s\n", dir)
		fmt.Printf("  - edit imports.yaml\n")
		fmt.Printf("  - stitch generate\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
