package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stitch/core/config"
	"github.com/tristendillon/stitch/core/generator"
	"github.com/tristendillon/stitch/core/logger"
	"github.com/tristendillon/stitch/core/watcher"
)

// devCmd represents the dev command
var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Watch the config and manifest and regenerate on change",
	Long:  "Watches stitch.yaml and the manifest file, regenerating import statements whenever either changes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg, err := config.LoadFrom(wd)
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		manifestPath := cfg.Generate.Manifest
		if !filepath.IsAbs(manifestPath) {
			manifestPath = filepath.Join(wd, manifestPath)
		}

		gen := generator.NewImportGenerator(wd)
		if err := gen.Generate(); err != nil {
			logger.Error("Initial generation failed: %v", err)
		}

		fw, err := watcher.NewFileWatcher(
			[]string{filepath.Join(wd, config.FileName), manifestPath},
			gen.Generate,
		)
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer fw.Close()

		logger.Info("Watching %s and %s", config.FileName, cfg.Generate.Manifest)
		return fw.Watch()
	},
}

func init() {
	rootCmd.AddCommand(devCmd)
}
