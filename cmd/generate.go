/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stitch/core/generator"
	"github.com/tristendillon/stitch/core/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Renders every import statement in the manifest",
	Long:  `Renders every import statement in the manifest through the configured layout policy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("generate called")
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		generator := generator.NewImportGenerator(wd)
		if err := generator.Generate(); err != nil {
			return fmt.Errorf("failed to generate import statements: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
