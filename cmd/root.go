/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stitch/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stitch",
	Short: "A CLI tool for wiring generated files together.",
	Long: `Stitch computes relative import paths between generated files and
renders them into import/require statements. Point it at a layout policy
and a manifest of targets and it emits correct imports without ever
walking your filesystem.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		if logfile == "" {
			return nil
		}
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open logfile: %w", err)
		}
		logger.SetColors(false)
		logger.SetOutput(f)
		return nil
	},
}

var logfile string
var verbose bool

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
