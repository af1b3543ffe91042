/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/stitch/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of Stitch",
	Long:  `Displays the version of Stitch.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Stitch %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
