// Package cmd holds the timetable-cli subcommands, built with cobra.
package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "timetable-cli",
	Short: "Solve weekly timetabling problems from the command line",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
