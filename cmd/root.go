/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "etb",
	Short: "Time blocking from the command line",
	Long: `etb is a time-blocking planner for the terminal.

Plan your day in half-hour blocks, attach notes and tasks to each block,
and let recurring blocks carry unfinished work forward. Expired blocks
are archived automatically when a new day starts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
