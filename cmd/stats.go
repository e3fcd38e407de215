/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/schedule"
	"github.com/Technical-1/etb-cli/internal/store"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show planning statistics",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		collection, err := store.LoadBlocks(*config)
		if err != nil {
			log.Printf("❌ Error loading blocks: %v", err)
			os.Exit(1)
		}
		archive, err := store.LoadArchive(*config)
		if err != nil {
			log.Printf("❌ Error loading archive: %v", err)
			os.Exit(1)
		}
		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		stats := schedule.ComputeStatistics(collection.Blocks, archive, categories)

		header := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(header("📊 Time blocking stats"))
		fmt.Printf("Blocks: %d (%d recurring)\n", stats.TotalBlocks, stats.RecurringBlocks)
		fmt.Printf("Planned time: %s\n", formatMinutes(stats.TotalMinutes))
		fmt.Printf("Tasks: %d/%d complete (%d%%)\n", stats.CompletedTasks, stats.TotalTasks, stats.TaskCompletionRate())
		fmt.Printf("Archive: %d blocks across %d days\n", stats.ArchivedBlocks, stats.ArchivedDays)

		if len(stats.Categories) == 0 {
			return
		}

		fmt.Println()
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Category"), text.FgGreen.Sprintf("Blocks"),
			text.FgGreen.Sprintf("Time"), text.FgGreen.Sprintf("Color"),
		})
		for _, cs := range stats.Categories {
			t.AppendRow(table.Row{cs.Name, cs.Count, formatMinutes(cs.Minutes), cs.Color})
		}
		t.Render()
	},
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
