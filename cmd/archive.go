/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/store"
)

var archiveListLimit int

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:     "archive",
	Short:   "Browse and run the day-boundary archive",
	Aliases: []string{"ar"},
}

var archiveRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Archive expired blocks now",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		before, err := store.LoadArchive(*config)
		if err != nil {
			log.Printf("❌ Error loading archive: %v", err)
			os.Exit(1)
		}
		countBefore := before.BlockCount()

		_, archive, err := runArchivePass(*config)
		if err != nil {
			log.Printf("❌ Archive pass failed: %v", err)
			os.Exit(1)
		}

		moved := archive.BlockCount() - countBefore
		if moved == 0 {
			fmt.Println("✅ Nothing to archive. Everything is up-to-date.")
			return
		}
		fmt.Printf("✅ Archived %d block(s).\n", moved)
	},
}

var archiveListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List archived days",
	Args:    cobra.NoArgs,
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		archive, err := store.LoadArchive(*config)
		if err != nil {
			log.Printf("❌ Error loading archive: %v", err)
			os.Exit(1)
		}

		dates := archive.SortedDates()
		if len(dates) == 0 {
			fmt.Println("The archive is empty.")
			return
		}

		if archiveListLimit > 0 && len(dates) > archiveListLimit {
			dates = dates[:archiveListLimit]
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Date"), text.FgGreen.Sprintf("Blocks"),
		})
		for _, date := range dates {
			t.AppendRow(table.Row{date, len(archive.Days[date])})
		}
		t.Render()
	},
}

var archiveShowCmd = &cobra.Command{
	Use:     "show [date]",
	Short:   "Show the archived blocks of a day",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		archive, err := store.LoadArchive(*config)
		if err != nil {
			log.Printf("❌ Error loading archive: %v", err)
			os.Exit(1)
		}

		day, ok := archive.Days[args[0]]
		if !ok || len(day) == 0 {
			fmt.Printf("No archived blocks for %s.\n", args[0])
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Time"), text.FgGreen.Sprintf("Tasks"),
		})
		for _, ab := range day {
			t.AppendRow(table.Row{
				shortID(ab.ID),
				ab.Title,
				describeArchivedTime(ab),
				describeArchivedTasks(ab),
			})
		}
		t.Render()
	},
}

func describeArchivedTime(ab model.ArchivedBlock) string {
	b := model.Block{StartTime: ab.StartTime, EndTime: ab.EndTime, Recurring: ab.Recurring}
	return describeTimeRange(b)
}

func describeArchivedTasks(ab model.ArchivedBlock) string {
	if len(ab.Tasks) == 0 {
		return "-"
	}
	done := 0
	for _, task := range ab.Tasks {
		if task.Completed {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(ab.Tasks))
}

func init() {
	archiveCmd.AddCommand(archiveRunCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	rootCmd.AddCommand(archiveCmd)

	archiveListCmd.Flags().IntVar(&archiveListLimit, "limit", 0, "Show only the most recent N days (0 for all)")
}
