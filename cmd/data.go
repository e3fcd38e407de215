/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/store"
)

var exportFormat string
var exportOutput string
var importForce bool

// dataCmd represents the data command
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export and import all planner data",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export everything to a single file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		snapshot, err := store.BuildSnapshot(*config, time.Now())
		if err != nil {
			log.Printf("❌ Failed to build export: %v", err)
			os.Exit(1)
		}

		var data []byte
		switch exportFormat {
		case "json":
			data, err = json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				log.Printf("❌ Failed to marshal export: %v", err)
				os.Exit(1)
			}
		case "txt":
			data = []byte(formatSnapshotAsText(snapshot))
		default:
			log.Printf("❌ Unknown format %q (expected json or txt)", exportFormat)
			os.Exit(1)
		}

		output := exportOutput
		if output == "" {
			output = fmt.Sprintf("etb-export-%s.%s", time.Now().Format("2006-01-02"), exportFormat)
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			log.Printf("❌ Failed to write export file: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Exported %d blocks to %s\n", len(snapshot.TimeBlocks.Blocks), output)
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON export, replacing all local data",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Printf("❌ Failed to read import file: %v", err)
			os.Exit(1)
		}

		snapshot, err := store.ParseSnapshot(data)
		if err != nil {
			log.Printf("❌ %v", err)
			os.Exit(1)
		}

		if !importForce {
			prompt := fmt.Sprintf("Replace all local data with %d blocks from %s?", len(snapshot.TimeBlocks.Blocks), args[0])
			if !confirmPrompt(prompt) {
				fmt.Println("Cancelled.")
				return
			}
		}

		if err := store.RestoreSnapshot(*config, snapshot); err != nil {
			log.Printf("❌ Import failed: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Imported %d blocks.\n", len(snapshot.TimeBlocks.Blocks))
	},
}

// formatSnapshotAsText renders the export as a plain-text plan for printing
// or sharing. Text exports are one-way; only JSON can be imported back.
func formatSnapshotAsText(s store.Snapshot) string {
	var b strings.Builder

	b.WriteString("ETB EXPORT\n")
	b.WriteString("Exported: " + s.ExportDate + "\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString(fmt.Sprintf("TIME BLOCKS (%d)\n", len(s.TimeBlocks.Blocks)))
	for _, block := range s.TimeBlocks.Blocks {
		writeBlockText(&b, block, s.Categories)
	}

	dates := s.ArchivedBlocks.SortedDates()
	if len(dates) > 0 {
		b.WriteString(fmt.Sprintf("\nARCHIVE (%d days)\n", len(dates)))
		for _, day := range dates {
			b.WriteString(fmt.Sprintf("\n%s\n", day))
			for _, ab := range s.ArchivedBlocks.Days[day] {
				b.WriteString(fmt.Sprintf("  - %s (%s)\n", ab.Title, describeArchivedTime(ab)))
			}
		}
	}

	if len(s.Categories) > 0 {
		b.WriteString(fmt.Sprintf("\nCATEGORIES (%d)\n", len(s.Categories)))
		for _, c := range s.Categories {
			b.WriteString(fmt.Sprintf("  - %s (%s)\n", c.Name, c.Color))
		}
	}

	return b.String()
}

func writeBlockText(b *strings.Builder, block model.Block, categories []model.Category) {
	b.WriteString(fmt.Sprintf("\n%s\n", block.Title))
	b.WriteString(fmt.Sprintf("  When: %s\n", describeWhen(block)))
	if timeRange := describeTimeRange(block); timeRange != "-" {
		b.WriteString(fmt.Sprintf("  Time: %s\n", timeRange))
	}
	if block.Category != "" {
		b.WriteString(fmt.Sprintf("  Category: %s\n", model.CategoryName(categories, block.Category)))
	}
	for _, task := range block.Tasks {
		mark := "[ ]"
		if task.Completed {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, task.Text))
	}
	if block.Notes != "" {
		for _, line := range strings.Split(strings.TrimRight(block.Notes, "\n"), "\n") {
			b.WriteString("  > " + line + "\n")
		}
	}
}

func init() {
	dataCmd.AddCommand(exportCmd)
	dataCmd.AddCommand(importCmd)
	rootCmd.AddCommand(dataCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json or txt)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (defaults to etb-export-<date>.<format>)")
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Skip the confirmation prompt")
}
