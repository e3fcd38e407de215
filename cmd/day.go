/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/schedule"
	"github.com/Technical-1/etb-cli/internal/store"
)

var dayDate string
var dayShowAll bool

// runArchivePass moves expired dated blocks into the archive before the day
// is rendered. Persists only when something actually moved, so repeated
// views of the same day stay cheap.
func runArchivePass(config model.Config) (model.BlockCollection, model.Archive, error) {
	collection, err := store.LoadBlocks(config)
	if err != nil {
		return model.BlockCollection{}, model.Archive{}, err
	}
	archive, err := store.LoadArchive(config)
	if err != nil {
		return model.BlockCollection{}, model.Archive{}, err
	}

	stillLive, updated, moved := schedule.RunArchive(collection.Blocks, archive, time.Now())
	if moved == 0 {
		return collection, archive, nil
	}

	collection.Blocks = stillLive
	if err := store.SaveBlocks(config, collection); err != nil {
		return model.BlockCollection{}, model.Archive{}, err
	}
	if err := store.SaveArchive(config, updated); err != nil {
		return model.BlockCollection{}, model.Archive{}, err
	}

	log.Printf("🔄 Archived %d expired block(s).", moved)
	return collection, updated, nil
}

// dayCmd represents the day command
var dayCmd = &cobra.Command{
	Use:     "day",
	Short:   "Show the time-block grid for a day",
	Args:    cobra.NoArgs,
	Aliases: []string{"d"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		date := time.Now()
		if dayDate != "" {
			date, err = time.Parse("2006-01-02", dayDate)
			if err != nil {
				log.Printf("❌ Invalid date %q (expected YYYY-MM-DD)", dayDate)
				os.Exit(1)
			}
		}

		collection, archive, err := runArchivePass(*config)
		if err != nil {
			log.Printf("❌ Archive pass failed: %v", err)
			os.Exit(1)
		}

		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}
		settings, err := store.LoadSettings(*config)
		if err != nil {
			log.Printf("❌ Error loading settings: %v", err)
			os.Exit(1)
		}

		dayBlocks := schedule.BlocksForDate(collection.Blocks, date)
		for i, block := range dayBlocks {
			dayBlocks[i] = schedule.ApplyCarryOver(block, archive)
		}
		dayBlocks = schedule.SortByStart(dayBlocks)

		header := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s %s (%s)\n", header("📅"), header(schedule.FormatDate(date)), schedule.WeekdayName(date))

		if len(dayBlocks) == 0 {
			fmt.Println("No blocks scheduled for this day.")
			return
		}

		visible := visibleSlotLabels(settings)
		renderDayGrid(dayBlocks, visible, categories)
		printTaskSummary(dayBlocks)
	},
}

// visibleSlotLabels filters the 48-slot grid by the user's hidden times.
// --all overrides the setting.
func visibleSlotLabels(settings model.Settings) []string {
	labels := schedule.SlotLabels()
	if dayShowAll || len(settings.HiddenTimes) == 0 {
		return labels
	}

	hidden := make(map[string]bool, len(settings.HiddenTimes))
	for _, label := range settings.HiddenTimes {
		hidden[label] = true
	}

	visible := make([]string, 0, len(labels))
	for _, label := range labels {
		if !hidden[label] {
			visible = append(visible, label)
		}
	}
	return visible
}

func renderDayGrid(dayBlocks []model.Block, visible []string, categories []model.Category) {
	// Map each visible slot label to the block that starts there and the
	// set of labels it continues through.
	startsAt := map[string]model.Block{}
	continues := map[string]string{}
	var timeless []model.Block

	for _, block := range dayBlocks {
		start, end, ok := block.TimeOfDay()
		if !ok {
			timeless = append(timeless, block)
			continue
		}
		startLabel, ok1 := schedule.To12Hour(start)
		endLabel, ok2 := schedule.To12Hour(end)
		if !ok1 || !ok2 {
			timeless = append(timeless, block)
			continue
		}
		rng := schedule.RangeOfLabels(startLabel, endLabel)
		if len(rng) == 0 {
			timeless = append(timeless, block)
			continue
		}
		startsAt[rng[0]] = block
		for _, label := range rng[1:] {
			continues[label] = block.Title
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Time"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Block")),
		text.FgGreen.Sprintf("Category"), text.FgGreen.Sprintf("Tasks"),
	})

	for _, label := range visible {
		if block, ok := startsAt[label]; ok {
			t.AppendRow(table.Row{
				label,
				block.Title,
				model.CategoryName(categories, block.Category),
				describeTasks(block),
			})
			continue
		}
		if title, ok := continues[label]; ok {
			t.AppendRow(table.Row{label, text.Faint.Sprintf("↳ %s", title), "", ""})
			continue
		}
		t.AppendRow(table.Row{label, "", "", ""})
	}

	t.Render()

	if len(timeless) > 0 {
		fmt.Println("\nAnytime:")
		for _, block := range timeless {
			fmt.Printf("  • %s (%s)\n", block.Title, describeTasks(block))
		}
	}
}

func printTaskSummary(dayBlocks []model.Block) {
	total, done := 0, 0
	for _, block := range dayBlocks {
		for _, task := range block.Tasks {
			total++
			if task.Completed {
				done++
			}
		}
	}
	if total == 0 {
		return
	}
	if done == total {
		fmt.Printf("\n🎉 All %d tasks complete — great work!\n", total)
		return
	}
	fmt.Printf("\nTasks: %d/%d complete\n", done, total)
}

var hideSlotCmd = &cobra.Command{
	Use:   "hide [label]",
	Short: "Hide a time slot from the day grid (e.g. \"3:00 AM\")",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		label, ok := normalizeSlotLabel(args[0])
		if !ok {
			log.Printf("❌ %q is not a grid slot (expected e.g. \"3:00 AM\")", args[0])
			os.Exit(1)
		}

		settings, err := store.LoadSettings(*config)
		if err != nil {
			log.Printf("❌ Error loading settings: %v", err)
			os.Exit(1)
		}

		for _, hidden := range settings.HiddenTimes {
			if hidden == label {
				fmt.Printf("Slot %s is already hidden.\n", label)
				return
			}
		}

		settings.HiddenTimes = append(settings.HiddenTimes, label)
		if err := store.SaveSettings(*config, settings); err != nil {
			log.Printf("❌ Failed to save settings: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Slot %s is now hidden.\n", label)
	},
}

var unhideSlotCmd = &cobra.Command{
	Use:   "unhide [label]",
	Short: "Show a previously hidden time slot again",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		label, ok := normalizeSlotLabel(args[0])
		if !ok {
			log.Printf("❌ %q is not a grid slot (expected e.g. \"3:00 AM\")", args[0])
			os.Exit(1)
		}

		settings, err := store.LoadSettings(*config)
		if err != nil {
			log.Printf("❌ Error loading settings: %v", err)
			os.Exit(1)
		}

		idx := -1
		for i, hidden := range settings.HiddenTimes {
			if hidden == label {
				idx = i
				break
			}
		}
		if idx < 0 {
			fmt.Printf("Slot %s is not hidden.\n", label)
			return
		}

		settings.HiddenTimes = append(settings.HiddenTimes[:idx], settings.HiddenTimes[idx+1:]...)
		if err := store.SaveSettings(*config, settings); err != nil {
			log.Printf("❌ Failed to save settings: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Slot %s is visible again.\n", label)
	},
}

// normalizeSlotLabel round-trips user input through the 24-hour form so
// "3:00 am" and "3:00 AM" both land on the canonical grid label.
func normalizeSlotLabel(input string) (string, bool) {
	hhmm, ok := schedule.To24Hour(input)
	if !ok {
		return "", false
	}
	label, ok := schedule.To12Hour(hhmm)
	if !ok {
		return "", false
	}
	for _, slot := range schedule.SlotLabels() {
		if slot == label {
			return label, true
		}
	}
	return "", false
}

func init() {
	dayCmd.AddCommand(hideSlotCmd)
	dayCmd.AddCommand(unhideSlotCmd)
	rootCmd.AddCommand(dayCmd)

	dayCmd.Flags().StringVarP(&dayDate, "date", "d", "", "Date to show (YYYY-MM-DD, defaults to today)")
	dayCmd.Flags().BoolVarP(&dayShowAll, "all", "a", false, "Show hidden time slots too")
}
