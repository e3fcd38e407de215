/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/schedule"
	"github.com/Technical-1/etb-cli/internal/store"
	"github.com/Technical-1/etb-cli/internal/util"
)

var blockDate string
var blockStart string
var blockEnd string
var blockColor string
var blockCategory string
var blockNotes string
var blockRecurring bool
var blockDays []string
var blockCarryOver bool
var blockTasks []string
var blockForce bool

var blockListCategory string
var blockListFrom string
var blockListTo string
var blockListSearchQuery string
var blockListPageSize int
var blockListRecurring bool

var blockShowMeta bool

var blockEditTitle string
var blockEditStart string
var blockEditEnd string
var blockEditDate string
var blockEditColor string
var blockEditCategory string
var blockEditNotes bool
var blockEditForce bool

var blockRemoveForce bool

// parseTimeOfDay accepts either a 12-hour label ("9:00 AM") or a 24-hour
// "HH:MM" and returns the normalized "HH:MM" form.
func parseTimeOfDay(input string) (string, bool) {
	if hhmm, ok := schedule.To24Hour(input); ok {
		return hhmm, true
	}
	input = strings.TrimSpace(input)
	if min, ok := schedule.TimeToMinutes(input); ok && min >= 0 && min < 24*60 {
		return fmt.Sprintf("%02d:%02d", min/60, min%60), true
	}
	return "", false
}

func confirmPrompt(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// overlapCheckDate picks the calendar date used for the advisory overlap
// check. Dated blocks use their own date; recurring blocks use their next
// occurrence.
func overlapCheckDate(b model.Block, now time.Time) (time.Time, bool) {
	if !b.Recurring {
		date, err := time.Parse("2006-01-02", b.Date())
		if err != nil {
			return time.Time{}, false
		}
		return date, true
	}
	for i := 0; i < 7; i++ {
		candidate := now.AddDate(0, 0, i)
		if schedule.AppliesOnDate(b, candidate) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// warnOnOverlaps runs the advisory overlap check and asks for confirmation
// unless force is set. Returns false if the user backed out.
func warnOnOverlaps(b model.Block, blocks []model.Block, force bool) bool {
	start, end, ok := b.TimeOfDay()
	if !ok {
		return true
	}
	date, ok := overlapCheckDate(b, time.Now())
	if !ok {
		return true
	}
	overlaps := schedule.FindOverlaps(start, end, date, b.ID, blocks)
	if len(overlaps) == 0 {
		return true
	}

	fmt.Printf("⚠️ This block overlaps with: %s\n", strings.Join(overlaps, ", "))
	if force {
		return true
	}
	return confirmPrompt("Create anyway?")
}

func createNewBlock(title string, config model.Config) (model.Block, error) {
	collection, err := store.LoadBlocks(config)
	if err != nil {
		return model.Block{}, err
	}

	block := model.Block{
		ID:        uuid.NewString(),
		Title:     title,
		Notes:     blockNotes,
		Color:     blockColor,
		Category:  blockCategory,
		Recurring: blockRecurring,
		CarryOver: blockCarryOver,
	}

	for _, taskText := range blockTasks {
		block.Tasks = append(block.Tasks, model.Task{Text: taskText})
	}

	if blockRecurring {
		block.RecurrenceDays = blockDays
		if blockStart != "" || blockEnd != "" {
			startHHMM, ok := parseTimeOfDay(blockStart)
			if !ok {
				return model.Block{}, fmt.Errorf("invalid start time: %q", blockStart)
			}
			endHHMM, ok := parseTimeOfDay(blockEnd)
			if !ok {
				return model.Block{}, fmt.Errorf("invalid end time: %q", blockEnd)
			}
			// The anchor date of a recurring block is ignored; only the
			// time of day matters.
			anchor := schedule.FormatDate(time.Now())
			block.StartTime = anchor + "T" + startHHMM
			block.EndTime = anchor + "T" + endHHMM
		}
	} else {
		date := blockDate
		if date == "" {
			date = schedule.FormatDate(time.Now())
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return model.Block{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", blockDate)
		}
		startHHMM, ok := parseTimeOfDay(blockStart)
		if !ok {
			return model.Block{}, fmt.Errorf("invalid start time: %q", blockStart)
		}
		endHHMM, ok := parseTimeOfDay(blockEnd)
		if !ok {
			return model.Block{}, fmt.Errorf("invalid end time: %q", blockEnd)
		}
		block.StartTime = date + "T" + startHHMM
		block.EndTime = date + "T" + endHHMM
	}

	if err := schedule.ValidateBlock(block); err != nil {
		return model.Block{}, err
	}

	if !warnOnOverlaps(block, collection.Blocks, blockForce) {
		return model.Block{}, fmt.Errorf("cancelled")
	}

	collection.Blocks = append(collection.Blocks, block)
	if err := store.SaveBlocks(config, collection); err != nil {
		return model.Block{}, err
	}

	return block, nil
}

// blockCmd represents the block command
var blockCmd = &cobra.Command{
	Use:     "block",
	Short:   "Manage time blocks",
	Aliases: []string{"b"},
}

var newBlockCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a new time block",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		blockTitle := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		block, err := createNewBlock(blockTitle, *config)
		if err != nil {
			log.Printf("❌ Failed to create block: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Block %q has been created successfully. (id: %s)\n", block.Title, shortID(block.ID))
	},
}

var blockListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List time blocks",
	Args:    cobra.NoArgs,
	Aliases: []string{"ls"},
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
		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		filteredBlocks := []model.Block{}
		for _, block := range collection.Blocks {
			if block.Archived {
				continue
			}
			if blockListRecurring && !block.Recurring {
				continue
			}
			filteredBlocks = append(filteredBlocks, block)
		}

		if blockListSearchQuery != "" {
			filteredBlocks = util.FullTextSearch(filteredBlocks, blockListSearchQuery)
		}
		filteredBlocks = util.FilterBlocks(filteredBlocks, blockListCategory, blockListFrom, blockListTo)

		if len(filteredBlocks) == 0 {
			fmt.Println("No matching blocks found.")
			return
		}

		reader := bufio.NewReader(os.Stdin)
		page := 0

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Time blocks: %v shown\n", len(filteredBlocks))
		fmt.Println(strings.Repeat("=", 30))

		if blockListPageSize == -1 {
			blockListPageSize = len(filteredBlocks)
		}

		for {
			start := page * blockListPageSize
			end := start + blockListPageSize

			if start >= len(filteredBlocks) {
				fmt.Println("No more blocks to display.")
				break
			}
			if end > len(filteredBlocks) {
				end = len(filteredBlocks)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.Style().Options.SeparateRows = false

			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
				text.FgGreen.Sprintf("When"), text.FgGreen.Sprintf("Time"),
				text.FgGreen.Sprintf("Category"), text.FgGreen.Sprintf("Tasks"),
			})

			for _, row := range filteredBlocks[start:end] {
				t.AppendRow(table.Row{
					shortID(row.ID),
					row.Title,
					describeWhen(row),
					describeTimeRange(row),
					model.CategoryName(categories, row.Category),
					describeTasks(row),
				})
			}

			t.Render()

			if blockListPageSize == len(filteredBlocks) {
				break
			}

			if end >= len(filteredBlocks) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input == "q" {
				break
			}

			page++
		}
	},
}

var showBlockCmd = &cobra.Command{
	Use:     "show [blockID]",
	Short:   "Show a time block with its notes and tasks",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
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
		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		idx, ok := store.FindBlock(collection.Blocks, args[0])
		if !ok {
			log.Printf("❌ Block not found: %s", args[0])
			os.Exit(1)
		}
		block := collection.Blocks[idx]

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()

		fmt.Printf("[%v] %v\n", titleStyle(shortID(block.ID)), titleStyle(block.Title))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("When: %v\n", fieldStyle(describeWhen(block)))
		fmt.Printf("Time: %v\n", fieldStyle(describeTimeRange(block)))
		fmt.Printf("Category: %v\n", fieldStyle(model.CategoryName(categories, block.Category)))
		fmt.Printf("Color: %v\n", fieldStyle(model.EffectiveColor(block, categories)))
		fmt.Printf("Carry over: %v\n", fieldStyle(block.CarryOver))

		if len(block.Tasks) > 0 {
			fmt.Println("\nTasks:")
			for i, task := range block.Tasks {
				mark := "[ ]"
				if task.Completed {
					mark = color.New(color.FgGreen).Sprint("[x]")
				}
				fmt.Printf("  %d. %s %s\n", i+1, mark, task.Text)
			}
		}

		// Render Markdown notes unless --meta flag is used
		if !blockShowMeta && block.Notes != "" {
			renderedContent, err := glamour.Render(block.Notes, "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render markdown content: %v", err)
			} else {
				fmt.Println(renderedContent)
			}
		}
	},
}

var editBlockCmd = &cobra.Command{
	Use:     "edit [blockID]",
	Short:   "Edit a time block",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
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

		idx, ok := store.FindBlock(collection.Blocks, args[0])
		if !ok {
			log.Printf("❌ Block not found: %s", args[0])
			os.Exit(1)
		}
		block := collection.Blocks[idx]

		if cmd.Flags().Changed("title") {
			block.Title = blockEditTitle
		}
		if cmd.Flags().Changed("color") {
			block.Color = blockEditColor
		}
		if cmd.Flags().Changed("category") {
			block.Category = blockEditCategory
		}

		if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") || cmd.Flags().Changed("date") {
			if err := applyTimeEdits(&block, cmd.Flags().Changed("start"), cmd.Flags().Changed("end"), cmd.Flags().Changed("date")); err != nil {
				log.Printf("❌ %v", err)
				os.Exit(1)
			}
		}

		if blockEditNotes {
			edited, err := util.EditText(block.Notes, *config)
			if err != nil {
				log.Printf("❌ Failed to open editor: %v", err)
				os.Exit(1)
			}
			block.Notes = strings.TrimRight(edited, "\n")
		}

		if err := schedule.ValidateBlock(block); err != nil {
			log.Printf("❌ Invalid block: %v", err)
			os.Exit(1)
		}

		if !warnOnOverlaps(block, collection.Blocks, blockEditForce) {
			fmt.Println("Cancelled.")
			return
		}

		collection.Blocks[idx] = block
		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Block %q has been updated.\n", block.Title)
	},
}

func applyTimeEdits(block *model.Block, startChanged, endChanged, dateChanged bool) error {
	if block.Recurring {
		if dateChanged {
			return fmt.Errorf("recurring blocks have no date; edit --days instead")
		}
		anchor := block.Date()
		if anchor == "" {
			anchor = schedule.FormatDate(time.Now())
		}
		if startChanged {
			hhmm, ok := parseTimeOfDay(blockEditStart)
			if !ok {
				return fmt.Errorf("invalid start time: %q", blockEditStart)
			}
			block.StartTime = anchor + "T" + hhmm
		}
		if endChanged {
			hhmm, ok := parseTimeOfDay(blockEditEnd)
			if !ok {
				return fmt.Errorf("invalid end time: %q", blockEditEnd)
			}
			block.EndTime = anchor + "T" + hhmm
		}
		return nil
	}

	date := block.Date()
	if dateChanged {
		if _, err := time.Parse("2006-01-02", blockEditDate); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", blockEditDate)
		}
		date = blockEditDate
	}

	start, end, ok := block.TimeOfDay()
	if !ok {
		return fmt.Errorf("block has malformed times: %q / %q", block.StartTime, block.EndTime)
	}
	if startChanged {
		start, ok = parseTimeOfDay(blockEditStart)
		if !ok {
			return fmt.Errorf("invalid start time: %q", blockEditStart)
		}
	}
	if endChanged {
		end, ok = parseTimeOfDay(blockEditEnd)
		if !ok {
			return fmt.Errorf("invalid end time: %q", blockEditEnd)
		}
	}

	block.StartTime = date + "T" + start
	block.EndTime = date + "T" + end
	return nil
}

var archiveBlockCmd = &cobra.Command{
	Use:   "archive [blockID]",
	Short: "Flag a block as archived so it leaves the day view",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setBlockArchivedFlag(args[0], true)
	},
}

var unarchiveBlockCmd = &cobra.Command{
	Use:   "unarchive [blockID]",
	Short: "Clear a block's archived flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setBlockArchivedFlag(args[0], false)
	},
}

func setBlockArchivedFlag(ref string, archived bool) {
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

	idx, ok := store.FindBlock(collection.Blocks, ref)
	if !ok {
		log.Printf("❌ Block not found: %s", ref)
		os.Exit(1)
	}

	if archived {
		collection.Blocks[idx].SetArchived()
	} else {
		collection.Blocks[idx].ResetArchived()
	}

	if err := store.SaveBlocks(*config, collection); err != nil {
		log.Printf("❌ Failed to save blocks: %v", err)
		os.Exit(1)
	}

	state := "archived"
	if !archived {
		state = "active again"
	}
	fmt.Printf("✅ Block %q is now %s.\n", collection.Blocks[idx].Title, state)
}

var removeBlockCmd = &cobra.Command{
	Use:     "remove [blockID]",
	Short:   "Remove a time block",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
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

		idx, ok := store.FindBlock(collection.Blocks, args[0])
		if !ok {
			log.Printf("❌ Block not found: %s", args[0])
			os.Exit(1)
		}
		block := collection.Blocks[idx]

		if !blockRemoveForce && !confirmPrompt(fmt.Sprintf("Remove block %q?", block.Title)) {
			fmt.Println("Cancelled.")
			return
		}

		collection.Blocks = append(collection.Blocks[:idx], collection.Blocks[idx+1:]...)
		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Block %q has been removed.\n", block.Title)
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func describeWhen(b model.Block) string {
	if b.Recurring {
		return "Every " + strings.Join(abbreviateDays(b.RecurrenceDays), ", ")
	}
	if date := b.Date(); date != "" {
		return date
	}
	return "-"
}

func describeTimeRange(b model.Block) string {
	start, end, ok := b.TimeOfDay()
	if !ok {
		return "-"
	}
	startLabel, ok1 := schedule.To12Hour(start)
	endLabel, ok2 := schedule.To12Hour(end)
	if !ok1 || !ok2 {
		return "-"
	}
	return startLabel + " - " + endLabel
}

func describeTasks(b model.Block) string {
	if len(b.Tasks) == 0 {
		return "-"
	}
	done := 0
	for _, task := range b.Tasks {
		if task.Completed {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(b.Tasks))
}

func abbreviateDays(days []string) []string {
	abbreviated := make([]string, 0, len(days))
	for _, day := range days {
		if len(day) > 3 {
			abbreviated = append(abbreviated, day[:3])
		} else {
			abbreviated = append(abbreviated, day)
		}
	}
	return abbreviated
}

func init() {
	blockCmd.AddCommand(newBlockCmd)
	blockCmd.AddCommand(blockListCmd)
	blockCmd.AddCommand(showBlockCmd)
	blockCmd.AddCommand(editBlockCmd)
	blockCmd.AddCommand(archiveBlockCmd)
	blockCmd.AddCommand(unarchiveBlockCmd)
	blockCmd.AddCommand(removeBlockCmd)
	rootCmd.AddCommand(blockCmd)

	newBlockCmd.Flags().StringVarP(&blockDate, "date", "d", "", "Date (YYYY-MM-DD, defaults to today)")
	newBlockCmd.Flags().StringVarP(&blockStart, "start", "s", "", "Start time (e.g. \"9:00 AM\" or 09:00)")
	newBlockCmd.Flags().StringVarP(&blockEnd, "end", "e", "", "End time (e.g. \"10:30 AM\" or 10:30)")
	newBlockCmd.Flags().StringVar(&blockColor, "color", "", "Block color (hex, e.g. #3366ff)")
	newBlockCmd.Flags().StringVarP(&blockCategory, "category", "c", "", "Category ID")
	newBlockCmd.Flags().StringVar(&blockNotes, "notes", "", "Markdown notes")
	newBlockCmd.Flags().BoolVarP(&blockRecurring, "recurring", "r", false, "Repeat weekly instead of on a fixed date")
	newBlockCmd.Flags().StringSliceVar(&blockDays, "days", []string{}, "Weekdays for a recurring block (e.g. Monday,Wednesday)")
	newBlockCmd.Flags().BoolVar(&blockCarryOver, "carry-over", false, "Carry notes and tasks forward from the most recent archived instance")
	newBlockCmd.Flags().StringSliceVarP(&blockTasks, "task", "t", []string{}, "Add a task (repeatable)")
	newBlockCmd.Flags().BoolVarP(&blockForce, "force", "f", false, "Skip the overlap confirmation")

	blockListCmd.Flags().StringVarP(&blockListCategory, "category", "c", "", "Filter by category")
	blockListCmd.Flags().StringVar(&blockListFrom, "from", "", "Filter by start date (YYYY-MM-DD)")
	blockListCmd.Flags().StringVar(&blockListTo, "to", "", "Filter by end date (YYYY-MM-DD)")
	blockListCmd.Flags().StringVarP(&blockListSearchQuery, "search", "q", "", "Search by title, notes or tasks")
	blockListCmd.Flags().IntVar(&blockListPageSize, "limit", 20, "Set the number of blocks to display per page (-1 for all)")
	blockListCmd.Flags().BoolVarP(&blockListRecurring, "recurring", "r", false, "Show only recurring blocks")

	showBlockCmd.Flags().BoolVar(&blockShowMeta, "meta", false, "Hide rendered notes")

	editBlockCmd.Flags().StringVar(&blockEditTitle, "title", "", "New title")
	editBlockCmd.Flags().StringVarP(&blockEditStart, "start", "s", "", "New start time")
	editBlockCmd.Flags().StringVarP(&blockEditEnd, "end", "e", "", "New end time")
	editBlockCmd.Flags().StringVarP(&blockEditDate, "date", "d", "", "New date (YYYY-MM-DD)")
	editBlockCmd.Flags().StringVar(&blockEditColor, "color", "", "New color")
	editBlockCmd.Flags().StringVarP(&blockEditCategory, "category", "c", "", "New category ID")
	editBlockCmd.Flags().BoolVar(&blockEditNotes, "notes", false, "Edit notes in $EDITOR")
	editBlockCmd.Flags().BoolVarP(&blockEditForce, "force", "f", false, "Skip the overlap confirmation")

	removeBlockCmd.Flags().BoolVarP(&blockRemoveForce, "force", "f", false, "Skip the confirmation prompt")
}
