/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/schedule"
	"github.com/Technical-1/etb-cli/internal/store"
)

var templateColor string
var templateCategory string
var templateNotes string
var templateTasks []string

var applyDate string
var applyStart string
var applyEnd string
var applyForce bool

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:     "template",
	Short:   "Manage reusable block templates",
	Aliases: []string{"tpl"},
}

var addTemplateCmd = &cobra.Command{
	Use:     "add [title]",
	Short:   "Create a template from scratch",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		templates, err := store.LoadTemplates(*config)
		if err != nil {
			log.Printf("❌ Error loading templates: %v", err)
			os.Exit(1)
		}

		template := model.Template{
			ID:        uuid.NewString(),
			Title:     args[0],
			Color:     templateColor,
			Category:  templateCategory,
			Notes:     templateNotes,
			TaskTexts: templateTasks,
		}
		templates = append(templates, template)

		if err := store.SaveTemplates(*config, templates); err != nil {
			log.Printf("❌ Failed to save templates: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Template %q has been created. (id: %s)\n", template.Title, shortID(template.ID))
	},
}

var templateFromBlockCmd = &cobra.Command{
	Use:   "from-block [blockID]",
	Short: "Create a template from an existing block",
	Args:  cobra.ExactArgs(1),
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

		template := model.Template{
			ID:       uuid.NewString(),
			Title:    block.Title,
			Color:    block.Color,
			Category: block.Category,
			Notes:    block.Notes,
		}
		for _, task := range block.Tasks {
			template.TaskTexts = append(template.TaskTexts, task.Text)
		}

		templates, err := store.LoadTemplates(*config)
		if err != nil {
			log.Printf("❌ Error loading templates: %v", err)
			os.Exit(1)
		}
		templates = append(templates, template)

		if err := store.SaveTemplates(*config, templates); err != nil {
			log.Printf("❌ Failed to save templates: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Template %q has been created from block %s.\n", template.Title, shortID(block.ID))
	},
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List templates",
	Args:    cobra.NoArgs,
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		templates, err := store.LoadTemplates(*config)
		if err != nil {
			log.Printf("❌ Error loading templates: %v", err)
			os.Exit(1)
		}
		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		if len(templates) == 0 {
			fmt.Println("No templates defined.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Category"), text.FgGreen.Sprintf("Tasks"),
		})
		for _, template := range templates {
			t.AppendRow(table.Row{
				shortID(template.ID),
				template.Title,
				model.CategoryName(categories, template.Category),
				len(template.TaskTexts),
			})
		}
		t.Render()
	},
}

var applyTemplateCmd = &cobra.Command{
	Use:   "apply [templateID]",
	Short: "Create a block from a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		templates, err := store.LoadTemplates(*config)
		if err != nil {
			log.Printf("❌ Error loading templates: %v", err)
			os.Exit(1)
		}

		var template *model.Template
		for i := range templates {
			if templates[i].ID == args[0] || shortID(templates[i].ID) == args[0] || templates[i].Title == args[0] {
				template = &templates[i]
				break
			}
		}
		if template == nil {
			log.Printf("❌ Template not found: %s", args[0])
			os.Exit(1)
		}

		collection, err := store.LoadBlocks(*config)
		if err != nil {
			log.Printf("❌ Error loading blocks: %v", err)
			os.Exit(1)
		}

		date := applyDate
		if date == "" {
			date = schedule.FormatDate(time.Now())
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			log.Printf("❌ Invalid date %q (expected YYYY-MM-DD)", applyDate)
			os.Exit(1)
		}

		startHHMM, ok := parseTimeOfDay(applyStart)
		if !ok {
			log.Printf("❌ Invalid start time: %q", applyStart)
			os.Exit(1)
		}
		endHHMM, ok := parseTimeOfDay(applyEnd)
		if !ok {
			log.Printf("❌ Invalid end time: %q", applyEnd)
			os.Exit(1)
		}

		block := model.Block{
			ID:        uuid.NewString(),
			Title:     template.Title,
			Notes:     template.Notes,
			Color:     template.Color,
			Category:  template.Category,
			StartTime: date + "T" + startHHMM,
			EndTime:   date + "T" + endHHMM,
		}
		for _, taskText := range template.TaskTexts {
			block.Tasks = append(block.Tasks, model.Task{Text: taskText})
		}

		if err := schedule.ValidateBlock(block); err != nil {
			log.Printf("❌ Invalid block: %v", err)
			os.Exit(1)
		}

		if !warnOnOverlaps(block, collection.Blocks, applyForce) {
			fmt.Println("Cancelled.")
			return
		}

		collection.Blocks = append(collection.Blocks, block)
		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Block %q has been created from template. (id: %s)\n", block.Title, shortID(block.ID))
	},
}

var removeTemplateCmd = &cobra.Command{
	Use:     "remove [templateID]",
	Short:   "Remove a template",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		templates, err := store.LoadTemplates(*config)
		if err != nil {
			log.Printf("❌ Error loading templates: %v", err)
			os.Exit(1)
		}

		idx := -1
		for i, template := range templates {
			if template.ID == args[0] || shortID(template.ID) == args[0] || template.Title == args[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			log.Printf("❌ Template not found: %s", args[0])
			os.Exit(1)
		}

		removed := templates[idx]
		templates = append(templates[:idx], templates[idx+1:]...)

		if err := store.SaveTemplates(*config, templates); err != nil {
			log.Printf("❌ Failed to save templates: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Template %q has been removed.\n", removed.Title)
	},
}

func init() {
	templateCmd.AddCommand(addTemplateCmd)
	templateCmd.AddCommand(templateFromBlockCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(applyTemplateCmd)
	templateCmd.AddCommand(removeTemplateCmd)
	rootCmd.AddCommand(templateCmd)

	addTemplateCmd.Flags().StringVar(&templateColor, "color", "", "Block color (hex)")
	addTemplateCmd.Flags().StringVarP(&templateCategory, "category", "c", "", "Category ID")
	addTemplateCmd.Flags().StringVar(&templateNotes, "notes", "", "Markdown notes")
	addTemplateCmd.Flags().StringSliceVarP(&templateTasks, "task", "t", []string{}, "Add a task (repeatable)")

	applyTemplateCmd.Flags().StringVarP(&applyDate, "date", "d", "", "Date (YYYY-MM-DD, defaults to today)")
	applyTemplateCmd.Flags().StringVarP(&applyStart, "start", "s", "", "Start time")
	applyTemplateCmd.Flags().StringVarP(&applyEnd, "end", "e", "", "End time")
	applyTemplateCmd.Flags().BoolVarP(&applyForce, "force", "f", false, "Skip the overlap confirmation")
}
