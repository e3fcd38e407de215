/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/store"
)

var categoryColor string

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// categoryCmd represents the category command
var categoryCmd = &cobra.Command{
	Use:     "category",
	Short:   "Manage block categories",
	Aliases: []string{"cat"},
}

var addCategoryCmd = &cobra.Command{
	Use:     "add [name]",
	Short:   "Add a category",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		if categoryColor != "" && !hexColorPattern.MatchString(categoryColor) {
			log.Printf("❌ Invalid color %q (expected #rrggbb)", categoryColor)
			os.Exit(1)
		}

		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		for _, c := range categories {
			if c.Name == args[0] {
				log.Printf("❌ Category %q already exists.", args[0])
				os.Exit(1)
			}
		}

		category := model.Category{ID: uuid.NewString(), Name: args[0], Color: categoryColor}
		categories = append(categories, category)

		if err := store.SaveCategories(*config, categories); err != nil {
			log.Printf("❌ Failed to save categories: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Category %q has been created. (id: %s)\n", category.Name, shortID(category.ID))
	},
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List categories",
	Args:    cobra.NoArgs,
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		if len(categories) == 0 {
			fmt.Println("No categories defined.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("Name"), text.FgGreen.Sprintf("Color"),
		})
		for _, c := range categories {
			t.AppendRow(table.Row{shortID(c.ID), c.Name, c.Color})
		}
		t.Render()
	},
}

var removeCategoryCmd = &cobra.Command{
	Use:     "remove [name or ID]",
	Short:   "Remove a category",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		categories, err := store.LoadCategories(*config)
		if err != nil {
			log.Printf("❌ Error loading categories: %v", err)
			os.Exit(1)
		}

		idx := -1
		for i, c := range categories {
			if c.ID == args[0] || c.Name == args[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			log.Printf("❌ Category not found: %s", args[0])
			os.Exit(1)
		}

		removed := categories[idx]
		categories = append(categories[:idx], categories[idx+1:]...)

		if err := store.SaveCategories(*config, categories); err != nil {
			log.Printf("❌ Failed to save categories: %v", err)
			os.Exit(1)
		}

		// Blocks referencing the category keep the dangling id; they fall
		// back to showing the raw id and their own color.
		fmt.Printf("✅ Category %q has been removed.\n", removed.Name)
	},
}

// colorsCmd manages the color preset palette offered when creating blocks.
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Manage the color preset palette",
}

var addColorCmd = &cobra.Command{
	Use:   "add [hex]",
	Short: "Add a color preset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		if !hexColorPattern.MatchString(args[0]) {
			log.Printf("❌ Invalid color %q (expected #rrggbb)", args[0])
			os.Exit(1)
		}

		presets, err := store.LoadColorPresets(*config)
		if err != nil {
			log.Printf("❌ Error loading color presets: %v", err)
			os.Exit(1)
		}

		for _, preset := range presets {
			if preset == args[0] {
				log.Printf("❌ Preset %s already exists.", args[0])
				os.Exit(1)
			}
		}

		presets = append(presets, args[0])
		if err := store.SaveColorPresets(*config, presets); err != nil {
			log.Printf("❌ Failed to save color presets: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Added color preset %s\n", args[0])
	},
}

var colorListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List color presets",
	Args:    cobra.NoArgs,
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		presets, err := store.LoadColorPresets(*config)
		if err != nil {
			log.Printf("❌ Error loading color presets: %v", err)
			os.Exit(1)
		}

		if len(presets) == 0 {
			fmt.Println("No color presets defined.")
			return
		}
		for _, preset := range presets {
			fmt.Println(preset)
		}
	},
}

var removeColorCmd = &cobra.Command{
	Use:     "remove [hex]",
	Short:   "Remove a color preset",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v", err)
			os.Exit(1)
		}

		presets, err := store.LoadColorPresets(*config)
		if err != nil {
			log.Printf("❌ Error loading color presets: %v", err)
			os.Exit(1)
		}

		idx := -1
		for i, preset := range presets {
			if preset == args[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			log.Printf("❌ Preset not found: %s", args[0])
			os.Exit(1)
		}

		presets = append(presets[:idx], presets[idx+1:]...)
		if err := store.SaveColorPresets(*config, presets); err != nil {
			log.Printf("❌ Failed to save color presets: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Removed color preset %s\n", args[0])
	},
}

func init() {
	categoryCmd.AddCommand(addCategoryCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(removeCategoryCmd)
	rootCmd.AddCommand(categoryCmd)

	colorsCmd.AddCommand(addColorCmd)
	colorsCmd.AddCommand(colorListCmd)
	colorsCmd.AddCommand(removeColorCmd)
	rootCmd.AddCommand(colorsCmd)

	addCategoryCmd.Flags().StringVar(&categoryColor, "color", "", "Category color (hex, e.g. #3366ff)")
}
