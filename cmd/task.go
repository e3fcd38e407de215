/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/store"
)

// loadBlockForTask resolves a block reference and returns the collection,
// the index of the block, and the loaded config.
func loadBlockForTask(ref string) (model.BlockCollection, int, *model.Config) {
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
	return collection, idx, config
}

func parseTaskNumber(arg string, tasks []model.Task) int {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(tasks) {
		log.Printf("❌ Invalid task number %q (block has %d tasks)", arg, len(tasks))
		os.Exit(1)
	}
	return n - 1
}

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Manage tasks attached to time blocks",
	Aliases: []string{"t"},
}

var addTaskCmd = &cobra.Command{
	Use:     "add [blockID] [text]",
	Short:   "Add a task to a block",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"a"},
	Run: func(cmd *cobra.Command, args []string) {
		collection, idx, config := loadBlockForTask(args[0])

		collection.Blocks[idx].Tasks = append(collection.Blocks[idx].Tasks, model.Task{Text: args[1]})

		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task added to %q.\n", collection.Blocks[idx].Title)
	},
}

var checkTaskCmd = &cobra.Command{
	Use:   "check [blockID] [number]",
	Short: "Mark a task as complete",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		collection, idx, config := loadBlockForTask(args[0])
		block := &collection.Blocks[idx]

		taskIdx := parseTaskNumber(args[1], block.Tasks)
		block.Tasks[taskIdx].Completed = true

		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Checked off %q.\n", block.Tasks[taskIdx].Text)

		allDone := true
		for _, task := range block.Tasks {
			if !task.Completed {
				allDone = false
				break
			}
		}
		if allDone {
			fmt.Printf("🎉 All tasks in %q are complete!\n", block.Title)
		}
	},
}

var uncheckTaskCmd = &cobra.Command{
	Use:   "uncheck [blockID] [number]",
	Short: "Mark a task as incomplete",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		collection, idx, config := loadBlockForTask(args[0])
		block := &collection.Blocks[idx]

		taskIdx := parseTaskNumber(args[1], block.Tasks)
		block.Tasks[taskIdx].Completed = false

		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Unchecked %q.\n", block.Tasks[taskIdx].Text)
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list [blockID]",
	Short:   "List a block's tasks",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		collection, idx, _ := loadBlockForTask(args[0])
		block := collection.Blocks[idx]

		if len(block.Tasks) == 0 {
			fmt.Printf("No tasks in %q.\n", block.Title)
			return
		}

		fmt.Printf("Tasks in %q:\n", block.Title)
		for i, task := range block.Tasks {
			mark := "[ ]"
			if task.Completed {
				mark = color.New(color.FgGreen).Sprint("[x]")
			}
			fmt.Printf("  %d. %s %s\n", i+1, mark, task.Text)
		}
	},
}

var removeTaskCmd = &cobra.Command{
	Use:     "remove [blockID] [number]",
	Short:   "Remove a task from a block",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		collection, idx, config := loadBlockForTask(args[0])
		block := &collection.Blocks[idx]

		taskIdx := parseTaskNumber(args[1], block.Tasks)
		removed := block.Tasks[taskIdx]
		block.Tasks = append(block.Tasks[:taskIdx], block.Tasks[taskIdx+1:]...)

		if err := store.SaveBlocks(*config, collection); err != nil {
			log.Printf("❌ Failed to save blocks: %v", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Removed task %q.\n", removed.Text)
	},
}

func init() {
	taskCmd.AddCommand(addTaskCmd)
	taskCmd.AddCommand(checkTaskCmd)
	taskCmd.AddCommand(uncheckTaskCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(removeTaskCmd)
	rootCmd.AddCommand(taskCmd)
}
