/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/store"
	"github.com/Technical-1/etb-cli/internal/util"
)

var searchCategory string
var searchFrom string
var searchTo string
var searchLiveOnly bool

type searchHit struct {
	id       string
	title    string
	when     string
	time     string
	source   string
	category string
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search live and archived blocks",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"q"},
	Run: func(cmd *cobra.Command, args []string) {
		query := args[0]

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

		var hits []searchHit

		liveMatches := util.FullTextSearch(collection.Blocks, query)
		liveMatches = util.FilterBlocks(liveMatches, searchCategory, searchFrom, searchTo)

		// Dated live blocks first, newest date first; recurring blocks last.
		var dated, recurring []model.Block
		for _, b := range liveMatches {
			if b.Recurring {
				recurring = append(recurring, b)
			} else {
				dated = append(dated, b)
			}
		}
		sort.SliceStable(dated, func(i, j int) bool {
			return dated[i].Date() > dated[j].Date()
		})

		for _, b := range append(dated, recurring...) {
			hits = append(hits, searchHit{
				id:       shortID(b.ID),
				title:    b.Title,
				when:     describeWhen(b),
				time:     describeTimeRange(b),
				source:   "live",
				category: model.CategoryName(categories, b.Category),
			})
		}

		if !searchLiveOnly {
			for _, day := range archive.SortedDates() {
				if (searchFrom != "" || searchTo != "") && !util.IsWithinDateRange(day, searchFrom, searchTo) {
					continue
				}
				for _, ab := range archive.Days[day] {
					if !util.MatchesArchivedQuery(ab, query) {
						continue
					}
					if searchCategory != "" && !categoryMatches(categories, ab.Category, searchCategory) {
						continue
					}
					hits = append(hits, searchHit{
						id:       shortID(ab.ID),
						title:    ab.Title,
						when:     day,
						time:     describeArchivedTime(ab),
						source:   "archive",
						category: model.CategoryName(categories, ab.Category),
					})
				}
			}
		}

		if len(hits) == 0 {
			fmt.Println("No matching blocks found.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("When"), text.FgGreen.Sprintf("Time"),
			text.FgGreen.Sprintf("Category"), text.FgGreen.Sprintf("Source"),
		})
		for _, hit := range hits {
			source := hit.source
			if source == "archive" {
				source = text.Faint.Sprint(source)
			}
			t.AppendRow(table.Row{hit.id, hit.title, hit.when, hit.time, hit.category, source})
		}
		t.Render()
	},
}

func categoryMatches(categories []model.Category, categoryID, filter string) bool {
	if categoryID == filter {
		return true
	}
	return model.CategoryName(categories, categoryID) == filter
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Filter by category")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "Filter by start date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "Filter by end date (YYYY-MM-DD)")
	searchCmd.Flags().BoolVar(&searchLiveOnly, "live", false, "Skip the archive")
}
