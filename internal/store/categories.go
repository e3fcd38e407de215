package store

import (
	"fmt"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
)

func LoadCategories(config model.Config) ([]model.Category, error) {
	var categories []model.Category
	path := filepath.Join(config.DataDir, "categories.json")
	if err := LoadJSON(path, &categories); err != nil {
		return nil, fmt.Errorf("error loading categories: %w", err)
	}
	return categories, nil
}

func SaveCategories(config model.Config, categories []model.Category) error {
	if categories == nil {
		categories = []model.Category{}
	}
	return SaveJSON(filepath.Join(config.DataDir, "categories.json"), categories)
}

func LoadColorPresets(config model.Config) ([]string, error) {
	var presets []string
	path := filepath.Join(config.DataDir, "color_presets.json")
	if err := LoadJSON(path, &presets); err != nil {
		return nil, fmt.Errorf("error loading color presets: %w", err)
	}
	return presets, nil
}

func SaveColorPresets(config model.Config, presets []string) error {
	if presets == nil {
		presets = []string{}
	}
	return SaveJSON(filepath.Join(config.DataDir, "color_presets.json"), presets)
}
