package store

import (
	"fmt"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
)

func LoadTemplates(config model.Config) ([]model.Template, error) {
	var templates []model.Template
	path := filepath.Join(config.DataDir, "templates.json")
	if err := LoadJSON(path, &templates); err != nil {
		return nil, fmt.Errorf("error loading templates: %w", err)
	}
	return templates, nil
}

func SaveTemplates(config model.Config, templates []model.Template) error {
	if templates == nil {
		templates = []model.Template{}
	}
	return SaveJSON(filepath.Join(config.DataDir, "templates.json"), templates)
}
