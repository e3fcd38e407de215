package store

import (
	"fmt"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
)

func LoadSettings(config model.Config) (model.Settings, error) {
	var settings model.Settings
	path := filepath.Join(config.DataDir, "settings.json")
	if err := LoadJSON(path, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("error loading settings: %w", err)
	}
	return settings, nil
}

func SaveSettings(config model.Config, settings model.Settings) error {
	if settings.HiddenTimes == nil {
		settings.HiddenTimes = []string{}
	}
	return SaveJSON(filepath.Join(config.DataDir, "settings.json"), settings)
}
