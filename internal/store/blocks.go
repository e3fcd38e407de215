package store

import (
	"fmt"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
)

func blocksPath(config model.Config) string {
	return filepath.Join(config.DataDir, "blocks.json")
}

// LoadBlocks reads the live block collection, returning an empty collection
// when none exists yet.
func LoadBlocks(config model.Config) (model.BlockCollection, error) {
	var blocks model.BlockCollection
	if err := LoadJSON(blocksPath(config), &blocks); err != nil {
		return model.BlockCollection{}, fmt.Errorf("error loading blocks: %w", err)
	}
	if blocks.Blocks == nil {
		blocks.Blocks = []model.Block{}
	}
	return blocks, nil
}

func SaveBlocks(config model.Config, blocks model.BlockCollection) error {
	if blocks.Blocks == nil {
		blocks.Blocks = []model.Block{}
	}
	return SaveJSON(blocksPath(config), blocks)
}

// FindBlock locates a live block by id, or by unambiguous id prefix as a
// convenience for typing at the command line.
func FindBlock(blocks []model.Block, id string) (int, bool) {
	for i, b := range blocks {
		if b.ID == id {
			return i, true
		}
	}
	match := -1
	for i, b := range blocks {
		if len(id) >= 4 && len(b.ID) > len(id) && b.ID[:len(id)] == id {
			if match >= 0 {
				return -1, false
			}
			match = i
		}
	}
	if match >= 0 {
		return match, true
	}
	return -1, false
}
