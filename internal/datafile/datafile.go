package datafile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"SiliconMeter/internal/model"
)

// Load reads the provider-side product database from a JSON file.
// Returns an empty database if the file doesn't exist.
func Load(path string) (*model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Snapshot{}, nil
		}
		return nil, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	return &snap, nil
}

// Save writes the product database to a JSON file, stamping last_updated.
func Save(path string, snap *model.Snapshot) error {
	snap.LastUpdated = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
