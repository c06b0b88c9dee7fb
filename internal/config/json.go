package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads and decodes a JSON configuration file into a
// StructuredConfig layer. Field names follow the json tags declared on the
// config types.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding json config file: %w", err)
	}

	return cfg, nil
}
