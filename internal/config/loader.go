package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads a rules file and fills unset fields with defaults. An empty path
// returns the defaults.
func Load(path string) (*RulesConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	var rc RulesConfig
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	rc.fill()
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return &rc, nil
}
