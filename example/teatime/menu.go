package main

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

type menuFile struct {
	Teas []TeaKind `yaml:"teas"`
}

// LoadMenu parses the embedded tea menu.
func LoadMenu() ([]TeaKind, error) {
	var file menuFile
	if err := yaml.Unmarshal(menuYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse menu.yaml: %w", err)
	}
	if len(file.Teas) == 0 {
		return nil, fmt.Errorf("menu.yaml lists no teas")
	}
	for _, kind := range file.Teas {
		if kind.Name == "" {
			return nil, fmt.Errorf("menu.yaml lists a tea without a name")
		}
		if kind.MinTemp > kind.MaxTemp {
			return nil, fmt.Errorf("tea %q has min_temp above max_temp", kind.Name)
		}
	}
	return file.Teas, nil
}
