// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// DefaultLevels разбирает встроенный levels.yaml.
func DefaultLevels() Levels {
	levels, err := ParseLevels(defaultLevelsYAML)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded levels.yaml is broken: %v", err))
	}
	return levels
}

// ParseLevels разбирает YAML со списком уровней.
func ParseLevels(data []byte) (Levels, error) {
	var levels Levels
	if err := yaml.Unmarshal(data, &levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal levels: %w", err)
	}
	if err := levels.validate(); err != nil {
		return nil, fmt.Errorf("invalid levels: %w", err)
	}
	return levels, nil
}

// LoadLevels читает файл уровней. Пустой путь: встроенные уровни.
func LoadLevels(path string) (Levels, error) {
	if path == "" {
		return DefaultLevels(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels file: %w", err)
	}
	return ParseLevels(file)
}
