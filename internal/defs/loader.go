// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadEnemyDefinitions загружает каталог врагов из JSON-файла.
func LoadEnemyDefinitions(path string) (EnemyCatalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	catalog, err := ParseEnemyDefinitions(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy definitions from %s", len(catalog), path)
	return catalog, nil
}

// ParseEnemyDefinitions decodes and validates a JSON enemy catalog.
func ParseEnemyDefinitions(data []byte) (EnemyCatalog, error) {
	var catalog EnemyCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for i := range catalog {
		if catalog[i].Scale == 0 {
			catalog[i].Scale = 1
		}
		if catalog[i].ContactDamage == 0 {
			catalog[i].ContactDamage = 1
		}
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid enemy definitions: %w", err)
	}
	return catalog, nil
}
