// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrInvalidSpeed  = errors.New("enemy speed must be in (0, 1)")
	ErrInvalidHealth = errors.New("enemy health must be positive")
	ErrInvalidRange  = errors.New("tower range must be positive")
	ErrInvalidReload = errors.New("tower reload must be positive")
	ErrInvalidPrice  = errors.New("tower prices must not be negative")
	ErrMissingType   = errors.New("definition missing")
)

// Library holds the stat tables for one game session, keyed by type.
type Library struct {
	Enemies    map[EnemyType]EnemyDefinition
	Towers     map[TowerType]TowerDefinition
	SpawnTable []SpawnEntry
}

// libraryFile is the on-disk JSON layout.
type libraryFile struct {
	Enemies    []EnemyDefinition `json:"enemies"`
	Towers     []TowerDefinition `json:"towers"`
	SpawnTable []SpawnEntry      `json:"spawn_table"`
}

// DefaultLibrary returns the built-in stat tables.
func DefaultLibrary() *Library {
	lib := &Library{
		Enemies:    make(map[EnemyType]EnemyDefinition, len(DefaultEnemies)),
		Towers:     make(map[TowerType]TowerDefinition, len(DefaultTowers)),
		SpawnTable: append([]SpawnEntry(nil), DefaultSpawnTable...),
	}
	for _, def := range DefaultEnemies {
		lib.Enemies[def.ID] = def
	}
	for _, def := range DefaultTowers {
		lib.Towers[def.ID] = def
	}
	return lib
}

// LoadLibrary reads a definitions file on top of the defaults. Entries missing
// from the file keep their built-in values.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseLibrary(file)
}

// ParseLibrary decodes definitions JSON on top of the defaults and validates the result.
func ParseLibrary(data []byte) (*Library, error) {
	var raw libraryFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := DefaultLibrary()
	for _, def := range raw.Enemies {
		lib.Enemies[def.ID] = def
	}
	for _, def := range raw.Towers {
		lib.Towers[def.ID] = def
	}
	if len(raw.SpawnTable) > 0 {
		lib.SpawnTable = raw.SpawnTable
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate checks every definition. Enemy speed must stay below one tile per
// tick so that at most one tile transition completes per tick.
func (l *Library) Validate() error {
	var errs []error
	for _, et := range EnemyTypes {
		def, ok := l.Enemies[et]
		if !ok {
			errs = append(errs, fmt.Errorf("enemy %s: %w", et, ErrMissingType))
			continue
		}
		if def.Speed <= 0 || def.Speed >= 1 {
			errs = append(errs, fmt.Errorf("enemy %s speed %v: %w", et, def.Speed, ErrInvalidSpeed))
		}
		if def.Health <= 0 {
			errs = append(errs, fmt.Errorf("enemy %s: %w", et, ErrInvalidHealth))
		}
	}
	for _, tt := range TowerTypes {
		def, ok := l.Towers[tt]
		if !ok {
			errs = append(errs, fmt.Errorf("tower %s: %w", tt, ErrMissingType))
			continue
		}
		if def.Range <= 0 {
			errs = append(errs, fmt.Errorf("tower %s: %w", tt, ErrInvalidRange))
		}
		if def.Reload <= 0 {
			errs = append(errs, fmt.Errorf("tower %s: %w", tt, ErrInvalidReload))
		}
		if def.BuyPrice < 0 || def.SellPrice < 0 {
			errs = append(errs, fmt.Errorf("tower %s: %w", tt, ErrInvalidPrice))
		}
	}
	return errors.Join(errs...)
}

// Enemy returns the definition for t.
func (l *Library) Enemy(t EnemyType) (EnemyDefinition, bool) {
	def, ok := l.Enemies[t]
	return def, ok
}

// Tower returns the definition for t.
func (l *Library) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := l.Towers[t]
	return def, ok
}
