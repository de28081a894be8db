package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Actors  *ActorsConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	if err := validateStage(&cfg); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (physics, actors)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	actors, err := l.LoadActors()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Actors:  actors,
	}, nil
}

// validateStage checks the layout only; actor kinds are checked by the stage loader
func validateStage(cfg *StageConfig) error {
	if len(cfg.Layers.Collision) == 0 {
		return fmt.Errorf("collision layer is empty")
	}
	for ch, m := range cfg.TileMapping {
		if len([]rune(ch)) != 1 {
			return fmt.Errorf("tile mapping key %q must be a single character", ch)
		}
		switch strings.ToLower(m.Type) {
		case "wall", "acid", "slime", "fire", "empty":
		default:
			return fmt.Errorf("tile %q: unknown type %q", ch, m.Type)
		}
	}
	for i, h := range cfg.Hints {
		if h.Rect.W <= 0 || h.Rect.H <= 0 {
			return fmt.Errorf("hint %d: rect must have positive size", i)
		}
	}
	for i, p := range cfg.Pickups {
		switch p.Type {
		case "acid", "kick":
		default:
			return fmt.Errorf("pickup %d: unknown type %q", i, p.Type)
		}
	}
	return nil
}
