package system

import (
	"fmt"
	"sort"

	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/domain/spatial"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// Spawn is one regular actor from the level's spawn lists
type Spawn struct {
	Kind actor.Kind
	Pos  entity.Vec2
}

// Hint is a text region shown while the boss is past its first phase
type Hint struct {
	Rect    entity.Rect
	Text    string
	Seconds float64
}

// Pickup is an ability item lying in the level
type Pickup struct {
	Type string
	Rect entity.Rect
}

// Level is everything static a level scene needs: geometry, spawn lists,
// scripted regions and hazard tiles.
type Level struct {
	ID          string
	Name        string
	Index       *spatial.Index
	TileSize    int
	Width       int // pixels
	Height      int
	PlayerSpawn entity.Vec2

	Spawns     []Spawn
	Boss       *entity.Vec2
	WeakPoints []entity.Rect
	Hints      []Hint
	Pickups    []Pickup

	Acid  []entity.Rect
	Slime []entity.Rect
	Fire  []entity.Rect

	Victory config.VictoryConfig
	Intro   []Hint
}

// LoadStage converts a StageConfig into a Level.
// Spawn kinds are validated here so a bad level fails before the first tick.
func LoadStage(cfg *config.StageConfig, tileSize, chunkSize int) (*Level, error) {
	if cfg.Size.TileSize > 0 {
		tileSize = cfg.Size.TileSize
	}
	if tileSize <= 0 {
		tileSize = spatial.DefaultTileSize
	}

	lvl := &Level{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Index:       spatial.NewIndex(tileSize, chunkSize),
		TileSize:    tileSize,
		Height:      len(cfg.Layers.Collision) * tileSize,
		PlayerSpawn: entity.Vec2{X: float64(cfg.PlayerSpawn.X), Y: float64(cfg.PlayerSpawn.Y)},
		Victory:     cfg.Victory,
	}

	for y, row := range cfg.Layers.Collision {
		lvl.loadRow(cfg, []rune(row), y)
	}

	// Validate names first, then build spawn lists in kind order so setup is
	// deterministic regardless of map iteration
	names := make([]string, 0, len(cfg.Actors))
	for name := range cfg.Actors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := actor.ParseKind(name); err != nil {
			return nil, fmt.Errorf("stage %s: %w", cfg.ID, err)
		}
	}
	for _, kind := range actor.Kinds() {
		for _, p := range cfg.Actors[string(kind)] {
			lvl.Spawns = append(lvl.Spawns, Spawn{Kind: kind, Pos: entity.Vec2{X: float64(p.X), Y: float64(p.Y)}})
		}
	}

	if cfg.Boss != nil {
		lvl.Boss = &entity.Vec2{X: float64(cfg.Boss.X), Y: float64(cfg.Boss.Y)}
	}
	for _, p := range cfg.WeakPoints {
		lvl.WeakPoints = append(lvl.WeakPoints, entity.Rect{X: p.X, Y: p.Y, W: tileSize, H: tileSize})
	}
	for _, h := range cfg.Hints {
		lvl.Hints = append(lvl.Hints, Hint{
			Rect:    entity.Rect{X: h.Rect.X, Y: h.Rect.Y, W: h.Rect.W, H: h.Rect.H},
			Text:    h.Text,
			Seconds: h.Seconds,
		})
	}
	for _, h := range cfg.Intro {
		lvl.Intro = append(lvl.Intro, Hint{Text: h.Text, Seconds: h.Seconds})
	}
	for _, p := range cfg.Pickups {
		lvl.Pickups = append(lvl.Pickups, Pickup{Type: p.Type, Rect: entity.Rect{X: p.X, Y: p.Y, W: tileSize, H: tileSize}})
	}

	return lvl, nil
}

// loadRow inserts horizontal runs of solid tiles and collects hazard tiles
func (lvl *Level) loadRow(cfg *config.StageConfig, row []rune, y int) {
	ts := lvl.TileSize
	if w := len(row) * ts; w > lvl.Width {
		lvl.Width = w
	}

	runStart := -1
	flush := func(end int) {
		if runStart >= 0 {
			lvl.Index.Insert(entity.Rect{X: runStart * ts, Y: y * ts, W: (end - runStart) * ts, H: ts})
			runStart = -1
		}
	}

	for x, ch := range row {
		mapping, ok := cfg.TileMapping[string(ch)]
		if !ok {
			flush(x)
			continue
		}
		tile := entity.Rect{X: x * ts, Y: y * ts, W: ts, H: ts}
		switch mapping.Type {
		case "acid":
			lvl.Acid = append(lvl.Acid, tile)
		case "slime":
			lvl.Slime = append(lvl.Slime, tile)
		case "fire":
			lvl.Fire = append(lvl.Fire, tile)
		}
		if mapping.Type == "wall" && mapping.Solid {
			if runStart < 0 {
				runStart = x
			}
			continue
		}
		flush(x)
	}
	flush(len(row))
}
