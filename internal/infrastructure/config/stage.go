package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Background  BackgroundConfig             `json:"background"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Actors      map[string][]PositionConfig  `json:"actors"` // kind -> spawn positions
	Boss        *PositionConfig              `json:"boss"`
	WeakPoints  []PositionConfig             `json:"weakPoints"`
	Hints       []HintConfig                 `json:"hints"`
	Pickups     []PickupSpawnConfig          `json:"pickups"`
	Intro       []TextConfig                 `json:"intro"`
	Victory     VictoryConfig                `json:"victory"`
}

type StageSizeConfig struct {
	TileSize int `json:"tileSize"`
}

type BackgroundConfig struct {
	Color string `json:"color"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

// TileMappingConfig maps a collision layer character to a tile.
// Type is one of wall, acid, slime, fire; only solid walls go into the
// spatial index.
type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}

// HintConfig is a region that shows text while the boss is past phase 0.
// The first matching region wins.
type HintConfig struct {
	Rect    RectConfig `json:"rect"`
	Text    string     `json:"text"`
	Seconds float64    `json:"seconds"`
}

// TextConfig is a line queued on the player's text display
type TextConfig struct {
	Text    string  `json:"text"`
	Seconds float64 `json:"seconds"`
}

type PickupSpawnConfig struct {
	Type string `json:"type"` // acid, kick
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type RectConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// VictoryConfig is what the level hands over once the boss is defeated
type VictoryConfig struct {
	Scene string   `json:"scene"`
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}
