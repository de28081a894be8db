package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Player   PlayerConfig    `json:"player"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Spray    SprayConfig     `json:"spray"`
	Kick     KickConfig      `json:"kick"`
	Combat   CombatConfig    `json:"combat"`
	Debug    DebugConfig     `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	TileSize     int     `json:"tileSize"`
	ChunkSize    int     `json:"chunkSize"`
	MaxDelta     float64 `json:"maxDelta"` // seconds; larger frame deltas are clamped
}

type PlayerConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type MovementConfig struct {
	MaxSpeed       float64 `json:"maxSpeed"`
	Acceleration   float64 `json:"acceleration"`
	GroundFriction float64 `json:"groundFriction"`
	AirFriction    float64 `json:"airFriction"`
}

type JumpConfig struct {
	MaxHeight  float64 `json:"maxHeight"`
	MinHeight  float64 `json:"minHeight"`
	JumpBuffer float64 `json:"jumpBuffer"`
}

type SprayConfig struct {
	Reach int `json:"reach"`
}

type KickConfig struct {
	Window float64 `json:"window"`
	PowerX float64 `json:"powerX"`
	PowerY float64 `json:"powerY"`
}

// CombatConfig holds the player-vs-actor interaction tuning
type CombatConfig struct {
	HazardKick        float64 `json:"hazardKick"`   // kick speed of a damaging spray hit
	StunDuration      float64 `json:"stunDuration"` // water spray stun
	WeakPointProgress float64 `json:"weakPointProgress"`
	WeakPointDrain    float64 `json:"weakPointDrain"` // per tick under a damaging spray
	WeakPointBreak    float64 `json:"weakPointBreak"`
	SlimeShrink       float64 `json:"slimeShrink"`
	SlimeMinSide      float64 `json:"slimeMinSide"`
	FireDouse         float64 `json:"fireDouse"` // seconds a sprayed fire stays out
}

type DebugConfig struct {
	Invincible bool `json:"invincible"`
	DrawChunks bool `json:"drawChunks"`
}
