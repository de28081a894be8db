package entity

import "math"

// Hazard is the player's spray effect as seen by everything it can touch
type Hazard interface {
	Overlaps(r Rect) bool
	Damaging() bool
}

// Spray is the player's hazard effect: a box in front of the player while the
// spray button is held. Water stuns, acid damages.
type Spray struct {
	Active bool
	Acid   bool
	Box    Rect
}

// Overlaps reports whether the active spray touches r
func (s *Spray) Overlaps(r Rect) bool {
	return s.Active && s.Box.Overlaps(r)
}

// Damaging reports whether the spray is in acid mode
func (s *Spray) Damaging() bool {
	return s.Acid
}

// PlayerConfig holds player movement tuning (pixels, seconds)
type PlayerConfig struct {
	Width          int
	Height         int
	Speed          float64 // max run speed
	Accel          float64 // speed added per tick while holding a direction
	GroundFriction float64
	AirFriction    float64
	MaxJumpHeight  float64
	MinJumpHeight  float64
	JumpBuffer     float64
	SprayReach     int
	KickWindow     float64
	KickPowerX     float64
	KickPowerY     float64
}

// DefaultPlayerConfig returns the default configuration
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Width:          12,
		Height:         16,
		Speed:          16 * 5,
		Accel:          8,
		GroundFriction: 0.85,
		AirFriction:    0.93,
		MaxJumpHeight:  3.35 * 16,
		MinJumpHeight:  0.5 * 16,
		JumpBuffer:     0.1,
		SprayReach:     40,
		KickWindow:     0.2,
		KickPowerX:     350,
		KickPowerY:     250,
	}
}

// TextLine is a queued line of on-screen text
type TextLine struct {
	Text    string
	Seconds float64
}

// Player represents the player entity
type Player struct {
	Body
	Config PlayerConfig
	Spawn  Vec2

	FacingDir float64 // -1 or 1
	Spray     Spray
	HasAcid   bool
	HasKick   bool

	// Debug/god mode; also set by the host during scripted moments
	Invulnerable bool

	// Timers
	JumpBufferTimer float64
	KickTimer       float64 // kick window after the kick button
	KickedTimer     float64 // pose hold after kicking an actor

	// Kick state
	HorizontalKicking bool // launched off a wall; speed cap lifted
	HoldingDown       bool
	KickDir           float64

	// Derived jump velocities
	MaxJumpVel float64
	MinJumpVel float64

	textQueue   []TextLine
	currentText *TextLine
	textTimer   float64
}

// NewPlayer creates a new player at spawn
func NewPlayer(spawn Vec2, cfg PlayerConfig) *Player {
	p := &Player{
		Body:      *NewBody(spawn, cfg.Width, cfg.Height),
		Config:    cfg,
		Spawn:     spawn,
		FacingDir: 1,
		KickDir:   1,
	}
	p.ApplyGravity = true
	p.ApplyCollision = true
	p.recomputeJump()
	return p
}

func (p *Player) recomputeJump() {
	p.MaxJumpVel = -math.Sqrt(2 * p.Gravity * p.Config.MaxJumpHeight)
	p.MinJumpVel = -math.Sqrt(2 * p.Gravity * p.Config.MinJumpHeight)
}

// SetGravity changes gravity and the jump velocities derived from it
func (p *Player) SetGravity(g, maxFall float64) {
	p.Gravity = g
	p.MaxFallSpeed = maxFall
	p.recomputeJump()
}

// GetBody returns the physics body
func (p *Player) GetBody() *Body {
	return &p.Body
}

// Invincible reports whether contact damage is ignored
func (p *Player) Invincible() bool {
	return p.Invulnerable
}

// Facing returns -1 or 1
func (p *Player) Facing() float64 {
	return p.FacingDir
}

// Hazard returns the spray effect
func (p *Player) Hazard() Hazard {
	return &p.Spray
}

// DisplayText queues a line unless the same line is already waiting
func (p *Player) DisplayText(text string, seconds float64) {
	line := TextLine{Text: text, Seconds: seconds}
	for _, q := range p.textQueue {
		if q == line {
			return
		}
	}
	p.textQueue = append(p.textQueue, line)
}

// ClearText drops the queue and the line on screen
func (p *Player) ClearText() {
	p.textQueue = nil
	p.currentText = nil
	p.textTimer = 0
}

// CurrentText returns the line on screen, if any
func (p *Player) CurrentText() (string, bool) {
	if p.currentText == nil {
		return "", false
	}
	return p.currentText.Text, true
}

// UpdateText advances the text queue
func (p *Player) UpdateText(dt float64) {
	if p.textTimer > 0 {
		p.textTimer = Countdown(p.textTimer, dt)
		return
	}
	if len(p.textQueue) > 0 {
		line := p.textQueue[0]
		p.textQueue = p.textQueue[1:]
		p.currentText = &line
		p.textTimer = line.Seconds
		return
	}
	p.currentText = nil
}

// ReturnToSpawn teleports the player back to spawn and clears text
func (p *Player) ReturnToSpawn() {
	p.Pos = p.Spawn
	p.Vel = Vec2{}
	p.UpdateRectPos()
	p.ClearText()
}

// Kicking reports whether the kick pose should be shown
func (p *Player) Kicking() bool {
	return (p.KickTimer > 0 && !p.HoldingDown) || p.HorizontalKicking || p.KickedTimer > 0
}

// KickBox returns the rect the kick tests this tick: below the feet while
// holding down, otherwise one body width in the facing direction
func (p *Player) KickBox() Rect {
	if p.HoldingDown {
		return Rect{X: int(p.Pos.X), Y: int(p.Pos.Y) + p.Height, W: p.Width, H: p.Height / 2}
	}
	return Rect{X: int(p.Pos.X + float64(p.Width)*p.FacingDir), Y: int(p.Pos.Y), W: p.Width, H: p.Height}
}

// UpdateSpray recomputes the spray box from the current rect and facing
func (p *Player) UpdateSpray() {
	reach := p.Config.SprayReach
	box := Rect{Y: p.Rect.Y, W: reach, H: p.Rect.H}
	if p.FacingDir < 0 {
		box.X = p.Rect.X - reach
	} else {
		box.X = p.Rect.Right()
	}
	p.Spray.Box = box
}

// ToggleAcid switches the spray between water and acid once acid is unlocked
func (p *Player) ToggleAcid() {
	if !p.HasAcid {
		return
	}
	p.Spray.Acid = !p.Spray.Acid
}
