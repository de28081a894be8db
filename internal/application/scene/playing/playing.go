// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/labrun/internal/application/scene"
	"github.com/younwookim/labrun/internal/application/scene/victory"
	"github.com/younwookim/labrun/internal/application/state"
	"github.com/younwookim/labrun/internal/application/system"
	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{20, 20, 30, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorChunk     = color.RGBA{60, 60, 90, 255}
	colorAcid      = color.RGBA{120, 220, 40, 255}
	colorSlime     = color.RGBA{90, 200, 160, 220}
	colorFire      = color.RGBA{240, 120, 30, 255}
	colorFireOut   = color.RGBA{90, 60, 50, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorKick      = color.RGBA{230, 230, 120, 255}
	colorWater     = color.RGBA{80, 140, 255, 120}
	colorAcidSpray = color.RGBA{150, 255, 60, 120}
	colorActor     = color.RGBA{200, 100, 100, 255}
	colorStunned   = color.RGBA{120, 160, 255, 255}
	colorHit       = color.RGBA{255, 255, 255, 255}
	colorBoss      = color.RGBA{170, 60, 160, 255}
	colorBossArmor = color.RGBA{110, 110, 130, 255}
	colorWeakPoint = color.RGBA{255, 80, 80, 255}
	colorPickup    = color.RGBA{255, 215, 0, 255}
	colorShot      = color.RGBA{255, 100, 100, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

// Options configures a level scene
type Options struct {
	Seed       int64  // 0 = time based
	RecordPath string // empty = no recording
	// Input supplies one frame of input; nil reads the keyboard.
	// Returning false skips the frame.
	Input func() (system.InputState, bool)
}

// Level is the main gameplay scene. It owns the tick order, the full reset
// after a death and the hand-over to the next scene.
type Level struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	level    *system.Level
	state    state.GameState

	player    *entity.Player
	physics   *system.PhysicsSystem
	input     *system.InputSystem
	actors    *system.ActorManager
	hazards   *system.HazardSystem
	pickups   *system.PickupSystem
	readInput func() (system.InputState, bool)

	screenW  int
	screenH  int
	maxDelta float64
	bg       color.Color
	deaths   int

	dynamic []entity.Rect

	// Seeds the boss RNG; stored in recordings
	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a level scene for a loaded stage
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, lvl *system.Level, opts Options) (*Level, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	physics := cfg.Physics
	catalog := system.BuildCatalog(cfg.Actors, physics)

	l := &Level{
		config:         cfg,
		stageCfg:       stageCfg,
		level:          lvl,
		state:          state.StatePlaying,
		player:         system.NewPlayer(physics, lvl.PlayerSpawn),
		physics:        system.NewPhysicsSystem(lvl.Index),
		input:          system.NewInputSystem(),
		actors:         system.NewActorManager(lvl, catalog, physics.Combat, rng),
		hazards:        system.NewHazardSystem(lvl, physics.Combat),
		pickups:        system.NewPickupSystem(lvl),
		readInput:      opts.Input,
		screenW:        physics.Display.ScreenWidth,
		screenH:        physics.Display.ScreenHeight,
		maxDelta:       physics.Physics.MaxDelta,
		bg:             parseColor(stageCfg.Background.Color, colorBG),
		seed:           seed,
		recordFilename: opts.RecordPath,
	}
	if l.maxDelta <= 0 {
		l.maxDelta = 1.0 / 30
	}
	if l.readInput == nil {
		l.readInput = func() (system.InputState, bool) {
			return l.input.GetInput(), true
		}
	}

	if err := l.actors.Setup(); err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	l.hazards.Setup()

	if opts.RecordPath != "" {
		l.recorder = NewRecorder(seed, stageCfg.ID)
		log.Printf("[Level] recording enabled: %s (seed: %d)", opts.RecordPath, seed)
	}

	return l, nil
}

// Update runs one frame (implements scene.Scene)
func (l *Level) Update(dt float64) (scene.Scene, error) {
	if dt > l.maxDelta {
		dt = l.maxDelta
	}

	input, ok := l.readInput()
	if !ok {
		return nil, nil
	}

	if l.recorder != nil {
		l.recorder.RecordFrame(input)
	}

	switch l.state {
	case state.StatePlaying:
		if input.Pause {
			l.state = state.StatePaused
			return nil, nil
		}
	case state.StatePaused:
		if input.Pause {
			l.state = state.StatePlaying
		}
		return nil, nil
	case state.StateCleared:
		return nil, nil
	}

	l.tick(dt, input)

	if key, ok := l.actors.PendingScene(); ok {
		l.state = state.StateCleared
		return l.nextScene(key)
	}
	return nil, nil
}

// tick advances the simulation in a fixed order: player, actors, hazards,
// reset check, pickups
func (l *Level) tick(dt float64, input system.InputState) {
	l.dynamic = l.actors.StunnedRects(l.dynamic[:0])
	l.dynamic = append(l.dynamic, l.hazards.Rects()...)

	l.input.UpdatePlayer(l.player, input, dt)
	l.physics.Update(l.player, dt, l.dynamic, l.actors.Actors())

	l.actors.Update(dt, l.player, l.Viewport(), l.hazards.Rects())
	if _, ok := l.actors.PendingScene(); ok {
		return
	}

	l.hazards.Update(dt, l.player)

	if l.actors.Reset() || l.hazards.Reset() {
		l.reset()
		return
	}

	l.pickups.Update(l.player)
}

// reset puts the player back at spawn and rebuilds actors and hazards.
// Collected pickups stay collected.
func (l *Level) reset() {
	l.deaths++

	p := l.player
	p.ReturnToSpawn()
	p.KickTimer = 0
	p.KickedTimer = 0
	p.HorizontalKicking = false
	p.HoldingDown = false
	p.JumpBufferTimer = 0
	p.Spray.Active = false

	if err := l.actors.Setup(); err != nil {
		log.Printf("[Level] reset: %v", err)
	}
	l.hazards.Setup()

	log.Printf("[Level] player died (%d deaths)", l.deaths)
}

func (l *Level) nextScene(key string) (scene.Scene, error) {
	switch key {
	case victory.SceneKey:
		log.Printf("[Level] %s cleared after %d deaths", l.level.ID, l.deaths)
		return victory.New(l.level.Victory, l.screenW, l.screenH), nil
	}
	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, key)
}

// Viewport returns the camera rect in world pixels, centered on the player
// and clamped to the level
func (l *Level) Viewport() entity.Rect {
	c := l.player.Center()
	x := clamp(int(c.X)-l.screenW/2, 0, l.level.Width-l.screenW)
	y := clamp(int(c.Y)-l.screenH/2, 0, l.level.Height-l.screenH)
	return entity.Rect{X: x, Y: y, W: l.screenW, H: l.screenH}
}

// saveRecording saves the current recording to file
func (l *Level) saveRecording() {
	if l.recorder == nil || l.recorder.FrameCount() == 0 {
		return
	}

	filename := l.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := l.recorder.Save(filename); err != nil {
		log.Printf("[Level] failed to save recording: %v", err)
	} else {
		log.Printf("[Level] recording saved: %s (%d frames)", filename, l.recorder.FrameCount())
	}
}

// OnEnter queues the stage intro on the player's text display
func (l *Level) OnEnter() {
	for _, line := range l.level.Intro {
		l.player.DisplayText(line.Text, line.Seconds)
	}
}

// OnExit is called when leaving this scene
func (l *Level) OnExit() {
	l.saveRecording()
	if l.recorder != nil {
		l.recorder.Stop()
	}
}

// Player returns the player
func (l *Level) Player() *entity.Player { return l.player }

// Actors returns the actor manager
func (l *Level) Actors() *system.ActorManager { return l.actors }

// Hazards returns the hazard system
func (l *Level) Hazards() *system.HazardSystem { return l.hazards }

// Pickups returns the pickup system
func (l *Level) Pickups() *system.PickupSystem { return l.pickups }

// State returns the scene state
func (l *Level) State() state.GameState { return l.state }

// Deaths returns how many resets happened
func (l *Level) Deaths() int { return l.deaths }

// Seed returns the RNG seed
func (l *Level) Seed() int64 { return l.seed }

// Recorder returns the active recorder, nil when not recording
func (l *Level) Recorder() *Recorder { return l.recorder }

// Draw renders the game screen
func (l *Level) Draw(screen *ebiten.Image) {
	screen.Fill(l.bg)

	view := l.Viewport()
	camX, camY := view.X, view.Y

	if l.config.Physics.Debug.DrawChunks {
		l.drawChunks(screen, view)
	}
	l.level.Index.Rects(func(r entity.Rect) {
		if r.Overlaps(view) {
			drawRect(screen, r, camX, camY, colorWall)
		}
	})
	l.drawHazards(screen, view)
	l.drawPickups(screen, camX, camY)
	l.drawBoss(screen, camX, camY)
	l.drawActors(screen, camX, camY)
	l.drawPlayer(screen, camX, camY)

	l.drawUI(screen)

	if l.state == state.StatePaused {
		l.drawPauseOverlay(screen)
	}
}

func (l *Level) drawChunks(screen *ebiten.Image, view entity.Rect) {
	size := l.level.Index.ChunkPixels()
	if size <= 0 {
		return
	}
	startX := view.X / size * size
	startY := view.Y / size * size
	for y := startY; y < view.Bottom(); y += size {
		for x := startX; x < view.Right(); x += size {
			vector.StrokeRect(screen, float32(x-view.X), float32(y-view.Y), float32(size), float32(size), 1, colorChunk, false)
		}
	}
}

func (l *Level) drawHazards(screen *ebiten.Image, view entity.Rect) {
	for _, r := range l.hazards.Acid() {
		if r.Overlaps(view) {
			drawRect(screen, r, view.X, view.Y, colorAcid)
		}
	}
	for _, s := range l.hazards.Slime() {
		// Shrinks around its center as the acid eats it
		side := int(s.Side)
		c := s.Rect.Center()
		r := entity.Rect{X: int(c.X) - side/2, Y: int(c.Y) - side/2, W: side, H: side}
		drawRect(screen, r, view.X, view.Y, colorSlime)
	}
	for _, f := range l.hazards.Fire() {
		c := colorFire
		if f.Doused() {
			c = colorFireOut
		}
		drawRect(screen, f.Rect, view.X, view.Y, c)
	}
}

func (l *Level) drawPickups(screen *ebiten.Image, camX, camY int) {
	for _, p := range l.pickups.Pickups() {
		c := p.Rect.Center()
		vector.DrawFilledCircle(screen, float32(c.X)-float32(camX), float32(c.Y)-float32(camY), float32(p.Rect.W)/3, colorPickup, false)
	}
}

func (l *Level) drawBoss(screen *ebiten.Image, camX, camY int) {
	full := l.config.Physics.Combat.WeakPointProgress
	if full <= 0 {
		full = system.DefaultCombatConfig().WeakPointProgress
	}
	for _, wp := range l.actors.WeakPoints() {
		drawRect(screen, wp.Rect, camX, camY, colorWeakPoint)
		drawBar(screen, wp.Rect, camX, camY, wp.Progress/full)
	}

	b := l.actors.Boss()
	if b == nil {
		return
	}
	c := colorBoss
	switch {
	case b.DamageTimer > 0:
		c = colorHit
	case b.Invincible:
		c = colorBossArmor
	}
	drawRect(screen, b.Rect, camX, camY, c)
	drawBar(screen, b.Rect, camX, camY, b.HealthRatio())
	drawProjectiles(screen, b.Projectiles(), camX, camY)
}

func (l *Level) drawActors(screen *ebiten.Image, camX, camY int) {
	for _, a := range l.actors.Actors() {
		if !a.OnScreen {
			continue
		}

		c := colorActor
		switch a.FlashPhase() {
		case actor.FlashStunned:
			c = lerpColor(colorActor, colorStunned, a.StunFade())
		case actor.FlashHit:
			c = colorHit
		}
		drawRect(screen, a.Rect, camX, camY, c)
		if a.Health < a.MaxHealth {
			drawBar(screen, a.Rect, camX, camY, a.HealthRatio())
		}

		if s, ok := a.Behavior().(actor.Shooter); ok {
			drawProjectiles(screen, s.Projectiles(), camX, camY)
		}
		if n, ok := a.Behavior().(actor.Namer); ok && ebiten.IsKeyPressed(ebiten.KeyTab) {
			ebitenutil.DebugPrintAt(screen, n.StateName(), a.Rect.X-camX, a.Rect.Y-camY-24)
		}
	}
}

func (l *Level) drawPlayer(screen *ebiten.Image, camX, camY int) {
	p := l.player

	drawRect(screen, p.Rect, camX, camY, colorPlayer)
	if p.Kicking() {
		drawRect(screen, p.KickBox(), camX, camY, colorKick)
	}

	if p.Spray.Active {
		c := colorWater
		if p.Spray.Acid {
			c = colorAcidSpray
		}
		drawRect(screen, p.Spray.Box, camX, camY, c)
	}

	if text, ok := p.CurrentText(); ok {
		x := p.Rect.X - camX + p.Rect.W/2 - len(text)*3
		ebitenutil.DebugPrintAt(screen, text, clamp(x, 2, l.screenW-len(text)*6-2), p.Rect.Y-camY-20)
	}
}

func (l *Level) drawUI(screen *ebiten.Image) {
	var hud strings.Builder
	if l.player.HasAcid {
		mode := "water"
		if l.player.Spray.Acid {
			mode = "acid"
		}
		fmt.Fprintf(&hud, "Spray: %s  ", mode)
	}
	fmt.Fprintf(&hud, "Deaths: %d", l.deaths)
	ebitenutil.DebugPrintAt(screen, hud.String(), 4, l.screenH-16)

	ebitenutil.DebugPrint(screen, "Arrows: Move | C: Jump | X: Spray | Z: Kick | A: Acid | P: Pause")
}

func (l *Level) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(l.screenW), float64(l.screenH), colorOverlay)

	text := "PAUSED\n\nPress P to resume"
	ebitenutil.DebugPrintAt(screen, text, l.screenW/2-50, l.screenH/2-20)
}

// Layout returns the game's screen dimensions (used by game.Game)
func (l *Level) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.screenW, l.screenH
}

func drawRect(screen *ebiten.Image, r entity.Rect, camX, camY int, c color.Color) {
	ebitenutil.DrawRect(screen, float64(r.X-camX), float64(r.Y-camY), float64(r.W), float64(r.H), c)
}

// drawBar draws a health or progress bar above r
func drawBar(screen *ebiten.Image, r entity.Rect, camX, camY int, ratio float64) {
	ratio = max(0, min(1, ratio))
	x := float64(r.X - camX)
	y := float64(r.Y-camY) - 5
	ebitenutil.DrawRect(screen, x, y, float64(r.W), 3, colorHealthBG)
	ebitenutil.DrawRect(screen, x, y, float64(r.W)*ratio, 3, colorHealthFG)
}

func drawProjectiles(screen *ebiten.Image, ps []*entity.Projectile, camX, camY int) {
	for _, p := range ps {
		if !p.Active {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X)-float32(camX), float32(p.Pos.Y)-float32(camY), float32(p.Radius), colorShot, false)
	}
}

func lerpColor(a, b color.RGBA, d float64) color.RGBA {
	return color.RGBA{
		uint8(entity.Lerp(float64(a.R), float64(b.R), d)),
		uint8(entity.Lerp(float64(a.G), float64(b.G), d)),
		uint8(entity.Lerp(float64(a.B), float64(b.B), d)),
		255,
	}
}

// parseColor reads a #rrggbb string, falling back to def
func parseColor(s string, def color.RGBA) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return def
	}
	return color.RGBA{r, g, b, 255}
}

// clamp keeps v in [lo, hi]; hi below lo yields lo
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
