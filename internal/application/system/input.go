package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// InputSystem turns key state into player intent
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	Down         bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Spray        bool // held
	Kick         bool // pressed this frame
	ToggleAcid   bool // pressed this frame
	Pause        bool // pressed this frame
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Down:         ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:         ebiten.IsKeyPressed(ebiten.KeyC),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyC),
		Spray:        ebiten.IsKeyPressed(ebiten.KeyX),
		Kick:         inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ToggleAcid:   inpututil.IsKeyJustPressed(ebiten.KeyA),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// UpdatePlayer applies one frame of input: button events, the text queue,
// the jump buffer, friction and horizontal control
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, dt float64) {
	s.handleButtons(player, input)

	player.UpdateText(dt)

	// Jump
	if player.JumpBufferTimer > 0 {
		if player.OnGround() {
			player.Vel.Y = player.MaxJumpVel
		}
		player.JumpBufferTimer = entity.Countdown(player.JumpBufferTimer, dt)
	}

	s.handleMovement(player, input)

	player.Spray.Active = input.Spray
	if player.KickTimer > 0 {
		player.HoldingDown = input.Down
	}
}

// handleButtons applies press/release events
func (s *InputSystem) handleButtons(player *entity.Player, input InputState) {
	if input.JumpPressed {
		player.JumpBufferTimer = player.Config.JumpBuffer
	}
	if input.JumpReleased && player.Vel.Y < player.MinJumpVel {
		player.Vel.Y = player.MinJumpVel
	}
	if input.Kick && player.HasKick {
		player.KickTimer = player.Config.KickWindow
	}
	if input.ToggleAcid {
		player.ToggleAcid()
	}
}

// handleMovement applies friction and horizontal acceleration.
// The speed cap is lifted while a wall kick carries the player.
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	cfg := player.Config
	if player.OnGround() {
		player.Vel.X *= cfg.GroundFriction
	} else {
		player.Vel.X *= cfg.AirFriction
	}

	if input.Left {
		player.Vel.X -= cfg.Accel
		if !player.HorizontalKicking {
			player.Vel.X = max(player.Vel.X, -cfg.Speed)
		}
		player.FacingDir = -1
	}
	if input.Right {
		player.Vel.X += cfg.Accel
		if !player.HorizontalKicking {
			player.Vel.X = min(player.Vel.X, cfg.Speed)
		}
		player.FacingDir = 1
	}

	if player.HorizontalKicking && (player.OnGround() || math.Abs(player.Vel.X) < horizontalKickEnd) {
		player.HorizontalKicking = false
	}
}

// PlayerConfig builds the player tuning from physics.json.
// Zero values keep the default.
func PlayerConfig(cfg *config.PhysicsConfig) entity.PlayerConfig {
	pc := entity.DefaultPlayerConfig()
	if cfg == nil {
		return pc
	}
	pc.Width = orInt(cfg.Player.Width, pc.Width)
	pc.Height = orInt(cfg.Player.Height, pc.Height)
	pc.Speed = orFloat(cfg.Movement.MaxSpeed, pc.Speed)
	pc.Accel = orFloat(cfg.Movement.Acceleration, pc.Accel)
	pc.GroundFriction = orFloat(cfg.Movement.GroundFriction, pc.GroundFriction)
	pc.AirFriction = orFloat(cfg.Movement.AirFriction, pc.AirFriction)
	pc.MaxJumpHeight = orFloat(cfg.Jump.MaxHeight, pc.MaxJumpHeight)
	pc.MinJumpHeight = orFloat(cfg.Jump.MinHeight, pc.MinJumpHeight)
	pc.JumpBuffer = orFloat(cfg.Jump.JumpBuffer, pc.JumpBuffer)
	pc.SprayReach = orInt(cfg.Spray.Reach, pc.SprayReach)
	pc.KickWindow = orFloat(cfg.Kick.Window, pc.KickWindow)
	pc.KickPowerX = orFloat(cfg.Kick.PowerX, pc.KickPowerX)
	pc.KickPowerY = orFloat(cfg.Kick.PowerY, pc.KickPowerY)
	return pc
}

// NewPlayer creates the player at the level spawn with physics.json tuning
func NewPlayer(cfg *config.PhysicsConfig, spawn entity.Vec2) *entity.Player {
	p := entity.NewPlayer(spawn, PlayerConfig(cfg))
	if cfg != nil {
		p.SetGravity(orFloat(cfg.Physics.Gravity, entity.DefaultGravity),
			orFloat(cfg.Physics.MaxFallSpeed, entity.DefaultMaxFallSpeed))
		p.Invulnerable = cfg.Debug.Invincible
	}
	return p
}
