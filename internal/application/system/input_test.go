package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

func createTestPlayerForInput() *entity.Player {
	return entity.NewPlayer(entity.Vec2{X: 32, Y: 32}, entity.DefaultPlayerConfig())
}

func grounded(p *entity.Player) *entity.Player {
	p.CollisionDir = entity.CollideDown
	return p
}

func TestInputSystem_Jump(t *testing.T) {
	sys := NewInputSystem()

	t.Run("buffered press jumps on ground", func(t *testing.T) {
		p := grounded(createTestPlayerForInput())

		sys.UpdatePlayer(p, InputState{JumpPressed: true}, 1.0/60)

		assert.Equal(t, p.MaxJumpVel, p.Vel.Y)
		assert.InDelta(t, 0.1-1.0/60, p.JumpBufferTimer, 1e-9)
	})

	t.Run("buffered press waits for landing", func(t *testing.T) {
		p := createTestPlayerForInput()

		sys.UpdatePlayer(p, InputState{JumpPressed: true}, 1.0/60)
		assert.Equal(t, 0.0, p.Vel.Y)

		grounded(p)
		sys.UpdatePlayer(p, InputState{}, 1.0/60)
		assert.Equal(t, p.MaxJumpVel, p.Vel.Y)
	})

	t.Run("buffer expires", func(t *testing.T) {
		p := createTestPlayerForInput()
		sys.UpdatePlayer(p, InputState{JumpPressed: true}, 0.2)

		grounded(p)
		sys.UpdatePlayer(p, InputState{}, 1.0/60)
		assert.Equal(t, 0.0, p.Vel.Y)
	})

	t.Run("release cuts the jump short", func(t *testing.T) {
		p := createTestPlayerForInput()
		p.Vel.Y = p.MaxJumpVel

		sys.UpdatePlayer(p, InputState{JumpReleased: true}, 1.0/60)
		assert.Equal(t, p.MinJumpVel, p.Vel.Y)
	})

	t.Run("release after the apex changes nothing", func(t *testing.T) {
		p := createTestPlayerForInput()
		p.Vel.Y = 10

		sys.UpdatePlayer(p, InputState{JumpReleased: true}, 1.0/60)
		assert.Equal(t, 10.0, p.Vel.Y)
	})
}

func TestInputSystem_Movement(t *testing.T) {
	sys := NewInputSystem()

	t.Run("accelerates and faces the direction", func(t *testing.T) {
		p := grounded(createTestPlayerForInput())

		sys.UpdatePlayer(p, InputState{Left: true}, 1.0/60)

		assert.Equal(t, -8.0, p.Vel.X)
		assert.Equal(t, -1.0, p.FacingDir)
	})

	t.Run("caps at max speed", func(t *testing.T) {
		p := grounded(createTestPlayerForInput())
		for i := 0; i < 100; i++ {
			sys.UpdatePlayer(p, InputState{Right: true}, 1.0/60)
		}
		assert.Equal(t, 80.0, p.Vel.X)
	})

	t.Run("ground friction is stronger than air friction", func(t *testing.T) {
		ground := grounded(createTestPlayerForInput())
		air := createTestPlayerForInput()
		ground.Vel.X, air.Vel.X = 50, 50

		sys.UpdatePlayer(ground, InputState{}, 1.0/60)
		sys.UpdatePlayer(air, InputState{}, 1.0/60)

		assert.InDelta(t, 50*0.85, ground.Vel.X, 1e-9)
		assert.InDelta(t, 50*0.93, air.Vel.X, 1e-9)
	})

	t.Run("wall kick lifts the cap until it slows down", func(t *testing.T) {
		p := createTestPlayerForInput()
		p.Vel.X = 300
		p.HorizontalKicking = true

		sys.UpdatePlayer(p, InputState{Right: true}, 1.0/60)
		assert.InDelta(t, 300*0.93+8, p.Vel.X, 1e-9)
		assert.True(t, p.HorizontalKicking)

		p.Vel.X = 90
		sys.UpdatePlayer(p, InputState{}, 1.0/60)
		assert.False(t, p.HorizontalKicking)
	})

	t.Run("leftward wall kick uses speed magnitude", func(t *testing.T) {
		p := createTestPlayerForInput()
		p.Vel.X = -300
		p.HorizontalKicking = true

		sys.UpdatePlayer(p, InputState{Left: true}, 1.0/60)
		assert.True(t, p.HorizontalKicking, "fast leftward kick keeps going")

		p.Vel.X = -90
		sys.UpdatePlayer(p, InputState{}, 1.0/60)
		assert.False(t, p.HorizontalKicking)
	})
}

func TestInputSystem_Buttons(t *testing.T) {
	sys := NewInputSystem()

	t.Run("kick needs the ability", func(t *testing.T) {
		p := createTestPlayerForInput()
		sys.UpdatePlayer(p, InputState{Kick: true}, 1.0/60)
		assert.Equal(t, 0.0, p.KickTimer)

		p.HasKick = true
		sys.UpdatePlayer(p, InputState{Kick: true, Down: true}, 1.0/60)
		assert.Equal(t, p.Config.KickWindow, p.KickTimer)
		assert.True(t, p.HoldingDown)
	})

	t.Run("toggle acid needs the ability", func(t *testing.T) {
		p := createTestPlayerForInput()
		sys.UpdatePlayer(p, InputState{ToggleAcid: true}, 1.0/60)
		assert.False(t, p.Spray.Acid)

		p.HasAcid = true
		sys.UpdatePlayer(p, InputState{ToggleAcid: true}, 1.0/60)
		assert.True(t, p.Spray.Acid)
	})

	t.Run("spray follows the button", func(t *testing.T) {
		p := createTestPlayerForInput()
		sys.UpdatePlayer(p, InputState{Spray: true}, 1.0/60)
		assert.True(t, p.Spray.Active)
		sys.UpdatePlayer(p, InputState{}, 1.0/60)
		assert.False(t, p.Spray.Active)
	})
}

func TestNewPlayer_FromConfig(t *testing.T) {
	cfg := &config.PhysicsConfig{
		Physics:  config.PhysicsSettings{Gravity: 500},
		Movement: config.MovementConfig{MaxSpeed: 100},
		Debug:    config.DebugConfig{Invincible: true},
	}

	p := NewPlayer(cfg, entity.Vec2{X: 5, Y: 6})

	assert.Equal(t, 100.0, p.Config.Speed)
	assert.Equal(t, 8.0, p.Config.Accel)
	assert.Equal(t, 500.0, p.Gravity)
	assert.Equal(t, entity.DefaultMaxFallSpeed, p.MaxFallSpeed)
	assert.True(t, p.Invincible())
	assert.Equal(t, entity.Vec2{X: 5, Y: 6}, p.Spawn)
}
