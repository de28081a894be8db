package actor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labrun/internal/domain/entity"
)

func TestGround_AttackSearchPatrol(t *testing.T) {
	for _, rate := range tickRates {
		t.Run(rate.name, func(t *testing.T) {
			a := createTestActor(t, KindGround)
			g := a.Behavior().(*Ground)
			p := farPlayer()
			g.State = GroundAttack
			g.Dir = 0.4

			g.Update(rate.dt, a, p, nil)
			require.Equal(t, GroundSearch, g.State)
			assert.Equal(t, 0.0, a.Vel.X, "entering a state zeroes vel.x")
			assert.Equal(t, 1.0, g.Dir, "non-Attack states use a unit direction")

			n := ticksFor(g.cfg.SearchTime, rate.dt)
			for i := 1; i < n; i++ {
				g.Update(rate.dt, a, p, nil)
				require.Equal(t, GroundSearch, g.State, "tick %d of %d", i, n)
				assert.Equal(t, g.cfg.RunSpeed, a.Vel.X)
			}

			g.Update(rate.dt, a, p, nil)
			assert.Equal(t, GroundPatrol, g.State, "search ends after exactly %d ticks", n)
		})
	}
}

func TestGround_EntersAttack(t *testing.T) {
	tests := []struct {
		name    string
		player  *mockPlayer
		damaged bool
	}{
		{"player close", newMockPlayer(120, 100), false},
		{"took damage", farPlayer(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := createTestActor(t, KindGround)
			g := a.Behavior().(*Ground)
			if tt.damaged {
				a.Damage(1)
			}

			g.Update(1.0/60, a, tt.player, nil)

			assert.Equal(t, GroundAttack, g.State)
			assert.Equal(t, g.cfg.RunSpeed, g.CurrentSpeed())
		})
	}
}

func TestGround_AttackSteersTowardPlayer(t *testing.T) {
	a := createTestActor(t, KindGround)
	g := a.Behavior().(*Ground)
	g.State = GroundAttack
	g.Dir = 1
	p := newMockPlayer(70, 100) // left of the actor, inside the lose radius

	g.Update(1.0/60, a, p, nil)

	assert.InDelta(t, 0.9, g.Dir, 1e-9)
	assert.InDelta(t, g.cfg.RunSpeed*0.9, a.Vel.X, 1e-9)
}

func TestGround_PatrolReversal(t *testing.T) {
	tests := []struct {
		name    string
		dir     entity.CollisionDir
		geo     rectGeometry
		wantDir float64
	}{
		{"wall on the right", entity.CollideRight, nil, -1},
		{"ledge ahead", entity.CollideDown, rectGeometry{{X: 68, Y: 110, W: 44, H: 16}}, -1},
		{"floor continues", entity.CollideDown, rectGeometry{{X: 68, Y: 110, W: 100, H: 16}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := createTestActor(t, KindGround)
			g := a.Behavior().(*Ground)
			a.CollisionDir = tt.dir

			g.Update(1.0/60, a, farPlayer(), tt.geo)

			assert.Equal(t, tt.wantDir, g.Dir)
			assert.Equal(t, g.cfg.WalkSpeed*tt.wantDir, a.Vel.X)
		})
	}
}

func TestJumping_Hops(t *testing.T) {
	a := createTestActor(t, KindJumping)
	j := a.Behavior().(*Jumping)
	a.CollisionDir = entity.CollideDown

	j.Update(1.0/60, a, farPlayer(), nil)

	assert.Equal(t, 1.0, j.Dir, "idle hops flip direction")
	assert.Equal(t, 32.0, a.Vel.X)
	assert.InDelta(t, -math.Sqrt(2*entity.DefaultGravity*16*1.2), a.Vel.Y, 1e-9)
	assert.Equal(t, JumpingIdle, j.State)
}

func TestJumping_AttackAndRelease(t *testing.T) {
	a := createTestActor(t, KindJumping)
	j := a.Behavior().(*Jumping)
	p := newMockPlayer(130, 100)

	j.Update(1.0/60, a, p, nil)
	require.Equal(t, JumpingAttack, j.State)

	// airborne tick: turns toward the player
	j.Update(1.0/60, a, p, nil)
	assert.Equal(t, 1.0, j.Dir)

	a.CollisionDir = entity.CollideDown
	j.Update(1.0/60, a, p, nil)
	assert.Equal(t, 80.0, a.Vel.X)
	assert.InDelta(t, -math.Sqrt(2*entity.DefaultGravity*16*3.2), a.Vel.Y, 1e-9)

	p.body.Pos = entity.Vec2{X: 300, Y: 100}
	a.CollisionDir = 0
	j.Update(1.0/60, a, p, nil)
	assert.Equal(t, JumpingIdle, j.State)
}

func TestJumping_BrakesOverPlayer(t *testing.T) {
	a := createTestActor(t, KindJumping)
	j := a.Behavior().(*Jumping)
	j.State = JumpingAttack
	p := newMockPlayer(105, 100)
	a.Vel.X = 50

	j.Update(1.0/60, a, p, nil)
	assert.InDelta(t, 45.0, a.Vel.X, 1e-9, "player standing still")

	p.body.Vel.X = 20
	a.Vel.X = 50
	j.Update(1.0/60, a, p, nil)
	assert.InDelta(t, 48.0, a.Vel.X, 1e-9, "player moving")
}

func TestFlying_CirclesAndShoots(t *testing.T) {
	a := createTestActor(t, KindFlying)
	f := a.Behavior().(*Flying)
	assert.False(t, a.ApplyGravity)
	p := newMockPlayer(150, 100)
	a.OnScreen = true

	for i := 0; i < 5; i++ {
		f.Update(0.25, a, p, nil)
	}

	assert.InDelta(t, math.Mod(3*1.25, 2*math.Pi), f.Angle, 1e-9)
	assert.InDelta(t, 48.0, a.Vel.Len(), 1e-9)
	require.Len(t, f.Projectiles(), 1)
	assert.InDelta(t, 96.0, f.Projectiles()[0].Vel.Len(), 1e-9)
}

func TestFlying_HoldsFireOffScreen(t *testing.T) {
	a := createTestActor(t, KindFlying)
	f := a.Behavior().(*Flying)
	p := newMockPlayer(150, 100)

	for i := 0; i < 10; i++ {
		f.Update(0.25, a, p, nil)
	}

	assert.Empty(t, f.Projectiles())
	assert.Equal(t, 1.0, f.ShootTimer)
}

func TestFlying_ProjectilesDieOnWalls(t *testing.T) {
	a := createTestActor(t, KindFlying)
	f := a.Behavior().(*Flying)
	f.projectiles = append(f.projectiles, entity.NewProjectile(entity.Vec2{X: 0, Y: 0}, entity.Vec2{X: 10, Y: 0}, 96))
	geo := rectGeometry{{X: 16, Y: -8, W: 16, H: 16}}

	f.Update(0.25, a, farPlayer(), geo)

	assert.Empty(t, f.Projectiles())
}

func TestSlow_ReversesOnWall(t *testing.T) {
	a := createTestActor(t, KindSlow)
	s := a.Behavior().(*Slow)
	require.Equal(t, 56.0, a.Vel.X)
	a.CollisionDir = entity.CollideRight

	s.Update(0.25, a, farPlayer(), nil)

	assert.Equal(t, -1.0, s.Dir)
	assert.Equal(t, -56.0, a.Vel.X)
	assert.Equal(t, 72.0, a.Pos.X) // 100 - 56*2*0.25
	assert.Equal(t, 72, a.Rect.X)
}

func TestDirected(t *testing.T) {
	c := DefaultCatalog()
	for _, k := range []Kind{KindGround, KindJumping, KindSlow} {
		a, err := c.New(k, entity.Vec2{})
		require.NoError(t, err)
		d, ok := a.Behavior().(Directed)
		require.True(t, ok, "%s", k)
		d.SetDir(-1)
		assert.Greater(t, d.CurrentSpeed(), 0.0)
	}
}
