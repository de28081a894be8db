package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

var testViewport = entity.Rect{X: 0, Y: 0, W: 320, H: 180}

// createPocketStage traps a ground actor between two walls at x 64..80
func createPocketStage() *config.StageConfig {
	cfg := createTestStage(
		"..........",
		"...#.#....",
		"##########",
	)
	cfg.Actors = map[string][]config.PositionConfig{"ground": {{X: 66, Y: 22}}}
	return cfg
}

func createTestManager(t *testing.T, cfg *config.StageConfig) (*ActorManager, *Level) {
	t.Helper()
	lvl := createTestLevel(t, cfg)
	m := NewActorManager(lvl, actor.DefaultCatalog(), DefaultCombatConfig(), rand.New(rand.NewSource(12345)))
	require.NoError(t, m.Setup())
	return m, lvl
}

// createSprayingPlayer places a player whose spray box covers x 42..82
func createSprayingPlayer(acid bool) *entity.Player {
	p := entity.NewPlayer(entity.Vec2{X: 30, Y: 16}, entity.DefaultPlayerConfig())
	p.Invulnerable = true
	p.HasAcid = true
	p.Spray.Active = true
	p.Spray.Acid = acid
	p.UpdateSpray()
	return p
}

func TestActorManager_Setup(t *testing.T) {
	m, _ := createTestManager(t, createPocketStage())

	require.Len(t, m.Actors(), 1)
	assert.Equal(t, actor.KindGround, m.Actors()[0].Kind)
	assert.Nil(t, m.Boss())
	assert.False(t, m.Reset())
	_, ok := m.PendingScene()
	assert.False(t, ok)
}

func TestActorManager_LethalThreshold(t *testing.T) {
	rates := []struct {
		name string
		dt   float64
	}{
		{"60Hz", 1.0 / 60},
		{"30Hz", 1.0 / 30},
		{"4Hz", 0.25},
	}

	for _, rate := range rates {
		t.Run(rate.name, func(t *testing.T) {
			m, _ := createTestManager(t, createPocketStage())
			p := createSprayingPlayer(true)

			killed := 0
			m.OnActorKilled = func(a *actor.Actor) { killed++ }

			// a hit lands on the first tick and then once per cooldown
			n := int(math.Round(actor.DefaultCommonConfig().DamageCooldown / rate.dt))
			for i := 0; i < 4*n; i++ {
				m.Update(rate.dt, p, testViewport, nil)
			}
			require.Len(t, m.Actors(), 1, "four hits must not kill")
			assert.Equal(t, 1, m.Actors()[0].Health)

			m.Update(rate.dt, p, testViewport, nil)
			assert.Empty(t, m.Actors(), "fifth hit kills")
			assert.Equal(t, 1, killed)
		})
	}
}

func TestActorManager_DamageRespectsCooldown(t *testing.T) {
	m, _ := createTestManager(t, createPocketStage())
	p := createSprayingPlayer(true)

	for i := 0; i < 10; i++ {
		m.Update(1.0/60, p, testViewport, nil)
	}
	require.Len(t, m.Actors(), 1)
	assert.Equal(t, 4, m.Actors()[0].Health)
}

func TestActorManager_WaterStuns(t *testing.T) {
	m, _ := createTestManager(t, createPocketStage())
	p := createSprayingPlayer(false)

	m.Update(1.0/60, p, testViewport, nil)

	a := m.Actors()[0]
	assert.True(t, a.Stunned())
	assert.Equal(t, 5, a.Health)
	assert.Equal(t, []entity.Rect{a.Rect}, m.StunnedRects(nil))
}

func TestActorManager_OffScreenActorsIgnoreSpray(t *testing.T) {
	m, _ := createTestManager(t, createPocketStage())
	p := createSprayingPlayer(false)

	m.Update(1.0/60, p, entity.Rect{X: 200, Y: 0, W: 100, H: 100}, nil)

	assert.False(t, m.Actors()[0].OnScreen)
	assert.False(t, m.Actors()[0].Stunned())
}

func TestActorManager_ContactSetsReset(t *testing.T) {
	t.Run("un-stunned actor kills", func(t *testing.T) {
		m, _ := createTestManager(t, createPocketStage())
		a := m.Actors()[0]
		p := entity.NewPlayer(a.Pos, entity.DefaultPlayerConfig())

		m.Update(1.0/60, p, testViewport, nil)
		assert.True(t, m.Reset())
	})

	t.Run("invincible player survives", func(t *testing.T) {
		m, _ := createTestManager(t, createPocketStage())
		a := m.Actors()[0]
		p := entity.NewPlayer(a.Pos, entity.DefaultPlayerConfig())
		p.Invulnerable = true

		m.Update(1.0/60, p, testViewport, nil)
		assert.False(t, m.Reset())
	})

	t.Run("stunned actor is harmless", func(t *testing.T) {
		m, _ := createTestManager(t, createPocketStage())
		a := m.Actors()[0]
		a.Stun(1)
		p := entity.NewPlayer(a.Pos, entity.DefaultPlayerConfig())

		m.Update(1.0/60, p, testViewport, nil)
		assert.False(t, m.Reset())
	})

	t.Run("setup clears the flag", func(t *testing.T) {
		m, _ := createTestManager(t, createPocketStage())
		p := entity.NewPlayer(m.Actors()[0].Pos, entity.DefaultPlayerConfig())
		m.Update(1.0/60, p, testViewport, nil)
		require.True(t, m.Reset())

		require.NoError(t, m.Setup())
		assert.False(t, m.Reset())
	})
}

// createBossStage is a 20x6 room with the boss in the middle and one weak
// point on the left
func createBossStage() *config.StageConfig {
	cfg := createTestStage(
		"####################",
		"#..................#",
		"#..................#",
		"#..................#",
		"#..................#",
		"####################",
	)
	cfg.PlayerSpawn = config.PositionConfig{X: 16, Y: 64}
	cfg.Boss = &config.PositionConfig{X: 160, Y: 64}
	cfg.WeakPoints = []config.PositionConfig{{X: 48, Y: 16}}
	cfg.Hints = []config.HintConfig{
		{Rect: config.RectConfig{X: 0, Y: 0, W: 100, H: 40}, Text: "first", Seconds: 1},
		{Rect: config.RectConfig{X: 0, Y: 0, W: 320, H: 96}, Text: "second", Seconds: 1},
	}
	cfg.Victory = config.VictoryConfig{Scene: "victory"}
	return cfg
}

// sprayAt returns an invincible acid-spraying player whose spray box
// covers target
func sprayAt(target entity.Rect) *entity.Player {
	p := entity.NewPlayer(entity.Vec2{X: float64(target.X - 12), Y: float64(target.Y)}, entity.DefaultPlayerConfig())
	p.Spawn = entity.Vec2{X: 16, Y: 64}
	p.Invulnerable = true
	p.HasAcid = true
	p.Spray.Active = true
	p.Spray.Acid = true
	p.Config.SprayReach = 80
	p.UpdateSpray()
	return p
}

func TestActorManager_BossPhaseChange(t *testing.T) {
	m, _ := createTestManager(t, createBossStage())
	b := m.Boss()
	require.NotNil(t, b)
	b.Health = 1

	var phases []int
	m.OnBossPhase = func(phase int) { phases = append(phases, phase) }

	p := sprayAt(b.Rect)
	m.Update(1.0/60, p, testViewport, nil)

	assert.Equal(t, 1, b.Phase)
	assert.True(t, b.Invincible)
	assert.Equal(t, []int{1}, phases)
	assert.Equal(t, p.Spawn, p.Pos, "phase change sends the player back")

	p.UpdateText(0)
	text, ok := p.CurrentText()
	require.True(t, ok)
	assert.Equal(t, textShrinkRay, text)
}

func TestActorManager_InvincibleBossHint(t *testing.T) {
	m, _ := createTestManager(t, createBossStage())
	b := m.Boss()
	b.Phase = 1
	b.Invincible = true
	b.Health = 10

	p := sprayAt(b.Rect)
	p.Pos = entity.Vec2{X: 150, Y: 200} // outside every hint region
	m.Update(1.0/60, p, testViewport, nil)

	assert.Equal(t, 10, b.Health)
	p.UpdateText(0)
	text, _ := p.CurrentText()
	assert.Equal(t, textInvincible, text)
}

func TestActorManager_HintRegions(t *testing.T) {
	t.Run("silent in phase 0", func(t *testing.T) {
		m, _ := createTestManager(t, createBossStage())
		p := entity.NewPlayer(entity.Vec2{X: 20, Y: 20}, entity.DefaultPlayerConfig())
		p.Invulnerable = true

		m.Update(1.0/60, p, testViewport, nil)
		p.UpdateText(0)
		_, ok := p.CurrentText()
		assert.False(t, ok)
	})

	t.Run("first matching region wins", func(t *testing.T) {
		m, _ := createTestManager(t, createBossStage())
		m.Boss().Phase = 1
		p := entity.NewPlayer(entity.Vec2{X: 20, Y: 20}, entity.DefaultPlayerConfig())
		p.Invulnerable = true

		m.Update(1.0/60, p, testViewport, nil)
		p.UpdateText(0)
		text, _ := p.CurrentText()
		assert.Equal(t, "first", text)
	})
}

func TestActorManager_WeakPointBreaks(t *testing.T) {
	m, _ := createTestManager(t, createBossStage())
	b := m.Boss()
	b.Phase = 1
	b.Invincible = true

	require.Len(t, m.WeakPoints(), 1)
	wp := m.WeakPoints()[0]
	p := sprayAt(wp.Rect)
	p.Pos.Y = 200 // outside every hint region
	p.UpdateRectPos()

	broken := 0
	m.OnWeakPointBroken = func(WeakPoint) { broken++ }

	// 16 - 0.25*52 = 3 is not below the threshold yet
	for i := 0; i < 52; i++ {
		m.Update(1.0/60, p, testViewport, nil)
	}
	require.Len(t, m.WeakPoints(), 1)
	assert.InDelta(t, 3.0, m.WeakPoints()[0].Progress, 1e-9)
	assert.True(t, b.Invincible)

	m.Update(1.0/60, p, testViewport, nil)
	assert.Empty(t, m.WeakPoints())
	assert.False(t, b.Invincible)
	assert.Equal(t, 1, broken)
	assert.Equal(t, p.Spawn, p.Pos)
}

func TestActorManager_BossDefeat(t *testing.T) {
	m, _ := createTestManager(t, createBossStage())
	b := m.Boss()
	b.Phase = 2
	b.Health = 1

	p := sprayAt(b.Rect)
	m.Update(1.0/60, p, testViewport, nil)

	assert.Nil(t, m.Boss())
	assert.Empty(t, m.WeakPoints())
	assert.Empty(t, m.Actors())
	scene, ok := m.PendingScene()
	assert.True(t, ok)
	assert.Equal(t, "victory", scene)
}

func TestActorManager_BossSpawnsActors(t *testing.T) {
	lvl := createTestLevel(t, createBossStage())
	cat := actor.DefaultCatalog()
	cat.Boss.Bands = []float64{50, 50, 50}
	m := NewActorManager(lvl, cat, DefaultCombatConfig(), rand.New(rand.NewSource(12345)))
	require.NoError(t, m.Setup())

	// Full phase 2 size so spawned actors clear the floor
	b := m.Boss()
	b.Phase = 2
	b.Pos.Y = 16
	b.Resize(48, 64)

	// The player stays to the right of the boss's band
	p := entity.NewPlayer(entity.Vec2{X: 290, Y: 64}, entity.DefaultPlayerConfig())
	p.Invulnerable = true

	for i := 0; i < 400 && len(m.Actors()) == 0; i++ {
		m.Update(1.0/60, p, testViewport, nil)
	}
	require.NotEmpty(t, m.Actors(), "a spawn request arrives within the interval")

	a := m.Actors()[0]
	assert.Contains(t, []actor.Kind{actor.KindGround, actor.KindSlow}, a.Kind)
	assert.Greater(t, a.Vel.X, 0.0, "spawned actors head toward the player")
}

func BenchmarkActorManager_Update(b *testing.B) {
	rows := []string{
		"................................................................",
		"................................................................",
		"################################################################",
	}
	cfg := createTestStage(rows...)
	spawns := make([]config.PositionConfig, 0, 200)
	for i := 0; i < 200; i++ {
		spawns = append(spawns, config.PositionConfig{X: 16 + (i%60)*16, Y: 22})
	}
	cfg.Actors = map[string][]config.PositionConfig{"ground": spawns}

	lvl, err := LoadStage(cfg, 16, 8)
	require.NoError(b, err)
	m := NewActorManager(lvl, actor.DefaultCatalog(), DefaultCombatConfig(), rand.New(rand.NewSource(12345)))
	require.NoError(b, m.Setup())

	p := entity.NewPlayer(entity.Vec2{X: 500, Y: 16}, entity.DefaultPlayerConfig())
	p.Invulnerable = true
	view := entity.Rect{W: lvl.Width, H: lvl.Height}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Update(1.0/60, p, view, nil)
	}
}
