package system

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/labrun/internal/domain/actor"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// Scripted boss texts
const (
	textShrinkRay    = "The shrink ray is wearing off!"
	textInvincible   = "I could go up to break its invincibility"
	textCanDamage    = "Now I can damage it"
	textShrinkRaySec = 2
	textCanDamageSec = 4
	defaultTextSec   = 3
)

// WeakPoint is a breakable target that lifts the boss's invincibility
type WeakPoint struct {
	Rect     entity.Rect
	Progress float64
}

// ActorManager owns the regular actors, the boss and its weak points.
// It resolves every player-vs-actor interaction and reports the outcome
// through polled flags.
type ActorManager struct {
	level   *Level
	catalog actor.Catalog
	combat  config.CombatConfig
	rng     *rand.Rand

	actors     []*actor.Actor
	boss       *actor.Boss
	weakPoints []WeakPoint

	reset        bool
	pendingScene string

	stunned []entity.Rect
	dynamic []entity.Rect

	// Hooks for audio and effects
	OnActorKilled     func(a *actor.Actor)
	OnBossPhase       func(phase int)
	OnWeakPointBroken func(wp WeakPoint)
}

// NewActorManager creates a manager for the level. Call Setup before Update.
func NewActorManager(level *Level, catalog actor.Catalog, combat config.CombatConfig, rng *rand.Rand) *ActorManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ActorManager{
		level:   level,
		catalog: catalog,
		combat:  withCombatDefaults(combat),
		rng:     rng,
	}
}

// DefaultCombatConfig returns the built-in interaction tuning
func DefaultCombatConfig() config.CombatConfig {
	return config.CombatConfig{
		HazardKick:        75,
		StunDuration:      1,
		WeakPointProgress: 16,
		WeakPointDrain:    0.25,
		WeakPointBreak:    3,
		SlimeShrink:       0.5,
		SlimeMinSide:      2,
		FireDouse:         2,
	}
}

func withCombatDefaults(c config.CombatConfig) config.CombatConfig {
	d := DefaultCombatConfig()
	c.HazardKick = orFloat(c.HazardKick, d.HazardKick)
	c.StunDuration = orFloat(c.StunDuration, d.StunDuration)
	c.WeakPointProgress = orFloat(c.WeakPointProgress, d.WeakPointProgress)
	c.WeakPointDrain = orFloat(c.WeakPointDrain, d.WeakPointDrain)
	c.WeakPointBreak = orFloat(c.WeakPointBreak, d.WeakPointBreak)
	c.SlimeShrink = orFloat(c.SlimeShrink, d.SlimeShrink)
	c.SlimeMinSide = orFloat(c.SlimeMinSide, d.SlimeMinSide)
	c.FireDouse = orFloat(c.FireDouse, d.FireDouse)
	return c
}

// Setup rebuilds every actor, the boss and the weak points from the level
func (m *ActorManager) Setup() error {
	m.reset = false
	m.pendingScene = ""
	m.boss = nil
	m.actors = m.actors[:0]

	for _, s := range m.level.Spawns {
		a, err := m.catalog.New(s.Kind, s.Pos)
		if err != nil {
			return fmt.Errorf("setup actors: %w", err)
		}
		m.actors = append(m.actors, a)
	}
	if m.level.Boss != nil {
		m.boss = m.catalog.NewBoss(*m.level.Boss, m.rng)
	}

	m.weakPoints = m.weakPoints[:0]
	for _, r := range m.level.WeakPoints {
		m.weakPoints = append(m.weakPoints, WeakPoint{Rect: r, Progress: m.combat.WeakPointProgress})
	}

	log.Printf("[ActorManager] setup: %d actors, boss=%t, %d weak points",
		len(m.actors), m.boss != nil, len(m.weakPoints))
	return nil
}

// Update runs one tick. extra holds the dynamic colliders owned by other
// systems (slime blocks); viewport is the camera rect in world pixels.
func (m *ActorManager) Update(dt float64, p actor.Player, viewport entity.Rect, extra []entity.Rect) {
	body := p.GetBody()
	hazard := p.Hazard()

	if m.boss != nil {
		m.updateBoss(dt, p, extra)
	}

	m.stunned = m.StunnedRects(m.stunned[:0])
	m.dynamic = append(append(m.dynamic[:0], m.stunned...), extra...)

	for _, a := range m.actors {
		a.OnScreen = a.Rect.Overlaps(viewport)
		a.Update(dt, p, m.level.Index, m.dynamic)
	}

	// Spray hits, back to front so removal keeps indices valid
	for i := len(m.actors) - 1; i >= 0; i-- {
		a := m.actors[i]
		if !a.OnScreen || !hazard.Overlaps(a.Rect) {
			continue
		}
		if !hazard.Damaging() {
			a.Stun(m.combat.StunDuration)
			continue
		}
		if !a.Damaged() {
			a.Kick(p.Facing() * m.combat.HazardKick)
		}
		if !a.Damage(1) {
			m.removeActor(i)
		}
	}

	if !p.Invincible() {
		for _, a := range m.actors {
			if !a.Stunned() && a.Collide(body.Rect) {
				m.reset = true
			}
		}
	}
}

func (m *ActorManager) updateBoss(dt float64, p actor.Player, extra []entity.Rect) {
	body := p.GetBody()
	hazard := p.Hazard()
	b := m.boss

	b.Update(dt, p, m.level.Index, extra)
	if req, ok := b.TakeSpawnRequest(); ok {
		m.spawn(req)
	}

	if !p.Invincible() && b.Collide(body.Rect) {
		m.reset = true
	}

	if b.Phase > 0 {
		for _, h := range m.level.Hints {
			if h.Rect.ContainsPoint(body.Pos) {
				p.DisplayText(h.Text, h.Seconds)
				break
			}
		}
	}

	if !hazard.Damaging() {
		return
	}

	if hazard.Overlaps(b.Rect) {
		if b.Invincible {
			p.DisplayText(textInvincible, defaultTextSec)
		} else {
			phase := b.Phase
			if !b.Damage(1) {
				m.defeatBoss()
				return
			}
			if b.Phase != phase {
				log.Printf("[ActorManager] boss entered phase %d", b.Phase)
				p.ReturnToSpawn()
				if b.Phase == 1 {
					p.DisplayText(textShrinkRay, textShrinkRaySec)
				}
				if m.OnBossPhase != nil {
					m.OnBossPhase(b.Phase)
				}
			}
		}
	}

	for i := len(m.weakPoints) - 1; i >= 0; i-- {
		wp := &m.weakPoints[i]
		if !hazard.Overlaps(wp.Rect) {
			continue
		}
		wp.Progress -= m.combat.WeakPointDrain
		if wp.Progress >= m.combat.WeakPointBreak {
			continue
		}
		broken := *wp
		m.weakPoints = append(m.weakPoints[:i], m.weakPoints[i+1:]...)
		b.Invincible = false
		p.ReturnToSpawn()
		p.DisplayText(textCanDamage, textCanDamageSec)
		log.Printf("[ActorManager] weak point at (%d, %d) broken", broken.Rect.X, broken.Rect.Y)
		if m.OnWeakPointBroken != nil {
			m.OnWeakPointBroken(broken)
		}
	}
}

// spawn builds the actor a boss asked for and aims it
func (m *ActorManager) spawn(req actor.SpawnRequest) {
	a, err := m.catalog.New(req.Kind, req.Pos)
	if err != nil {
		log.Printf("[ActorManager] dropped spawn request: %v", err)
		return
	}
	if d, ok := a.Behavior().(actor.Directed); ok {
		d.SetDir(req.Dir)
		a.Vel.X = d.CurrentSpeed() * req.Dir
	}
	m.actors = append(m.actors, a)
}

func (m *ActorManager) defeatBoss() {
	log.Printf("[ActorManager] boss defeated")
	m.boss = nil
	m.weakPoints = nil
	m.actors = nil
	m.pendingScene = m.level.Victory.Scene
	if m.pendingScene == "" {
		m.pendingScene = "victory"
	}
}

func (m *ActorManager) removeActor(i int) {
	a := m.actors[i]
	m.actors = append(m.actors[:i], m.actors[i+1:]...)
	if m.OnActorKilled != nil {
		m.OnActorKilled(a)
	}
}

// Reset reports whether the player died during the last Update
func (m *ActorManager) Reset() bool {
	return m.reset
}

// PendingScene returns the scene key to switch to once the boss is defeated
func (m *ActorManager) PendingScene() (string, bool) {
	return m.pendingScene, m.pendingScene != ""
}

// StunnedRects appends the rects of every stunned actor to dst.
// Stunned actors act as platforms for everything else.
func (m *ActorManager) StunnedRects(dst []entity.Rect) []entity.Rect {
	for _, a := range m.actors {
		if a.Stunned() {
			dst = append(dst, a.Rect)
		}
	}
	return dst
}

// Actors returns the live regular actors
func (m *ActorManager) Actors() []*actor.Actor {
	return m.actors
}

// Boss returns the boss, or nil when there is none or it was defeated
func (m *ActorManager) Boss() *actor.Boss {
	return m.boss
}

// WeakPoints returns the unbroken weak points
func (m *ActorManager) WeakPoints() []WeakPoint {
	return m.weakPoints
}
