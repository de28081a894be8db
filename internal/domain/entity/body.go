package entity

import "math"

// Default physics constants in pixels and seconds
const (
	DefaultGravity      = 430.0
	DefaultMaxFallSpeed = 200.0
)

// CollisionDir is the 4-bit collision-direction signal {up, right, down, left}
type CollisionDir uint8

const (
	CollideLeft  CollisionDir = 1 << iota // 0b0001
	CollideDown                           // 0b0010
	CollideRight                          // 0b0100
	CollideUp                             // 0b1000
)

// Has reports whether every bit of d is set
func (c CollisionDir) Has(d CollisionDir) bool {
	return c&d == d
}

// Side reports a left or right hit
func (c CollisionDir) Side() bool {
	return c&(CollideLeft|CollideRight) != 0
}

// Body is a moving rectangle with gravity, velocity integration and
// axis-separated collision resolution.
//
// Pos is continuous; Rect is the integer rectangle snapped from Pos and is what
// every overlap test uses. Width and Height may change at runtime via Resize.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Width  int
	Height int
	Rect   Rect

	// Recomputed from scratch on every collision-enabled Update
	CollisionDir CollisionDir

	ApplyGravity   bool
	ApplyCollision bool
	ApplyVelocity  bool // integrate without collision (ignored when ApplyCollision is set)

	Gravity      float64
	MaxFallSpeed float64

	candidates []Rect
}

// NewBody creates a body at pos with the default gravity settings
func NewBody(pos Vec2, w, h int) *Body {
	b := &Body{
		Pos:          pos,
		Width:        w,
		Height:       h,
		Gravity:      DefaultGravity,
		MaxFallSpeed: DefaultMaxFallSpeed,
	}
	b.UpdateRect()
	return b
}

// ClampedPos returns the snapped integer position.
// Each axis rounds up while moving in the positive direction and down otherwise,
// so a body never sits a fraction of a pixel inside a tile it was pushed out of.
func (b *Body) ClampedPos() (x, y int) {
	if b.Vel.X > 0 {
		x = int(math.Ceil(b.Pos.X))
	} else {
		x = int(math.Floor(b.Pos.X))
	}
	if b.Vel.Y > 0 {
		y = int(math.Ceil(b.Pos.Y))
	} else {
		y = int(math.Floor(b.Pos.Y))
	}
	return x, y
}

// UpdateRectPos moves Rect to the snapped position
func (b *Body) UpdateRectPos() {
	b.Rect.X, b.Rect.Y = b.ClampedPos()
}

// UpdateRect refreshes both position and size of Rect
func (b *Body) UpdateRect() {
	b.UpdateRectPos()
	b.Rect.W = b.Width
	b.Rect.H = b.Height
}

// Resize changes the body dimensions and recomputes Rect immediately
func (b *Body) Resize(w, h int) {
	b.Width = w
	b.Height = h
	b.UpdateRect()
}

// Center returns the center of the continuous box
func (b *Body) Center() Vec2 {
	return Vec2{b.Pos.X + float64(b.Width)*0.5, b.Pos.Y + float64(b.Height)*0.5}
}

// Update integrates one tick.
// geo may be nil; extra holds dynamic obstacles for this call only.
func (b *Body) Update(dt float64, geo Geometry, extra []Rect) {
	if b.ApplyGravity {
		b.Vel.Y += b.Gravity * dt
		if b.Vel.Y > b.MaxFallSpeed {
			b.Vel.Y = b.MaxFallSpeed
		}
	}

	if !b.ApplyCollision {
		if b.ApplyVelocity {
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))
			b.UpdateRectPos()
		}
		return
	}

	cands := b.candidates[:0]
	if geo != nil {
		cands = geo.BroadPhase(SweepOf(b.Pos, b.Width, b.Height, b.Vel.Scale(dt)), cands)
	}
	cands = append(cands, extra...)
	b.candidates = cands

	b.CollisionDir = 0

	b.Pos.X += b.Vel.X * dt
	b.UpdateRectPos()
	b.resolveX(cands)

	b.Pos.Y += b.Vel.Y * dt
	b.UpdateRectPos()
	b.resolveY(cands)

	b.UpdateRectPos()
}

// resolveX pushes the body out along X to the most restrictive near edge
func (b *Body) resolveX(cands []Rect) {
	if b.Vel.X == 0 {
		return
	}
	hit := false
	limit := 0
	for _, c := range cands {
		if !b.Rect.Overlaps(c) {
			continue
		}
		if b.Vel.X > 0 {
			edge := c.X - b.Width
			if !hit || edge < limit {
				limit = edge
			}
		} else {
			edge := c.Right()
			if !hit || edge > limit {
				limit = edge
			}
		}
		hit = true
	}
	if !hit {
		return
	}
	b.Pos.X = float64(limit)
	if b.Vel.X > 0 {
		b.CollisionDir |= CollideRight
	} else {
		b.CollisionDir |= CollideLeft
	}
	b.Vel.X = 0
}

// resolveY pushes the body out along Y to the most restrictive near edge
func (b *Body) resolveY(cands []Rect) {
	if b.Vel.Y == 0 {
		return
	}
	hit := false
	limit := 0
	for _, c := range cands {
		if !b.Rect.Overlaps(c) {
			continue
		}
		if b.Vel.Y > 0 {
			edge := c.Y - b.Height
			if !hit || edge < limit {
				limit = edge
			}
		} else {
			edge := c.Bottom()
			if !hit || edge > limit {
				limit = edge
			}
		}
		hit = true
	}
	if !hit {
		return
	}
	b.Pos.Y = float64(limit)
	if b.Vel.Y > 0 {
		b.CollisionDir |= CollideDown
	} else {
		b.CollisionDir |= CollideUp
	}
	b.Vel.Y = 0
}

// OnGround reports a down hit during the last update
func (b *Body) OnGround() bool {
	return b.CollisionDir.Has(CollideDown)
}
