package entity

import "math"

// Vec2 is a 2D vector in world pixels (or pixels per second)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns the squared length
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// DistSq returns the squared distance between two points
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

// Rect is an integer axis-aligned rectangle (top-left origin, like a tile grid)
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate just past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether two rects share interior area.
// Touching edges do not count, and empty rects never overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return rectsOverlap(r.X, r.Y, r.W, r.H, o.X, o.Y, o.W, o.H)
}

// ContainsPoint reports whether p lies inside r (left/top inclusive, right/bottom exclusive)
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= float64(r.X) && p.X < float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Bottom())
}

// Center returns the center point
func (r Rect) Center() Vec2 {
	return Vec2{float64(r.X) + float64(r.W)*0.5, float64(r.Y) + float64(r.H)*0.5}
}

// Intersect returns the overlapping part of two rects (empty if none)
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Sweep is the bounding box of a body before and after one frame's displacement
type Sweep struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// SweepOf returns the union of the box at pos and the box at pos+disp
func SweepOf(pos Vec2, w, h int, disp Vec2) Sweep {
	fw, fh := float64(w), float64(h)
	return Sweep{
		MinX: math.Min(pos.X, pos.X+disp.X),
		MinY: math.Min(pos.Y, pos.Y+disp.Y),
		MaxX: math.Max(pos.X+fw, pos.X+fw+disp.X),
		MaxY: math.Max(pos.Y+fh, pos.Y+fh+disp.Y),
	}
}

// Corners returns the four corner points of the sweep
func (s Sweep) Corners() [4]Vec2 {
	return [4]Vec2{
		{s.MinX, s.MinY},
		{s.MinX, s.MaxY},
		{s.MaxX, s.MinY},
		{s.MaxX, s.MaxY},
	}
}

// Geometry is the static level geometry a body collides with.
// BroadPhase appends candidate rects for the sweep to dst and returns it.
type Geometry interface {
	BroadPhase(s Sweep, dst []Rect) []Rect
	CollidePoint(p Vec2) bool
}

func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}

// Sign returns -1 for negative and zero values, 1 for positive
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// Lerp blends a toward b by d
func Lerp(a, b, d float64) float64 {
	return a*(1-d) + b*d
}

// TimerEpsilon is the residue below which a countdown counts as expired.
// Fractional ticks such as 1/60 do not sum exactly in float64.
const TimerEpsilon = 1e-9

// Countdown subtracts dt from t and snaps to zero once t is within
// TimerEpsilon of it
func Countdown(t, dt float64) float64 {
	t -= dt
	if t <= TimerEpsilon {
		return 0
	}
	return t
}
