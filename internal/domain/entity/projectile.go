package entity

// Projectile defaults
const (
	DefaultProjectileSpeed  = 16 * 6
	DefaultProjectileRadius = 2
)

// Projectile is a massless shot fired toward a target point.
// Velocity is fixed at creation; it only dies by hitting static geometry
// (checked by its owner) or by exceeding MaxRange.
type Projectile struct {
	Pos    Vec2
	Vel    Vec2
	Start  Vec2
	Radius int
	Active bool

	// MaxRange in pixels, 0 = unlimited
	MaxRange float64
}

// NewProjectile creates a projectile at pos moving toward target at speed
func NewProjectile(pos, target Vec2, speed float64) *Projectile {
	d := target.Sub(pos)
	dist := d.Len()
	if dist < 1 {
		dist = 1
	}

	return &Projectile{
		Pos:    pos,
		Vel:    d.Scale(speed / dist),
		Start:  pos,
		Radius: DefaultProjectileRadius,
		Active: true,
	}
}

// Update moves the projectile
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.MaxRange > 0 && p.Pos.DistSq(p.Start) > p.MaxRange*p.MaxRange {
		p.Active = false
	}
}

// GetHitbox returns the square drawn/tested around the projectile center
func (p *Projectile) GetHitbox() Rect {
	x, y := int(p.Pos.X)-p.Radius, int(p.Pos.Y)-p.Radius
	return Rect{X: x, Y: y, W: p.Radius * 2, H: p.Radius * 2}
}

// Hits reports whether the projectile center lies in r
func (p *Projectile) Hits(r Rect) bool {
	return p.Active && r.ContainsPoint(p.Pos)
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}

// UpdateProjectiles advances every projectile and drops the ones that hit
// static geometry or went out of range. The returned slice reuses ps.
func UpdateProjectiles(ps []*Projectile, dt float64, geo Geometry) []*Projectile {
	out := ps[:0]
	for _, p := range ps {
		p.Update(dt)
		if geo != nil && geo.CollidePoint(p.Pos) {
			p.Deactivate()
		}
		if p.Active {
			out = append(out, p)
		}
	}
	for i := len(out); i < len(ps); i++ {
		ps[i] = nil
	}
	return out
}
