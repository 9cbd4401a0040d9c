package physics

import (
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

// PointConfig describes a point mass before it joins a world
type PointConfig struct {
	Position     vmath.Vec2
	Radius       float64
	Mass         float64
	Interactive  bool    // Gravity, collision and bounds apply
	DefaultForce float64 // Constant self-force along DefaultForceDirection, 0 = none
	Dampening    float64 // Fraction of velocity lost per step, [0,1)
}

// PointMass is a Verlet particle: velocity is implicit in Current - Previous
type PointMass struct {
	Current  vmath.Vec2
	Previous vmath.Vec2
	Radius   float64

	Mass float64
	// InvMass is authoritative for movability, 0 marks a pinned point
	InvMass float64

	Interactive           bool
	DefaultForce          float64
	DefaultForceDirection vmath.Vec2
	Dampening             float64

	// force accumulates until the next Integrate and is cleared after it
	force vmath.Vec2
	world *World
}

// NewPointMass creates a detached point at rest
// Points created through World.AddPoint are attached and receive gravity and collision
func NewPointMass(cfg PointConfig) *PointMass {
	p := &PointMass{
		Current:      cfg.Position,
		Previous:     cfg.Position,
		Radius:       cfg.Radius,
		Mass:         cfg.Mass,
		Interactive:  cfg.Interactive,
		DefaultForce: cfg.DefaultForce,
		DefaultForceDirection: vmath.V2(
			parameter.DefaultForceDirectionX,
			parameter.DefaultForceDirectionY,
		),
		Dampening: cfg.Dampening,
	}
	p.InvMass = inverse(cfg.Mass)
	return p
}

func inverse(mass float64) float64 {
	if mass == 0 {
		return 0
	}
	return 1 / mass
}

// AddForce accumulates f into the pending force
func (p *PointMass) AddForce(f vmath.Vec2) {
	p.force.AddInPlace(f)
}

// Force returns the force accumulated since the last integration
func (p *PointMass) Force() vmath.Vec2 {
	return p.force
}

// Velocity returns the implicit per-step displacement
func (p *PointMass) Velocity() vmath.Vec2 {
	return vmath.V2Sub(p.Current, p.Previous)
}

// Pinned reports whether the point ignores integration
func (p *PointMass) Pinned() bool {
	return p.InvMass == 0
}

// Pin makes the point immovable until Release
func (p *PointMass) Pin() {
	p.InvMass = 0
}

// Release restores the inverse mass after Pin
func (p *PointMass) Release() {
	p.InvMass = inverse(p.Mass)
}

// Teleport sets both position samples, previous→current becomes the next step's velocity
func (p *PointMass) Teleport(current, previous vmath.Vec2) {
	p.Current = current
	p.Previous = previous
}

// Integrate advances the point one Verlet step of dt milliseconds
func (p *PointMass) Integrate(dt float64) {
	if p.InvMass == 0 {
		p.force.Zero()
		return
	}

	if p.Interactive && p.world != nil {
		p.AddForce(p.world.Gravity)
	}
	if p.DefaultForce != 0 {
		p.AddForce(vmath.V2Scale(p.DefaultForceDirection, p.DefaultForce))
	}

	old := p.Current
	delta := vmath.V2Sub(p.Current, p.Previous)
	forceTerm := vmath.V2Scale(p.force, 1/(p.Mass*dt*dt))
	change := vmath.V2Scale(vmath.V2Add(delta, forceTerm), 1-p.Dampening)

	p.Current.AddInPlace(change)
	p.Previous = old

	if p.Interactive && p.world != nil {
		p.world.Interact(p)
	}

	p.force.Zero()
}
