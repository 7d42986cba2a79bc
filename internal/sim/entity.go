package sim

import (
	"github.com/vovakirdan/dot-rush/internal/core"
)

// Entity is one simulated circular object. A single record serves every
// kind; the Kind tag decides which payload fields apply (Color for dots,
// ExplosionRadius for bombs, RemainingMs for power-ups).
//
// Dir is a unit vector at all times except inside a single reflection
// computation, after which it is renormalized. Speed is a separate
// scalar so the collision resolver can redirect motion without touching
// magnitude.
type Entity struct {
	Kind  Kind
	Pos   core.Vec2
	Dir   core.Vec2
	Speed float64
	Size  float64 // Diameter; collision radius is Size/2

	Active bool

	// LastCollisionMs guards the per-entity collision cooldown window.
	// The pool clears it on activation so a recycled slot never inherits
	// a stale cooldown; zero means the entity has not collided yet.
	LastCollisionMs float64

	// RemainingMs counts down the active lifetime for power-ups.
	// Zero means no expiry. Managed by the owning pool.
	RemainingMs float64

	Color           core.Color // Dots: the color the player must match
	ExplosionRadius float64    // Bombs: blast radius when tapped

	slot   int  // Index of the owning pool slot
	leased bool // Set while the slot is out of the free set
}

// Radius returns the collision radius.
func (e *Entity) Radius() float64 {
	return e.Size / 2
}

// Overlaps reports whether the point lies inside the entity's circle.
// Used for tap hit-testing.
func (e *Entity) Overlaps(p core.Vec2) bool {
	return core.Dist(e.Pos, p) <= e.Radius()
}

// reset clears per-activation state while keeping the slot binding.
// LastCollisionMs deliberately survives until the next activation stamps
// it (see field comment).
func (e *Entity) reset() {
	e.Pos = core.Vec2{}
	e.Dir = core.Vec2{}
	e.Speed = 0
	e.Size = 0
	e.Active = false
	e.RemainingMs = 0
	e.Color = core.ColorDefault
	e.ExplosionRadius = 0
}
