package sim

import (
	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/core"
)

// Resolver detects and resolves overlaps between moving circular
// entities. Three pair groups are checked each frame: dot-dot,
// power-up-dot, and power-up-power-up. Bombs never participate.
//
// Resolution is uniform true reflection across the collision normal
// (v' = v - 2*(v·n)*n, renormalized) for every group; there is no
// cheaper negate-direction path for same-kind pairs.
type Resolver struct {
	cfg      config.CollisionConfig
	viewport core.Rect

	// Scratch buffers reused across frames to keep Resolve
	// allocation-free after warm-up.
	dotBuf     []*Entity
	powerUpBuf []*Entity
}

// NewResolver creates a resolver over the given viewport.
func NewResolver(cfg config.CollisionConfig, viewport core.Rect) *Resolver {
	return &Resolver{
		cfg:        cfg,
		viewport:   viewport,
		dotBuf:     make([]*Entity, 0, 64),
		powerUpBuf: make([]*Entity, 0, 16),
	}
}

// SetViewport updates the cheap-reject bounds.
func (r *Resolver) SetViewport(v core.Rect) {
	r.viewport = v
}

// Resolve runs pairwise collision detection and response over the active
// entities of the dot and power-up pools. O(n²) within each group is
// acceptable at the configured capacities. Entities are mutated in
// place; the resolver never creates or destroys them.
func (r *Resolver) Resolve(nowMs float64, dots, powerUps *Pool) {
	r.dotBuf = dots.AppendActive(r.dotBuf[:0])
	r.powerUpBuf = powerUps.AppendActive(r.powerUpBuf[:0])

	// Dot x dot
	for i := 0; i < len(r.dotBuf); i++ {
		for j := i + 1; j < len(r.dotBuf); j++ {
			r.resolvePair(r.dotBuf[i], r.dotBuf[j], nowMs, r.cfg.DotCooldownMs)
		}
	}

	// Power-up x dot
	for _, pu := range r.powerUpBuf {
		for _, d := range r.dotBuf {
			r.resolvePair(pu, d, nowMs, r.cfg.PowerUpCooldownMs)
		}
	}

	// Power-up x power-up
	for i := 0; i < len(r.powerUpBuf); i++ {
		for j := i + 1; j < len(r.powerUpBuf); j++ {
			r.resolvePair(r.powerUpBuf[i], r.powerUpBuf[j], nowMs, r.cfg.PowerUpCooldownMs)
		}
	}
}

// resolvePair checks one candidate pair and applies separation and
// reflection on a valid overlap. Symmetric: swapping a and b yields the
// same post-state, so iteration order never changes the outcome.
func (r *Resolver) resolvePair(a, b *Entity, nowMs, cooldownMs float64) {
	if !a.Kind.Collides() || !b.Kind.Collides() {
		return
	}
	if r.offscreen(a.Pos) || r.offscreen(b.Pos) {
		return
	}

	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()

	// Coincident centers have no defined normal; skip rather than
	// divide by zero.
	if dist == 0 {
		return
	}

	minDist := (a.Size+b.Size)/2 - r.cfg.Buffer
	if dist >= minDist {
		return
	}

	if r.inCooldown(a, nowMs, cooldownMs) || r.inCooldown(b, nowMs, cooldownMs) {
		return
	}
	a.LastCollisionMs = nowMs
	b.LastCollisionMs = nowMs

	normal := delta.Scale(1 / dist)

	// Positional correction: push both entities apart along the normal
	// so overlaps do not persist across frames.
	overlap := (a.Size+b.Size)/2 - dist
	push := overlap * r.cfg.Dampening
	if push < r.cfg.MinSeparation {
		push = r.cfg.MinSeparation
	}
	a.Pos = a.Pos.Sub(normal.Scale(push / 2))
	b.Pos = b.Pos.Add(normal.Scale(push / 2))

	a.Dir = reflectDir(a.Dir, normal)
	b.Dir = reflectDir(b.Dir, normal)
}

// inCooldown reports whether the entity collided within its cooldown
// window. A zero LastCollisionMs means no collision yet.
func (r *Resolver) inCooldown(e *Entity, nowMs, cooldownMs float64) bool {
	return e.LastCollisionMs > 0 && nowMs-e.LastCollisionMs < cooldownMs
}

// offscreen is the cheap reject: entities beyond the extended margin
// cannot collide with anything visible.
func (r *Resolver) offscreen(pos core.Vec2) bool {
	ext := r.viewport.Expand(r.cfg.OffscreenMargin)
	return !ext.Contains(pos)
}

// reflectDir reflects a unit direction across the collision normal and
// renormalizes. Degenerate results (zero-length or non-finite) leave the
// original direction untouched so NaN never propagates.
func reflectDir(dir, normal core.Vec2) core.Vec2 {
	reflected := dir.Reflect(normal).Normalized()
	if reflected.LenSq() == 0 || !reflected.IsFinite() {
		return dir
	}
	return reflected
}
