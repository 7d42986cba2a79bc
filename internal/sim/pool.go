package sim

import (
	"fmt"

	"github.com/vovakirdan/dot-rush/internal/core"
)

// Stats describes pool occupancy for the debug overlay and telemetry.
type Stats struct {
	Active int // Entities currently active
	Total  int // Slots created so far (lazy warm-up)
	Max    int // Fixed capacity
}

// Hooks are lifecycle callbacks the rendering layer can attach so visual
// companions are created and destroyed synchronously with pool state.
// Either callback may be nil.
type Hooks struct {
	OnActivate   func(*Entity)
	OnDeactivate func(*Entity)
}

// Pool is a fixed-capacity arena of entity slots: a fixed-size backing
// array plus a free-list of indices. Acquire and Release are O(1) and
// allocation-free after warm-up. The pool exclusively owns all Entity
// instances; callers hold only transient references within the current
// frame.
type Pool struct {
	name       string
	capacity   int
	viewport   core.Rect
	cullMargin float64
	lifetimeMs float64 // Auto-release TTL stamped on activation; 0 = none

	slots  []Entity
	free   []int // Indices of released slots, LIFO
	total  int   // Slots handed out at least once
	active int

	clearing bool // Guards against reentrant Clear/Update during teardown
	hooks    Hooks
}

// NewPool creates a pool with the given fixed capacity. The viewport and
// cull margin define the bounds beyond which Update releases entities
// automatically. Capacity must be positive; misconfiguration fails fast.
func NewPool(name string, capacity int, viewport core.Rect, cullMargin float64) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("sim: pool %q capacity must be positive, got %d", name, capacity)
	}
	if cullMargin < 0 {
		return nil, fmt.Errorf("sim: pool %q cull margin must be non-negative, got %v", name, cullMargin)
	}
	return &Pool{
		name:       name,
		capacity:   capacity,
		viewport:   viewport,
		cullMargin: cullMargin,
		slots:      make([]Entity, capacity),
		free:       make([]int, 0, capacity),
	}, nil
}

// Name returns the pool's label.
func (p *Pool) Name() string {
	return p.name
}

// SetHooks attaches lifecycle callbacks.
func (p *Pool) SetHooks(h Hooks) {
	p.hooks = h
}

// SetLifetime sets the auto-release TTL stamped on each activation.
// Used by the power-up pool; zero disables expiry.
func (p *Pool) SetLifetime(ms float64) {
	p.lifetimeMs = ms
}

// SetViewport updates the culling bounds, e.g. after a terminal resize.
func (p *Pool) SetViewport(v core.Rect) {
	p.viewport = v
}

// Acquire returns an inactive slot: a previously released one if any,
// else a fresh slot while total < capacity. Returns nil when the pool is
// exhausted: admission denied, not an error. The returned entity stays
// inactive until Activate is called after initialization.
func (p *Pool) Acquire() *Entity {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		e := &p.slots[idx]
		e.leased = true
		return e
	}
	if p.total < p.capacity {
		idx := p.total
		p.total++
		e := &p.slots[idx]
		e.slot = idx
		e.leased = true
		return e
	}
	return nil
}

// Activate marks an initialized entity as live, stamps its TTL and
// collision cooldown baseline, and fires the activation hook. Only
// currently leased slots can be activated.
func (p *Pool) Activate(e *Entity) {
	if e == nil || e.Active || !e.leased {
		return
	}
	e.Active = true
	e.LastCollisionMs = 0
	if p.lifetimeMs > 0 {
		e.RemainingMs = p.lifetimeMs
	}
	p.active++
	if p.hooks.OnActivate != nil {
		p.hooks.OnActivate(e)
	}
}

// Release returns an entity to the free set. Slots that were acquired
// but never activated go back too, so an abandoned initialization cannot
// strand its slot. Idempotent: releasing an already-freed entity is a
// no-op and never corrupts the free list.
func (p *Pool) Release(e *Entity) {
	if e == nil || !e.leased {
		return
	}
	if e.Active {
		e.Active = false
		p.active--
		if p.hooks.OnDeactivate != nil {
			p.hooks.OnDeactivate(e)
		}
	}
	e.leased = false
	e.reset()
	p.free = append(p.free, e.slot)
}

// Update integrates motion for every active entity and performs culling:
// an entity whose center crosses the viewport bounds by more than the
// cull margin on any side is released automatically. Entities with a
// non-finite direction do not move this tick, keeping NaN out of
// positions and downstream collision math. Expired power-ups are
// released before moving.
func (p *Pool) Update(dt float64) {
	if p.clearing {
		return
	}
	for i := 0; i < p.total; i++ {
		e := &p.slots[i]
		if !e.Active {
			continue
		}
		if e.RemainingMs > 0 {
			e.RemainingMs -= dt * 1000
			if e.RemainingMs <= 0 {
				p.Release(e)
				continue
			}
		}
		if !e.Dir.IsFinite() {
			continue
		}
		e.Pos = e.Pos.Add(e.Dir.Scale(e.Speed * dt))
		if p.outOfBounds(e.Pos) {
			p.Release(e)
		}
	}
}

// outOfBounds reports whether the position exceeds the viewport by more
// than the cull margin on any side.
func (p *Pool) outOfBounds(pos core.Vec2) bool {
	return pos.X < p.viewport.X-p.cullMargin ||
		pos.X > p.viewport.Right()+p.cullMargin ||
		pos.Y < p.viewport.Y-p.cullMargin ||
		pos.Y > p.viewport.Bottom()+p.cullMargin
}

// Clear releases every active entity immediately. Reentrant-safe: a
// nested Update or Clear triggered mid-teardown is a no-op.
func (p *Pool) Clear() {
	if p.clearing {
		return
	}
	p.clearing = true
	for i := 0; i < p.total; i++ {
		if p.slots[i].Active {
			p.Release(&p.slots[i])
		}
	}
	p.clearing = false
}

// ActiveCount returns the number of live entities.
func (p *Pool) ActiveCount() int {
	return p.active
}

// Stats returns current occupancy.
func (p *Pool) Stats() Stats {
	return Stats{Active: p.active, Total: p.total, Max: p.capacity}
}

// ForEach calls fn for every active entity. The callback must not hold
// the pointer beyond the current frame.
func (p *Pool) ForEach(fn func(*Entity)) {
	for i := 0; i < p.total; i++ {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}

// AppendActive appends pointers to all active entities to buf and
// returns it. Callers reuse their buffer across frames to stay
// allocation-free.
func (p *Pool) AppendActive(buf []*Entity) []*Entity {
	for i := 0; i < p.total; i++ {
		if p.slots[i].Active {
			buf = append(buf, &p.slots[i])
		}
	}
	return buf
}
