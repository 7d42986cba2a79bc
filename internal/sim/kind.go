// Package sim implements the dot-rush entity simulation: fixed-capacity
// entity pools, the admission-controlled spawner, and pairwise collision
// resolution between moving circular entities. It is single-threaded and
// frame-synchronous; the hosting game loop drives it once per tick.
package sim

// Kind tags an entity variant. One Entity record serves all kinds; the
// tag selects the payload fields that are meaningful.
type Kind int

const (
	KindDot Kind = iota
	KindBomb
	KindSlowMo
	KindDouble
)

// String returns the kind name for stats and logs.
func (k Kind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindBomb:
		return "bomb"
	case KindSlowMo:
		return "slowmo"
	case KindDouble:
		return "double"
	default:
		return "unknown"
	}
}

// IsPowerUp reports whether the kind is one of the power-up variants.
// Both power-up kinds share one pool and one capacity.
func (k Kind) IsPowerUp() bool {
	return k == KindSlowMo || k == KindDouble
}

// Collides reports whether the kind participates in entity-entity
// collision. Bombs opt out: they only interact with taps.
func (k Kind) Collides() bool {
	return k != KindBomb
}
