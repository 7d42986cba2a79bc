package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/dot-rush/internal/config"
	"github.com/vovakirdan/dot-rush/internal/core"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := NewWorld(config.Default(), testViewport(), seed)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func TestWorldRejectsBadInput(t *testing.T) {
	cfg := config.Default()
	cfg.Capacities.Dots = 0
	if _, err := NewWorld(cfg, testViewport(), 1); err == nil {
		t.Error("zero dot capacity should fail validation")
	}

	if _, err := NewWorld(config.Default(), core.NewRect(0, 0, 0, 600), 1); err == nil {
		t.Error("degenerate viewport should be rejected")
	}
}

func TestWorldDeterminism(t *testing.T) {
	// Two worlds with the same seed and the same frame cadence must
	// produce identical entity streams.
	a := newTestWorld(t, 42)
	b := newTestWorld(t, 42)

	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		a.Advance(dt)
		b.Advance(dt)
	}

	snapshot := func(w *World) []Entity {
		var out []Entity
		w.ForEachActive(func(e *Entity) {
			out = append(out, *e)
		})
		return out
	}

	sa, sb := snapshot(a), snapshot(b)
	if len(sa) != len(sb) {
		t.Fatalf("entity counts diverged: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i].Kind != sb[i].Kind || sa[i].Pos != sb[i].Pos || sa[i].Dir != sb[i].Dir {
			t.Errorf("entity %d diverged: %+v vs %+v", i, sa[i], sb[i])
		}
	}
	if a.TargetColor() != b.TargetColor() {
		t.Errorf("target colors diverged: %v vs %v", a.TargetColor(), b.TargetColor())
	}
}

func TestWorldSeedsDiverge(t *testing.T) {
	a := newTestWorld(t, 1)
	b := newTestWorld(t, 99)

	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		a.Advance(dt)
		b.Advance(dt)
	}

	same := true
	countA, countB := 0, 0
	var posA, posB []core.Vec2
	a.ForEachActive(func(e *Entity) { countA++; posA = append(posA, e.Pos) })
	b.ForEachActive(func(e *Entity) { countB++; posB = append(posB, e.Pos) })
	if countA != countB {
		same = false
	} else {
		for i := range posA {
			if posA[i] != posB[i] {
				same = false
				break
			}
		}
	}
	if same && countA > 0 {
		t.Error("different seeds should produce different sessions")
	}
}

func TestWorldAdvanceSpawns(t *testing.T) {
	w := newTestWorld(t, 7)

	count := func() int {
		n := 0
		w.ForEachActive(func(*Entity) { n++ })
		return n
	}

	// Ten simulated seconds at the default rates must produce entities.
	for i := 0; i < 600; i++ {
		w.Advance(1.0 / 60)
	}
	if count() == 0 {
		t.Error("advancing 10s should have spawned entities")
	}
}

func TestWorldTapMiss(t *testing.T) {
	w := newTestWorld(t, 7)
	if res := w.TapAt(core.NewVec2(400, 300)); res.Outcome != TapMiss {
		t.Errorf("tap on empty space should miss, got %v", res.Outcome)
	}
}

func TestWorldTapCorrectAndWrong(t *testing.T) {
	w := newTestWorld(t, 7)

	target := w.TargetColor()
	d := w.dots.Acquire()
	d.Kind = KindDot
	d.Pos = core.NewVec2(100, 100)
	d.Dir = core.NewVec2(1, 0)
	d.Size = 2
	d.Color = target
	w.dots.Activate(d)

	res := w.TapAt(core.NewVec2(100, 100))
	if res.Outcome != TapCorrect {
		t.Errorf("tap on target-colored dot should be correct, got %v", res.Outcome)
	}
	if res.Color != target {
		t.Errorf("result should carry the tapped color, got %v", res.Color)
	}
	if w.dots.ActiveCount() != 0 {
		t.Error("tapped dot must be consumed")
	}

	wrong := core.ColorBrightGreen
	if wrong == w.TargetColor() {
		wrong = core.ColorBrightBlue
	}
	d = w.dots.Acquire()
	d.Kind = KindDot
	d.Pos = core.NewVec2(200, 200)
	d.Dir = core.NewVec2(1, 0)
	d.Size = 2
	d.Color = wrong
	w.dots.Activate(d)

	if res := w.TapAt(core.NewVec2(200, 200)); res.Outcome != TapWrong {
		t.Errorf("tap on off-color dot should be wrong, got %v", res.Outcome)
	}
}

func TestWorldTargetRotation(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.TargetSwitchTaps = 2
	w, err := NewWorld(cfg, testViewport(), 7)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	tapTarget := func() {
		d := w.dots.Acquire()
		d.Kind = KindDot
		d.Pos = core.NewVec2(100, 100)
		d.Dir = core.NewVec2(1, 0)
		d.Size = 2
		d.Color = w.TargetColor()
		w.dots.Activate(d)
		if res := w.TapAt(d.Pos); res.Outcome != TapCorrect {
			t.Fatalf("setup tap should be correct, got %v", res.Outcome)
		}
	}

	before := w.TargetColor()
	tapTarget()
	if w.TargetColor() != before {
		t.Fatal("target must not rotate before the tap threshold")
	}
	tapTarget()
	if w.TargetColor() == before {
		t.Error("target should rotate after the configured number of correct taps")
	}
}

func TestWorldBombDetonation(t *testing.T) {
	w := newTestWorld(t, 7)

	b := w.bombs.Acquire()
	b.Kind = KindBomb
	b.Pos = core.NewVec2(400, 300)
	b.Dir = core.NewVec2(0, 1)
	b.Size = 4
	b.ExplosionRadius = 12
	w.bombs.Activate(b)

	inside := w.dots.Acquire()
	inside.Kind = KindDot
	inside.Pos = core.NewVec2(405, 300)
	inside.Dir = core.NewVec2(1, 0)
	inside.Size = 2
	w.dots.Activate(inside)

	outside := w.dots.Acquire()
	outside.Kind = KindDot
	outside.Pos = core.NewVec2(450, 300)
	outside.Dir = core.NewVec2(1, 0)
	outside.Size = 2
	w.dots.Activate(outside)

	if res := w.TapAt(core.NewVec2(400, 300)); res.Outcome != TapBomb {
		t.Fatalf("tap on bomb should report TapBomb, got %v", res.Outcome)
	}
	if w.bombs.ActiveCount() != 0 {
		t.Error("detonated bomb must be released")
	}
	if inside.Active {
		t.Error("dot inside the blast radius should be destroyed")
	}
	if !outside.Active {
		t.Error("dot outside the blast radius must survive")
	}
}

func TestWorldSlowMoEffect(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.SlowMoFactor = 0.5
	cfg.Gameplay.SlowMoDurationMs = 1000
	w, err := NewWorld(cfg, testViewport(), 7)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	pu := w.powerUps.Acquire()
	pu.Kind = KindSlowMo
	pu.Pos = core.NewVec2(400, 300)
	pu.Dir = core.NewVec2(0, 1)
	pu.Size = 3
	w.powerUps.Activate(pu)

	if res := w.TapAt(pu.Pos); res.Outcome != TapSlowMo {
		t.Fatalf("tap on slow-mo should report TapSlowMo, got %v", res.Outcome)
	}
	if w.TimeScale() != 0.5 {
		t.Errorf("time scale should drop to 0.5, got %v", w.TimeScale())
	}

	// Slow motion halves entity displacement but not the wall clock.
	d := w.dots.Acquire()
	d.Kind = KindDot
	d.Pos = core.NewVec2(100, 100)
	d.Dir = core.NewVec2(1, 0)
	d.Speed = 10
	d.Size = 2
	w.dots.Activate(d)

	start := d.Pos.X
	w.Advance(0.1)
	moved := d.Pos.X - start
	if math.Abs(moved-0.5) > 1e-9 {
		t.Errorf("expected displacement 0.5 under half time scale, got %v", moved)
	}

	// Effect expires after its duration.
	for i := 0; i < 11; i++ {
		w.Advance(0.1)
	}
	if w.TimeScale() != 1 {
		t.Errorf("time scale should restore to 1 after expiry, got %v", w.TimeScale())
	}
}

func TestWorldDoubleScoreEffect(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.DoubleDurationMs = 500
	w, err := NewWorld(cfg, testViewport(), 7)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	if w.ScoreMultiplier() != 1 {
		t.Fatalf("baseline multiplier should be 1, got %d", w.ScoreMultiplier())
	}

	pu := w.powerUps.Acquire()
	pu.Kind = KindDouble
	pu.Pos = core.NewVec2(400, 300)
	pu.Dir = core.NewVec2(0, 1)
	pu.Size = 3
	w.powerUps.Activate(pu)

	if res := w.TapAt(pu.Pos); res.Outcome != TapDouble {
		t.Fatalf("tap on double should report TapDouble, got %v", res.Outcome)
	}
	if w.ScoreMultiplier() != 2 {
		t.Errorf("multiplier should be 2 while active, got %d", w.ScoreMultiplier())
	}

	for i := 0; i < 6; i++ {
		w.Advance(0.1)
	}
	if w.ScoreMultiplier() != 1 {
		t.Errorf("multiplier should restore to 1 after expiry, got %d", w.ScoreMultiplier())
	}
}

func TestWorldTapNearestWins(t *testing.T) {
	w := newTestWorld(t, 7)

	near := w.dots.Acquire()
	near.Kind = KindDot
	near.Pos = core.NewVec2(300, 300)
	near.Dir = core.NewVec2(1, 0)
	near.Size = 6
	near.Color = core.ColorBrightGreen
	w.dots.Activate(near)

	far := w.dots.Acquire()
	far.Kind = KindDot
	far.Pos = core.NewVec2(302, 300)
	far.Dir = core.NewVec2(1, 0)
	far.Size = 6
	far.Color = core.ColorBrightCyan
	w.dots.Activate(far)

	res := w.TapAt(core.NewVec2(300, 300))
	if res.Color != core.ColorBrightGreen {
		t.Errorf("nearest overlapping entity should win the tap, got color %v", res.Color)
	}
	if near.Active {
		t.Error("nearest dot should be consumed")
	}
	if !far.Active {
		t.Error("farther dot must survive the tap")
	}
}

func TestWorldClearAndReset(t *testing.T) {
	w := newTestWorld(t, 7)
	for i := 0; i < 600; i++ {
		w.Advance(1.0 / 60)
	}
	w.SetTimeScale(0.5, 5000)

	w.Clear()
	active := 0
	w.ForEachActive(func(*Entity) { active++ })
	if active != 0 {
		t.Errorf("Clear should release everything, %d still active", active)
	}
	if w.TimeScale() != 1 {
		t.Errorf("Clear should cancel effects, time scale %v", w.TimeScale())
	}

	w.Reset(42)
	if w.NowMs() != 0 {
		t.Errorf("Reset should restart the clock, now=%v", w.NowMs())
	}

	// A reset world with seed 42 replays like a fresh seed-42 world.
	fresh := newTestWorld(t, 42)
	for i := 0; i < 300; i++ {
		w.Advance(1.0 / 60)
		fresh.Advance(1.0 / 60)
	}
	countW, countF := 0, 0
	w.ForEachActive(func(*Entity) { countW++ })
	fresh.ForEachActive(func(*Entity) { countF++ })
	if countW != countF {
		t.Errorf("reset session should replay the seed: %d vs %d entities", countW, countF)
	}
}

func TestWorldStats(t *testing.T) {
	w := newTestWorld(t, 7)

	d := w.dots.Acquire()
	d.Kind = KindDot
	d.Pos = core.NewVec2(100, 100)
	d.Dir = core.NewVec2(1, 0)
	d.Size = 2
	w.dots.Activate(d)

	stats := w.Stats()
	if len(stats) != 3 {
		t.Fatalf("expected stats for 3 pools, got %d", len(stats))
	}
	if stats[0].Name != "dots" || stats[0].Stats.Active != 1 {
		t.Errorf("dot pool stats wrong: %+v", stats[0])
	}
	if stats[1].Stats.Max != w.bombs.Stats().Max {
		t.Errorf("bomb pool stats inconsistent: %+v", stats[1])
	}
}
