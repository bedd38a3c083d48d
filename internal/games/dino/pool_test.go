package dino

import "testing"

func TestPoolAdvancePrunesOffscreen(t *testing.T) {
	p := NewPool(cloudBody)
	p.Add(Cloud{Body{X: 10, W: 10}})  // right edge 20
	p.Add(Cloud{Body{X: 5, W: 10}})   // right edge 15
	p.Add(Cloud{Body{X: 100, W: 10}}) // right edge 110

	p.Advance(15)

	// Right edge exactly at 0 is still on the canvas
	if p.Len() != 2 {
		t.Fatalf("expected 2 entities, got %d", p.Len())
	}
	if p.Items()[0].X != -5 || p.Items()[1].X != 85 {
		t.Errorf("unexpected positions %v, %v", p.Items()[0].X, p.Items()[1].X)
	}

	p.Advance(0.5)
	if p.Len() != 1 {
		t.Fatalf("entity with right edge below 0 should be gone, got %d", p.Len())
	}
	for _, c := range p.Items() {
		if c.X+c.W < 0 {
			t.Errorf("offscreen entity still present: %+v", c)
		}
	}
}

func TestPoolKeepsInsertionOrder(t *testing.T) {
	p := NewPool(obstacleBody)
	for i, x := range []float64{-50, 10, -50, 20, 30} {
		p.Add(Obstacle{Body: Body{X: x, W: 5}, Kind: ObstacleKind(i % int(obstacleKindCount))})
	}

	p.Advance(0)

	want := []float64{10, 20, 30}
	if p.Len() != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), p.Len())
	}
	for i, o := range p.Items() {
		if o.X != want[i] {
			t.Errorf("item %d at x=%v, expected %v", i, o.X, want[i])
		}
	}
}

func TestPoolResetAndSnapshot(t *testing.T) {
	p := NewPool(decorationBody)
	p.Add(Decoration{Body: Body{X: 1, W: 1}, Seed: 3})

	snap := p.Snapshot()
	snap[0].X = 99
	if p.Items()[0].X != 1 {
		t.Error("snapshot should be a copy")
	}

	p.Reset()
	if p.Len() != 0 {
		t.Errorf("expected empty pool, got %d", p.Len())
	}
	p.Add(Decoration{Body: Body{X: 2, W: 1}})
	if p.Len() != 1 {
		t.Error("pool should be usable after reset")
	}
}
