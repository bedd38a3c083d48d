package dino

import (
	"math"
	"testing"

	"github.com/vovakirdan/capydino/internal/config"
)

// noGrass is above any decoration chance, so no patch spawns.
const noGrass = 0.99

func cloudXs(g *Game) []float64 {
	var xs []float64
	for _, c := range g.clouds.Items() {
		xs = append(xs, c.X)
	}
	return xs
}

func decorationXs(g *Game) []float64 {
	var xs []float64
	for _, d := range g.decorations.Items() {
		xs = append(xs, d.X)
	}
	return xs
}

func TestSceneryDrift(t *testing.T) {
	cfg := calmConfig()
	g := newTestGame(t, cfg, WithRand(&scriptedRand{f: noGrass}))
	g.Step(jump())

	clouds, grass := cloudXs(g), decorationXs(g)
	if len(clouds) != cfg.Clouds.Initial || len(grass) != cfg.Ground.InitialDecorations {
		t.Fatalf("expected %d clouds and %d patches, got %d and %d",
			cfg.Clouds.Initial, cfg.Ground.InitialDecorations, len(clouds), len(grass))
	}

	g.Step(idle())
	speed := g.speed

	tests := []struct {
		name   string
		before []float64
		after  []float64
		dx     float64
	}{
		{"clouds", clouds, cloudXs(g), speed * cfg.Clouds.DriftFactor},
		{"grass", grass, decorationXs(g), speed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.after) != len(tt.before) {
				t.Fatalf("count changed from %d to %d", len(tt.before), len(tt.after))
			}
			for i := range tt.before {
				if got := tt.before[i] - tt.after[i]; math.Abs(got-tt.dx) > eps {
					t.Errorf("item %d moved %v, expected %v", i, got, tt.dx)
				}
			}
		})
	}
}

func TestCloudSpawnInterval(t *testing.T) {
	cfg := calmConfig()
	g := newTestGame(t, cfg, WithRand(&scriptedRand{f: noGrass}))
	g.Step(jump())

	// The starting tick counted as one
	for i := 1; i < cfg.Clouds.Interval-1; i++ {
		g.Step(idle())
	}
	if g.clouds.Len() != cfg.Clouds.Initial {
		t.Fatalf("cloud spawned early at tick %d", g.ticks)
	}

	g.Step(idle())
	if g.clouds.Len() != cfg.Clouds.Initial+1 {
		t.Fatalf("expected a new cloud at tick %d, got %d clouds", g.ticks, g.clouds.Len())
	}

	items := g.clouds.Items()
	spawned := items[len(items)-1]
	if want := float64(cfg.Canvas.Width) - g.speed*cfg.Clouds.DriftFactor; math.Abs(spawned.X-want) > eps {
		t.Errorf("new cloud x = %v, expected %v after its first drift", spawned.X, want)
	}
	if g.cloudTimer != 0 {
		t.Errorf("cloud timer = %d, expected 0 after spawning", g.cloudTimer)
	}

	// The next one comes a full interval later
	for i := 0; i < cfg.Clouds.Interval-1; i++ {
		g.Step(idle())
	}
	if g.clouds.Len() != cfg.Clouds.Initial+1 {
		t.Errorf("second cloud spawned early at tick %d", g.ticks)
	}
	g.Step(idle())
	if g.clouds.Len() != cfg.Clouds.Initial+2 {
		t.Errorf("expected a second cloud at tick %d", g.ticks)
	}
}

func TestDecorationSpawnChance(t *testing.T) {
	chance := config.Default().Ground.DecorationChance

	tests := []struct {
		name   string
		roll   float64
		spawns bool
	}{
		{"roll below chance", chance / 2, true},
		{"roll equal to chance", chance, false},
		{"roll above chance", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := calmConfig()
			g := newTestGame(t, cfg, WithRand(&scriptedRand{f: tt.roll}))
			g.Step(jump())

			before := g.decorations.Len()
			g.Step(idle())

			want := before
			if tt.spawns {
				want++
			}
			if g.decorations.Len() != want {
				t.Fatalf("patches = %d, expected %d", g.decorations.Len(), want)
			}
			if !tt.spawns {
				return
			}

			items := g.decorations.Items()
			d := items[len(items)-1]
			if d.X != float64(cfg.Canvas.Width) {
				t.Errorf("new patch x = %v, expected the right edge %d", d.X, cfg.Canvas.Width)
			}
			if math.Abs(d.Y+d.H-g.groundY) > eps {
				t.Errorf("new patch bottom = %v, expected the ground line %v", d.Y+d.H, g.groundY)
			}
			if d.Seed != 7 {
				t.Errorf("patch seed = %d, expected the one drawn from the game RNG", d.Seed)
			}
		})
	}
}

func TestOffscreenSceneryRemoved(t *testing.T) {
	cfg := calmConfig()
	g := newTestGame(t, cfg, WithRand(&scriptedRand{f: noGrass}))
	g.Step(jump())
	g.clouds.Reset()
	g.decorations.Reset()

	// Right edges sit exactly on x=0, so they are still present until they
	// move
	g.clouds.Add(Cloud{Body: Body{X: -50, W: 50, H: 10}})
	g.clouds.Add(Cloud{Body: Body{X: 100, W: 50, H: 10}})
	g.decorations.Add(Decoration{Body: Body{X: -30, W: 30, H: 5}})
	g.decorations.Add(Decoration{Body: Body{X: 100, W: 30, H: 5}})

	g.Step(idle())

	if g.clouds.Len() != 1 || g.clouds.Items()[0].X <= 0 {
		t.Errorf("off-screen cloud should be gone, clouds at %v", cloudXs(g))
	}
	if g.decorations.Len() != 1 || g.decorations.Items()[0].X <= 0 {
		t.Errorf("off-screen patch should be gone, patches at %v", decorationXs(g))
	}
}
