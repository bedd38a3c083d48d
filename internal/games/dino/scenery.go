package dino

// Cloud is a background decoration drifting slower than the ground.
type Cloud struct {
	Body
}

// Decoration is a grass patch scrolling with the ground.
type Decoration struct {
	Body
	Seed int64 // Fixes the blade jitter of this patch
}

func cloudBody(c *Cloud) *Body           { return &c.Body }
func decorationBody(d *Decoration) *Body { return &d.Body }

// newCloud creates a cloud with its left edge at x.
func (g *Game) newCloud(x float64) Cloud {
	cc := g.cfg.Clouds
	y := cc.MinY + g.rng.Float64()*cc.YVar
	w := cc.MinWidth + g.rng.Float64()*cc.WidthVar
	return Cloud{Body: Body{X: x, Y: y, W: w, H: cc.Height}}
}

// newDecoration creates a grass patch with its left edge at x.
func (g *Game) newDecoration(x float64) Decoration {
	gc := g.cfg.Ground
	w := gc.DecorationMinWidth + g.rng.Float64()*gc.DecorationWidthVar
	return Decoration{
		Body: Body{X: x, Y: g.groundY - gc.DecorationHeight, W: w, H: gc.DecorationHeight},
		Seed: g.rng.Int63(),
	}
}

// seedScenery scatters the initial clouds and grass patches over the canvas.
func (g *Game) seedScenery() {
	width := float64(g.cfg.Canvas.Width)
	for i := 0; i < g.cfg.Clouds.Initial; i++ {
		g.clouds.Add(g.newCloud(g.rng.Float64() * width))
	}
	for i := 0; i < g.cfg.Ground.InitialDecorations; i++ {
		g.decorations.Add(g.newDecoration(g.rng.Float64() * width))
	}
}

// updateClouds spawns a cloud every interval and drifts all clouds.
func (g *Game) updateClouds() {
	g.cloudTimer++
	if g.cloudTimer >= g.cfg.Clouds.Interval {
		g.clouds.Add(g.newCloud(float64(g.cfg.Canvas.Width)))
		g.cloudTimer = 0
	}

	g.clouds.Advance(g.speed * g.cfg.Clouds.DriftFactor)
}

// updateDecorations scrolls grass patches, then maybe spawns a new one.
func (g *Game) updateDecorations() {
	g.decorations.Advance(g.speed)

	if g.rng.Float64() < g.cfg.Ground.DecorationChance {
		g.decorations.Add(g.newDecoration(float64(g.cfg.Canvas.Width)))
	}
}
