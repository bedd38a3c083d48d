package dino

import (
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
)

// grassSeed fixes the ground texture so it does not flicker between frames.
const grassSeed = 0x6361707964696e6f

// palette is the configured scene palette, parsed once.
type palette struct {
	sky, sun, cloud  core.Color
	grass, grassDark core.Color
	player, eyes     core.Color
	cactus, bird     core.Color
}

func newPalette(p config.Palette) palette {
	def := config.Default().Palette
	parse := func(hex, fallback string) core.Color {
		if c, err := core.ParseHex(hex); err == nil {
			return c
		}
		c, _ := core.ParseHex(fallback)
		return c
	}
	return palette{
		sky:       parse(p.Sky, def.Sky),
		sun:       parse(p.Sun, def.Sun),
		cloud:     parse(p.Cloud, def.Cloud),
		grass:     parse(p.Grass, def.Grass),
		grassDark: parse(p.GrassDark, def.GrassDark),
		player:    parse(p.Player, def.Player),
		eyes:      parse(p.Eyes, def.Eyes),
		cactus:    parse(p.Cactus, def.Cactus),
		bird:      parse(p.Bird, def.Bird),
	}
}

func setColor(dc *gg.Context, c core.Color) {
	r, g, b := c.Components()
	dc.SetRGB255(int(r), int(g), int(b))
}

// Draw paints the scene in canvas coordinates. dc is expected to be at
// least canvas-sized; anything outside the canvas is clipped by gg.
func (g *Game) Draw(dc *gg.Context) {
	w := float64(g.cfg.Canvas.Width)
	h := float64(g.cfg.Canvas.Height)

	setColor(dc, g.colors.sky)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	g.drawSun(dc)

	setColor(dc, g.colors.cloud)
	for _, c := range g.clouds.Items() {
		drawCloud(dc, c.Body)
	}

	setColor(dc, g.colors.grass)
	dc.DrawRectangle(0, g.groundY, w, g.cfg.Ground.Height)
	dc.Fill()

	g.drawGrassTexture(dc)

	setColor(dc, g.colors.grassDark)
	dc.SetLineWidth(2)
	dc.DrawLine(0, g.groundY, w, g.groundY)
	dc.Stroke()

	for _, d := range g.decorations.Items() {
		g.drawGrassPatch(dc, d)
	}

	g.drawPlayer(dc)

	for _, o := range g.obstacles.Items() {
		if o.Kind.IsCactus() {
			g.drawCactus(dc, o)
		} else {
			g.drawBird(dc, o.Body)
		}
	}
}

func (g *Game) drawSun(dc *gg.Context) {
	cx := float64(g.cfg.Canvas.Width) - 80
	cy := 60.0

	setColor(dc, g.colors.sun)
	dc.DrawCircle(cx, cy, 30)
	dc.Fill()

	dc.SetLineWidth(3)
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi * 2 / 8
		cos, sin := math.Cos(angle), math.Sin(angle)
		dc.DrawLine(cx+cos*35, cy+sin*35, cx+cos*45, cy+sin*45)
		dc.Stroke()
	}
}

func drawCloud(dc *gg.Context, b Body) {
	dc.DrawCircle(b.X+b.W*0.2, b.Y+b.H*0.5, b.H*0.3)
	dc.DrawCircle(b.X+b.W*0.4, b.Y+b.H*0.3, b.H*0.4)
	dc.DrawCircle(b.X+b.W*0.6, b.Y+b.H*0.3, b.H*0.4)
	dc.DrawCircle(b.X+b.W*0.8, b.Y+b.H*0.5, b.H*0.3)
	dc.Fill()
}

// drawGrassTexture draws three blades every 8 pixels along the ground line.
func (g *Game) drawGrassTexture(dc *gg.Context) {
	rng := rand.New(rand.NewSource(grassSeed))

	setColor(dc, g.colors.grassDark)
	dc.SetLineWidth(1)
	for x := 0.0; x < float64(g.cfg.Canvas.Width); x += 8 {
		for i := 0; i < 3; i++ {
			bx := x + rng.Float64()*6
			bh := 3 + rng.Float64()*4
			dc.DrawLine(bx, g.groundY, bx+rng.Float64()*2-1, g.groundY-bh)
			dc.Stroke()
		}
	}
}

// drawGrassPatch draws a tuft of blades, one every 2 pixels of width.
func (g *Game) drawGrassPatch(dc *gg.Context, d Decoration) {
	rng := rand.New(rand.NewSource(d.Seed))

	setColor(dc, g.colors.grassDark)
	dc.SetLineWidth(1)
	base := d.Y + d.H
	for i := 0; float64(i) < d.W/2; i++ {
		bx := d.X + float64(i)*2 + rng.Float64()*2
		bh := d.H + rng.Float64()*3
		dc.DrawLine(bx, base, bx+rng.Float64()*2-1, base-bh)
		dc.Stroke()
	}
}

// drawPlayer paints the sprite, or a silhouette with eyes while no sprite
// frame is available.
func (g *Game) drawPlayer(dc *gg.Context) {
	p := g.player
	if g.sprite != nil && g.sprite.Draw(dc, p.Rect()) {
		return
	}

	setColor(dc, g.colors.player)
	dc.DrawRectangle(p.X, p.Y, p.Width, p.Height)
	dc.Fill()

	eyeY := p.Y + 8
	if p.Ducking {
		eyeY = p.Y + 5
	}
	setColor(dc, g.colors.eyes)
	dc.DrawRectangle(p.X+25, eyeY, 3, 3)
	dc.DrawRectangle(p.X+30, eyeY, 3, 3)
	dc.Fill()
}

func (g *Game) drawCactus(dc *gg.Context, o Obstacle) {
	x, y, w, h := o.X, o.Y, o.W, o.H

	setColor(dc, g.colors.cactus)
	switch o.Kind {
	case SmallCactus:
		dc.DrawRectangle(x+w*0.3, y, w*0.4, h)
	case LargeCactus:
		dc.DrawRectangle(x+w*0.3, y, w*0.4, h)
		// Left arm
		dc.DrawRectangle(x, y+h*0.3, w*0.5, w*0.2)
		dc.DrawRectangle(x, y+h*0.3, w*0.15, h*0.4)
		// Right arm
		dc.DrawRectangle(x+w*0.5, y+h*0.5, w*0.5, w*0.2)
		dc.DrawRectangle(x+w*0.85, y+h*0.5, w*0.15, h*0.3)
	case CactusCluster:
		dc.DrawRectangle(x+w*0.1, y, w*0.2, h)
		dc.DrawRectangle(x+w*0.4, y+h*0.2, w*0.2, h*0.8)
		dc.DrawRectangle(x+w*0.7, y+h*0.1, w*0.2, h*0.9)
	}
	dc.Fill()
}

func (g *Game) drawBird(dc *gg.Context, b Body) {
	setColor(dc, g.colors.bird)
	cx, cy := b.Rect().Center()
	dc.DrawEllipse(cx, cy, b.W*0.4, b.H*0.3)
	dc.Fill()

	drawWing := func(cx, angle float64) {
		cy := b.Y + b.H*0.4
		dc.Push()
		dc.RotateAbout(angle, cx, cy)
		dc.DrawEllipse(cx, cy, b.W*0.2, b.H*0.2)
		dc.Fill()
		dc.Pop()
	}
	drawWing(b.X+b.W*0.3, -0.5)
	drawWing(b.X+b.W*0.7, 0.5)
}
