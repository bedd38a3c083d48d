package dino

// ObstacleKind is the closed set of obstacle variants.
type ObstacleKind int

const (
	SmallCactus ObstacleKind = iota
	LargeCactus
	CactusCluster
	Bird

	obstacleKindCount
)

// ObstacleKinds lists every variant in spawn-table order.
func ObstacleKinds() []ObstacleKind {
	kinds := make([]ObstacleKind, 0, obstacleKindCount)
	for k := ObstacleKind(0); k < obstacleKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Size returns the fixed width and height of the variant.
func (k ObstacleKind) Size() (w, h float64) {
	switch k {
	case SmallCactus:
		return 17, 35
	case LargeCactus:
		return 25, 50
	case CactusCluster:
		return 40, 35
	case Bird:
		return 46, 40
	default:
		return 0, 0
	}
}

// IsCactus reports whether the variant stands on the ground.
func (k ObstacleKind) IsCactus() bool {
	return k == SmallCactus || k == LargeCactus || k == CactusCluster
}

// String returns a human-readable name for the variant.
func (k ObstacleKind) String() string {
	switch k {
	case SmallCactus:
		return "small cactus"
	case LargeCactus:
		return "large cactus"
	case CactusCluster:
		return "cactus cluster"
	case Bird:
		return "bird"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard the player must jump over or duck under.
type Obstacle struct {
	Body
	Kind ObstacleKind
}

func obstacleBody(o *Obstacle) *Body { return &o.Body }

// updateObstacles runs the spawn timer and scrolls obstacles by the game speed.
func (g *Game) updateObstacles() {
	g.obstacleTimer++
	if float64(g.obstacleTimer) >= g.obstacleInterval {
		g.obstacles.Add(g.newObstacle())
		g.obstacleTimer = 0

		oc := g.cfg.Obstacles
		g.obstacleInterval = oc.MinInterval + g.rng.Float64()*(oc.MaxInterval-oc.MinInterval)
	}

	g.obstacles.Advance(g.speed)
}

// newObstacle creates a random obstacle at the right edge of the canvas.
func (g *Game) newObstacle() Obstacle {
	kind := ObstacleKind(g.rng.Intn(int(obstacleKindCount)))
	w, h := kind.Size()

	y := g.groundY - h
	if kind == Bird {
		altitudes := g.cfg.Obstacles.BirdAltitudes
		y = g.groundY - altitudes[g.rng.Intn(len(altitudes))]
	}

	return Obstacle{
		Body: Body{X: float64(g.cfg.Canvas.Width), Y: y, W: w, H: h},
		Kind: kind,
	}
}

// checkCollisions ends the run on the first obstacle touching the hitbox.
func (g *Game) checkCollisions() {
	hitbox := g.player.HitboxRect()
	for _, o := range g.obstacles.Items() {
		if hitbox.Intersects(o.Rect()) {
			g.gameOver()
			return
		}
	}
}
