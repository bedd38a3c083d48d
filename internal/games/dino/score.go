package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/capydino/internal/core"
)

// speedRamp multiplies the game speed once per score bucket. The watermark is
// the score at which the last increase fired; comparing bucket indices keeps
// a bucket from firing twice. A single tick crossing several buckets fires
// only once.
type speedRamp struct {
	every     float64
	factor    float64
	watermark float64
	fired     int
}

// observe reports whether score entered a new bucket since the watermark.
func (r *speedRamp) observe(score float64) bool {
	current := math.Floor(score / r.every)
	last := math.Floor(r.watermark / r.every)
	if current > last && score > 0 {
		r.watermark = score
		r.fired++
		return true
	}
	return false
}

// updateScore adds the per-tick score and applies the speed ramp.
func (g *Game) updateScore() {
	g.score += g.cfg.Score.PerTick
	if g.ramp.observe(g.score) {
		g.speed *= g.ramp.factor
		g.emit(core.EventSpeedUp)
	}
}

// FormatScore floors score and zero-pads it to the given number of digits.
// Longer numbers are not truncated.
func FormatScore(score float64, digits int) string {
	return fmt.Sprintf("%0*d", digits, int(math.Floor(score)))
}
