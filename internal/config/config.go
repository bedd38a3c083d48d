// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// Config contains all tunables of the runner. Distances are canvas pixels,
// velocities are pixels per tick.
type Config struct {
	Canvas    Canvas    `yaml:"canvas"`
	Ground    Ground    `yaml:"ground"`
	Physics   Physics   `yaml:"physics"`
	Score     Score     `yaml:"score"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Clouds    Clouds    `yaml:"clouds"`
	Controls  Controls  `yaml:"controls"`
	Sprite    Sprite    `yaml:"sprite"`
	HighScore HighScore `yaml:"high_score"`
	Palette   Palette   `yaml:"palette"`
}

// Canvas is the fixed drawing surface all coordinates live in.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Ground defines the ground strip and its decorative grass patches.
type Ground struct {
	Height             float64 `yaml:"height"`
	DecorationChance   float64 `yaml:"decoration_chance"` // Spawn probability per tick
	InitialDecorations int     `yaml:"initial_decorations"`
	DecorationMinWidth float64 `yaml:"decoration_min_width"`
	DecorationWidthVar float64 `yaml:"decoration_width_var"`
	DecorationHeight   float64 `yaml:"decoration_height"`
}

// Physics defines gravity and scrolling speed.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	BaseSpeed float64 `yaml:"base_speed"`
}

// Score defines score accumulation and the speed ramp.
type Score struct {
	PerTick       float64 `yaml:"per_tick"`
	SpeedUpEvery  float64 `yaml:"speed_up_every"`  // Score bucket size
	SpeedUpFactor float64 `yaml:"speed_up_factor"` // Speed multiplier per bucket
	Digits        int     `yaml:"digits"`          // Zero padding of the displayed score
}

// Player defines the runner's pose sizes, jump and hitbox.
type Player struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DuckHeight float64 `yaml:"duck_height"`
	FootSink   float64 `yaml:"foot_sink"` // How far the sprite overlaps the ground line
	JumpPower  float64 `yaml:"jump_power"`
	Hitbox     Hitbox  `yaml:"hitbox"`
}

// Hitbox is the collision rectangle relative to the player's top-left corner.
type Hitbox struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Obstacles defines obstacle spawn timing.
type Obstacles struct {
	InitialInterval float64   `yaml:"initial_interval"` // Ticks before the first obstacle
	MinInterval     float64   `yaml:"min_interval"`
	MaxInterval     float64   `yaml:"max_interval"`
	BirdAltitudes   []float64 `yaml:"bird_altitudes"` // Heights above the ground line
}

// Clouds defines background cloud generation.
type Clouds struct {
	Interval    int     `yaml:"interval"`
	DriftFactor float64 `yaml:"drift_factor"` // Fraction of game speed
	Initial     int     `yaml:"initial"`
	MinY        float64 `yaml:"min_y"`
	YVar        float64 `yaml:"y_var"`
	MinWidth    float64 `yaml:"min_width"`
	WidthVar    float64 `yaml:"width_var"`
	Height      float64 `yaml:"height"`
}

// Controls defines front-end input behaviour.
type Controls struct {
	// DuckHoldMS is how long a single duck key press keeps the player down
	// on terminals that report no key releases.
	DuckHoldMS int `yaml:"duck_hold_ms"`
}

// Sprite points at the player's image asset.
type Sprite struct {
	Path string `yaml:"path"`
}

// HighScore names the persisted high score slot.
type HighScore struct {
	Key string `yaml:"key"`
}

// Palette holds the scene colours as hex strings.
type Palette struct {
	Sky       string `yaml:"sky"`
	Sun       string `yaml:"sun"`
	Cloud     string `yaml:"cloud"`
	Grass     string `yaml:"grass"`
	GrassDark string `yaml:"grass_dark"`
	Player    string `yaml:"player"`
	Eyes      string `yaml:"eyes"`
	Cactus    string `yaml:"cactus"`
	Bird      string `yaml:"bird"`
}

func (p Palette) entries() map[string]string {
	return map[string]string{
		"sky":        p.Sky,
		"sun":        p.Sun,
		"cloud":      p.Cloud,
		"grass":      p.Grass,
		"grass_dark": p.GrassDark,
		"player":     p.Player,
		"eyes":       p.Eyes,
		"cactus":     p.Cactus,
		"bird":       p.Bird,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
