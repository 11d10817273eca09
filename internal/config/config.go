// Package config provides YAML-based configuration loading for the Swoop
// simulation and its host. All gameplay constants live here so the simulation
// core stays free of tuning literals.
package config

// Config contains all configuration for a Swoop game session.
type Config struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Lives     Lives     `yaml:"lives"`
	Scoring   Scoring   `yaml:"scoring"`
	Phases    Phases    `yaml:"phases"`
}

// World defines the fixed world-space dimensions the simulation runs in.
// The platform layer projects world coordinates onto the terminal.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"`
}

// GroundLevel returns the y-coordinate below which a body touches ground.
func (w World) GroundLevel() float64 {
	return w.Height - w.GroundMargin
}

// Physics defines the integration parameters for the player body.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`         // px/s², downward
	JumpVelocity  float64 `yaml:"jump_velocity"`   // px/s, negative = up
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`  // px/s, terminal velocity
	MaxStep       float64 `yaml:"max_step"`        // seconds, per-integration cap
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds, excess is dropped
}

// Player defines player body geometry and start placement.
type Player struct {
	XRatio          float64 `yaml:"x_ratio"`          // start x = world width * ratio
	YRatio          float64 `yaml:"y_ratio"`          // start y = world height * ratio
	VisualSize      float64 `yaml:"visual_size"`      // rendered sprite diameter
	CollisionRatio  float64 `yaml:"collision_ratio"`  // hitbox = visual * ratio, (0,1]
	ProximityBuffer float64 `yaml:"proximity_buffer"` // collision pre-filter window
}

// Obstacles defines obstacle geometry shared by all phases.
type Obstacles struct {
	Width      float64 `yaml:"width"`
	MinSpacing float64 `yaml:"min_spacing"` // min x distance between obstacles
	GapMargin  float64 `yaml:"gap_margin"`  // keeps the full gap on-screen
}

// Lives defines the life, continue and invulnerability rules.
type Lives struct {
	MaxLives         int     `yaml:"max_lives"`
	BoostedMaxLives  int     `yaml:"boosted_max_lives"` // heart booster cap
	MaxContinues     int     `yaml:"max_continues"`     // per run
	InvulnerableSecs float64 `yaml:"invulnerable_secs"` // window after a hit
}

// Scoring defines score awards.
type Scoring struct {
	PassAward int `yaml:"pass_award"` // points per obstacle passed
}

// PhaseParams tunes one difficulty phase. Obstacles freeze these values at
// spawn time, so a phase change never alters live obstacles.
type PhaseParams struct {
	GapSize       float64 `yaml:"gap_size"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Tag           string  `yaml:"tag"` // obstacle theme tag for the renderer
}

// Phases holds the per-phase tuning table. The phase a score maps to is
// fixed in the simulation; only the parameters are configurable.
type Phases struct {
	Easy   PhaseParams `yaml:"easy"`
	Medium PhaseParams `yaml:"medium"`
	Hard   PhaseParams `yaml:"hard"`
	Expert PhaseParams `yaml:"expert"`
}

// Preset represents a named gameplay preset applied on top of a config.
type Preset string

const (
	PresetRelaxed Preset = "relaxed"
	PresetClassic Preset = "classic"
	PresetBrutal  Preset = "brutal"
)

// ApplyPreset adjusts forgiveness-related settings for a preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetRelaxed:
		cfg.Lives.MaxLives = 5
		cfg.Lives.InvulnerableSecs = 3.0
		cfg.Player.CollisionRatio = 0.45
	case PresetBrutal:
		cfg.Lives.MaxLives = 1
		cfg.Lives.MaxContinues = 0
		cfg.Lives.InvulnerableSecs = 1.0
		cfg.Player.CollisionRatio = 0.6
	case PresetClassic:
		// Defaults already describe classic play.
	}
}
