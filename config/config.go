// Package config provides configuration loading for the navigation simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/vfh/systems"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig     `yaml:"screen"`
	World     WorldConfig      `yaml:"world"`
	Robot     RobotConfig      `yaml:"robot"`
	Sensor    SensorConfig     `yaml:"sensor"`
	Selector  SelectorConfig   `yaml:"selector"`
	Goal      GoalConfig       `yaml:"goal"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
	Telemetry TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the field dimensions.
type WorldConfig struct {
	Width  float64 `yaml:"width"`  // 0 = use screen width
	Height float64 `yaml:"height"` // 0 = use screen height
}

// RobotConfig holds the robot's physical parameters and start pose.
type RobotConfig struct {
	Radius   float64   `yaml:"radius"`
	MinSpeed float64   `yaml:"min_speed"` // world units per tick while turning
	MaxSpeed float64   `yaml:"max_speed"` // world units per tick when aligned
	Start    StartPose `yaml:"start"`
}

// StartPose is the robot's initial pose.
type StartPose struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"` // radians
}

// SensorConfig holds sonar parameters.
type SensorConfig struct {
	NumSectors int     `yaml:"num_sectors"`
	MaxRange   float64 `yaml:"max_range"`
	StepLength float64 `yaml:"step_length"`
}

// SelectorConfig holds the sector selection heuristics. Defaults were found
// by trial on the reference scene.
type SelectorConfig struct {
	SafetyThreshold float64 `yaml:"safety_threshold"` // density must be strictly below this
	WindowBefore    int     `yaml:"window_before"`    // first offset from target sector
	WindowAfter     int     `yaml:"window_after"`     // last offset, inclusive
}

// GoalConfig holds the target position and reach radius.
type GoalConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig is an axis-aligned rectangle, origin at the top-left corner.
type ObstacleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TelemetryConfig holds logging and output parameters.
type TelemetryConfig struct {
	LogEvery   int `yaml:"log_every"`   // ticks between tick log records (0 = off)
	PerfWindow int `yaml:"perf_window"` // ticks in the perf rolling window
	TraceEvery int `yaml:"trace_every"` // ticks between trace.csv rows
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW      float64 // effective world width
	WorldH      float64 // effective world height
	SectorAngle float64 // 2*Pi / num_sectors, 0 when num_sectors is invalid
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WorldW = c.World.Width
	if c.Derived.WorldW == 0 {
		c.Derived.WorldW = float64(c.Screen.Width)
	}
	c.Derived.WorldH = c.World.Height
	if c.Derived.WorldH == 0 {
		c.Derived.WorldH = float64(c.Screen.Height)
	}
	c.Derived.SectorAngle = 0
	if c.Sensor.NumSectors > 0 {
		c.Derived.SectorAngle = c.NavParams().Sensor.SectorAngle()
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Derived.WorldW <= 0 || c.Derived.WorldH <= 0 {
		return fmt.Errorf("config: world size %gx%g must be positive", c.Derived.WorldW, c.Derived.WorldH)
	}
	for i, o := range c.Obstacles {
		if o.Width < 0 || o.Height < 0 {
			return fmt.Errorf("config: obstacle %d has negative size %gx%g", i, o.Width, o.Height)
		}
	}
	s := c.Robot.Start
	if s.X < 0 || s.X > c.Derived.WorldW || s.Y < 0 || s.Y > c.Derived.WorldH {
		return fmt.Errorf("config: robot start (%g, %g) outside world", s.X, s.Y)
	}
	if err := c.NavParams().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// NavParams converts the navigation sections into core parameters.
func (c *Config) NavParams() systems.Params {
	return systems.Params{
		Robot: systems.RobotParams{
			Radius:   c.Robot.Radius,
			MinSpeed: c.Robot.MinSpeed,
			MaxSpeed: c.Robot.MaxSpeed,
		},
		Sensor: systems.SensorParams{
			NumSectors: c.Sensor.NumSectors,
			MaxRange:   c.Sensor.MaxRange,
			StepLength: c.Sensor.StepLength,
		},
		Selector: systems.SelectorParams{
			SafetyThreshold: c.Selector.SafetyThreshold,
			WindowBefore:    c.Selector.WindowBefore,
			WindowAfter:     c.Selector.WindowAfter,
		},
		GoalRadius: c.Goal.Radius,
	}
}

// Scene returns the static world snapshot described by the config.
func (c *Config) Scene() systems.World {
	obstacles := make([]systems.Rect, len(c.Obstacles))
	for i, o := range c.Obstacles {
		obstacles[i] = systems.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
	}
	return systems.World{
		Width:     c.Derived.WorldW,
		Height:    c.Derived.WorldH,
		Obstacles: obstacles,
		Target:    systems.Vec2{X: c.Goal.X, Y: c.Goal.Y},
	}
}

// StartPose returns the robot's initial pose.
func (c *Config) StartPose() systems.Pose {
	return systems.Pose{X: c.Robot.Start.X, Y: c.Robot.Start.Y, Heading: c.Robot.Start.Heading}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Obstacles = append([]ObstacleConfig(nil), c.Obstacles...)
	return &out
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
