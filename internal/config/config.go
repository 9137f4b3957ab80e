package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config holds gallery sources and render settings.
//
// Precedence, lowest first: built-in defaults, JSON file, SHOWREEL_*
// environment variables, CLI flags.
type Config struct {
	// Sources
	Catalog   string `json:"catalog" env:"SHOWREEL_CATALOG"`
	ImageDir  string `json:"image_dir" env:"SHOWREEL_IMAGE_DIR"`
	Trace     string `json:"trace" env:"SHOWREEL_TRACE"`
	OutputDir string `json:"output_dir" env:"SHOWREEL_OUTPUT_DIR"`

	// Layout
	Radius   float64 `json:"radius" env:"SHOWREEL_RADIUS"`
	MinCount int     `json:"min_count" env:"SHOWREEL_MIN_COUNT"`

	// Render settings
	Width       int     `json:"width" env:"SHOWREEL_WIDTH"`
	Height      int     `json:"height" env:"SHOWREEL_HEIGHT"`
	Supersample int     `json:"supersample" env:"SHOWREEL_SUPERSAMPLE"`
	TextureSize int     `json:"texture_size" env:"SHOWREEL_TEXTURE_SIZE"`
	FPS         float64 `json:"fps" env:"SHOWREEL_FPS"`
	Duration    float64 `json:"duration" env:"SHOWREEL_DURATION"`
	Workers     int     `json:"workers" env:"SHOWREEL_WORKERS"`

	// Camera and fog
	CameraDistance float64 `json:"camera_distance" env:"SHOWREEL_CAMERA_DISTANCE"`
	FOV            float64 `json:"fov" env:"SHOWREEL_FOV"`
	FogNear        float64 `json:"fog_near" env:"SHOWREEL_FOG_NEAR"`
	FogFar         float64 `json:"fog_far" env:"SHOWREEL_FOG_FAR"`

	LogLevel string `json:"log_level" env:"SHOWREEL_LOG_LEVEL"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative paths in the file are relative to the file itself.
	base := filepath.Dir(path)
	for _, p := range []*string{&cfg.Catalog, &cfg.ImageDir, &cfg.Trace, &cfg.OutputDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}

	return cfg, nil
}

// ParseEnv overlays SHOWREEL_* environment variables onto target. Variables
// that are unset leave the existing field values alone.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Catalog     string
	ImageDir    string
	Trace       string
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	FPS         float64
	Duration    float64
	Workers     int
	Verbose     bool
}

// Resolve applies flags, then fills any remaining zero fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Catalog != "" {
		c.Catalog = flags.Catalog
	}
	if flags.ImageDir != "" {
		c.ImageDir = flags.ImageDir
	}
	if flags.Trace != "" {
		c.Trace = flags.Trace
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Duration > 0 {
		c.Duration = flags.Duration
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Verbose {
		c.LogLevel = "debug"
	}

	if c.OutputDir == "" {
		c.OutputDir = "showreel-out"
	}

	// Defaults for layout and render settings
	if c.Radius <= 0 {
		c.Radius = 7.0
	}
	if c.MinCount <= 0 {
		c.MinCount = 50
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.TextureSize <= 0 {
		c.TextureSize = 512
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Duration <= 0 {
		c.Duration = 5
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CameraDistance <= 0 {
		c.CameraDistance = 22
	}
	if c.FOV <= 0 {
		c.FOV = 38
	}
	if c.FogNear <= 0 {
		c.FogNear = 25
	}
	if c.FogFar <= 0 {
		c.FogFar = 40
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
