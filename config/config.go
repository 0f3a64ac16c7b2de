// Package config assembles the runtime configuration from defaults, an
// optional TOML file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vinegar-rocket/audio"
	"github.com/lixenwraith/vinegar-rocket/launch"
	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// ErrInvalid marks a configuration that cannot be used to start the simulation
var ErrInvalid = errors.New("invalid configuration")

// Display controls frame pacing and the meter-to-cell scale
type Display struct {
	FPS    int     `toml:"fps"`
	ScaleX float64 `toml:"scale_x"`
	ScaleY float64 `toml:"scale_y"`
	Trail  bool    `toml:"trail"`
}

// Telemetry controls the optional HTTP surface, disabled when Addr is empty
type Telemetry struct {
	Addr string `toml:"addr"`
}

// Config is the full runtime configuration
type Config struct {
	Chemistry launch.Chemistry `toml:"chemistry"`
	Physics   launch.Physics   `toml:"physics"`
	Display   Display          `toml:"display"`
	Audio     audio.Config     `toml:"audio"`
	Telemetry Telemetry        `toml:"telemetry"`
}

// Default returns the stock rocket with sound on and telemetry off
func Default() Config {
	return Config{
		Chemistry: launch.DefaultChemistry(),
		Physics:   launch.DefaultPhysics(),
		Display: Display{
			FPS:    parameter.FrameRate,
			ScaleX: parameter.ScaleX,
			ScaleY: parameter.ScaleY,
			Trail:  true,
		},
		Audio: audio.DefaultConfig(),
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides from ROCKET_FPS, ROCKET_TELEMETRY_ADDR and the audio variables
func (c *Config) ApplyEnv() {
	if fps := os.Getenv("ROCKET_FPS"); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil {
			c.Display.FPS = val
		}
	}
	if addr, ok := os.LookupEnv("ROCKET_TELEMETRY_ADDR"); ok {
		c.Telemetry.Addr = addr
	}
	c.Audio.ApplyEnv()
}

// Validate checks the display and audio sections.
// Chemistry and physics are validated when the launch parameters are computed.
func (c Config) Validate() error {
	if c.Display.FPS <= 0 || c.Display.FPS > parameter.MaxFrameRate {
		return fmt.Errorf("%w: fps must be in 1..%d, got %d", ErrInvalid, parameter.MaxFrameRate, c.Display.FPS)
	}
	if !(c.Display.ScaleX > 0) || !(c.Display.ScaleY > 0) {
		return fmt.Errorf("%w: display scale must be positive, got %gx%g", ErrInvalid, c.Display.ScaleX, c.Display.ScaleY)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume must be in 0..1, got %g", ErrInvalid, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate must be positive, got %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// Launch validates the configuration and derives the launch parameters
func (c Config) Launch() (launch.Parameters, error) {
	if err := c.Validate(); err != nil {
		return launch.Parameters{}, err
	}
	return launch.Compute(c.Chemistry, c.Physics)
}
