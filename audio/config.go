package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// Config controls the sound effects
type Config struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate"`
}

// DefaultConfig enables sound at the stock volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// ApplyEnv overrides the config from ROCKET_AUDIO_ENABLED and ROCKET_MASTER_VOLUME (0-100)
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("ROCKET_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	if volume := os.Getenv("ROCKET_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
