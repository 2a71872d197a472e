package config

import (
	"os"
	"strconv"
)

const EnvAnalysisPreload = "DRISHTI_ANALYSIS_PRELOAD"

// AnalysisConfig controls the analysis provider. Preload runs the simulated
// pipeline once at startup so the dashboard has data before any upload.
type AnalysisConfig struct {
	Preload *bool `toml:"preload"`
}

// PreloadEnabled reports whether startup preloading is active; defaults on.
func (c *AnalysisConfig) PreloadEnabled() bool {
	if c.Preload == nil {
		return true
	}
	return *c.Preload
}

// Finalize applies environment variable overrides.
func (c *AnalysisConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge overwrites set fields from overlay.
func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.Preload != nil {
		c.Preload = overlay.Preload
	}
}

func (c *AnalysisConfig) loadEnv() {
	if v := os.Getenv(EnvAnalysisPreload); v != "" {
		if preload, err := strconv.ParseBool(v); err == nil {
			c.Preload = &preload
		}
	}
}
