// Package config holds runtime configuration for vidsetup: defaults,
// environment overrides, and validation. Flags are parsed in internal/cli
// and written over the values produced here, so the precedence is
// flag > environment > default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Environment variable names. Each mirrors a CLI flag; flags win.
const (
	EnvVideosDir    = "VIDSETUP_VIDEOS_DIR"
	EnvOutputDir    = "VIDSETUP_OUTPUT_DIR"
	EnvRequirements = "VIDSETUP_REQUIREMENTS"
	EnvPython       = "VIDSETUP_PYTHON"
	EnvPip          = "VIDSETUP_PIP"
	EnvTemplates    = "VIDSETUP_TEMPLATES"
)

// DefaultExpectedTemplates is the number of template videos the downstream
// server ships with.
const DefaultExpectedTemplates = 6

// Config holds all runtime settings for a vidsetup run.
type Config struct {
	// Paths.
	VideosDir    string // Template source directory. Default: "videos".
	OutputDir    string // Generated output directory (mode 0755). Default: "generated_videos".
	Requirements string // Dependency manifest handed to pip. Default: "requirements.txt".

	// Toolchain. Empty means auto-detect on PATH.
	PythonBin string // python3, then python.
	PipBin    string // pip3, then pip.

	// Behavior.
	ExpectedTemplates int           // Default: DefaultExpectedTemplates.
	SkipInstall       bool          // Skip the dependency-installation step.
	StrictInstall     bool          // Installer failure becomes fatal instead of advisory.
	CheckOnly         bool          // Diagnostics only; no filesystem mutation.
	NoLock            bool          // Skip the cross-process setup lock.
	Timeout           time.Duration // Overall run deadline. Default: 15m.

	// Logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string
}

// Default returns a Config for the plain zero-flag bootstrap run, with
// environment overrides already applied.
func Default() Config {
	c := Config{
		VideosDir:         "videos",
		OutputDir:         "generated_videos",
		Requirements:      "requirements.txt",
		ExpectedTemplates: DefaultExpectedTemplates,
		Timeout:           15 * time.Minute,
		ColorMode:         ColorAuto,
	}
	c.applyEnv()
	return c
}

func (c *Config) applyEnv() {
	c.VideosDir = getenvDefault(EnvVideosDir, c.VideosDir)
	c.OutputDir = getenvDefault(EnvOutputDir, c.OutputDir)
	c.Requirements = getenvDefault(EnvRequirements, c.Requirements)
	c.PythonBin = getenvDefault(EnvPython, c.PythonBin)
	c.PipBin = getenvDefault(EnvPip, c.PipBin)
	if v := os.Getenv(EnvTemplates); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ExpectedTemplates = n
		}
	}
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.VideosDir == "" {
		return errors.New("videos directory is empty")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is empty")
	}
	if !c.SkipInstall && c.Requirements == "" {
		return errors.New("requirements path is empty")
	}
	if c.ExpectedTemplates < 0 {
		return fmt.Errorf("expected template count must be >= 0, got %d", c.ExpectedTemplates)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.ColorMode)
	}
	return nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
