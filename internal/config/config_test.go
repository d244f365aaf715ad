package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.VideosDir != "videos" {
		t.Errorf("VideosDir = %q, want %q", cfg.VideosDir, "videos")
	}
	if cfg.OutputDir != "generated_videos" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "generated_videos")
	}
	if cfg.Requirements != "requirements.txt" {
		t.Errorf("Requirements = %q, want %q", cfg.Requirements, "requirements.txt")
	}
	if cfg.ExpectedTemplates != 6 {
		t.Errorf("ExpectedTemplates = %d, want 6", cfg.ExpectedTemplates)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
}

func TestDefault_EnvOverrides(t *testing.T) {
	t.Setenv(EnvVideosDir, "tpl")
	t.Setenv(EnvOutputDir, "out")
	t.Setenv(EnvRequirements, "deps.txt")
	t.Setenv(EnvPython, "/opt/python3")
	t.Setenv(EnvTemplates, "9")

	cfg := Default()
	if cfg.VideosDir != "tpl" {
		t.Errorf("VideosDir = %q, want %q", cfg.VideosDir, "tpl")
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.Requirements != "deps.txt" {
		t.Errorf("Requirements = %q, want %q", cfg.Requirements, "deps.txt")
	}
	if cfg.PythonBin != "/opt/python3" {
		t.Errorf("PythonBin = %q, want %q", cfg.PythonBin, "/opt/python3")
	}
	if cfg.ExpectedTemplates != 9 {
		t.Errorf("ExpectedTemplates = %d, want 9", cfg.ExpectedTemplates)
	}
}

func TestDefault_BadTemplateEnvIgnored(t *testing.T) {
	t.Setenv(EnvTemplates, "lots")
	cfg := Default()
	if cfg.ExpectedTemplates != 6 {
		t.Errorf("ExpectedTemplates = %d, want default 6 for unparsable env", cfg.ExpectedTemplates)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty videos dir", func(c *Config) { c.VideosDir = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"empty requirements", func(c *Config) { c.Requirements = "" }, true},
		{"empty requirements ok when skipping install", func(c *Config) {
			c.Requirements = ""
			c.SkipInstall = true
		}, false},
		{"negative template count", func(c *Config) { c.ExpectedTemplates = -1 }, true},
		{"zero template count is valid", func(c *Config) { c.ExpectedTemplates = 0 }, false},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "sometimes" }, true},
		{"always color mode", func(c *Config) { c.ColorMode = ColorAlways }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				VideosDir:         "videos",
				OutputDir:         "generated_videos",
				Requirements:      "requirements.txt",
				ExpectedTemplates: 6,
				Timeout:           time.Minute,
				ColorMode:         ColorAuto,
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
