package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cherryvid/vidsetup/internal/config"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	// Defaults already carry VIDSETUP_* environment overrides, so flag
	// defaults reflect the environment and explicit flags win over both.
	cfg := config.Default()

	root := &cobra.Command{
		Use:          "vidsetup",
		Short:        "Prepare the environment for the video personalization server",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("videos-dir", cfg.VideosDir, "Template video source directory")
	root.Flags().String("output-dir", cfg.OutputDir, "Generated video output directory")
	root.Flags().String("requirements", cfg.Requirements, "Dependency manifest passed to pip")
	root.Flags().String("python", cfg.PythonBin, "Python executable (default: auto-detect)")
	root.Flags().String("pip", cfg.PipBin, "pip executable (default: auto-detect)")
	root.Flags().Int("templates", cfg.ExpectedTemplates, "Expected number of template videos")
	root.Flags().Bool("skip-install", false, "Skip the dependency installation step")
	root.Flags().Bool("strict-install", false, "Treat a failed pip install as fatal")
	root.Flags().Bool("check", false, "Run environment diagnostics and exit")
	root.Flags().Duration("timeout", cfg.Timeout, "Overall run deadline")
	root.Flags().String("color", string(cfg.ColorMode), "Color output: auto, always, never")
	root.Flags().String("log-file", "", "Also write log output to this file")
	root.Flags().BoolP("verbose", "v", false, "Verbose (debug) output")

	// Lock bypass is for wrapper scripts that already serialize runs.
	root.Flags().Bool("no-lock", false, "Skip the cross-process setup lock")
	_ = root.Flags().MarkHidden("no-lock")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags copies flag values into cfg. Flag defaults were seeded from
// cfg, so unset flags read back the env-or-default value.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	cfg.VideosDir, _ = f.GetString("videos-dir")
	cfg.OutputDir, _ = f.GetString("output-dir")
	cfg.Requirements, _ = f.GetString("requirements")
	cfg.PythonBin, _ = f.GetString("python")
	cfg.PipBin, _ = f.GetString("pip")
	cfg.ExpectedTemplates, _ = f.GetInt("templates")
	cfg.SkipInstall, _ = f.GetBool("skip-install")
	cfg.StrictInstall, _ = f.GetBool("strict-install")
	cfg.CheckOnly, _ = f.GetBool("check")
	cfg.NoLock, _ = f.GetBool("no-lock")
	cfg.Verbose, _ = f.GetBool("verbose")
	cfg.LogFile, _ = f.GetString("log-file")

	var timeout time.Duration
	timeout, _ = f.GetDuration("timeout")
	cfg.Timeout = timeout

	color, _ := f.GetString("color")
	cfg.ColorMode = config.ColorMode(color)
}
