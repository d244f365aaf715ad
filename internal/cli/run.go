package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cherryvid/vidsetup/internal/config"
	"github.com/cherryvid/vidsetup/internal/display"
	"github.com/cherryvid/vidsetup/internal/logging"
	"github.com/cherryvid/vidsetup/internal/preflight"
	"github.com/cherryvid/vidsetup/internal/setup"
)

// errCheckFailed and errSetupFailed mark runs whose details were already
// reported through the logger; Main exits 1 after printing them.
var (
	errCheckFailed = errors.New("environment check failed")
	errSetupFailed = errors.New("setup failed")
)

func run(cmd *cobra.Command, cfg config.Config) error {
	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !preflight.RunCheck(&cfg, log) {
			return errCheckFailed
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := setup.Run(ctx, cfg, log); err != nil {
		// Log through the logger (file sink included); Main still exits 1.
		log.Error("%v", err)
		return errSetupFailed
	}
	return nil
}
