// Package setup orchestrates the bootstrap run: toolchain preflight, the
// cross-process lock, directory provisioning, dependency installation, the
// template audit, and the final run report.
package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/cherryvid/vidsetup/internal/config"
	"github.com/cherryvid/vidsetup/internal/display"
	"github.com/cherryvid/vidsetup/internal/fsutil"
	"github.com/cherryvid/vidsetup/internal/installer"
	"github.com/cherryvid/vidsetup/internal/logging"
	"github.com/cherryvid/vidsetup/internal/preflight"
	"github.com/cherryvid/vidsetup/internal/templates"
)

// OutputDirMode is the permission mode forced onto the generated-output
// directory so the server process can serve files from it.
const OutputDirMode = 0o755

// LockFile is the flock path guarding concurrent setup runs.
const LockFile = ".vidsetup.lock"

// lockRetryInterval is the interval between lock acquisition attempts while
// another setup run holds the lock.
const lockRetryInterval = 50 * time.Millisecond

// Run executes the full bootstrap sequence. It returns an error only for
// fatal conditions (missing toolchain, lock or filesystem failures, and, in
// strict mode, a failed install); advisory findings are logged and recorded
// in the run report but leave the exit status at zero.
func Run(ctx context.Context, cfg config.Config, log *logging.Logger) error {
	rep := newReport(cfg)

	// Toolchain first: nothing is touched on disk until the interpreter
	// resolves, so a missing python leaves no side effects behind.
	python, err := preflight.ResolvePython(cfg.PythonBin)
	if err != nil {
		return err
	}
	rep.Toolchain.Python = python
	if v := preflight.Version(python); v != "" {
		rep.Toolchain.PythonVersion = v
		log.Success("Found %s (%s)", v, python)
	} else {
		log.Success("Found python (%s)", python)
	}

	if !cfg.SkipInstall {
		pip, err := preflight.ResolvePip(cfg.PipBin)
		if err != nil {
			return err
		}
		rep.Toolchain.Pip = pip
		rep.Toolchain.PipVersion = preflight.Version(pip)
		log.Debug("pip resolved: %s", pip)
	}

	if !cfg.NoLock {
		fl, err := acquireLock(ctx, LockFile)
		if err != nil {
			return err
		}
		defer releaseLock(fl, log)
	}

	log.Info("Creating directories...")
	if err := fsutil.EnsureDir(cfg.VideosDir); err != nil {
		return err
	}
	if err := fsutil.EnsureDirMode(cfg.OutputDir, OutputDirMode); err != nil {
		return err
	}
	rep.step("directories", true, fmt.Sprintf("%s, %s", cfg.VideosDir, cfg.OutputDir))
	log.Success("Directories ready: %s, %s", cfg.VideosDir, cfg.OutputDir)

	if cfg.SkipInstall {
		rep.step("install", true, "skipped")
		log.Info("Skipping dependency installation")
	} else if err := runInstall(ctx, cfg, rep, log); err != nil {
		return err
	}

	audit, err := templates.Scan(cfg.VideosDir, cfg.ExpectedTemplates)
	if err != nil {
		return err
	}
	rep.Templates = audit
	if audit.Complete() {
		rep.step("templates", true, "")
		log.Success("All %d template videos found", audit.Expected)
	} else {
		rep.step("templates", false, fmt.Sprintf("%d of %d", audit.Count, audit.Expected))
		log.Warn("Only %d template videos found (need %d)", audit.Count, audit.Expected)
		log.Warn("Add the remaining template files to %s/", cfg.VideosDir)
	}

	if err := rep.write(log); err != nil {
		// The report is bookkeeping; losing it does not invalidate the run.
		log.Warn("cannot write run report: %v", err)
	}

	log.Success("Setup complete")
	display.PrintNextSteps(python)
	return nil
}

// runInstall performs the dependency-installation step. In default mode a
// failed pip run is advisory (logged, recorded, run continues); with
// StrictInstall it aborts the bootstrap.
func runInstall(ctx context.Context, cfg config.Config, rep *Report, log *logging.Logger) error {
	log.Info("Installing dependencies from %s...", cfg.Requirements)

	res, err := installer.New(rep.Toolchain.Pip).Install(ctx, cfg.Requirements)
	rep.Install = &res
	switch {
	case err != nil:
		rep.step("install", false, err.Error())
		if cfg.StrictInstall {
			return err
		}
		log.Warn("%v", err)
		log.Warn("Continuing without installed dependencies")
	case !res.Ok():
		rep.step("install", false, fmt.Sprintf("pip exited %d", res.ExitCode))
		if cfg.StrictInstall {
			return fmt.Errorf("pip install exited %d", res.ExitCode)
		}
		log.Warn("pip install exited %d; the server may be missing dependencies", res.ExitCode)
	default:
		rep.step("install", true, "")
		log.Success("Dependencies installed (%s)", res.Duration.Round(time.Millisecond))
	}
	return nil
}

// acquireLock takes the exclusive setup lock, retrying until the context is
// done. The lock file is left on disk after release; removing it would race
// with another process acquiring it.
func acquireLock(ctx context.Context, path string) (*flock.Flock, error) {
	fl := flock.New(path)
	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquiring setup lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("acquiring setup lock %s: lock not acquired", path)
	}
	return fl, nil
}

func releaseLock(fl *flock.Flock, log *logging.Logger) {
	if err := fl.Close(); err != nil {
		log.Debug("failed to release setup lock %s: %v", fl.Path(), err)
	}
}
