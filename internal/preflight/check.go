package preflight

import (
	"os"

	"github.com/cherryvid/vidsetup/internal/config"
	"github.com/cherryvid/vidsetup/internal/templates"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// rather than importing the logging package so that preflight stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check diagnostics flow: it reports the Python
// toolchain, the dependency manifest, both directories, and the template
// count, without mutating anything. It returns false when a required tool
// is missing so the caller can exit non-zero.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Environment Check ===")
	ok := true

	python, err := ResolvePython(cfg.PythonBin)
	if err != nil {
		log.Error("%v", err)
		ok = false
	} else if v := Version(python); v != "" {
		log.Success("python: %s (%s)", python, v)
	} else {
		log.Success("python: %s", python)
	}

	pip, err := ResolvePip(cfg.PipBin)
	if err != nil {
		if cfg.SkipInstall {
			log.Warn("%v (install step disabled, not required)", err)
		} else {
			log.Error("%v", err)
			ok = false
		}
	} else if v := Version(pip); v != "" {
		log.Success("pip: %s (%s)", pip, v)
	} else {
		log.Success("pip: %s", pip)
	}

	if _, err := os.Stat(cfg.Requirements); err != nil {
		log.Warn("manifest %s not found", cfg.Requirements)
	} else {
		log.Success("manifest: %s", cfg.Requirements)
	}

	reportDir(cfg.VideosDir, log)
	reportDir(cfg.OutputDir, log)

	audit, err := templates.Scan(cfg.VideosDir, cfg.ExpectedTemplates)
	if err != nil {
		log.Warn("cannot scan templates: %v", err)
	} else if audit.Complete() {
		log.Success("template videos: %d of %d", audit.Count, audit.Expected)
	} else {
		log.Warn("template videos: %d of %d", audit.Count, audit.Expected)
	}

	return ok
}

func reportDir(path string, log Logger) {
	fi, err := os.Stat(path)
	switch {
	case err != nil:
		log.Warn("directory %s missing (will be created on setup)", path)
	case !fi.IsDir():
		log.Error("%s exists but is not a directory", path)
	default:
		log.Success("directory %s (mode %04o)", path, fi.Mode().Perm())
	}
}
