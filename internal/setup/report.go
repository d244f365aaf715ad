package setup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cherryvid/vidsetup/internal/config"
	"github.com/cherryvid/vidsetup/internal/fsutil"
	"github.com/cherryvid/vidsetup/internal/installer"
	"github.com/cherryvid/vidsetup/internal/logging"
	"github.com/cherryvid/vidsetup/internal/preflight"
	"github.com/cherryvid/vidsetup/internal/templates"
)

// ReportDir holds per-run artifacts; the report of the latest run replaces
// the previous one.
const ReportDir = ".vidsetup"

// ReportFile is the run report written after every mutating run.
const ReportFile = "report.json"

// Report records what a bootstrap run resolved and did, for later
// inspection when the server misbehaves.
type Report struct {
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	VideosDir  string              `json:"videos_dir"`
	OutputDir  string              `json:"output_dir"`
	Toolchain  preflight.Toolchain `json:"toolchain"`
	Steps      []Step              `json:"steps"`
	Install    *installer.Result   `json:"install,omitempty"`
	Templates  templates.Audit     `json:"templates"`
}

// Step is one recorded outcome in the run report.
type Step struct {
	Name   string `json:"name"`
	Ok     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

func newReport(cfg config.Config) *Report {
	return &Report{
		StartedAt: time.Now().UTC(),
		VideosDir: cfg.VideosDir,
		OutputDir: cfg.OutputDir,
	}
}

func (r *Report) step(name string, ok bool, detail string) {
	r.Steps = append(r.Steps, Step{Name: name, Ok: ok, Detail: detail})
}

func (r *Report) write(log *logging.Logger) error {
	r.FinishedAt = time.Now().UTC()
	if err := fsutil.EnsureDir(ReportDir); err != nil {
		return err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(ReportDir, ReportFile)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	log.Debug("run report: %s", path)
	return nil
}
