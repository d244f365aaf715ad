// Package installer invokes pip against the dependency manifest as a
// subprocess, streaming its output to the terminal while keeping a bounded
// stderr tail for diagnostics.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

const maxStderrBytes = 8 * 1024 // tail of stderr kept for diagnostics

// Result is the structured outcome of a pip invocation.
type Result struct {
	ExitCode   int           `json:"exit_code"`
	Duration   time.Duration `json:"duration"`
	StderrTail string        `json:"stderr_tail,omitempty"`
}

// Ok reports whether pip exited cleanly.
func (r Result) Ok() bool { return r.ExitCode == 0 }

// Installer runs pip install commands.
type Installer struct {
	pip    string
	stdout io.Writer
	stderr io.Writer
}

// New creates an Installer for the given resolved pip executable.
// Output streams to the process stdout/stderr so pip's progress is shown
// live rather than captured.
func New(pip string) *Installer {
	return &Installer{pip: pip, stdout: os.Stdout, stderr: os.Stderr}
}

// Install runs `pip install -r manifest`. The manifest must exist; pip's
// own "file not found" diagnostics are confusing enough that the caller
// deserves a direct error first. A non-zero pip exit is not an error here:
// it is reported through Result so the caller decides whether it is fatal.
func (i *Installer) Install(ctx context.Context, manifest string) (Result, error) {
	if _, err := os.Stat(manifest); err != nil {
		return Result{}, fmt.Errorf("dependency manifest %s: %w", manifest, err)
	}

	tail := newTailWriter(maxStderrBytes)

	cmd := exec.CommandContext(ctx, i.pip, "install", "-r", manifest)
	cmd.Stdout = i.stdout
	cmd.Stderr = io.MultiWriter(i.stderr, tail)

	start := time.Now()
	err := cmd.Run()
	res := Result{Duration: time.Since(start), StderrTail: tail.String()}

	if err != nil {
		if ctx.Err() != nil {
			return res, fmt.Errorf("pip install interrupted: %w", ctx.Err())
		}
		if ee, ok := err.(*exec.ExitError); ok {
			res.ExitCode = ee.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", i.pip, err)
	}
	return res, nil
}

// tailWriter keeps the last max bytes written to it.
type tailWriter struct {
	max int
	buf []byte
}

func newTailWriter(max int) *tailWriter {
	return &tailWriter{max: max}
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	if len(w.buf) > w.max {
		w.buf = w.buf[len(w.buf)-w.max:]
	}
	return len(p), nil
}

func (w *tailWriter) String() string { return string(w.buf) }
