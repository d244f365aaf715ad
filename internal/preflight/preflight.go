// Package preflight resolves the Python toolchain the downstream server
// needs and provides the --check diagnostics flow.
package preflight

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors returned when a required executable is missing.
var (
	ErrPythonNotFound = errors.New("python not found on PATH (tried python3, python)")
	ErrPipNotFound    = errors.New("pip not found on PATH (tried pip3, pip)")
)

// Toolchain holds the resolved executables and their reported versions.
type Toolchain struct {
	Python        string `json:"python"`
	PythonVersion string `json:"python_version,omitempty"`
	Pip           string `json:"pip,omitempty"`
	PipVersion    string `json:"pip_version,omitempty"`
}

// ResolvePython locates the Python interpreter. When preferred is non-empty
// it must resolve; otherwise python3 is tried before python.
func ResolvePython(preferred string) (string, error) {
	return resolve(preferred, []string{"python3", "python"}, ErrPythonNotFound)
}

// ResolvePip locates the pip executable. When preferred is non-empty it
// must resolve; otherwise pip3 is tried before pip.
func ResolvePip(preferred string) (string, error) {
	return resolve(preferred, []string{"pip3", "pip"}, ErrPipNotFound)
}

func resolve(preferred string, names []string, notFound error) (string, error) {
	if preferred != "" {
		p, err := exec.LookPath(preferred)
		if err != nil {
			return "", fmt.Errorf("configured executable %q not found on PATH", preferred)
		}
		return p, nil
	}
	for _, name := range names {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", notFound
}

// Version runs `bin --version` and returns the first line of its output,
// or empty string if the probe fails. Python 2 printed the version on
// stderr, so both streams are read.
func Version(bin string) string {
	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line
}
