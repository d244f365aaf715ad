// Package templates audits the template video library the downstream
// server generates from.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Suffix is the file extension that marks a template video.
const Suffix = ".mp4"

// Audit is the result of scanning the videos directory.
type Audit struct {
	Dir      string   `json:"dir"`
	Expected int      `json:"expected"`
	Count    int      `json:"count"`
	Files    []string `json:"files,omitempty"` // base names, sorted
}

// Complete reports whether the library holds exactly the expected number
// of template videos.
func (a Audit) Complete() bool { return a.Count == a.Expected }

// Scan enumerates template videos directly inside dir (non-recursive) and
// returns the audit. Matching is by suffix, case-insensitive, so legacy
// ".MP4" uploads count too. A missing directory yields a zero count rather
// than an error; the audit is advisory and the directory may legitimately
// not exist yet on first run.
func Scan(dir string, expected int) (Audit, error) {
	a := Audit{Dir: dir, Expected: expected}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return a, fmt.Errorf("read templates dir %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), Suffix) {
			a.Files = append(a.Files, e.Name())
		}
	}
	sort.Strings(a.Files)
	a.Count = len(a.Files)
	return a, nil
}
