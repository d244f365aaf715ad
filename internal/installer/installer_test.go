package installer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func fakePip(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pip3")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func manifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte("flask\nopencv-python\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInstall_Success(t *testing.T) {
	pip := fakePip(t, `echo "Successfully installed flask"`)
	inst := New(pip)
	var out bytes.Buffer
	inst.stdout = &out
	inst.stderr = &out

	res, err := inst.Install(context.Background(), manifest(t))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok() {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(out.String(), "Successfully installed") {
		t.Errorf("pip output not streamed: %q", out.String())
	}
}

func TestInstall_NonZeroExitIsNotAnError(t *testing.T) {
	pip := fakePip(t, `echo "ERROR: No matching distribution" >&2; exit 3`)
	inst := New(pip)
	inst.stdout = &bytes.Buffer{}
	inst.stderr = &bytes.Buffer{}

	res, err := inst.Install(context.Background(), manifest(t))
	if err != nil {
		t.Fatalf("non-zero exit should be reported via Result, got error %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !strings.Contains(res.StderrTail, "No matching distribution") {
		t.Errorf("StderrTail = %q, want pip's stderr", res.StderrTail)
	}
}

func TestInstall_MissingManifest(t *testing.T) {
	pip := fakePip(t, "exit 0")
	_, err := New(pip).Install(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestInstall_ContextCancelled(t *testing.T) {
	pip := fakePip(t, "sleep 10")
	inst := New(pip)
	inst.stdout = &bytes.Buffer{}
	inst.stderr = &bytes.Buffer{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := inst.Install(ctx, manifest(t)); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestTailWriter(t *testing.T) {
	w := newTailWriter(8)
	for _, chunk := range []string{"aaaa", "bbbb", "cccc"} {
		if _, err := w.Write([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}
	if got := w.String(); got != "bbbbcccc" {
		t.Errorf("tail = %q, want %q", got, "bbbbcccc")
	}
}
