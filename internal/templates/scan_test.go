package templates

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScan_CountsOnlyTopLevelMP4(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "dental_30sec.mp4"))
	touch(t, filepath.Join(dir, "medspa_full.MP4")) // legacy uppercase counts
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "preview.webm"))
	touch(t, filepath.Join(dir, "archive", "old.mp4")) // subdirectory excluded

	a, err := Scan(dir, 6)
	if err != nil {
		t.Fatal(err)
	}
	if a.Count != 2 {
		t.Errorf("Count = %d, want 2 (files: %v)", a.Count, a.Files)
	}
	if a.Complete() {
		t.Error("Complete() = true for 2 of 6")
	}
}

func TestScan_Complete(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.mp4", "c.mp4"} {
		touch(t, filepath.Join(dir, name))
	}
	a, err := Scan(dir, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Complete() {
		t.Errorf("Complete() = false, audit: %+v", a)
	}
	want := []string{"a.mp4", "b.mp4", "c.mp4"}
	if len(a.Files) != len(want) {
		t.Fatalf("Files = %v, want %v", a.Files, want)
	}
	for i := range want {
		if a.Files[i] != want[i] {
			t.Errorf("Files[%d] = %q, want %q", i, a.Files[i], want[i])
		}
	}
}

func TestScan_EmptyDir(t *testing.T) {
	a, err := Scan(t.TempDir(), 6)
	if err != nil {
		t.Fatal(err)
	}
	if a.Count != 0 || a.Complete() {
		t.Errorf("empty dir audit: %+v", a)
	}
}

func TestScan_MissingDirIsZeroCount(t *testing.T) {
	a, err := Scan(filepath.Join(t.TempDir(), "nope"), 6)
	if err != nil {
		t.Fatalf("missing dir should not error, got %v", err)
	}
	if a.Count != 0 {
		t.Errorf("Count = %d, want 0", a.Count)
	}
}
