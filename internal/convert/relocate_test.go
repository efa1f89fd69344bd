package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestMergeCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.svg"), "new-a")
	writeFile(t, filepath.Join(src, "deep", "b.svg"), "new-b")
	writeFile(t, filepath.Join(dst, "a.svg"), "old-a")
	writeFile(t, filepath.Join(dst, "keep.txt"), "unrelated")

	if err := MergeCopyTree(src, dst); err != nil {
		t.Fatalf("MergeCopyTree: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "a.svg")); got != "new-a" {
		t.Fatalf("colliding file = %q, want overwritten", got)
	}
	if got := readFile(t, filepath.Join(dst, "deep", "b.svg")); got != "new-b" {
		t.Fatalf("nested file = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "keep.txt")); got != "unrelated" {
		t.Fatalf("unrelated file = %q, want untouched", got)
	}
}

func TestRelocateResults(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "SVG")
	dst := filepath.Join(root, "out", "SVG")
	writeFile(t, filepath.Join(src, "a.svg"), "vector")

	if err := RelocateResults(src, dst); err != nil {
		t.Fatalf("RelocateResults: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "a.svg")); got != "vector" {
		t.Fatalf("relocated file = %q", got)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source folder still present: %v", err)
	}
}
