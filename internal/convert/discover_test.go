package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/duocalvin/duosvg/internal/apperrors"
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

func TestDiscoverImagesFlatSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.PNG"))
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "C.png"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "d.png"))

	images, err := DiscoverImages(dir)
	if err != nil {
		t.Fatalf("DiscoverImages: %v", err)
	}

	want := []string{"a.png", "b.PNG", "C.png"}
	if len(images) != len(want) {
		t.Fatalf("found %d images, want %d: %+v", len(images), len(want), images)
	}
	for i, img := range images {
		if img.Name != want[i] {
			t.Fatalf("image %d = %q, want %q", i, img.Name, want[i])
		}
		if img.Path != filepath.Join(dir, want[i]) {
			t.Fatalf("image %d path = %q", i, img.Path)
		}
	}
}

func TestDiscoverImagesEmptyFolder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	images, err := DiscoverImages(dir)
	if err != nil {
		t.Fatalf("DiscoverImages: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("images = %+v, want none", images)
	}
}

func TestDiscoverImagesMissingFolder(t *testing.T) {
	_, err := DiscoverImages(filepath.Join(t.TempDir(), "gone"))
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestDiscoverImagesRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.png")
	touch(t, path)

	_, err := DiscoverImages(path)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}
