package illustrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindAppWithOverride(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "Adobe Illustrator.app")
	if err := os.MkdirAll(bundle, 0o755); err != nil {
		t.Fatal(err)
	}

	app, err := FindApp(bundle)
	if err != nil {
		t.Fatalf("FindApp: %v", err)
	}
	if app.BundlePath != bundle {
		t.Fatalf("bundle = %q, want %q", app.BundlePath, bundle)
	}
	want := filepath.Join(bundle, "Contents", "MacOS", "Adobe Illustrator")
	if app.ExecPath != want {
		t.Fatalf("exec path = %q, want %q", app.ExecPath, want)
	}
	if app.Name() != "Adobe Illustrator" {
		t.Fatalf("name = %q", app.Name())
	}
}

func TestFindAppMissingOverride(t *testing.T) {
	if _, err := FindApp(filepath.Join(t.TempDir(), "nope.app")); err == nil {
		t.Fatal("expected an error for a missing bundle")
	}
}

func TestFindAppPicksNewestRelease(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{
		filepath.Join("Adobe Illustrator 2024", "Adobe Illustrator.app"),
		filepath.Join("Adobe Illustrator 2025", "Adobe Illustrator.app"),
	} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	old := appRoot
	appRoot = root
	defer func() { appRoot = old }()

	if got := len(ListBundles()); got != 2 {
		t.Fatalf("found %d bundles, want 2", got)
	}

	app, err := FindApp("")
	if err != nil {
		t.Fatalf("FindApp: %v", err)
	}
	if !strings.Contains(app.BundlePath, "2025") {
		t.Fatalf("picked %q, want the 2025 release", app.BundlePath)
	}
}

func TestFindAppNoneInstalled(t *testing.T) {
	old := appRoot
	appRoot = filepath.Join(t.TempDir(), "empty")
	defer func() { appRoot = old }()

	if _, err := FindApp(""); err != ErrAppNotFound {
		t.Fatalf("err = %v, want ErrAppNotFound", err)
	}
}

func TestCheckPlatform(t *testing.T) {
	old := platform
	defer func() { platform = old }()

	platform = "darwin"
	if err := CheckPlatform(); err != nil {
		t.Fatalf("CheckPlatform on darwin: %v", err)
	}

	platform = "linux"
	err := CheckPlatform()
	if err == nil {
		t.Fatal("CheckPlatform accepted linux")
	}
	if !strings.Contains(err.Error(), "linux") {
		t.Fatalf("err = %v, want the platform named", err)
	}
}
