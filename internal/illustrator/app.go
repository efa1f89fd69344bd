package illustrator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// ErrAppNotFound is returned when no Illustrator bundle can be located.
var ErrAppNotFound = errors.New("no Illustrator installation found under /Applications")

var (
	appRoot  = "/Applications"
	platform = runtime.GOOS
)

// CheckPlatform fails everywhere but macOS. Bundle discovery under
// /Applications, launching through open(1), and the ps liveness probe
// are all Mac-specific.
func CheckPlatform() error {
	if platform != "darwin" {
		return fmt.Errorf("running on %s; conversions drive Illustrator through open(1)", platform)
	}
	return nil
}

// App is an installed Illustrator bundle.
type App struct {
	// BundlePath is the .app directory handed to open.
	BundlePath string
	// ExecPath is the binary inside the bundle. Liveness detection
	// matches running processes against this exact path, so a copy of
	// the application launched from anywhere else is invisible.
	ExecPath string
}

// ListBundles returns every installed Illustrator bundle, oldest first.
// Adobe installs each release under a year-suffixed folder, so
// lexicographic order is release order.
func ListBundles() []string {
	var bundles []string
	for _, pattern := range []string{
		filepath.Join(appRoot, "Adobe Illustrator*", "Adobe Illustrator.app"),
		filepath.Join(appRoot, "Adobe Illustrator.app"),
	} {
		matches, _ := filepath.Glob(pattern)
		bundles = append(bundles, matches...)
	}
	sort.Strings(bundles)
	return bundles
}

// FindApp locates the newest installed Illustrator. An explicit bundle
// path bypasses discovery.
func FindApp(override string) (App, error) {
	if override != "" {
		return appFromBundle(override)
	}

	bundles := ListBundles()
	if len(bundles) == 0 {
		return App{}, ErrAppNotFound
	}
	return appFromBundle(bundles[len(bundles)-1])
}

func appFromBundle(bundle string) (App, error) {
	if _, err := os.Stat(bundle); err != nil {
		return App{}, fmt.Errorf("engine bundle: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(bundle), ".app")
	return App{
		BundlePath: bundle,
		ExecPath:   filepath.Join(bundle, "Contents", "MacOS", name),
	}, nil
}

// Launch asks the application to run the control script. open returns as
// soon as Launch Services accepts the request; whether the engine
// actually came up is observed separately through the process probe.
func (a App) Launch(scriptPath string) error {
	cmd := exec.Command("open", "-a", a.BundlePath, scriptPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("open %s: %v: %s", filepath.Base(a.BundlePath), err, bytes.TrimSpace(out))
	}
	return nil
}

// Name returns the bundle's display name without the .app suffix.
func (a App) Name() string {
	return strings.TrimSuffix(filepath.Base(a.BundlePath), ".app")
}
