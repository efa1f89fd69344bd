package convert

import (
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/duocalvin/duosvg/internal/logger"
)

// RelocateResults moves the engine's results folder from next to the
// inputs into the chosen output directory. Copy then delete rather than
// rename: the destination may be on another volume. Failing to clean up
// the source is logged but not fatal; the results already arrived.
func RelocateResults(srcDir, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return err
	}
	if err := MergeCopyTree(srcDir, dstDir); err != nil {
		return err
	}
	if err := os.RemoveAll(srcDir); err != nil {
		logger.Warn("could not remove source results folder", "path", srcDir, "error", err)
	}
	return nil
}

// MergeCopyTree copies everything under src into dst, creating folders
// as needed and overwriting files that already exist. Unrelated files
// already present in dst are left alone.
func MergeCopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Reveal opens the folder in the platform's file browser.
func Reveal(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Run()
	case "windows":
		return exec.Command("explorer", path).Run()
	}
	return exec.Command("xdg-open", path).Run()
}
