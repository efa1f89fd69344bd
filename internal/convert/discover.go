package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/duocalvin/duosvg/internal/apperrors"
	"github.com/duocalvin/duosvg/internal/engine"
)

// DiscoverImages enumerates the PNG files directly inside folder, sorted
// case-insensitively by name. The listing is flat on purpose: nested
// folders are someone else's batch. Enumeration happens exactly once,
// before the engine launches; files that appear later are not picked up.
func DiscoverImages(folder string) ([]engine.InputImage, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("input folder %s is not accessible", folder), err)
	}
	if !info.IsDir() {
		return nil, apperrors.Validation(fmt.Sprintf("%s is not a folder", folder))
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var images []engine.InputImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		images = append(images, engine.InputImage{
			Path: filepath.Join(folder, name),
			Name: name,
		})
	}

	// Matches the ordering the control script uses, so progress and
	// report lines line up with the plan.
	sort.Slice(images, func(i, j int) bool {
		return strings.ToLower(images[i].Name) < strings.ToLower(images[j].Name)
	})
	return images, nil
}
