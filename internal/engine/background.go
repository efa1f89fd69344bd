package engine

// Near-white thresholds for the background heuristic. RGB channels run
// 0-255, grayscale 0-100; both are strict lower bounds.
const (
	WhiteChannelMin = 240
	WhiteGrayMin    = 90
)

// nearWhite reports whether a fill passes the page-background check.
func nearWhite(c Color) bool {
	switch c.Model {
	case ColorRGB:
		return c.R > WhiteChannelMin && c.G > WhiteChannelMin && c.B > WhiteChannelMin
	case ColorGray:
		return c.Gray > WhiteGrayMin
	}
	return false
}

// removeLargestWhiteShape drops the single filled, closed shape with the
// largest bounding box whose fill is near-white. It targets the traced
// page background, not white generally: smaller white shapes survive.
func removeLargestWhiteShape(doc Document) error {
	items, err := doc.PageItems()
	if err != nil {
		return err
	}

	var best PageItem
	bestArea := 0.0
	for _, item := range items {
		if !item.Filled() || !item.Closed() {
			continue
		}
		if !nearWhite(item.FillColor()) {
			continue
		}
		if area := item.Bounds().Area(); best == nil || area > bestArea {
			best = item
			bestArea = area
		}
	}

	if best == nil {
		return nil
	}
	return best.Remove()
}
