package block

// ImageRef is the presenter-owned image handle plus the native pixel size
// of the source bitmap. The engine never looks inside Handle.
type ImageRef struct {
	Handle any
	Width  int
	Height int
}

// AspectRatio returns Height/Width, or 0 when the width is unknown.
func (r ImageRef) AspectRatio() float64 {
	if r.Width <= 0 {
		return 0
	}
	return float64(r.Height) / float64(r.Width)
}

// DisplayHeight scales the image to viewportWidth and returns the
// resulting height, in whole units.
func (r ImageRef) DisplayHeight(viewportWidth int) int {
	if r.Width <= 0 || viewportWidth <= 0 {
		return 0
	}
	return viewportWidth * r.Height / r.Width
}
