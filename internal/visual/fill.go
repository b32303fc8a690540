package visual

import (
	"fmt"

	"aqualand/internal/geom"
)

type Segment struct {
	Rect  geom.Rect
	Color Color
}

// FillRectangle returns the part of container filled to fraction, anchored
// at the container's bottom edge.
func FillRectangle(container geom.Rect, fraction float64) geom.Rect {
	if fraction < 0 || fraction > 1 {
		panic(fmt.Sprintf("visual.FillRectangle: fraction %v outside [0, 1]", fraction))
	}
	fill := container
	fill.Y += container.H * (1 - fraction)
	fill.H = container.H * fraction
	return fill
}

// SegmentGradient slices rect into equal horizontal bands, top to bottom,
// colored from g.Start (first band) toward g.End. Every band is one unit
// taller than its share so adjacent bands never leave a seam; the last band
// overshoots rect by that unit.
func SegmentGradient(rect geom.Rect, g GradientStop, segments int) []Segment {
	if segments < 1 {
		panic(fmt.Sprintf("visual.SegmentGradient: segments must be >= 1, got %d", segments))
	}
	out := make([]Segment, segments)
	n := float64(segments)
	for i := range segments {
		out[i] = Segment{
			Rect: geom.Rect{
				X: rect.X,
				Y: rect.Y + rect.H*float64(i)/n,
				W: rect.W,
				H: rect.H/n + 1,
			},
			Color: Lerp(g.Start, g.End, i, segments),
		}
	}
	return out
}
