package metadata

import "github.com/spaghettifunk/filare/engine/math"

// Segment is one visible polygon edge in screen space, in pixel units.
type Segment struct {
	P0 math.Vec2
	P1 math.Vec2
}

// LineStyle is the fixed styling applied to every drawn segment. It is
// not part of any visibility decision.
type LineStyle struct {
	// RGBA components in [0, 1].
	Color [4]float32
	Width float32
}

// DefaultLineStyle mirrors the reference viewer: thin blue lines.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color: [4]float32{0.0, 0.0, 1.0, 1.0},
		Width: 1.0,
	}
}

// RenderPacket carries everything the renderer needs for one frame.
type RenderPacket struct {
	DeltaTime float64
	Segments  []Segment
	Style     LineStyle
}
