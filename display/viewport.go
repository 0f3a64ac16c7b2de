// Package display converts physics-space flight data into terminal-space
// positions and the formatted readout shown beside the trajectory.
package display

import (
	"math"

	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// Viewport maps meters to terminal cells
type Viewport struct {
	Width, Height int

	// OriginX is the launch pad column, GroundY the ground row
	OriginX, GroundY int

	ScaleX, ScaleY float64 // cells per meter
}

// NewViewport anchors the launch pad at a fraction of the width and the ground above the bottom margin
func NewViewport(width, height int, scaleX, scaleY float64) Viewport {
	v := Viewport{
		Width:  width,
		Height: height,
		ScaleX: scaleX,
		ScaleY: scaleY,
	}
	v.OriginX = int(float64(width) * parameter.OriginFraction)
	v.GroundY = height - 1 - parameter.GroundMargin
	if v.GroundY < 0 {
		v.GroundY = 0
	}
	return v
}

// ToScreen converts a physics position in meters to a cell, y growing downward
func (v Viewport) ToScreen(xm, ym float64) (col, row int) {
	col = v.OriginX + int(math.Round(xm*v.ScaleX))
	row = v.GroundY - int(math.Round(ym*v.ScaleY))
	return col, row
}

// Contains reports whether a cell lies inside the viewport
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Width && row >= 0 && row < v.Height
}
