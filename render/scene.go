package render

import "github.com/lixenwraith/vinegar-rocket/display"

// Point is a physics-space sample in meters
type Point struct {
	X, Y float64
}

// Scene is everything drawn in one frame
type Scene struct {
	Viewport display.Viewport
	Rocket   Point
	Trail    []Point
	Readout  display.Readout
	Status   string
}
