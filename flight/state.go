package flight

import "time"

// Phase is the controller state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// State is the mutable flight record, passed by value through the controller
type State struct {
	Phase     Phase
	StartTime time.Time

	// Instantaneous position in meters, relative to the launch pad
	X, Y float64

	MaxHeight  float64
	MaxRange   float64
	FlightTime float64 // seconds since launch, frozen at impact

	// Flights counts launches since start-up
	Flights int
}

// Active reports whether a flight is in progress
func (s State) Active() bool {
	return s.Phase == PhaseActive
}

// Landed reports whether at least one flight has completed and none is in progress
func (s State) Landed() bool {
	return s.Phase == PhaseIdle && s.Flights > 0
}

// DisplayHeight is the current height floored at ground level
func (s State) DisplayHeight() float64 {
	if s.Y < 0 {
		return 0
	}
	return s.Y
}

// RestX is the horizontal position shown for the rocket, the landing spot when idle
func (s State) RestX() float64 {
	if s.Phase == PhaseActive {
		return s.X
	}
	return s.MaxRange
}

// RestY is the vertical position shown for the rocket, ground level when idle
func (s State) RestY() float64 {
	if s.Phase == PhaseActive {
		return s.DisplayHeight()
	}
	return 0
}
