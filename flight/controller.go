// Package flight advances the rocket along its closed-form trajectory one frame
// at a time and tracks the peaks of the current flight.
package flight

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/vinegar-rocket/launch"
)

// Controller evaluates the fixed trajectory against an injected time source
type Controller struct {
	vx, vy  float64
	gravity float64
	clock   TimeSource
}

// NewController binds the launch velocity and gravity to a time source
func NewController(p launch.Parameters, clock TimeSource) *Controller {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Controller{
		vx:      p.VelocityX,
		vy:      p.VelocityY,
		gravity: p.Physics.Gravity,
		clock:   clock,
	}
}

// Launch starts a new flight from an idle state, resetting the peaks.
// A launch while a flight is active is ignored and reported as not accepted.
func (c *Controller) Launch(s State) (State, bool) {
	if s.Phase == PhaseActive {
		return s, false
	}

	s.Phase = PhaseActive
	s.StartTime = c.clock.Now()
	s.X, s.Y = 0, 0
	s.MaxHeight, s.MaxRange = 0, 0
	s.FlightTime = 0
	s.Flights++

	log.Printf("flight %d: launch vx=%.3f vy=%.3f", s.Flights, c.vx, c.vy)
	return s, true
}

// Step advances an active flight to the current time and detects ground impact.
// Idle states are returned unchanged.
func (c *Controller) Step(s State) State {
	if s.Phase != PhaseActive {
		return s
	}

	t := c.elapsed(s.StartTime)
	x, y := c.Position(t)

	s.X, s.Y = x, y
	s.MaxHeight = math.Max(s.MaxHeight, y)
	s.MaxRange = math.Max(s.MaxRange, x)
	s.FlightTime = t

	if t > 0 && y <= 0 {
		s.Phase = PhaseIdle
		s.Y = 0
		log.Printf("flight %d: impact t=%.3fs range=%.3fm peak=%.3fm", s.Flights, s.FlightTime, s.MaxRange, s.MaxHeight)
	}
	return s
}

// Position evaluates the projectile equations at t seconds after launch
func (c *Controller) Position(t float64) (x, y float64) {
	return c.vx * t, c.vy*t - 0.5*c.gravity*t*t
}

// elapsed returns seconds since start, clamped to zero for a clock that steps backwards
func (c *Controller) elapsed(start time.Time) float64 {
	t := c.clock.Now().Sub(start).Seconds()
	if t < 0 {
		return 0
	}
	return t
}
