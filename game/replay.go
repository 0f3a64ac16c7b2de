package game

import (
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/vinegar-rocket/display"
	"github.com/lixenwraith/vinegar-rocket/flight"
	"github.com/lixenwraith/vinegar-rocket/launch"
)

// maxReplayFrames stops a replay whose trajectory never returns to ground
const maxReplayFrames = 1 << 20

// Replay flies one launch on a manual clock and writes every frame as text.
// It returns the landed state.
func Replay(w io.Writer, params launch.Parameters, fps int) (flight.State, error) {
	if fps <= 0 {
		return flight.State{}, fmt.Errorf("replay: fps must be positive, got %d", fps)
	}
	step := time.Second / time.Duration(fps)

	clock := flight.NewManualClock(time.Unix(0, 0))
	c := flight.NewController(params, clock)

	for _, l := range display.ChemistryLines(params) {
		if _, err := fmt.Fprintln(w, l.Text); err != nil {
			return flight.State{}, err
		}
	}
	if _, err := fmt.Fprintf(w, "Initial Velocity: %.2f m/s\nForce: %.2f N\n\n", params.InitialSpeed, params.Force); err != nil {
		return flight.State{}, err
	}
	if _, err := fmt.Fprintf(w, "%6s %8s %8s %8s\n", "frame", "t(s)", "x(m)", "y(m)"); err != nil {
		return flight.State{}, err
	}

	s, _ := c.Launch(flight.State{})
	for frame := 0; frame < maxReplayFrames; frame++ {
		s = c.Step(s)
		if _, err := fmt.Fprintf(w, "%6d %8.3f %8.3f %8.3f\n", frame, s.FlightTime, s.RestX(), s.RestY()); err != nil {
			return s, err
		}
		if !s.Active() {
			break
		}
		clock.Advance(step)
	}
	if s.Active() {
		return s, fmt.Errorf("replay: no ground impact after %d frames", maxReplayFrames)
	}

	ro := display.BuildReadout(params, s)
	if _, err := fmt.Fprintln(w); err != nil {
		return s, err
	}
	for _, l := range ro.Peaks {
		if _, err := fmt.Fprintln(w, l.Text); err != nil {
			return s, err
		}
	}
	return s, nil
}
