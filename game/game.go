// Package game runs the single-threaded frame loop: it turns input into launch
// commands, advances the flight once per frame, draws it and publishes it.
package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vinegar-rocket/display"
	"github.com/lixenwraith/vinegar-rocket/flight"
	"github.com/lixenwraith/vinegar-rocket/launch"
	"github.com/lixenwraith/vinegar-rocket/parameter"
	"github.com/lixenwraith/vinegar-rocket/render"
	"github.com/lixenwraith/vinegar-rocket/telemetry"
)

// Options tune pacing and presentation
type Options struct {
	FPS    int
	ScaleX float64
	ScaleY float64
	Trail  bool
}

// Sounds receives flight events for audio feedback
type Sounds interface {
	PlayLaunch()
	PlayImpact()
}

// Publisher receives one snapshot per frame
type Publisher interface {
	Publish(telemetry.Snapshot)
}

// Game owns the flight state; it must only be driven from one goroutine
type Game struct {
	screen     tcell.Screen
	renderer   *render.Renderer
	controller *flight.Controller
	params     launch.Parameters
	info       telemetry.LaunchInfo
	opts       Options

	state    flight.State
	viewport display.Viewport
	trail    []render.Point
	frame    uint64
	status   string

	sounds    Sounds
	publisher Publisher
	commands  <-chan telemetry.Command
}

// New creates a game drawing to an initialized screen
func New(screen tcell.Screen, params launch.Parameters, clock flight.TimeSource, opts Options) *Game {
	if opts.FPS <= 0 {
		opts.FPS = parameter.FrameRate
	}
	if opts.ScaleX <= 0 {
		opts.ScaleX = parameter.ScaleX
	}
	if opts.ScaleY <= 0 {
		opts.ScaleY = parameter.ScaleY
	}

	g := &Game{
		screen:     screen,
		renderer:   render.NewRenderer(screen),
		controller: flight.NewController(params, clock),
		params:     params,
		info:       telemetry.NewLaunchInfo(params),
		opts:       opts,
		trail:      make([]render.Point, 0, parameter.TrailMaxPoints),
	}
	g.handleResize()
	return g
}

// SetSounds attaches audio feedback
func (g *Game) SetSounds(s Sounds) {
	g.sounds = s
}

// SetTelemetry attaches a snapshot publisher and an external command queue
func (g *Game) SetTelemetry(p Publisher, commands <-chan telemetry.Command) {
	g.publisher = p
	g.commands = commands
}

// SetStatus sets the bottom status line
func (g *Game) SetStatus(status string) {
	g.status = status
}

// State returns a copy of the current flight state
func (g *Game) State() flight.State {
	return g.state
}

// Viewport returns the current meter-to-cell mapping
func (g *Game) Viewport() display.Viewport {
	return g.viewport
}

// Frame returns the number of frames processed
func (g *Game) Frame() uint64 {
	return g.frame
}

// Launch starts a flight when idle, reporting whether it was accepted
func (g *Game) Launch() bool {
	next, ok := g.controller.Launch(g.state)
	if !ok {
		return false
	}
	g.state = next
	g.trail = g.trail[:0]
	if g.sounds != nil {
		g.sounds.PlayLaunch()
	}
	return true
}

// HandleEvent applies one terminal event, returning false when the user quits
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				g.Launch()
			case 'q', 'Q':
				return false
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.handleResize()
	}
	return true
}

// HandleCommand applies one external command
func (g *Game) HandleCommand(cmd telemetry.Command) {
	switch cmd {
	case telemetry.CommandLaunch:
		if !g.Launch() {
			log.Printf("launch command ignored: flight %d active", g.state.Flights)
		}
	}
}

// Tick advances the flight one frame, then draws and publishes it
func (g *Game) Tick() {
	wasActive := g.state.Active()
	g.state = g.controller.Step(g.state)
	g.frame++

	if g.state.Active() && g.opts.Trail && len(g.trail) < parameter.TrailMaxPoints {
		g.trail = append(g.trail, render.Point{X: g.state.X, Y: g.state.DisplayHeight()})
	}
	if wasActive && !g.state.Active() && g.sounds != nil {
		g.sounds.PlayImpact()
	}

	g.renderer.Draw(render.Scene{
		Viewport: g.viewport,
		Rocket:   render.Point{X: g.state.RestX(), Y: g.state.RestY()},
		Trail:    g.trail,
		Readout:  display.BuildReadout(g.params, g.state),
		Status:   g.status,
	})

	if g.publisher != nil {
		g.publisher.Publish(telemetry.NewSnapshot(g.frame, g.info, g.state))
	}
}

// Run drives the loop at the configured rate until the user quits or ctx ends
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.opts.FPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.Tick()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				return
			}

		case cmd := <-g.commands:
			g.HandleCommand(cmd)

		case <-ticker.C:
			g.Tick()
		}
	}
}

func (g *Game) handleResize() {
	w, h := g.screen.Size()
	g.viewport = display.NewViewport(w, h, g.opts.ScaleX, g.opts.ScaleY)
}
