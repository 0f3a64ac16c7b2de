package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vinegar-rocket/display"
	"github.com/lixenwraith/vinegar-rocket/parameter"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, row, from, n int) string {
	var b strings.Builder
	for x := from; x < from+n; x++ {
		ch, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

// TestDrawRocketAtPad verifies the sprite sits on the ground at the origin
func TestDrawRocketAtPad(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	v := display.NewViewport(80, 24, parameter.ScaleX, parameter.ScaleY)

	NewRenderer(screen).Draw(Scene{Viewport: v})

	ch, _, _, _ := screen.GetContent(v.OriginX, v.GroundY)
	if ch != parameter.RocketBody {
		t.Errorf("Expected rocket body at pad, got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(v.OriginX, v.GroundY-1)
	if ch != parameter.RocketNose {
		t.Errorf("Expected rocket nose above body, got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(v.OriginX, v.GroundY+1)
	if ch != parameter.PadRune {
		t.Errorf("Expected launch pad below rocket, got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(0, v.GroundY+1)
	if ch != parameter.GroundRune {
		t.Errorf("Expected ground line, got %q", ch)
	}
}

// TestDrawRocketInFlight verifies meter-to-cell placement of the sprite and trail
func TestDrawRocketInFlight(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	v := display.NewViewport(80, 24, parameter.ScaleX, parameter.ScaleY)

	sc := Scene{
		Viewport: v,
		Rocket:   Point{X: 1, Y: 0.5},
		Trail:    []Point{{X: 0.5, Y: 0.3}},
	}
	NewRenderer(screen).Draw(sc)

	col, row := v.ToScreen(1, 0.5)
	ch, _, _, _ := screen.GetContent(col, row)
	if ch != parameter.RocketBody {
		t.Errorf("Expected rocket body at (%d,%d), got %q", col, row, ch)
	}

	col, row = v.ToScreen(0.5, 0.3)
	ch, _, _, _ = screen.GetContent(col, row)
	if ch != parameter.TrailRune {
		t.Errorf("Expected trail at (%d,%d), got %q", col, row, ch)
	}
}

// TestDrawReadout verifies panel text and the right-aligned peaks
func TestDrawReadout(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	v := display.NewViewport(80, 24, parameter.ScaleX, parameter.ScaleY)

	ro := display.Readout{
		Chemistry: []display.Line{{Text: "Vinegar Conc: 0.08 mol/L"}},
		Flight:    []display.Line{{Text: parameter.MessageReady, Tone: display.ToneNotice}},
		Peaks:     []display.Line{{Text: "Max Height: 0.65 m"}},
	}
	NewRenderer(screen).Draw(Scene{Viewport: v, Readout: ro, Status: "telemetry off"})

	if got := rowText(screen, parameter.PanelTop, parameter.PanelLeft, 24); got != "Vinegar Conc: 0.08 mol/L" {
		t.Errorf("Unexpected chemistry row %q", got)
	}

	msgRow := parameter.PanelTop + parameter.LiveFlightRow + 1
	if got := rowText(screen, msgRow, parameter.PanelLeft, len(parameter.MessageReady)); got != parameter.MessageReady {
		t.Errorf("Unexpected message row %q", got)
	}
	_, _, style, _ := screen.GetContent(parameter.PanelLeft, msgRow)
	if style != styleNotice {
		t.Error("Expected notice style on message")
	}

	peakCol := 80 - parameter.PeakPanelWidth
	if got := rowText(screen, parameter.PanelTop, peakCol, 18); got != "Max Height: 0.65 m" {
		t.Errorf("Unexpected peaks row %q", got)
	}

	if got := rowText(screen, 23, 0, 13); got != "telemetry off" {
		t.Errorf("Unexpected status row %q", got)
	}
}

// TestDrawClipsOffscreen verifies out-of-bounds positions do not panic or wrap
func TestDrawClipsOffscreen(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	v := display.NewViewport(20, 6, parameter.ScaleX, parameter.ScaleY)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Draw panicked on offscreen rocket: %v", r)
		}
	}()

	NewRenderer(screen).Draw(Scene{
		Viewport: v,
		Rocket:   Point{X: 100, Y: 100},
		Readout:  display.Readout{Peaks: []display.Line{{Text: strings.Repeat("x", 40)}}},
	})
}
