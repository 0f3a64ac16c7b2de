// Package render draws a Scene onto a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vinegar-rocket/display"
	"github.com/lixenwraith/vinegar-rocket/parameter"
)

var (
	styleText   = tcell.StyleDefault
	styleNotice = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 40, 40)).Bold(true)
	styleRocket = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 50, 50))
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTrail  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Renderer draws scenes to a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen, paints the scene and flushes it
func (r *Renderer) Draw(sc Scene) {
	r.screen.Clear()

	r.drawGround(sc.Viewport)
	r.drawTrail(sc.Viewport, sc.Trail)
	r.drawRocket(sc.Viewport, sc.Rocket)
	r.drawReadout(sc.Viewport, sc.Readout)
	if sc.Status != "" {
		r.drawStatus(sc.Viewport, sc.Status)
	}

	r.screen.Show()
}

func (r *Renderer) drawGround(v display.Viewport) {
	for x := 0; x < v.Width; x++ {
		r.set(v, x, v.GroundY+1, parameter.GroundRune, styleGround)
	}
	r.set(v, v.OriginX, v.GroundY+1, parameter.PadRune, styleGround)
}

func (r *Renderer) drawTrail(v display.Viewport, trail []Point) {
	for _, p := range trail {
		col, row := v.ToScreen(p.X, p.Y)
		r.set(v, col, row, parameter.TrailRune, styleTrail)
	}
}

// drawRocket paints a two-cell sprite with the nose above the body
func (r *Renderer) drawRocket(v display.Viewport, p Point) {
	col, row := v.ToScreen(p.X, p.Y)
	r.set(v, col, row, parameter.RocketBody, styleRocket)
	r.set(v, col, row-1, parameter.RocketNose, styleRocket)
}

func (r *Renderer) drawReadout(v display.Viewport, ro display.Readout) {
	row := parameter.PanelTop
	for _, l := range ro.Chemistry {
		r.text(v, parameter.PanelLeft, row, l)
		row++
	}
	for _, l := range ro.Physics {
		r.text(v, parameter.PanelLeft, row, l)
		row++
	}

	row = parameter.PanelTop + parameter.LiveFlightRow
	if len(ro.Flight) == 1 {
		// Completion and ready prompts sit one row lower than live values
		row++
	}
	for _, l := range ro.Flight {
		r.text(v, parameter.PanelLeft, row, l)
		row++
	}

	col := v.Width - parameter.PeakPanelWidth
	if col < 0 {
		col = 0
	}
	for i, l := range ro.Peaks {
		r.text(v, col, parameter.PanelTop+i, l)
	}
}

func (r *Renderer) drawStatus(v display.Viewport, status string) {
	row := v.Height - 1
	for x := 0; x < v.Width; x++ {
		r.set(v, x, row, ' ', styleStatus)
	}
	r.puts(v, 0, row, status, styleStatus)
}

func (r *Renderer) text(v display.Viewport, col, row int, l display.Line) {
	style := styleText
	if l.Tone == display.ToneNotice {
		style = styleNotice
	}
	r.puts(v, col, row, l.Text, style)
}

// puts writes a string honoring wide runes, clipping at the right edge
func (r *Renderer) puts(v display.Viewport, col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.set(v, col, row, ch, style)
		col += w
	}
}

func (r *Renderer) set(v display.Viewport, col, row int, ch rune, style tcell.Style) {
	if !v.Contains(col, row) {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}
