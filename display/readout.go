package display

import (
	"fmt"

	"github.com/lixenwraith/vinegar-rocket/flight"
	"github.com/lixenwraith/vinegar-rocket/launch"
	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// Tone selects the text style of a readout line
type Tone uint8

const (
	ToneNormal Tone = iota
	ToneNotice
)

// Line is a single formatted readout entry
type Line struct {
	Text string
	Tone Tone
}

// Readout is the full per-frame text panel
type Readout struct {
	Chemistry []Line
	Physics   []Line
	Flight    []Line
	Peaks     []Line
}

// ChemistryLines formats the reactant quantities, constant for the process lifetime
func ChemistryLines(p launch.Parameters) []Line {
	c := p.Chemistry
	return []Line{
		{Text: fmt.Sprintf("Vinegar Conc: %.2f mol/L", c.VinegarConcentration)},
		{Text: fmt.Sprintf("Vinegar Vol: %.0f mL", c.VinegarVolume*1000)},
		{Text: fmt.Sprintf("NaHCO3 Mass: %.2f g", c.BakingSodaMass)},
		{Text: fmt.Sprintf("NaHCO3 Conc: %.2f mol/L", p.BaseConc)},
		{Text: fmt.Sprintf("Ratio (V:NaHCO3): %.2f", p.MolarRatio)},
		{Text: fmt.Sprintf("Moles CH3COOH: %.4f", p.MolesAcid)},
		{Text: fmt.Sprintf("Moles NaHCO3: %.4f", p.MolesBase)},
		{Text: fmt.Sprintf("Moles CO2: %.4f", p.MolesCO2)},
	}
}

// BuildReadout assembles the panel for one frame
func BuildReadout(p launch.Parameters, s flight.State) Readout {
	r := Readout{
		Chemistry: ChemistryLines(p),
		Physics: []Line{
			{Text: fmt.Sprintf("Initial Velocity: %.2f m/s", p.InitialSpeed)},
			{Text: fmt.Sprintf("Force: %.2f N", p.Force)},
			{Text: fmt.Sprintf("Flight Time: %.2f s", s.FlightTime)},
		},
		Peaks: []Line{
			{Text: fmt.Sprintf("Max Height: %.2f m", s.MaxHeight)},
			{Text: fmt.Sprintf("Max Range: %.2f m", s.MaxRange)},
			{Text: fmt.Sprintf("Time Period: %.2f s", s.FlightTime)},
		},
	}

	switch {
	case s.Active():
		r.Flight = []Line{
			{Text: fmt.Sprintf("Current Height: %.2f m", s.DisplayHeight())},
			{Text: fmt.Sprintf("Current Range: %.2f m", s.X)},
		}
	case s.Landed():
		r.Flight = []Line{{Text: parameter.MessageComplete, Tone: ToneNotice}}
	default:
		r.Flight = []Line{{Text: parameter.MessageReady, Tone: ToneNotice}}
	}
	return r
}

// Left returns the left panel lines in display order
func (r Readout) Left() []Line {
	out := make([]Line, 0, len(r.Chemistry)+len(r.Physics)+len(r.Flight))
	out = append(out, r.Chemistry...)
	out = append(out, r.Physics...)
	out = append(out, r.Flight...)
	return out
}
