// Package telemetry exposes the running simulation over HTTP: a JSON
// snapshot endpoint, a launch command, a websocket stream and prometheus
// metrics. The frame loop remains the only writer of flight state; this
// package only ever sees copies.
package telemetry

import (
	"github.com/lixenwraith/vinegar-rocket/flight"
	"github.com/lixenwraith/vinegar-rocket/launch"
)

// LaunchInfo is the fixed part of every snapshot
type LaunchInfo struct {
	MolesAcid    float64 `json:"molesAcid" jsonschema:"description=Moles of acetic acid in the charge,minimum=0"`
	MolesBase    float64 `json:"molesBase" jsonschema:"description=Moles of sodium bicarbonate in the charge,minimum=0"`
	MolesCO2     float64 `json:"molesCO2" jsonschema:"description=Moles of CO2 released by the limiting reagent,minimum=0"`
	Pressure     float64 `json:"pressurePa" jsonschema:"description=Chamber pressure from the ideal gas law in pascals,minimum=0"`
	Force        float64 `json:"forceN" jsonschema:"description=Nozzle thrust in newtons,minimum=0"`
	InitialSpeed float64 `json:"initialSpeed" jsonschema:"description=Launch speed in m/s,minimum=0"`
	AngleDeg     float64 `json:"angleDeg" jsonschema:"description=Launch angle above the ground in degrees"`
	VelocityX    float64 `json:"vx" jsonschema:"description=Horizontal launch velocity in m/s"`
	VelocityY    float64 `json:"vy" jsonschema:"description=Vertical launch velocity in m/s"`
}

// Snapshot is one frame of the simulation as seen by external clients
type Snapshot struct {
	Frame      uint64     `json:"frame" jsonschema:"description=Frame counter since start-up"`
	Phase      string     `json:"phase" jsonschema:"enum=idle,enum=active"`
	Flights    int        `json:"flights" jsonschema:"description=Launches since start-up,minimum=0"`
	X          float64    `json:"x" jsonschema:"description=Horizontal distance from the pad in meters"`
	Y          float64    `json:"y" jsonschema:"description=Height above ground in meters,minimum=0"`
	FlightTime float64    `json:"flightTime" jsonschema:"description=Seconds since launch frozen at impact,minimum=0"`
	MaxHeight  float64    `json:"maxHeight" jsonschema:"minimum=0"`
	MaxRange   float64    `json:"maxRange" jsonschema:"minimum=0"`
	Launch     LaunchInfo `json:"launch"`
}

// NewLaunchInfo extracts the published subset of the launch parameters
func NewLaunchInfo(p launch.Parameters) LaunchInfo {
	return LaunchInfo{
		MolesAcid:    p.MolesAcid,
		MolesBase:    p.MolesBase,
		MolesCO2:     p.MolesCO2,
		Pressure:     p.Pressure,
		Force:        p.Force,
		InitialSpeed: p.InitialSpeed,
		AngleDeg:     p.Physics.AngleDeg,
		VelocityX:    p.VelocityX,
		VelocityY:    p.VelocityY,
	}
}

// NewSnapshot copies a flight state into its wire form, using the displayed position
func NewSnapshot(frame uint64, info LaunchInfo, s flight.State) Snapshot {
	return Snapshot{
		Frame:      frame,
		Phase:      s.Phase.String(),
		Flights:    s.Flights,
		X:          s.RestX(),
		Y:          s.RestY(),
		FlightTime: s.FlightTime,
		MaxHeight:  s.MaxHeight,
		MaxRange:   s.MaxRange,
		Launch:     info,
	}
}

// Active reports whether the snapshot was taken mid-flight
func (s Snapshot) Active() bool {
	return s.Phase == flight.PhaseActive.String()
}
