package parameter

import "time"

// Frame pacing
const (
	// FrameRate is the target frames per second of the render loop
	FrameRate = 60

	// MaxFrameRate caps user-supplied frame rates
	MaxFrameRate = 240

	// EventQueueSize buffers terminal events between poller and loop
	EventQueueSize = 100

	// CommandQueueSize buffers launch commands from the telemetry server
	CommandQueueSize = 1
)

// Viewport scaling, terminal cells per meter
const (
	// ScaleX is columns per meter
	ScaleX = 20.0

	// ScaleY is rows per meter, half of ScaleX to compensate cell aspect
	ScaleY = 10.0

	// GroundMargin is the number of rows below the ground line
	GroundMargin = 2

	// OriginFraction places the launch pad at this fraction of screen width
	OriginFraction = 0.25
)

// Readout layout
const (
	// PanelLeft is the column of the left readout panel
	PanelLeft = 1

	// PanelTop is the row of the first readout line
	PanelTop = 0

	// PeakPanelWidth is the width reserved for the right-aligned peaks panel
	PeakPanelWidth = 24

	// LiveFlightRow is the row index of the live-flight block within the left panel
	LiveFlightRow = 11
)

// Glyphs
const (
	RocketNose = '▲'
	RocketBody = '█'
	GroundRune = '▔'
	PadRune    = '┴'
	TrailRune  = '·'
)

// Messages
const (
	MessageReady    = "Ready. Press [SPACE] to launch."
	MessageComplete = "Flight complete. Press [SPACE] to launch again."
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vinegar-rocket.log"
)

// HeadlessFrameDuration is the simulated frame step when running without a terminal
const HeadlessFrameDuration = time.Second / FrameRate

// TrailMaxPoints bounds the samples kept for the flight trail
const TrailMaxPoints = 1024
