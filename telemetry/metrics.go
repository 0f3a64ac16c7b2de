package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the rocket gauges on a private registry
type Metrics struct {
	registry *prometheus.Registry

	height       prometheus.Gauge
	rangeM       prometheus.Gauge
	flightTime   prometheus.Gauge
	maxHeight    prometheus.Gauge
	maxRange     prometheus.Gauge
	active       prometheus.Gauge
	initialSpeed prometheus.Gauge
	force        prometheus.Gauge
	pressure     prometheus.Gauge
	launches     prometheus.Counter

	lastFlights int
}

// NewMetrics registers the rocket gauges
func NewMetrics() *Metrics {
	m := &Metrics{
		registry:     prometheus.NewRegistry(),
		height:       prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_height_meters", Help: "Current height above ground"}),
		rangeM:       prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_range_meters", Help: "Current horizontal distance from the pad"}),
		flightTime:   prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_flight_time_seconds", Help: "Elapsed time of the current or last flight"}),
		maxHeight:    prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_max_height_meters", Help: "Peak height of the current or last flight"}),
		maxRange:     prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_max_range_meters", Help: "Peak range of the current or last flight"}),
		active:       prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_flight_active", Help: "1 while a flight is in progress"}),
		initialSpeed: prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_initial_velocity_mps", Help: "Launch speed"}),
		force:        prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_thrust_newton", Help: "Nozzle thrust"}),
		pressure:     prometheus.NewGauge(prometheus.GaugeOpts{Name: "rocket_chamber_pressure_pascal", Help: "Ideal gas chamber pressure"}),
		launches:     prometheus.NewCounter(prometheus.CounterOpts{Name: "rocket_launches_total", Help: "Launches since start-up"}),
	}

	m.registry.MustRegister(
		m.height, m.rangeM, m.flightTime, m.maxHeight, m.maxRange, m.active,
		m.initialSpeed, m.force, m.pressure, m.launches,
	)
	return m
}

// Observe updates every gauge from a snapshot
func (m *Metrics) Observe(s Snapshot) {
	m.height.Set(s.Y)
	m.rangeM.Set(s.X)
	m.flightTime.Set(s.FlightTime)
	m.maxHeight.Set(s.MaxHeight)
	m.maxRange.Set(s.MaxRange)
	if s.Active() {
		m.active.Set(1)
	} else {
		m.active.Set(0)
	}

	m.initialSpeed.Set(s.Launch.InitialSpeed)
	m.force.Set(s.Launch.Force)
	m.pressure.Set(s.Launch.Pressure)

	if s.Flights > m.lastFlights {
		m.launches.Add(float64(s.Flights - m.lastFlights))
		m.lastFlights = s.Flights
	}
}

// Registry exposes the private registry for scraping and tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
