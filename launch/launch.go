// Package launch derives the fixed launch velocity of the bottle rocket from
// the chemistry of the charge and the geometry of the bottle.
package launch

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/vinegar-rocket/parameter"
)

// ErrInvalidConfig is returned when an input would make the launch undefined
var ErrInvalidConfig = errors.New("invalid launch configuration")

// Chemistry describes the reactants loaded into the bottle
type Chemistry struct {
	VinegarConcentration float64 `toml:"vinegar_concentration"` // mol/L
	VinegarVolume        float64 `toml:"vinegar_volume"`        // L
	BakingSodaMass       float64 `toml:"baking_soda_mass"`      // g
	BakingSodaMolarMass  float64 `toml:"baking_soda_molar_mass"`
}

// Physics describes the gas, bottle and rocket body
type Physics struct {
	GasConstant          float64 `toml:"gas_constant"`
	Temperature          float64 `toml:"temperature"`   // K
	BottleVolume         float64 `toml:"bottle_volume"` // m³
	NozzleRadius         float64 `toml:"nozzle_radius"` // m
	RocketMass           float64 `toml:"rocket_mass"`   // kg
	AccelerationDistance float64 `toml:"acceleration_distance"`
	AngleDeg             float64 `toml:"angle_deg"`
	Gravity              float64 `toml:"gravity"` // m/s²
}

// Parameters are the derived launch quantities, computed once per process
type Parameters struct {
	Chemistry Chemistry
	Physics   Physics

	MolesAcid    float64
	MolesBase    float64
	MolesCO2     float64
	BaseConc     float64 // mol/L of NaHCO3 in the vinegar volume
	MolarRatio   float64 // vinegar : NaHCO3 concentration ratio
	Pressure     float64 // Pa
	NozzleArea   float64 // m²
	Force        float64 // N
	InitialSpeed float64 // m/s
	AngleRad     float64
	VelocityX    float64
	VelocityY    float64
}

// DefaultChemistry returns the stock charge
func DefaultChemistry() Chemistry {
	return Chemistry{
		VinegarConcentration: parameter.VinegarConcentration,
		VinegarVolume:        parameter.VinegarVolume,
		BakingSodaMass:       parameter.BakingSodaMass,
		BakingSodaMolarMass:  parameter.BakingSodaMolarMass,
	}
}

// DefaultPhysics returns the stock bottle and rocket
func DefaultPhysics() Physics {
	return Physics{
		GasConstant:          parameter.GasConstant,
		Temperature:          parameter.Temperature,
		BottleVolume:         parameter.BottleVolume,
		NozzleRadius:         parameter.NozzleRadius,
		RocketMass:           parameter.RocketMass,
		AccelerationDistance: parameter.AccelerationDistance,
		AngleDeg:             parameter.LaunchAngleDeg,
		Gravity:              parameter.Gravity,
	}
}

// Validate rejects inputs that would divide by zero, take a negative root or yield negative moles
func (c Chemistry) Validate() error {
	if err := nonNegative("vinegar_concentration", c.VinegarConcentration); err != nil {
		return err
	}
	if err := positive("vinegar_volume", c.VinegarVolume); err != nil {
		return err
	}
	if err := nonNegative("baking_soda_mass", c.BakingSodaMass); err != nil {
		return err
	}
	return positive("baking_soda_molar_mass", c.BakingSodaMolarMass)
}

// Validate rejects physically meaningless bottle and body inputs
func (p Physics) Validate() error {
	checks := []struct {
		name  string
		value float64
		pos   bool
	}{
		{"rocket_mass", p.RocketMass, true},
		{"bottle_volume", p.BottleVolume, true},
		{"nozzle_radius", p.NozzleRadius, true},
		{"gravity", p.Gravity, true},
		{"gas_constant", p.GasConstant, false},
		{"temperature", p.Temperature, false},
		{"acceleration_distance", p.AccelerationDistance, false},
	}
	for _, c := range checks {
		var err error
		if c.pos {
			err = positive(c.name, c.value)
		} else {
			err = nonNegative(c.name, c.value)
		}
		if err != nil {
			return err
		}
	}
	if math.IsNaN(p.AngleDeg) || math.IsInf(p.AngleDeg, 0) {
		return fmt.Errorf("%w: angle_deg must be finite", ErrInvalidConfig)
	}
	return nil
}

// Compute derives the launch parameters: limiting reagent, ideal gas pressure,
// nozzle thrust, work-energy launch speed and its decomposition
func Compute(c Chemistry, p Physics) (Parameters, error) {
	if err := c.Validate(); err != nil {
		return Parameters{}, err
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	out := Parameters{Chemistry: c, Physics: p}

	out.MolesAcid = c.VinegarConcentration * c.VinegarVolume
	out.MolesBase = c.BakingSodaMass / c.BakingSodaMolarMass
	out.MolesCO2 = LimitingMoles(out.MolesAcid, out.MolesBase)

	out.BaseConc = out.MolesBase / c.VinegarVolume
	if out.BaseConc > 0 {
		out.MolarRatio = c.VinegarConcentration / out.BaseConc
	}

	out.Pressure = out.MolesCO2 * p.GasConstant * p.Temperature / p.BottleVolume
	out.NozzleArea = math.Pi * p.NozzleRadius * p.NozzleRadius
	out.Force = out.Pressure * out.NozzleArea
	out.InitialSpeed = math.Sqrt(2 * out.Force * p.AccelerationDistance / p.RocketMass)

	out.AngleRad = p.AngleDeg * math.Pi / 180
	out.VelocityX, out.VelocityY = Decompose(out.InitialSpeed, out.AngleRad)

	return out, nil
}

// LimitingMoles returns the moles of CO2 produced, bounded by the scarcer reactant
func LimitingMoles(acid, base float64) float64 {
	return math.Min(acid, base)
}

// Decompose splits a speed into horizontal and vertical components
func Decompose(speed, angleRad float64) (vx, vy float64) {
	return speed * math.Cos(angleRad), speed * math.Sin(angleRad)
}

// ApexTime is the time to the top of the arc, zero when launched flat or downward
func (p Parameters) ApexTime() float64 {
	if p.VelocityY <= 0 {
		return 0
	}
	return p.VelocityY / p.Physics.Gravity
}

// ApexHeight is the analytic peak of the trajectory
func (p Parameters) ApexHeight() float64 {
	t := p.ApexTime()
	return p.VelocityY*t - 0.5*p.Physics.Gravity*t*t
}

// FlightDuration is the analytic time of return to ground level
func (p Parameters) FlightDuration() float64 {
	return 2 * p.ApexTime()
}

// Range is the analytic horizontal distance at return to ground level
func (p Parameters) Range() float64 {
	return p.VelocityX * p.FlightDuration()
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidConfig, name, v)
	}
	return nil
}
