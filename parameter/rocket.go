package parameter

// Chemistry inputs for the vinegar + baking soda charge
const (
	// VinegarConcentration of acetic acid in mol/L
	VinegarConcentration = 0.08

	// VinegarVolume in L
	VinegarVolume = 0.1

	// BakingSodaMass of NaHCO3 in g
	BakingSodaMass = 1.68

	// BakingSodaMolarMass of NaHCO3 in g/mol
	BakingSodaMolarMass = 84.01
)

// Gas and bottle
const (
	// GasConstant R in J/(mol·K)
	GasConstant = 8.314

	// Temperature of the reaction chamber in K
	Temperature = 298.0

	// BottleVolume in m³
	BottleVolume = 0.0005

	// NozzleRadius in m
	NozzleRadius = 0.013
)

// Rocket body and launch geometry
const (
	// RocketMass in kg
	RocketMass = 0.16507

	// AccelerationDistance is the stroke over which thrust acts, in m
	AccelerationDistance = 0.1

	// LaunchAngleDeg measured from the ground
	LaunchAngleDeg = 45.0

	// Gravity in m/s²
	Gravity = 9.81
)
