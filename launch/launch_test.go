package launch

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// TestComputeStockCharge verifies the acid-limited stock charge
func TestComputeStockCharge(t *testing.T) {
	p, err := Compute(DefaultChemistry(), DefaultPhysics())
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	if !approx(p.MolesAcid, 0.008, tolerance) {
		t.Errorf("Expected moles acid 0.008, got %f", p.MolesAcid)
	}
	if !approx(p.MolesBase, 0.02, 1e-4) {
		t.Errorf("Expected moles base ≈0.02, got %f", p.MolesBase)
	}
	if p.MolesCO2 != p.MolesAcid {
		t.Errorf("Expected acid-limited CO2 %f, got %f", p.MolesAcid, p.MolesCO2)
	}
	if !approx(p.BaseConc, 0.2, 1e-3) {
		t.Errorf("Expected base concentration ≈0.2 mol/L, got %f", p.BaseConc)
	}
	if !approx(p.MolarRatio, 0.4, 1e-3) {
		t.Errorf("Expected ratio ≈0.4, got %f", p.MolarRatio)
	}

	wantPressure := 0.008 * 8.314 * 298 / 0.0005
	if !approx(p.Pressure, wantPressure, 1e-6) {
		t.Errorf("Expected pressure %f, got %f", wantPressure, p.Pressure)
	}
	wantForce := wantPressure * math.Pi * 0.013 * 0.013
	if !approx(p.Force, wantForce, 1e-9) {
		t.Errorf("Expected force %f, got %f", wantForce, p.Force)
	}
	wantSpeed := math.Sqrt(2 * wantForce * 0.1 / 0.16507)
	if !approx(p.InitialSpeed, wantSpeed, 1e-9) {
		t.Errorf("Expected initial speed %f, got %f", wantSpeed, p.InitialSpeed)
	}
	if !approx(p.VelocityX, p.VelocityY, 1e-9) {
		t.Errorf("Expected equal components at 45°, got vx=%f vy=%f", p.VelocityX, p.VelocityY)
	}
}

// TestLimitingReagent verifies CO2 equals the smaller mole count
func TestLimitingReagent(t *testing.T) {
	tests := []struct {
		name string
		chem Chemistry
	}{
		{"acid limited", Chemistry{VinegarConcentration: 0.08, VinegarVolume: 0.1, BakingSodaMass: 1.68, BakingSodaMolarMass: 84.01}},
		{"base limited", Chemistry{VinegarConcentration: 1.0, VinegarVolume: 0.5, BakingSodaMass: 0.84, BakingSodaMolarMass: 84.01}},
		{"balanced", Chemistry{VinegarConcentration: 0.2, VinegarVolume: 0.1, BakingSodaMass: 1.6802, BakingSodaMolarMass: 84.01}},
		{"no base", Chemistry{VinegarConcentration: 0.2, VinegarVolume: 0.1, BakingSodaMass: 0, BakingSodaMolarMass: 84.01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compute(tt.chem, DefaultPhysics())
			if err != nil {
				t.Fatalf("Compute returned error: %v", err)
			}
			want := math.Min(p.MolesAcid, p.MolesBase)
			if p.MolesCO2 != want {
				t.Errorf("Expected CO2 %f, got %f", want, p.MolesCO2)
			}
			if p.MolesCO2 < 0 {
				t.Errorf("Expected non-negative CO2, got %f", p.MolesCO2)
			}
		})
	}
}

// TestInitialSpeedPositive verifies positive force and mass give a positive speed
func TestInitialSpeedPositive(t *testing.T) {
	for _, mass := range []float64{0.01, 0.16507, 1, 50} {
		phys := DefaultPhysics()
		phys.RocketMass = mass
		p, err := Compute(DefaultChemistry(), phys)
		if err != nil {
			t.Fatalf("Compute(mass=%f) returned error: %v", mass, err)
		}
		if p.Force <= 0 {
			t.Fatalf("Expected positive force, got %f", p.Force)
		}
		if p.InitialSpeed <= 0 {
			t.Errorf("Expected positive speed for mass %f, got %f", mass, p.InitialSpeed)
		}
	}
}

// TestDecomposePreservesMagnitude checks vx²+vy² = v² across angles
func TestDecomposePreservesMagnitude(t *testing.T) {
	speed := 5.05
	for deg := -90.0; deg <= 180; deg += 7.5 {
		vx, vy := Decompose(speed, deg*math.Pi/180)
		got := vx*vx + vy*vy
		if !approx(got, speed*speed, 1e-9) {
			t.Errorf("Angle %.1f: expected %f, got %f", deg, speed*speed, got)
		}
	}
}

// TestComputeRejectsNonPositiveGeometry verifies configuration errors for mass, volume and radius
func TestComputeRejectsNonPositiveGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Physics)
	}{
		{"zero mass", func(p *Physics) { p.RocketMass = 0 }},
		{"negative mass", func(p *Physics) { p.RocketMass = -1 }},
		{"zero bottle", func(p *Physics) { p.BottleVolume = 0 }},
		{"negative bottle", func(p *Physics) { p.BottleVolume = -0.0005 }},
		{"zero nozzle", func(p *Physics) { p.NozzleRadius = 0 }},
		{"negative nozzle", func(p *Physics) { p.NozzleRadius = -0.01 }},
		{"zero gravity", func(p *Physics) { p.Gravity = 0 }},
		{"negative distance", func(p *Physics) { p.AccelerationDistance = -0.1 }},
		{"NaN mass", func(p *Physics) { p.RocketMass = math.NaN() }},
		{"infinite angle", func(p *Physics) { p.AngleDeg = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phys := DefaultPhysics()
			tt.mutate(&phys)
			_, err := Compute(DefaultChemistry(), phys)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// TestComputeRejectsBadChemistry verifies divisions and negative moles are refused
func TestComputeRejectsBadChemistry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Chemistry)
	}{
		{"zero molar mass", func(c *Chemistry) { c.BakingSodaMolarMass = 0 }},
		{"zero vinegar volume", func(c *Chemistry) { c.VinegarVolume = 0 }},
		{"negative concentration", func(c *Chemistry) { c.VinegarConcentration = -0.1 }},
		{"negative soda mass", func(c *Chemistry) { c.BakingSodaMass = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chem := DefaultChemistry()
			tt.mutate(&chem)
			_, err := Compute(chem, DefaultPhysics())
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// TestAnalyticTrajectory checks apex and range against the closed form
func TestAnalyticTrajectory(t *testing.T) {
	p, err := Compute(DefaultChemistry(), DefaultPhysics())
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	g := p.Physics.Gravity
	wantApex := p.VelocityY * p.VelocityY / (2 * g)
	if !approx(p.ApexHeight(), wantApex, 1e-9) {
		t.Errorf("Expected apex %f, got %f", wantApex, p.ApexHeight())
	}

	// At 45° range is v²/g
	wantRange := p.InitialSpeed * p.InitialSpeed / g
	if !approx(p.Range(), wantRange, 1e-9) {
		t.Errorf("Expected range %f, got %f", wantRange, p.Range())
	}

	flat := DefaultPhysics()
	flat.AngleDeg = 0
	q, err := Compute(DefaultChemistry(), flat)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if q.FlightDuration() != 0 {
		t.Errorf("Expected zero flight duration for flat launch, got %f", q.FlightDuration())
	}
}
