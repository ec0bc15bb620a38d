package particle

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/units"
)

func defaultParticle(t *testing.T) *Particle {
	t.Helper()
	p, err := New(gas.Default(), Options{Radius: units.New(100, units.Nanometer)})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return p
}

func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Abs(b)
}

func TestNew_RadiusRequired(t *testing.T) {
	_, err := New(gas.Default(), Options{})
	if !errors.Is(err, ErrRadiusRequired) {
		t.Fatalf("expected ErrRadiusRequired, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	p := defaultParticle(t)
	if p.Radius().Value() != 1e-7 {
		t.Errorf("radius = %v, want 1e-7 m", p.Radius().Value())
	}
	if p.Density().Value() != 1000 {
		t.Errorf("density = %v, want 1000 kg/m^3", p.Density().Value())
	}
	if p.ShapeFactor().Value() != 1 || p.VolumeVoid().Value() != 0 || p.Charge().Value() != 0 {
		t.Error("shape/void/charge defaults wrong")
	}
}

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := New(gas.Default(), Options{Radius: units.New(100, units.Kelvin)})
	if !errors.Is(err, units.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMass(t *testing.T) {
	p := defaultParticle(t)
	// 1000 kg/m^3 * 4/3*pi*(1e-7)^3
	if relDiff(p.Mass().Value(), 4.18879020478639e-18) > 1e-12 {
		t.Errorf("mass = %v, want 4.18879e-18 kg", p.Mass().Value())
	}

	porous, err := New(gas.Default(), Options{
		Radius:     units.New(100, units.Nanometer),
		VolumeVoid: units.Scalar(0.5),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if relDiff(porous.Mass().Value(), p.Mass().Value()/2) > 1e-12 {
		t.Errorf("half-void mass = %v, want half of %v", porous.Mass().Value(), p.Mass().Value())
	}
}

func TestKnudsenNumber(t *testing.T) {
	p := defaultParticle(t)
	if relDiff(p.KnudsenNumber().Value(), 0.6647984929) > 1e-6 {
		t.Errorf("Kn = %v, want ~0.6648", p.KnudsenNumber().Value())
	}
}

func TestSlipCorrectionFactor(t *testing.T) {
	p := defaultParticle(t)
	if relDiff(p.SlipCorrectionFactor().Value(), 1.8864852531) > 1e-6 {
		t.Errorf("scf = %v, want ~1.8865", p.SlipCorrectionFactor().Value())
	}

	// Slip correction grows as particles shrink relative to the mean
	// free path.
	small, err := New(gas.Default(), Options{Radius: units.New(10, units.Nanometer)})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if small.SlipCorrectionFactor().Value() <= p.SlipCorrectionFactor().Value() {
		t.Error("scf should increase for smaller particles")
	}
}

func TestFrictionFactor(t *testing.T) {
	p := defaultParticle(t)
	got := p.FrictionFactor()
	if got.Unit() != units.KilogramPerSecond {
		t.Errorf("unit = %v, want kg/s", got.Unit())
	}
	if relDiff(got.Value(), 1.8356597166e-11) > 1e-6 {
		t.Errorf("friction factor = %v, want ~1.8357e-11", got.Value())
	}
}

func TestReducedQuantities(t *testing.T) {
	a := defaultParticle(t)
	b := defaultParticle(t)

	if relDiff(ReducedMass(a, b).Value(), a.Mass().Value()/2) > 1e-12 {
		t.Errorf("reduced mass of equal pair = %v, want m/2", ReducedMass(a, b).Value())
	}
	if relDiff(ReducedFrictionFactor(a, b).Value(), a.FrictionFactor().Value()/2) > 1e-12 {
		t.Errorf("reduced friction of equal pair = %v, want f/2", ReducedFrictionFactor(a, b).Value())
	}
}
