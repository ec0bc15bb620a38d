package particle

import (
	"math"
	"testing"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/units"
)

func chargedPair(t *testing.T, qa, qb float64) (*Particle, *Particle) {
	t.Helper()
	env := gas.Default()
	a, err := New(env, Options{
		Radius: units.New(100, units.Nanometer),
		Charge: units.Scalar(qa),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	b, err := New(env, Options{
		Radius: units.New(100, units.Nanometer),
		Charge: units.Scalar(qb),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return a, b
}

func TestCoulombPotentialRatio(t *testing.T) {
	a, b := chargedPair(t, 0, 0)
	if got := CoulombPotentialRatio(a, b); got != 0 {
		t.Errorf("neutral pair phi = %v, want 0", got)
	}

	// Opposite charges attract: positive ratio.
	a, b = chargedPair(t, 1, -1)
	if got := CoulombPotentialRatio(a, b); got <= 0 {
		t.Errorf("opposite charges phi = %v, want > 0", got)
	}

	// Like charges repel: negative ratio.
	a, b = chargedPair(t, 2, 2)
	if got := CoulombPotentialRatio(a, b); got >= 0 {
		t.Errorf("like charges phi = %v, want < 0", got)
	}
}

func TestCoulombEnhancement_Neutral(t *testing.T) {
	a, b := chargedPair(t, 0, 0)
	if got := CoulombEnhancementKinetic(a, b); got != 1 {
		t.Errorf("kinetic enhancement = %v, want 1", got)
	}
	if got := CoulombEnhancementContinuum(a, b); got != 1 {
		t.Errorf("continuum enhancement = %v, want 1", got)
	}
}

func TestCoulombEnhancement_Charged(t *testing.T) {
	attract, attractB := chargedPair(t, 1, -1)
	repel, repelB := chargedPair(t, 1, 1)

	if CoulombEnhancementKinetic(attract, attractB) <= 1 {
		t.Error("attraction should enhance collisions in the kinetic limit")
	}
	if CoulombEnhancementKinetic(repel, repelB) >= 1 {
		t.Error("repulsion should suppress collisions in the kinetic limit")
	}
	if CoulombEnhancementContinuum(attract, attractB) <= 1 {
		t.Error("attraction should enhance collisions in the continuum limit")
	}
	if CoulombEnhancementContinuum(repel, repelB) >= 1 {
		t.Error("repulsion should suppress collisions in the continuum limit")
	}
}

func TestHardSphereKernel(t *testing.T) {
	// Continuum limit: H -> 4*pi*KnD^2 as KnD -> 0.
	knd := 1e-4
	if relDiff(hardSphereKernel(knd), 4*math.Pi*knd*knd) > 1e-3 {
		t.Errorf("H(%g) = %v, want continuum limit %v", knd, hardSphereKernel(knd), 4*math.Pi*knd*knd)
	}

	// Kinetic limit: H -> sqrt(8*pi)*KnD as KnD -> inf.
	knd = 1e4
	if relDiff(hardSphereKernel(knd), math.Sqrt(8*math.Pi)*knd) > 1e-3 {
		t.Errorf("H(%g) = %v, want kinetic limit %v", knd, hardSphereKernel(knd), math.Sqrt(8*math.Pi)*knd)
	}

	if relDiff(hardSphereKernel(1), 4.126940751532693) > 1e-12 {
		t.Errorf("H(1) = %v, want 4.12694...", hardSphereKernel(1))
	}
}

func TestDiffusiveKnudsenNumber(t *testing.T) {
	a, b := chargedPair(t, 0, 0)
	if relDiff(DiffusiveKnudsenNumber(a, b), 0.05058202099839528) > 1e-6 {
		t.Errorf("KnD = %v, want ~0.050582", DiffusiveKnudsenNumber(a, b))
	}
}

func TestDimensionlessCoagulationKernel_UnknownTag(t *testing.T) {
	env, err := gas.NewEnvironment(gas.Options{CoagulationApproximation: "bogus"})
	if err != nil {
		t.Fatalf("NewEnvironment() error: %v", err)
	}
	a, err := New(env, Options{Radius: units.New(100, units.Nanometer)})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := DimensionlessCoagulationKernel(a, a); err == nil {
		t.Fatal("expected error for unknown coagulation tag")
	}
}

func TestCoagulationKernel(t *testing.T) {
	a, b := chargedPair(t, 0, 0)
	k, err := CoagulationKernel(a, b)
	if err != nil {
		t.Fatalf("CoagulationKernel() error: %v", err)
	}
	if k.Unit() != units.CubicMeterPerSecond {
		t.Errorf("unit = %v, want m^3/s", k.Unit())
	}
	if relDiff(k.Value(), 1.0503474519379382e-15) > 1e-6 {
		t.Errorf("kernel = %v, want ~1.0503e-15 m^3/s", k.Value())
	}
}
