package gas

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/aerosol/internal/units"
)

func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Abs(b)
}

func TestDynamicViscosity_Regression(t *testing.T) {
	mu := Default().DynamicViscosity()
	if mu.Unit() != units.PascalSecond {
		t.Errorf("unit = %v, want Pa*s", mu.Unit())
	}
	if relDiff(mu.Value(), 1.8371493734583912e-5) > 1e-9 {
		t.Errorf("viscosity = %.16e, want 1.8371493734583912e-5", mu.Value())
	}
}

func TestDynamicViscosity_AtReferenceTemperature(t *testing.T) {
	mu, err := DynamicViscosity(units.New(RefTemperatureSTP, units.Kelvin),
		units.Quantity{}, units.Quantity{}, units.Quantity{})
	if err != nil {
		t.Fatalf("DynamicViscosity() error: %v", err)
	}
	if relDiff(mu.Value(), RefViscosityAirSTP) > 1e-12 {
		t.Errorf("viscosity at T0 = %v, want reference %v", mu.Value(), RefViscosityAirSTP)
	}
}

func TestDynamicViscosity_Monotone(t *testing.T) {
	temps := []float64{200, 250, 300, 400}
	want := []float64{1.32849751e-5, 1.59905239e-5, 1.84591625e-5, 2.28516090e-5}

	mu, err := DynamicViscosity(units.NewVector(temps, units.Kelvin),
		units.Quantity{}, units.Quantity{}, units.Quantity{})
	if err != nil {
		t.Fatalf("DynamicViscosity() error: %v", err)
	}
	got := mu.Values()
	for i := range got {
		if relDiff(got[i], want[i]) > 1e-6 {
			t.Errorf("viscosity at %g K = %.8e, want %.8e", temps[i], got[i], want[i])
		}
		if i > 0 && got[i] <= got[i-1] {
			t.Errorf("viscosity not increasing: mu(%g)=%v <= mu(%g)=%v",
				temps[i], got[i], temps[i-1], got[i-1])
		}
	}
}

func TestDynamicViscosity_CustomReference(t *testing.T) {
	// At T == T0 the formula collapses to mu0 regardless of C.
	mu, err := DynamicViscosity(
		units.New(300, units.Kelvin),
		units.New(2e-5, units.PascalSecond),
		units.New(300, units.Kelvin),
		units.Quantity{})
	if err != nil {
		t.Fatalf("DynamicViscosity() error: %v", err)
	}
	if relDiff(mu.Value(), 2e-5) > 1e-12 {
		t.Errorf("viscosity = %v, want 2e-5", mu.Value())
	}
}

func TestDynamicViscosity_Mismatch(t *testing.T) {
	_, err := DynamicViscosity(units.New(5, units.Meter),
		units.Quantity{}, units.Quantity{}, units.Quantity{})
	if !errors.Is(err, units.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMeanFreePath_Regression(t *testing.T) {
	mfp := Default().MeanFreePath()
	if mfp.Unit() != units.Meter {
		t.Errorf("unit = %v, want m", mfp.Unit())
	}
	if relDiff(mfp.Value(), 6.647984982685411e-8) > 1e-6 {
		t.Errorf("mean free path = %.16e, want 6.647984982685411e-8", mfp.Value())
	}
}

func TestMeanFreePath_StandaloneDefaults(t *testing.T) {
	var unset units.Quantity
	mfp, err := MeanFreePath(unset, unset, unset, unset, unset)
	if err != nil {
		t.Fatalf("MeanFreePath() error: %v", err)
	}
	if relDiff(mfp.Value(), 6.647984982685411e-8) > 1e-6 {
		t.Errorf("mean free path = %.16e, want 6.647984982685411e-8", mfp.Value())
	}
}

func TestMeanFreePath_BareEqualsTagged(t *testing.T) {
	var unset units.Quantity
	tagged, err := MeanFreePath(unset, units.New(298, units.Kelvin),
		units.New(101325, units.Pascal), unset, unset)
	if err != nil {
		t.Fatalf("MeanFreePath() error: %v", err)
	}
	bare, err := MeanFreePath(unset, units.Scalar(298), units.Scalar(101325), unset, unset)
	if err != nil {
		t.Fatalf("MeanFreePath() error: %v", err)
	}
	if tagged.Value() != bare.Value() {
		t.Errorf("tagged %v != bare %v", tagged.Value(), bare.Value())
	}
}

func TestMeanFreePath_PressureInverse(t *testing.T) {
	var unset units.Quantity
	low, err := MeanFreePath(unset, unset, units.Scalar(50662.5), unset, unset)
	if err != nil {
		t.Fatalf("MeanFreePath() error: %v", err)
	}
	ref, err := MeanFreePath(unset, unset, unset, unset, unset)
	if err != nil {
		t.Fatalf("MeanFreePath() error: %v", err)
	}
	// Halving the pressure doubles the mean free path.
	if relDiff(low.Value(), 2*ref.Value()) > 1e-12 {
		t.Errorf("mfp at half pressure = %v, want %v", low.Value(), 2*ref.Value())
	}
}

func TestMeanFreePath_Mismatch(t *testing.T) {
	var unset units.Quantity
	_, err := MeanFreePath(unset, units.New(5, units.Meter), unset, unset, unset)
	if !errors.Is(err, units.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for temperature, got %v", err)
	}
	_, err = MeanFreePath(unset, unset, units.New(5, units.Meter), unset, unset)
	if !errors.Is(err, units.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for pressure, got %v", err)
	}
}

func TestBroadcastLen(t *testing.T) {
	n, err := broadcastLen(units.Scalar(1), units.Vector(1, 2, 3), units.Vector(4, 5, 6))
	if err != nil {
		t.Fatalf("broadcastLen() error: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	_, err = broadcastLen(units.Vector(1, 2), units.Vector(1, 2, 3))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}
