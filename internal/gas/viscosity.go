package gas

import (
	"fmt"
	"math"

	"github.com/san-kum/aerosol/internal/units"
)

// DynamicViscosity computes gas viscosity via Sutherland's formula
//
//	mu = mu0 * (T/T0)^(3/2) * (T0+C) / (T+C)
//
// Unset arguments take the dry-air literature defaults, untagged values
// are read in canonical units, and tagged values are dimension-checked.
// Vector temperatures broadcast element-wise. The result is in
// pascal-seconds.
func DynamicViscosity(temp, refVis, refTemp, suth units.Quantity) (units.Quantity, error) {
	t, err := coerce("temperature", temp, units.Temperature, DefaultTemperature)
	if err != nil {
		return units.Quantity{}, err
	}
	mu0, err := coerce("reference_viscosity", refVis, units.Viscosity, RefViscosityAirSTP)
	if err != nil {
		return units.Quantity{}, err
	}
	t0, err := coerce("reference_temperature", refTemp, units.Temperature, RefTemperatureSTP)
	if err != nil {
		return units.Quantity{}, err
	}
	c, err := coerce("sutherland_constant", suth, units.Temperature, SutherlandConstant)
	if err != nil {
		return units.Quantity{}, err
	}

	n, err := broadcastLen(t, mu0, t0, c)
	if err != nil {
		return units.Quantity{}, err
	}
	out := make([]float64, n)
	for i := range out {
		tv, muv, t0v, cv := t.At(i), mu0.At(i), t0.At(i), c.At(i)
		out[i] = muv * math.Pow(tv/t0v, 1.5) * (t0v + cv) / (tv + cv)
	}
	if n == 1 {
		return units.New(out[0], units.PascalSecond), nil
	}
	return units.NewVector(out, units.PascalSecond), nil
}

// MeanFreePath computes the mean free path of gas molecules from the
// kinetic theory relation
//
//	mfp = (mu/P) * sqrt(pi*R*T / (2*M))
//
// Unset arguments take the dry-air defaults; an unset viscosity is
// derived via DynamicViscosity at the (possibly defaulted) temperature.
// The result is in meters.
func MeanFreePath(vis, temp, pres, molWeight, gasConst units.Quantity) (units.Quantity, error) {
	t, err := coerce("temperature", temp, units.Temperature, DefaultTemperature)
	if err != nil {
		return units.Quantity{}, err
	}
	var mu units.Quantity
	if vis.IsZero() {
		if mu, err = DynamicViscosity(t, units.Quantity{}, units.Quantity{}, units.Quantity{}); err != nil {
			return units.Quantity{}, err
		}
	} else if mu, err = units.Canonicalize(vis, units.Viscosity); err != nil {
		return units.Quantity{}, fmt.Errorf("gas: dynamic_viscosity: %w", err)
	}
	p, err := coerce("pressure", pres, units.Pressure, DefaultPressure)
	if err != nil {
		return units.Quantity{}, err
	}
	m, err := coerce("molecular_weight", molWeight, units.MolarMass, MolecularWeightAir)
	if err != nil {
		return units.Quantity{}, err
	}
	r, err := coerce("gas_constant", gasConst, units.MolarGasConstant, GasConstant)
	if err != nil {
		return units.Quantity{}, err
	}

	n, err := broadcastLen(mu, t, p, m, r)
	if err != nil {
		return units.Quantity{}, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = mu.At(i) / p.At(i) * math.Sqrt(math.Pi*r.At(i)*t.At(i)/(2*m.At(i)))
	}
	if n == 1 {
		return units.New(out[0], units.Meter), nil
	}
	return units.NewVector(out, units.Meter), nil
}

// broadcastLen returns the common vector length of the arguments;
// scalars broadcast against any length.
func broadcastLen(qs ...units.Quantity) (int, error) {
	n := 1
	for _, q := range qs {
		if q.Len() <= 1 {
			continue
		}
		if n != 1 && q.Len() != n {
			return 0, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, q.Len())
		}
		n = q.Len()
	}
	return n, nil
}
