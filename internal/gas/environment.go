package gas

import (
	"fmt"

	"github.com/san-kum/aerosol/internal/units"
)

// Options configures an Environment. Every quantity field is optional:
// unset fields take the literature default, untagged values are read in
// the field's canonical unit, and tagged values are dimension-checked
// and converted. Vector values are accepted (the check and conversion
// apply element-wise) but an Environment is meant to describe a single
// scenario; prefer one instance per condition set.
type Options struct {
	Temperature          units.Quantity
	Pressure             units.Quantity
	DynamicViscosity     units.Quantity
	MolecularWeight      units.Quantity
	ReferenceViscosity   units.Quantity
	ReferenceTemperature units.Quantity
	SutherlandConstant   units.Quantity
	GasConstant          units.Quantity
	DilutionRateConstant units.Quantity

	// CoagulationApproximation selects the coagulation kernel
	// parameterization ("hardsphere", "cg2019", "gh2012"). Stored
	// as given; not validated here.
	CoagulationApproximation string
}

// Environment is an immutable snapshot of ambient gas conditions. All
// quantity fields are stored in canonical units.
type Environment struct {
	temperature  units.Quantity
	pressure     units.Quantity
	viscosity    units.Quantity // unset means derive via Sutherland
	molWeight    units.Quantity
	refViscosity units.Quantity
	refTemp      units.Quantity
	sutherland   units.Quantity
	gasConstant  units.Quantity
	dilutionRate units.Quantity
	coagulation  string
}

// NewEnvironment validates opts and builds an Environment. It fails
// with an error wrapping units.ErrDimensionMismatch, naming the field,
// when a supplied quantity carries an incompatible unit. Construction
// either fully succeeds or returns nil.
func NewEnvironment(opts Options) (*Environment, error) {
	env := &Environment{coagulation: opts.CoagulationApproximation}
	if env.coagulation == "" {
		env.coagulation = CoagulationHardSphere
	}

	var err error
	if env.temperature, err = coerce("temperature", opts.Temperature, units.Temperature, DefaultTemperature); err != nil {
		return nil, err
	}
	if env.pressure, err = coerce("pressure", opts.Pressure, units.Pressure, DefaultPressure); err != nil {
		return nil, err
	}
	if env.molWeight, err = coerce("molecular_weight", opts.MolecularWeight, units.MolarMass, MolecularWeightAir); err != nil {
		return nil, err
	}
	if env.refViscosity, err = coerce("reference_viscosity", opts.ReferenceViscosity, units.Viscosity, RefViscosityAirSTP); err != nil {
		return nil, err
	}
	if env.refTemp, err = coerce("reference_temperature", opts.ReferenceTemperature, units.Temperature, RefTemperatureSTP); err != nil {
		return nil, err
	}
	if env.sutherland, err = coerce("sutherland_constant", opts.SutherlandConstant, units.Temperature, SutherlandConstant); err != nil {
		return nil, err
	}
	if env.gasConstant, err = coerce("gas_constant", opts.GasConstant, units.MolarGasConstant, GasConstant); err != nil {
		return nil, err
	}
	if env.dilutionRate, err = coerce("dilution_rate_constant", opts.DilutionRateConstant, units.Rate, DefaultDilutionRate); err != nil {
		return nil, err
	}

	// Viscosity has no constant default: when unset it is derived
	// from the other fields on demand.
	if !opts.DynamicViscosity.IsZero() {
		env.viscosity, err = units.Canonicalize(opts.DynamicViscosity, units.Viscosity)
		if err != nil {
			return nil, fmt.Errorf("gas: dynamic_viscosity: %w", err)
		}
	}

	if err := checkShapes(env.temperature, env.pressure, env.viscosity, env.molWeight,
		env.refViscosity, env.refTemp, env.sutherland, env.gasConstant, env.dilutionRate); err != nil {
		return nil, err
	}
	return env, nil
}

// Default builds the all-default dry-air environment at 298.15 K and
// 101325 Pa.
func Default() *Environment {
	env, err := NewEnvironment(Options{})
	if err != nil {
		panic(err) // defaults are always valid
	}
	return env
}

func coerce(field string, q units.Quantity, dim units.Dimension, def float64) (units.Quantity, error) {
	if q.IsZero() {
		return units.New(def, dim.Canonical()), nil
	}
	c, err := units.Canonicalize(q, dim)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("gas: %s: %w", field, err)
	}
	return c, nil
}

// checkShapes ensures all vector-valued fields share one length so the
// derived formulas can broadcast over them.
func checkShapes(qs ...units.Quantity) error {
	n := 1
	for _, q := range qs {
		if q.IsZero() || q.Len() <= 1 {
			continue
		}
		if n != 1 && q.Len() != n {
			return fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, q.Len())
		}
		n = q.Len()
	}
	return nil
}

// Accessors return the stored, canonicalized values.

func (e *Environment) Temperature() units.Quantity          { return e.temperature }
func (e *Environment) Pressure() units.Quantity             { return e.pressure }
func (e *Environment) MolecularWeight() units.Quantity      { return e.molWeight }
func (e *Environment) ReferenceViscosity() units.Quantity   { return e.refViscosity }
func (e *Environment) ReferenceTemperature() units.Quantity { return e.refTemp }
func (e *Environment) SutherlandConstant() units.Quantity   { return e.sutherland }
func (e *Environment) GasConstant() units.Quantity          { return e.gasConstant }
func (e *Environment) DilutionRateConstant() units.Quantity { return e.dilutionRate }
func (e *Environment) CoagulationApproximation() string     { return e.coagulation }

// DynamicViscosity returns the explicitly supplied viscosity, or the
// Sutherland-formula value for the stored conditions. The result is in
// pascal-seconds.
func (e *Environment) DynamicViscosity() units.Quantity {
	if !e.viscosity.IsZero() {
		return e.viscosity
	}
	mu, err := DynamicViscosity(e.temperature, e.refViscosity, e.refTemp, e.sutherland)
	if err != nil {
		panic(err) // fields were validated at construction
	}
	return mu
}

// MeanFreePath returns the mean free path of the gas molecules at the
// stored conditions, in meters.
func (e *Environment) MeanFreePath() units.Quantity {
	mfp, err := MeanFreePath(e.DynamicViscosity(), e.temperature, e.pressure, e.molWeight, e.gasConstant)
	if err != nil {
		panic(err) // fields were validated at construction
	}
	return mfp
}
