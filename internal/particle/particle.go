// Package particle derives single-particle and particle-pair transport
// properties from a gas.Environment: mass, Knudsen number, slip
// correction, friction factor, and coagulation kernels.
package particle

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/units"
)

// Physical constants used by the pair properties, canonical SI.
const (
	BoltzmannConstant    = 1.380649e-23    // J/K
	ElectricPermittivity = 8.8541878128e-12 // F/m
	ElementaryCharge     = 1.602176634e-19 // C
)

// ErrRadiusRequired indicates a particle built without a radius.
var ErrRadiusRequired = errors.New("particle: radius is required")

// Options configures a Particle. Radius is required; the rest default
// per dry-aerosol convention: density 1000 kg/m^3, shape factor 1, no
// void volume, no charge. Quantity fields follow the same validation
// rules as gas.Options.
type Options struct {
	Radius      units.Quantity // length
	Density     units.Quantity // mass/volume
	ShapeFactor units.Quantity // dimensionless, >= 1 for aspherical
	VolumeVoid  units.Quantity // dimensionless fraction
	Charge      units.Quantity // elementary charges, dimensionless
}

// Particle is an immutable particle description bound to the ambient
// environment its properties are evaluated in.
type Particle struct {
	env         *gas.Environment
	radius      units.Quantity
	density     units.Quantity
	shapeFactor units.Quantity
	volumeVoid  units.Quantity
	charge      units.Quantity
}

// New validates opts against env and builds a Particle.
func New(env *gas.Environment, opts Options) (*Particle, error) {
	if opts.Radius.IsZero() {
		return nil, ErrRadiusRequired
	}
	p := &Particle{env: env}

	var err error
	if p.radius, err = units.Canonicalize(opts.Radius, units.Length); err != nil {
		return nil, fmt.Errorf("particle: radius: %w", err)
	}
	if p.density, err = coerce("density", opts.Density, units.Density, 1000); err != nil {
		return nil, err
	}
	if p.shapeFactor, err = coerce("shape_factor", opts.ShapeFactor, units.Dimensionless, 1); err != nil {
		return nil, err
	}
	if p.volumeVoid, err = coerce("volume_void", opts.VolumeVoid, units.Dimensionless, 0); err != nil {
		return nil, err
	}
	if p.charge, err = coerce("charge", opts.Charge, units.Dimensionless, 0); err != nil {
		return nil, err
	}
	return p, nil
}

func coerce(field string, q units.Quantity, dim units.Dimension, def float64) (units.Quantity, error) {
	if q.IsZero() {
		return units.New(def, dim.Canonical()), nil
	}
	c, err := units.Canonicalize(q, dim)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("particle: %s: %w", field, err)
	}
	return c, nil
}

func (p *Particle) Environment() *gas.Environment { return p.env }
func (p *Particle) Radius() units.Quantity        { return p.radius }
func (p *Particle) Density() units.Quantity       { return p.density }
func (p *Particle) ShapeFactor() units.Quantity   { return p.shapeFactor }
func (p *Particle) VolumeVoid() units.Quantity    { return p.volumeVoid }
func (p *Particle) Charge() units.Quantity        { return p.charge }

// Mass returns the particle mass, in kilograms:
// rho * 4/3*pi*r^3 * (1 - void).
func (p *Particle) Mass() units.Quantity {
	r := p.radius.Value()
	m := p.density.Value() * (4.0 / 3.0) * math.Pi * r * r * r * (1 - p.volumeVoid.Value())
	return units.New(m, units.Kilogram)
}

// KnudsenNumber returns the ratio of the gas mean free path to the
// particle radius.
func (p *Particle) KnudsenNumber() units.Quantity {
	kn := p.env.MeanFreePath().Value() / p.radius.Value()
	return units.New(kn, units.One)
}

// SlipCorrectionFactor returns the Cunningham slip correction,
// 1 + Kn*(1.257 + 0.4*exp(-1.1/Kn)).
func (p *Particle) SlipCorrectionFactor() units.Quantity {
	kn := p.KnudsenNumber().Value()
	scf := 1 + kn*(1.257+0.4*math.Exp(-1.1/kn))
	return units.New(scf, units.One)
}

// FrictionFactor returns the Stokes drag friction factor corrected for
// slip and shape, 6*pi*mu*r*chi/scf, in kg/s.
func (p *Particle) FrictionFactor() units.Quantity {
	mu := p.env.DynamicViscosity().Value()
	f := 6 * math.Pi * mu * p.radius.Value() * p.shapeFactor.Value() / p.SlipCorrectionFactor().Value()
	return units.New(f, units.KilogramPerSecond)
}

// ReducedMass returns the reduced mass of a pair, ab/(a+b), in kg.
func ReducedMass(a, b *Particle) units.Quantity {
	return units.New(reduced(a.Mass().Value(), b.Mass().Value()), units.Kilogram)
}

// ReducedFrictionFactor returns the reduced friction factor of a pair,
// in kg/s.
func ReducedFrictionFactor(a, b *Particle) units.Quantity {
	return units.New(reduced(a.FrictionFactor().Value(), b.FrictionFactor().Value()), units.KilogramPerSecond)
}

func reduced(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	return a * b / (a + b)
}
