package particle

import (
	"fmt"
	"math"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/units"
)

// Hard-sphere kernel fit constants, chargeless limit.
// doi:10.1080/02786826.2019.1614522
const (
	hsc1 = 25.836
	hsc2 = 11.211
	hsc3 = 3.502
	hsc4 = 7.211
)

// CoulombPotentialRatio returns the ratio of the pair's Coulomb
// potential energy at contact to the thermal energy kT. Positive for
// oppositely charged particles.
func CoulombPotentialRatio(a, b *Particle) float64 {
	num := -a.charge.Value() * b.charge.Value() * ElementaryCharge * ElementaryCharge
	den := 4 * math.Pi * ElectricPermittivity * (a.radius.Value() + b.radius.Value())
	return num / (den * BoltzmannConstant * a.env.Temperature().Value())
}

// CoulombEnhancementKinetic returns the kinetic (free-molecular) limit
// of the Coulomb collision enhancement.
func CoulombEnhancementKinetic(a, b *Particle) float64 {
	phi := CoulombPotentialRatio(a, b)
	if phi >= 0 {
		return 1 + phi
	}
	return math.Exp(phi)
}

// CoulombEnhancementContinuum returns the continuum limit of the
// Coulomb collision enhancement.
func CoulombEnhancementContinuum(a, b *Particle) float64 {
	phi := CoulombPotentialRatio(a, b)
	if phi == 0 {
		return 1
	}
	return phi / (1 - math.Exp(-phi))
}

// DiffusiveKnudsenNumber returns the ratio of the pair's mean thermal
// persistence distance to the Coulomb-scaled collision length. This is
// the similarity variable of the coagulation parameterizations, not the
// ordinary Knudsen number.
func DiffusiveKnudsenNumber(a, b *Particle) float64 {
	t := a.env.Temperature().Value()
	num := math.Sqrt(t*BoltzmannConstant*ReducedMass(a, b).Value()) / ReducedFrictionFactor(a, b).Value()
	den := (a.radius.Value() + b.radius.Value()) *
		CoulombEnhancementKinetic(a, b) / CoulombEnhancementContinuum(a, b)
	return num / den
}

// DimensionlessCoagulationKernel returns the dimensionless
// particle-particle coagulation kernel under the environment's
// coagulation approximation tag.
func DimensionlessCoagulationKernel(a, b *Particle) (float64, error) {
	switch tag := a.env.CoagulationApproximation(); tag {
	case gas.CoagulationHardSphere:
		return hardSphereKernel(DiffusiveKnudsenNumber(a, b)), nil
	case gas.CoagulationCG2019:
		return cg2019Kernel(a, b), nil
	case gas.CoagulationGH2012:
		return gh2012Kernel(a, b), nil
	default:
		return 0, fmt.Errorf("particle: unknown coagulation approximation %q", tag)
	}
}

func hardSphereKernel(knd float64) float64 {
	knd2 := knd * knd
	num := 4*math.Pi*knd2 + hsc1*knd2*knd + math.Sqrt(8*math.Pi)*hsc2*knd2*knd2
	den := 1 + hsc3*knd + hsc4*knd2 + hsc2*knd2*knd
	return num / den
}

// cg2019Kernel applies the Chahl & Gopalakrishnan 2019 charge
// correction on top of the hard-sphere limit.
// doi:10.1080/02786826.2019.1614522
func cg2019Kernel(a, b *Particle) float64 {
	phi := CoulombPotentialRatio(a, b)
	knd := DiffusiveKnudsenNumber(a, b)

	corra := 2.5
	corrb := 4.528*math.Exp(-1.088*phi) + 0.7091*math.Log(1+1.527*phi)
	corrc := 11.36*math.Pow(phi, 0.272) - 10.33
	corrk := -0.003533*phi + 0.05971

	z := (math.Log(knd) - corrb) / corra
	corrMu := (corrc / corra) *
		math.Pow(1+corrk*z, -1/corrk-1) *
		math.Exp(-math.Pow(1+corrk*z, -1/corrk))

	return hardSphereKernel(knd) * math.Exp(corrMu)
}

// gh2012Kernel is the Gopalakrishnan & Hogan 2012 transition-regime
// parameterization. doi:10.1103/PhysRevE.78.046402
func gh2012Kernel(a, b *Particle) float64 {
	knd := DiffusiveKnudsenNumber(a, b)
	cont := CoulombEnhancementContinuum(a, b)
	num := 4 * math.Pi * knd * knd * cont
	den := 1 + 1.598*math.Pow(math.Min(knd, 3*knd/2/cont), 1.1709)
	return num / den
}

// CoagulationKernel returns the dimensioned pair coagulation kernel, in
// m^3/s. The dimensionless kernel is rescaled by the pair's reduced
// friction factor, contact radius, and Coulomb enhancement limits.
func CoagulationKernel(a, b *Particle) (units.Quantity, error) {
	h, err := DimensionlessCoagulationKernel(a, b)
	if err != nil {
		return units.Quantity{}, err
	}
	rsum := a.radius.Value() + b.radius.Value()
	ek := CoulombEnhancementKinetic(a, b)
	ec := CoulombEnhancementContinuum(a, b)
	k := h * ReducedFrictionFactor(a, b).Value() * rsum * rsum * rsum * ek * ek /
		(ReducedMass(a, b).Value() * ec)
	return units.New(k, units.CubicMeterPerSecond), nil
}
