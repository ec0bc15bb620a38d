package gas_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/units"
)

func TestGasSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gas Suite")
}

var _ = Describe("Environment", func() {
	Describe("construction", func() {
		It("applies the dry-air defaults", func() {
			env, err := gas.NewEnvironment(gas.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Temperature().Value()).To(Equal(298.15))
			Expect(env.Pressure().Value()).To(Equal(101325.0))
			Expect(env.CoagulationApproximation()).To(Equal(gas.CoagulationHardSphere))
		})

		It("converts compatible units to canonical form", func() {
			env, err := gas.NewEnvironment(gas.Options{
				Temperature: units.New(25, units.Celsius),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Temperature().Value()).To(BeNumerically("~", 298.15, 1e-9))
		})

		It("rejects incompatible dimensions", func() {
			_, err := gas.NewEnvironment(gas.Options{
				Temperature: units.New(5, units.Meter),
			})
			Expect(err).To(MatchError(units.ErrDimensionMismatch))
			Expect(err.Error()).To(ContainSubstring("temperature"))
		})

		It("reads bare numbers in canonical units", func() {
			env, err := gas.NewEnvironment(gas.Options{
				Pressure: units.Scalar(90000),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Pressure().Unit()).To(Equal(units.Pascal))
			Expect(env.Pressure().Value()).To(Equal(90000.0))
		})
	})

	Describe("derived properties", func() {
		var env *gas.Environment

		BeforeEach(func() {
			env = gas.Default()
		})

		It("reproduces the Sutherland viscosity at standard conditions", func() {
			Expect(env.DynamicViscosity().Value()).
				To(BeNumerically("~", 1.8371493734583912e-5, 1.9e-14))
		})

		It("reproduces the mean free path at standard conditions", func() {
			Expect(env.MeanFreePath().Value()).
				To(BeNumerically("~", 6.647984982685411e-8, 6.7e-14))
		})

		It("prefers an explicitly supplied viscosity", func() {
			custom, err := gas.NewEnvironment(gas.Options{
				DynamicViscosity: units.New(2e-5, units.PascalSecond),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(custom.DynamicViscosity().Value()).To(Equal(2e-5))
			Expect(custom.MeanFreePath().Value()).
				To(BeNumerically(">", env.MeanFreePath().Value()))
		})

		It("increases viscosity with temperature", func() {
			warmer, err := gas.NewEnvironment(gas.Options{
				Temperature: units.Scalar(350),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(warmer.DynamicViscosity().Value()).
				To(BeNumerically(">", env.DynamicViscosity().Value()))
		})
	})
})
