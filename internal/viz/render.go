// Package viz renders gas and particle properties for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/particle"
	"github.com/san-kum/aerosol/internal/units"
)

// Row is one labeled quantity in a property table.
type Row struct {
	Label string
	Value units.Quantity
}

// Table renders labeled quantities as an aligned property panel.
func Table(title string, rows []Row) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(LabelStyle.Render(r.Label))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.6g", r.Value.Value())))
		if name := r.Value.Unit().Name; name != "" {
			b.WriteString(UnitStyle.Render(" " + name))
		}
	}
	return HeaderStyle.Render(title) + "\n" + PanelStyle.Render(b.String())
}

// EnvironmentRows lists the stored conditions and both derived
// properties of an environment.
func EnvironmentRows(env *gas.Environment) []Row {
	return []Row{
		{"temperature", env.Temperature()},
		{"pressure", env.Pressure()},
		{"molecular weight", env.MolecularWeight()},
		{"reference viscosity", env.ReferenceViscosity()},
		{"reference temperature", env.ReferenceTemperature()},
		{"sutherland constant", env.SutherlandConstant()},
		{"gas constant", env.GasConstant()},
		{"dilution rate", env.DilutionRateConstant()},
		{"dynamic viscosity", env.DynamicViscosity()},
		{"mean free path", env.MeanFreePath()},
	}
}

// ParticleRows lists a particle's derived transport properties.
func ParticleRows(p *particle.Particle) []Row {
	return []Row{
		{"radius", p.Radius()},
		{"density", p.Density()},
		{"mass", p.Mass()},
		{"knudsen number", p.KnudsenNumber()},
		{"slip correction", p.SlipCorrectionFactor()},
		{"friction factor", p.FrictionFactor()},
	}
}

// SweepPlot renders an ascii chart of ys over the swept field.
func SweepPlot(field string, ys []float64, caption string) string {
	graph := asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption))
	return graph + "\n" + KeyHint.Render("x axis: "+field)
}
