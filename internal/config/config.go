package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/particle"
	"github.com/san-kum/aerosol/internal/units"
)

const (
	DefaultSweepSteps = 41
	DefaultRadius     = "100 nm"
)

// Config is a yaml scenario file. Quantity fields are strings in
// "value [unit]" form ("25 degC", "0.9 atm", "101325"); empty means
// use the library default.
type Config struct {
	Environment EnvironmentConfig `yaml:"environment"`
	Particle    ParticleConfig    `yaml:"particle"`
	Sweep       SweepConfig       `yaml:"sweep"`
}

type EnvironmentConfig struct {
	Temperature              string `yaml:"temperature"`
	Pressure                 string `yaml:"pressure"`
	DynamicViscosity         string `yaml:"dynamic_viscosity"`
	MolecularWeight          string `yaml:"molecular_weight"`
	ReferenceViscosity       string `yaml:"reference_viscosity"`
	ReferenceTemperature     string `yaml:"reference_temperature"`
	SutherlandConstant       string `yaml:"sutherland_constant"`
	GasConstant              string `yaml:"gas_constant"`
	CoagulationApproximation string `yaml:"coagulation_approximation"`
	DilutionRateConstant     string `yaml:"dilution_rate_constant"`
}

type ParticleConfig struct {
	Radius      string `yaml:"radius"`
	Density     string `yaml:"density"`
	ShapeFactor string `yaml:"shape_factor"`
	VolumeVoid  string `yaml:"volume_void"`
	Charge      string `yaml:"charge"`
}

type SweepConfig struct {
	Field string `yaml:"field"` // "temperature" or "pressure"
	Start string `yaml:"start"`
	Stop  string `yaml:"stop"`
	Steps int    `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Particle: ParticleConfig{Radius: DefaultRadius},
		Sweep: SweepConfig{
			Field: "temperature",
			Start: "200 K",
			Stop:  "400 K",
			Steps: DefaultSweepSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildEnvironment parses the environment block and constructs the
// validated gas.Environment.
func (c *Config) BuildEnvironment() (*gas.Environment, error) {
	opts := gas.Options{CoagulationApproximation: c.Environment.CoagulationApproximation}
	fields := []struct {
		name string
		src  string
		dst  *units.Quantity
	}{
		{"temperature", c.Environment.Temperature, &opts.Temperature},
		{"pressure", c.Environment.Pressure, &opts.Pressure},
		{"dynamic_viscosity", c.Environment.DynamicViscosity, &opts.DynamicViscosity},
		{"molecular_weight", c.Environment.MolecularWeight, &opts.MolecularWeight},
		{"reference_viscosity", c.Environment.ReferenceViscosity, &opts.ReferenceViscosity},
		{"reference_temperature", c.Environment.ReferenceTemperature, &opts.ReferenceTemperature},
		{"sutherland_constant", c.Environment.SutherlandConstant, &opts.SutherlandConstant},
		{"gas_constant", c.Environment.GasConstant, &opts.GasConstant},
		{"dilution_rate_constant", c.Environment.DilutionRateConstant, &opts.DilutionRateConstant},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		q, err := units.Parse(f.src)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", f.name, err)
		}
		*f.dst = q
	}
	return gas.NewEnvironment(opts)
}

// BuildParticle parses the particle block against env.
func (c *Config) BuildParticle(env *gas.Environment) (*particle.Particle, error) {
	opts := particle.Options{}
	fields := []struct {
		name string
		src  string
		dst  *units.Quantity
	}{
		{"radius", c.Particle.Radius, &opts.Radius},
		{"density", c.Particle.Density, &opts.Density},
		{"shape_factor", c.Particle.ShapeFactor, &opts.ShapeFactor},
		{"volume_void", c.Particle.VolumeVoid, &opts.VolumeVoid},
		{"charge", c.Particle.Charge, &opts.Charge},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		q, err := units.Parse(f.src)
		if err != nil {
			return nil, fmt.Errorf("config: particle %s: %w", f.name, err)
		}
		*f.dst = q
	}
	return particle.New(env, opts)
}

// SweepRange parses the sweep block into canonical start/stop values
// for the swept field.
func (c *Config) SweepRange() (field string, start, stop float64, steps int, err error) {
	var dim units.Dimension
	switch c.Sweep.Field {
	case "temperature", "":
		field, dim = "temperature", units.Temperature
	case "pressure":
		field, dim = "pressure", units.Pressure
	default:
		return "", 0, 0, 0, fmt.Errorf("config: sweep field %q: want temperature or pressure", c.Sweep.Field)
	}
	lo, err := units.Parse(c.Sweep.Start)
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("config: sweep start: %w", err)
	}
	hi, err := units.Parse(c.Sweep.Stop)
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("config: sweep stop: %w", err)
	}
	if lo, err = units.Canonicalize(lo, dim); err != nil {
		return "", 0, 0, 0, fmt.Errorf("config: sweep start: %w", err)
	}
	if hi, err = units.Canonicalize(hi, dim); err != nil {
		return "", 0, 0, 0, fmt.Errorf("config: sweep stop: %w", err)
	}
	steps = c.Sweep.Steps
	if steps < 2 {
		steps = DefaultSweepSteps
	}
	return field, lo.Value(), hi.Value(), steps, nil
}
