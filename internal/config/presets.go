package config

var Presets = map[string]*Config{
	"stp": {
		Environment: EnvironmentConfig{
			Temperature: "273.15 K",
			Pressure:    "101325 Pa",
		},
		Particle: ParticleConfig{Radius: "100 nm"},
		Sweep:    SweepConfig{Field: "temperature", Start: "200 K", Stop: "400 K", Steps: DefaultSweepSteps},
	},
	"room": {
		Environment: EnvironmentConfig{
			Temperature: "25 degC",
			Pressure:    "1 atm",
		},
		Particle: ParticleConfig{Radius: "100 nm"},
		Sweep:    SweepConfig{Field: "temperature", Start: "0 degC", Stop: "50 degC", Steps: DefaultSweepSteps},
	},
	"upper-troposphere": {
		Environment: EnvironmentConfig{
			Temperature: "-56.5 degC",
			Pressure:    "226.32 hPa",
		},
		Particle: ParticleConfig{Radius: "50 nm"},
		Sweep:    SweepConfig{Field: "pressure", Start: "100 hPa", Stop: "1013.25 hPa", Steps: DefaultSweepSteps},
	},
	"combustion": {
		Environment: EnvironmentConfig{
			Temperature:              "900 K",
			Pressure:                 "1 atm",
			CoagulationApproximation: "hardsphere",
		},
		Particle: ParticleConfig{Radius: "20 nm", Density: "1.8 g/cm^3"},
		Sweep:    SweepConfig{Field: "temperature", Start: "600 K", Stop: "1500 K", Steps: DefaultSweepSteps},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
