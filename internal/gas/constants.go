package gas

// Literature constants for dry air at standard conditions, in canonical
// units (kelvin, pascal, pascal-second, kg/mol, J/(mol*K)).
const (
	DefaultTemperature = 298.15   // K
	DefaultPressure    = 101325.0 // Pa

	// Sutherland reference state for air.
	RefViscosityAirSTP = 1.716e-5 // Pa*s at 273.15 K
	RefTemperatureSTP  = 273.15   // K
	SutherlandConstant = 110.4    // K

	MolecularWeightAir = 0.0289644 // kg/mol, dry air

	// CODATA 2018 exact value.
	GasConstant = 8.31446261815324 // J/(mol*K)

	DefaultDilutionRate = 0.0 // 1/s
)

// CoagulationHardSphere is the default coagulation approximation tag.
// The particle package selects its kernel parameterization by this tag.
const (
	CoagulationHardSphere = "hardsphere"
	CoagulationCG2019     = "cg2019"
	CoagulationGH2012     = "gh2012"
)
