package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimension identifies the physical dimension of a quantity. Every
// dimension has exactly one canonical unit in which values are stored.
type Dimension int

const (
	Dimensionless Dimension = iota
	Temperature
	Pressure
	Viscosity // pressure * time
	MolarMass
	MolarGasConstant // energy / (amount * temperature)
	Rate             // 1 / time
	Length
	Density
	Mass
	MassRate   // kg / s, friction factors
	VolumeRate // m^3 / s, coagulation kernels
)

func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case Temperature:
		return "temperature"
	case Pressure:
		return "pressure"
	case Viscosity:
		return "viscosity"
	case MolarMass:
		return "molar mass"
	case MolarGasConstant:
		return "molar gas constant"
	case Rate:
		return "rate"
	case Length:
		return "length"
	case Density:
		return "density"
	case Mass:
		return "mass"
	case MassRate:
		return "mass rate"
	case VolumeRate:
		return "volume rate"
	default:
		return "unknown"
	}
}

// Canonical returns the unit values of this dimension are stored in.
func (d Dimension) Canonical() Unit {
	switch d {
	case Temperature:
		return Kelvin
	case Pressure:
		return Pascal
	case Viscosity:
		return PascalSecond
	case MolarMass:
		return KilogramPerMole
	case MolarGasConstant:
		return JoulePerMoleKelvin
	case Rate:
		return PerSecond
	case Length:
		return Meter
	case Density:
		return KilogramPerCubicMeter
	case Mass:
		return Kilogram
	case MassRate:
		return KilogramPerSecond
	case VolumeRate:
		return CubicMeterPerSecond
	default:
		return One
	}
}

// Unit converts values to a dimension's canonical unit by
// canonical = value*Factor + Offset. The offset is only nonzero for
// temperature scales.
type Unit struct {
	Name   string
	Dim    Dimension
	Factor float64
	Offset float64
}

var (
	One = Unit{Name: "", Dim: Dimensionless, Factor: 1}

	Kelvin     = Unit{Name: "K", Dim: Temperature, Factor: 1}
	Celsius    = Unit{Name: "degC", Dim: Temperature, Factor: 1, Offset: 273.15}
	Fahrenheit = Unit{Name: "degF", Dim: Temperature, Factor: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0}

	Pascal      = Unit{Name: "Pa", Dim: Pressure, Factor: 1}
	Kilopascal  = Unit{Name: "kPa", Dim: Pressure, Factor: 1e3}
	Hectopascal = Unit{Name: "hPa", Dim: Pressure, Factor: 1e2}
	Atmosphere  = Unit{Name: "atm", Dim: Pressure, Factor: 101325}
	Bar         = Unit{Name: "bar", Dim: Pressure, Factor: 1e5}
	Torr        = Unit{Name: "mmHg", Dim: Pressure, Factor: 133.322387415}

	PascalSecond      = Unit{Name: "Pa*s", Dim: Viscosity, Factor: 1}
	MicropascalSecond = Unit{Name: "uPa*s", Dim: Viscosity, Factor: 1e-6}
	Poise             = Unit{Name: "P", Dim: Viscosity, Factor: 0.1}
	Centipoise        = Unit{Name: "cP", Dim: Viscosity, Factor: 1e-3}

	KilogramPerMole = Unit{Name: "kg/mol", Dim: MolarMass, Factor: 1}
	GramPerMole     = Unit{Name: "g/mol", Dim: MolarMass, Factor: 1e-3}

	JoulePerMoleKelvin = Unit{Name: "J/(mol*K)", Dim: MolarGasConstant, Factor: 1}

	PerSecond = Unit{Name: "1/s", Dim: Rate, Factor: 1}
	PerMinute = Unit{Name: "1/min", Dim: Rate, Factor: 1.0 / 60.0}
	PerHour   = Unit{Name: "1/h", Dim: Rate, Factor: 1.0 / 3600.0}

	Meter      = Unit{Name: "m", Dim: Length, Factor: 1}
	Centimeter = Unit{Name: "cm", Dim: Length, Factor: 1e-2}
	Millimeter = Unit{Name: "mm", Dim: Length, Factor: 1e-3}
	Micrometer = Unit{Name: "um", Dim: Length, Factor: 1e-6}
	Nanometer  = Unit{Name: "nm", Dim: Length, Factor: 1e-9}

	KilogramPerCubicMeter  = Unit{Name: "kg/m^3", Dim: Density, Factor: 1}
	GramPerCubicCentimeter = Unit{Name: "g/cm^3", Dim: Density, Factor: 1e3}

	Kilogram = Unit{Name: "kg", Dim: Mass, Factor: 1}
	Gram     = Unit{Name: "g", Dim: Mass, Factor: 1e-3}

	KilogramPerSecond   = Unit{Name: "kg/s", Dim: MassRate, Factor: 1}
	CubicMeterPerSecond = Unit{Name: "m^3/s", Dim: VolumeRate, Factor: 1}
)

var unitsByName = map[string]Unit{
	"K": Kelvin, "kelvin": Kelvin,
	"degC": Celsius, "C": Celsius, "celsius": Celsius,
	"degF": Fahrenheit, "F": Fahrenheit, "fahrenheit": Fahrenheit,
	"Pa": Pascal, "pascal": Pascal,
	"kPa": Kilopascal, "hPa": Hectopascal,
	"atm": Atmosphere, "bar": Bar, "mmHg": Torr, "torr": Torr,
	"Pa*s": PascalSecond, "Pa.s": PascalSecond,
	"uPa*s": MicropascalSecond,
	"P":     Poise, "cP": Centipoise,
	"kg/mol": KilogramPerMole, "g/mol": GramPerMole,
	"J/(mol*K)": JoulePerMoleKelvin, "J/mol/K": JoulePerMoleKelvin,
	"1/s": PerSecond, "1/min": PerMinute, "1/h": PerHour,
	"m": Meter, "cm": Centimeter, "mm": Millimeter,
	"um": Micrometer, "nm": Nanometer,
	"kg/m^3": KilogramPerCubicMeter, "g/cm^3": GramPerCubicCentimeter,
	"kg": Kilogram, "g": Gram,
	"kg/s": KilogramPerSecond, "m^3/s": CubicMeterPerSecond,
}

// Lookup resolves a unit symbol. The empty string resolves to no unit.
func Lookup(name string) (Unit, error) {
	if name == "" {
		return One, nil
	}
	u, ok := unitsByName[name]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Parse reads a quantity from text: a number optionally followed by a
// unit symbol, e.g. "298.15 K", "0.9 atm", "101325". A bare number
// parses as an untagged quantity.
func Parse(s string) (Quantity, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Quantity{}, fmt.Errorf("units: parse %q: %w", s, err)
		}
		return Scalar(v), nil
	case 2:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Quantity{}, fmt.Errorf("units: parse %q: %w", s, err)
		}
		u, err := Lookup(fields[1])
		if err != nil {
			return Quantity{}, err
		}
		return New(v, u), nil
	default:
		return Quantity{}, fmt.Errorf("units: parse %q: want \"value [unit]\"", s)
	}
}
