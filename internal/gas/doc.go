// Package gas models the ambient gas phase of an aerosol scenario.
//
// [Environment] is an immutable snapshot of one set of ambient
// conditions, validated against physical dimensions at construction:
//
//	env, err := gas.NewEnvironment(gas.Options{
//	    Temperature: units.New(25, units.Celsius),
//	    Pressure:    units.New(0.9, units.Atmosphere),
//	})
//
// From it the two gas-phase transport properties derive:
//
//	mu  := env.DynamicViscosity() // Sutherland's formula
//	mfp := env.MeanFreePath()     // kinetic theory
//
// To change a condition, build a new Environment; instances are safe to
// share across goroutines.
package gas
