package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/aerosol/internal/config"
	"github.com/san-kum/aerosol/internal/gas"
	"github.com/san-kum/aerosol/internal/storage"
	"github.com/san-kum/aerosol/internal/tui"
	"github.com/san-kum/aerosol/internal/units"
	"github.com/san-kum/aerosol/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	temperature string
	pressure    string
	viscosity   string
	molWeight   string
	coagulation string

	radius  string
	density string
	charge  string

	sweepField string
	sweepStart string
	sweepStop  string
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aerosol",
		Short: "aerosol gas-phase property calculator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".aerosol", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named scenario preset")

	propsCmd := &cobra.Command{
		Use:   "props",
		Short: "compute gas properties for given conditions",
		RunE:  runProps,
	}
	addConditionFlags(propsCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep temperature or pressure and plot the properties",
		RunE:  runSweep,
	}
	addConditionFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepField, "field", "", "swept field (temperature|pressure)")
	sweepCmd.Flags().StringVar(&sweepStart, "start", "", "sweep start, e.g. \"200 K\"")
	sweepCmd.Flags().StringVar(&sweepStop, "stop", "", "sweep stop, e.g. \"400 K\"")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 0, "number of sweep points")

	particleCmd := &cobra.Command{
		Use:   "particle",
		Short: "compute particle transport properties",
		RunE:  runParticle,
	}
	addConditionFlags(particleCmd)
	particleCmd.Flags().StringVar(&radius, "radius", "", "particle radius, e.g. \"100 nm\"")
	particleCmd.Flags().StringVar(&density, "density", "", "particle density, e.g. \"1.8 g/cm^3\"")
	particleCmd.Flags().StringVar(&charge, "charge", "", "particle charge in elementary charges")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listSweeps,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored sweep as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSweep,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "explore conditions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scenario(cmd)
			if err != nil {
				return err
			}
			env, err := cfg.BuildEnvironment()
			if err != nil {
				return err
			}
			return tui.Run(env)
		},
	}
	addConditionFlags(interactiveCmd)

	rootCmd.AddCommand(propsCmd, sweepCmd, particleCmd, listCmd, exportCmd, presetsCmd, interactiveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConditionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&temperature, "temp", "", "temperature, e.g. \"25 degC\"")
	cmd.Flags().StringVar(&pressure, "pressure", "", "pressure, e.g. \"0.9 atm\"")
	cmd.Flags().StringVar(&viscosity, "viscosity", "", "override dynamic viscosity, e.g. \"18.4 uPa*s\"")
	cmd.Flags().StringVar(&molWeight, "mol-weight", "", "molecular weight, e.g. \"28.9644 g/mol\"")
	cmd.Flags().StringVar(&coagulation, "coagulation", "", "coagulation approximation tag")
}

// scenario resolves preset, config file, and flags into one Config.
// Flags override the file; the file overrides the preset.
func scenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("temp") {
		cfg.Environment.Temperature = temperature
	}
	if cmd.Flags().Changed("pressure") {
		cfg.Environment.Pressure = pressure
	}
	if cmd.Flags().Changed("viscosity") {
		cfg.Environment.DynamicViscosity = viscosity
	}
	if cmd.Flags().Changed("mol-weight") {
		cfg.Environment.MolecularWeight = molWeight
	}
	if cmd.Flags().Changed("coagulation") {
		cfg.Environment.CoagulationApproximation = coagulation
	}
	if cmd.Flags().Changed("radius") {
		cfg.Particle.Radius = radius
	}
	if cmd.Flags().Changed("density") {
		cfg.Particle.Density = density
	}
	if cmd.Flags().Changed("charge") {
		cfg.Particle.Charge = charge
	}
	if cmd.Flags().Changed("field") {
		cfg.Sweep.Field = sweepField
	}
	if cmd.Flags().Changed("start") {
		cfg.Sweep.Start = sweepStart
	}
	if cmd.Flags().Changed("stop") {
		cfg.Sweep.Stop = sweepStop
	}
	if cmd.Flags().Changed("steps") {
		cfg.Sweep.Steps = sweepSteps
	}
	return cfg, nil
}

func runProps(cmd *cobra.Command, args []string) error {
	cfg, err := scenario(cmd)
	if err != nil {
		return err
	}
	env, err := cfg.BuildEnvironment()
	if err != nil {
		return err
	}
	fmt.Println(viz.Table("gas properties", viz.EnvironmentRows(env)))
	return nil
}

func runParticle(cmd *cobra.Command, args []string) error {
	cfg, err := scenario(cmd)
	if err != nil {
		return err
	}
	env, err := cfg.BuildEnvironment()
	if err != nil {
		return err
	}
	p, err := cfg.BuildParticle(env)
	if err != nil {
		return err
	}
	fmt.Println(viz.Table("particle properties", viz.ParticleRows(p)))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := scenario(cmd)
	if err != nil {
		return err
	}
	field, start, stop, steps, err := cfg.SweepRange()
	if err != nil {
		return err
	}

	xs := make([]float64, steps)
	for i := range xs {
		xs[i] = start + (stop-start)*float64(i)/float64(steps-1)
	}

	opts := gas.Options{CoagulationApproximation: cfg.Environment.CoagulationApproximation}
	swept := units.Vector(xs...)
	if field == "temperature" {
		opts.Temperature = swept
		if cfg.Environment.Pressure != "" {
			if opts.Pressure, err = units.Parse(cfg.Environment.Pressure); err != nil {
				return err
			}
		}
	} else {
		opts.Pressure = swept
		if cfg.Environment.Temperature != "" {
			if opts.Temperature, err = units.Parse(cfg.Environment.Temperature); err != nil {
				return err
			}
		}
	}
	env, err := gas.NewEnvironment(opts)
	if err != nil {
		return err
	}

	// Viscosity stays scalar under a pressure sweep; At broadcasts it.
	mu, mfp := env.DynamicViscosity(), env.MeanFreePath()
	mus := make([]float64, steps)
	mfps := make([]float64, steps)
	points := make([]storage.SweepPoint, steps)
	for i := range points {
		mus[i], mfps[i] = mu.At(i), mfp.At(i)
		points[i] = storage.SweepPoint{X: xs[i], Viscosity: mus[i], MeanFreePath: mfps[i]}
	}

	fmt.Println(viz.SweepPlot(field, mus, "dynamic viscosity [Pa*s]"))
	fmt.Println()
	fmt.Println(viz.SweepPlot(field, mfps, "mean free path [m]"))

	st := storage.New(dataDir)
	if err := st.Open(cmd.Context()); err != nil {
		return err
	}
	defer st.Close()

	scenarioYAML := ""
	if configFile != "" {
		if data, err := os.ReadFile(configFile); err == nil {
			scenarioYAML = string(data)
		}
	}
	id, err := st.SaveSweep(cmd.Context(), storage.SweepRun{
		Field:    field,
		Start:    start,
		Stop:     stop,
		Steps:    steps,
		Scenario: scenarioYAML,
	}, points)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved: %s\n", id)
	return nil
}

func listSweeps(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Open(cmd.Context()); err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tRANGE\tSTEPS\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g..%g\t%d\t%s\n",
			run.ID, run.Field, run.Start, run.Stop, run.Steps,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func exportSweep(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Open(cmd.Context()); err != nil {
		return err
	}
	defer st.Close()
	return st.ExportJSON(cmd.Context(), args[0], os.Stdout)
}
