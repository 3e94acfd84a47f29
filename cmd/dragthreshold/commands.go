package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"drag-threshold/internal/app"
	"drag-threshold/internal/canvas"
	"drag-threshold/internal/config"
	"drag-threshold/internal/dragthreshold"
	"drag-threshold/internal/eventsystem"
	"drag-threshold/internal/host"
	"drag-threshold/internal/logger"
	"drag-threshold/internal/threshold"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "dragthreshold",
		Short: "dragthreshold sets a UI drag threshold in physical units",
		Long: `dragthreshold converts a drag threshold given in inches, centimeters or
canvas pixels into device pixels for the current screen density.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML or TOML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(newRunCmd(opts), newComputeCmd(opts), newUnitsCmd(), newVersionCmd())
	return root
}

func (o *rootOptions) load() (config.Settings, logger.Logger, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return config.Settings{}, nil, err
	}

	level := logger.LevelFromEnv()
	for _, candidate := range []string{settings.LogLevel, o.logLevel} {
		if parsed, ok := logger.ParseLevel(candidate); ok {
			level = parsed
		}
	}
	return settings, logger.NewConsoleLogger(level), nil
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "open a window and apply the threshold to its event system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := opts.load()
			if err != nil {
				return err
			}
			application, err := app.NewApplication(context.Background(), settings, opts.configPath, watch, log)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-apply the threshold when the config file changes")
	return cmd
}

type computeOptions struct {
	distance    float64
	units       string
	dpi         float64
	canvasScale float64
	baseDPI     float64
	baseDT      float64
	minPixels   int
}

func newComputeCmd(root *rootOptions) *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "print the pixel threshold for a screen density without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := root.load()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &settings); err != nil {
				return err
			}
			return runCompute(cmd.OutOrStdout(), settings, opts.canvasScale, log)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&opts.distance, "distance", "d", 0, "threshold distance in the chosen units")
	flags.StringVarP(&opts.units, "units", "u", "", "INCHES, CM, PIXELS_SCALED_TO_CANVAS or PIXELS_RELATIVE_TO_BASE")
	flags.Float64Var(&opts.dpi, "dpi", 0, "screen density in dots per inch")
	flags.Float64Var(&opts.canvasScale, "canvas-scale", 0, "canvas scale factor; omit to simulate a missing canvas")
	flags.Float64Var(&opts.baseDPI, "base-dpi", 0, "reference density for PIXELS_RELATIVE_TO_BASE")
	flags.Float64Var(&opts.baseDT, "base-threshold", 0, "reference threshold at the base density")
	flags.IntVar(&opts.minPixels, "min-pixels", 0, "minimum threshold for PIXELS_RELATIVE_TO_BASE")
	return cmd
}

// apply overlays the flags the user actually set.
func (o *computeOptions) apply(cmd *cobra.Command, settings *config.Settings) error {
	flags := cmd.Flags()
	if flags.Changed("distance") {
		settings.Threshold.Distance = o.distance
	}
	if flags.Changed("units") {
		units, err := threshold.ParseUnits(o.units)
		if err != nil {
			return err
		}
		settings.Threshold.Units = units
	}
	if flags.Changed("dpi") {
		settings.ScreenDPI = o.dpi
	}
	if flags.Changed("base-dpi") {
		settings.Threshold.BaseDPI = o.baseDPI
	}
	if flags.Changed("base-threshold") {
		settings.Threshold.BaseThreshold = o.baseDT
	}
	if flags.Changed("min-pixels") {
		settings.Threshold.MinThresholdPixels = o.minPixels
	}
	if settings.ScreenDPI <= 0 {
		return errors.New("compute needs a screen density: pass --dpi or set " + config.EnvScreenDPI)
	}
	return settings.Threshold.Validate()
}

func runCompute(out io.Writer, settings config.Settings, canvasScale float64, log logger.Logger) error {
	events := eventsystem.New()
	var assigned []dragthreshold.Option
	if canvasScale > 0 {
		assigned = append(assigned, dragthreshold.WithCanvas(canvas.Static{Scale: canvasScale}))
	}
	assigned = append(assigned, dragthreshold.WithLogger(log))

	comp := dragthreshold.New(settings.Threshold, host.Display{Override: settings.ScreenDPI}, events, assigned...)
	result, err := comp.UpdateDragThreshold()
	if err != nil {
		return fmt.Errorf("threshold not applied: %w", err)
	}

	_, err = fmt.Fprintf(out, "%g %s at %g dpi = %d pixels\n",
		settings.Threshold.Distance, settings.Threshold.Units, settings.ScreenDPI, result.Pixels)
	return err
}

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "list the supported units",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(threshold.AllUnits()))
			for _, u := range threshold.AllUnits() {
				names = append(names, fmt.Sprintf("%d\t%s", int(u), u))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.AppName, app.AppVersion)
		},
	}
}
