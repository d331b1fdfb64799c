package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/objmix/internal/config"
	"github.com/philipparndt/objmix/internal/logger"
	"github.com/philipparndt/objmix/internal/mixer"
	"github.com/philipparndt/objmix/version"
	"github.com/spf13/cobra"
)

var (
	inputFiles []string
	outputFile string
	configPath string
	rotateX    float64
	rotateY    float64
	rotateZ    float64
	align      bool
	alignMode  string
	attributes string
	logLevel   string
	logFile    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "objmix -f <file.obj> [-f <file.obj>...]",
	Short: "Merge, rotate and align Wavefront OBJ triangle meshes",
	Long: `objmix merges one or more OBJ triangle meshes into a single mesh,
optionally rotates it (X, then Y, then Z, in degrees) and aligns it onto the
ground plane, and writes the result as OBJ text.

Diagnostics are logged to stderr; the OBJ payload goes to stdout or --output.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              runMix,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&inputFiles, "obj-file", "f", nil, "OBJ file to merge (repeatable, merged in order)")
	flags.StringVarP(&outputFile, "output", "o", "", "Write the result to a file instead of stdout")
	flags.StringVarP(&configPath, "config", "c", "", "Path to config file")
	flags.Float64Var(&rotateX, "rotate-x", 0, "Rotation about the X axis in degrees")
	flags.Float64Var(&rotateY, "rotate-y", 0, "Rotation about the Y axis in degrees")
	flags.Float64Var(&rotateZ, "rotate-z", 0, "Rotation about the Z axis in degrees")
	flags.BoolVarP(&align, "align", "a", false, "Place the mesh on the ground plane and center it")
	flags.StringVar(&alignMode, "align-mode", "mixed", "Horizontal anchor for --align: mixed or center")
	flags.StringVar(&attributes, "attributes", "always", "Write vn/vt lines: always or when-set")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&logFile, "log-file", "", "Also write logs to this file")
}

// loadConfig builds the effective configuration: defaults < file < flags
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("rotate-x") {
		loaded.Transform.RotateX = rotateX
	}
	if flags.Changed("rotate-y") {
		loaded.Transform.RotateY = rotateY
	}
	if flags.Changed("rotate-z") {
		loaded.Transform.RotateZ = rotateZ
	}
	if flags.Changed("align") {
		loaded.Transform.Align = align
	}
	if flags.Changed("align-mode") {
		loaded.Transform.AlignMode = alignMode
	}
	if flags.Changed("attributes") {
		loaded.Output.Attributes = attributes
	}
	if flags.Changed("output") {
		loaded.Output.File = outputFile
	}
	if flags.Changed("log-level") {
		loaded.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		loaded.Logging.LogFile = logFile
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	if err := logger.Init(loaded.Logging.Level, loaded.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	return nil
}

// inputs returns the -f files followed by positional arguments
func inputs(args []string) []string {
	return append(append([]string(nil), inputFiles...), args...)
}

func runMix(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	opts, err := mixer.OptionsFromConfig(cfg, inputs(args))
	if err != nil {
		return err
	}

	out, err := mixer.Run(opts)
	if err != nil {
		return err
	}

	if cfg.Output.File != "" {
		return os.WriteFile(cfg.Output.File, []byte(out), 0644)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
