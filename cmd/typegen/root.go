package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/typegen-go/internal/config"
	"github.com/skdltmxn/typegen-go/typegen"
	"github.com/skdltmxn/typegen-go/typespec"
)

var (
	outputFile string
	configDir  string
	verbose    bool
	logFormat  string

	output    io.Writer
	logOutput io.Writer = os.Stderr
	logger    *slog.Logger
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "typegen",
	Short: "Type catalog generator for QML modules",
	Long: `typegen resolves the class, property, enum and gadget declarations
extracted from C++ headers into per-module type catalogs.

Specification files are JSON or YAML and may be given as arguments
(glob patterns with ** are supported) or in the [spec] section of a
typegen.toml found in the working directory or one of its parents.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "directory containing typegen.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(watchCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if logger, err = newLogger(logOutput, logFormat, verbose); err != nil {
		return err
	}
	slog.SetDefault(logger)

	if configDir != "" {
		cfg, err = config.Load(configDir)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	} else {
		logger.Debug("Loaded configuration", "dir", cfg.Dir)
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		output = f
	} else {
		output = os.Stdout
	}
	return nil
}

func newLogger(w io.Writer, format string, debug bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

// specPatterns returns the spec files given on the command line, or those
// of the configuration.
func specPatterns(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if patterns := cfg.SpecPatterns(); len(patterns) > 0 {
		return patterns, nil
	}
	return nil, errors.New("no specification files given (pass them as arguments or set [spec] files in typegen.toml)")
}

func loadSpec(args []string) (*typespec.TypeSpec, []string, error) {
	patterns, err := specPatterns(args)
	if err != nil {
		return nil, nil, err
	}

	spec, paths, err := typespec.LoadSpecs(patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load specification: %w", err)
	}
	logger.Debug("Loaded specification", "files", paths)
	return spec, paths, nil
}

func newResolver(spec *typespec.TypeSpec) *typegen.Resolver {
	opts := cfg.Options()
	opts.Logger = logger
	return typegen.NewResolver(spec, opts)
}

// outputFormat returns the --format flag if set, otherwise the configured format.
func outputFormat(cmd *cobra.Command, flag string) string {
	if cmd != nil && cmd.Flags().Changed("format") {
		return flag
	}
	return cfg.Output.Format
}
