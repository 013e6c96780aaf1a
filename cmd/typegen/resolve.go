package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resolveModule string
	resolveFormat string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [spec-file...]",
	Short: "Resolve one module into a type catalog",
	Long: `Resolve every class and enum exposed under a module.

Supported formats:
  - json: JSON format (default)
  - yaml: YAML format
  - text: Human-readable text`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveModule, "module", "m", "", "module to resolve (required)")
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "json", "output format (json, yaml, text)")
	resolveCmd.MarkFlagRequired("module")
}

func runResolve(cmd *cobra.Command, args []string) error {
	spec, _, err := loadSpec(args)
	if err != nil {
		return err
	}

	catalog, err := newResolver(spec).ResolveModule(resolveModule)
	if err != nil {
		return fmt.Errorf("failed to resolve module: %w", err)
	}

	return writeModule(output, outputFormat(cmd, resolveFormat), newModuleDump(resolveModule, catalog))
}
