package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/typegen-go/typespec"
)

var (
	dumpDir     string
	dumpFormat  string
	dumpModules []string
)

var dumpCmd = &cobra.Command{
	Use:   "dump [spec-file...]",
	Short: "Write the catalog of every module",
	Long: `Resolve every module and write each catalog to <dir>/<module>.<ext>.

Modules default to the [resolve] modules of typegen.toml, or every module
declared by the specification.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpDir, "dir", "d", "", "output directory (default: [output] dir of typegen.toml)")
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format (json, yaml, text)")
	dumpCmd.Flags().StringSliceVarP(&dumpModules, "module", "m", nil, "modules to dump (repeatable)")
}

func runDump(cmd *cobra.Command, args []string) error {
	spec, _, err := loadSpec(args)
	if err != nil {
		return err
	}
	return dumpAll(cmd.Context(), spec, outputFormat(cmd, dumpFormat))
}

// dumpAll resolves the selected modules concurrently and writes one file per module.
func dumpAll(ctx context.Context, spec *typespec.TypeSpec, format string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	switch format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	modules := dumpModules
	if len(modules) == 0 {
		modules = cfg.Resolve.Modules
	}
	if len(modules) == 0 {
		modules = spec.Modules()
	}

	dir := dumpDir
	if dir == "" {
		dir = cfg.OutputDir()
	}

	catalogs, err := newResolver(spec).ResolveModules(ctx, modules)
	if err != nil {
		return fmt.Errorf("failed to resolve modules: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, module := range modules {
		path := filepath.Join(dir, module+"."+fileExt(format))
		if err := writeModuleFile(path, format, newModuleDump(module, catalogs[module])); err != nil {
			return err
		}
		logger.Info("Wrote catalog", "module", module, "types", len(catalogs[module]), "path", path)
		fmt.Fprintf(output, "%s\n", path)
	}

	fmt.Fprintf(output, "\nTotal: %d modules\n", len(modules))
	return nil
}

func writeModuleFile(path, format string, dump *ModuleDump) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeModule(f, format, dump); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
