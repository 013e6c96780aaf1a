package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/typegen-go/typespec"
)

var (
	typesKind   string
	typesModule string
	typesLimit  int
)

var typesCmd = &cobra.Command{
	Use:   "types [spec-file...]",
	Short: "List declarations in the specification",
	Long: `List the raw declarations of a specification.

Use --kind to filter by declaration kind (mapping, class, enum, gadget).`,
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().StringVarP(&typesKind, "kind", "k", "", "filter by declaration kind (mapping, class, enum, gadget)")
	typesCmd.Flags().StringVarP(&typesModule, "module", "m", "", "filter mappings and enums by module")
	typesCmd.Flags().IntVarP(&typesLimit, "limit", "n", 0, "limit number of declarations shown (0 = unlimited)")
}

type declRow struct {
	kind   string
	module string
	name   string
	cname  string
}

func runTypes(cmd *cobra.Command, args []string) error {
	kind := strings.ToLower(typesKind)
	switch kind {
	case "", "mapping", "class", "enum", "gadget":
	default:
		return fmt.Errorf("unknown declaration kind: %s", typesKind)
	}

	spec, _, err := loadSpec(args)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-8s %-24s %-32s %s\n", "KIND", "MODULE", "NAME", "CNAME")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 100))

	count := 0
	for _, row := range declarations(spec) {
		if kind != "" && row.kind != kind {
			continue
		}
		if typesModule != "" && row.module != typesModule {
			continue
		}

		printDecl(row)
		count++
		if typesLimit > 0 && count >= typesLimit {
			break
		}
	}

	fmt.Fprintf(output, "\nTotal: %d declarations\n", count)
	return nil
}

func declarations(spec *typespec.TypeSpec) []declRow {
	var rows []declRow
	for _, m := range spec.TypeMap {
		rows = append(rows, declRow{kind: "mapping", module: m.Module, name: m.Name, cname: m.CName})
	}
	for _, c := range spec.Classes {
		rows = append(rows, declRow{kind: "class", name: c.Name, cname: c.Name})
	}
	for _, e := range spec.Enums {
		rows = append(rows, declRow{kind: "enum", module: e.Module, name: e.Name, cname: e.CName})
	}
	for _, g := range spec.Gadgets {
		rows = append(rows, declRow{kind: "gadget", cname: g.CName})
	}
	return rows
}

func printDecl(row declRow) {
	module := row.module
	if module == "" {
		module = "-"
	}
	name := row.name
	if name == "" {
		name = "-"
	}
	cname := row.cname
	if cname == "" {
		cname = "-"
	}
	fmt.Fprintf(output, "%-8s %-24s %-32s %s\n", row.kind, module, name, cname)
}
