package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/typegen-go/internal/ctype"
	"github.com/skdltmxn/typegen-go/typegen"
	"github.com/skdltmxn/typegen-go/typespec"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <cname> [spec-file...]",
	Short: "Look up a native type name",
	Long: `Resolve a native type name the way property, parameter and return
types are resolved, and show the declaration it refers to.

Examples:
  lookup QsWindow
  lookup 'QQmlListProperty<QsWindow>' types.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	cname := args[0]

	spec, _, err := loadSpec(args[1:])
	if err != nil {
		return err
	}

	r := newResolver(spec)
	typ := r.ResolveType(cname)

	fmt.Fprintf(output, "Name: %s\n", cname)
	fmt.Fprintf(output, "Resolves To: %s\n", typ)
	fmt.Fprintf(output, "Source: %s\n", typ.Source)
	if typ.IsList() {
		fmt.Fprintf(output, "Element: %s\n", typ.Of)
	}
	fmt.Fprintln(output)

	decl, err := r.LookupType(cname)
	if errors.Is(err, typegen.ErrTypeNotFound) {
		fmt.Fprintf(output, "No declaration found for '%s'\n", cname)
		if tmpl, err := ctype.ParseTemplate(cname); err == nil {
			printTemplate(r, tmpl)
		}
		return nil
	}
	if err != nil {
		return err
	}

	printDeclDetail(decl)
	return nil
}

// printTemplate shows how each argument of an unmatched template resolves.
func printTemplate(r *typegen.Resolver, tmpl *ctype.Template) {
	fmt.Fprintln(output)
	fmt.Fprintf(output, "Template:\n")
	fmt.Fprintf(output, "  Name: %s\n", tmpl.Name)
	for i, arg := range tmpl.Arguments {
		fmt.Fprintf(output, "  Argument %d: %s -> %s\n", i, arg, r.ResolveType(arg))
	}
}

func printDeclDetail(decl any) {
	switch d := decl.(type) {
	case *typespec.TypeMapping:
		fmt.Fprintf(output, "Type Mapping:\n")
		fmt.Fprintf(output, "  CName: %s\n", d.CName)
		fmt.Fprintf(output, "  Module: %s\n", d.Module)
		fmt.Fprintf(output, "  Name: %s\n", d.Name)
	case *typespec.Enum:
		fmt.Fprintf(output, "Enum:\n")
		fmt.Fprintf(output, "  Name: %s\n", d.Name)
		fmt.Fprintf(output, "  Module: %s\n", d.Module)
		fmt.Fprintf(output, "  Variants: %d\n", len(d.Variants))
	case *typespec.Gadget:
		fmt.Fprintf(output, "Gadget:\n")
		fmt.Fprintf(output, "  CName: %s\n", d.CName)
		for _, p := range d.Properties {
			fmt.Fprintf(output, "  Property: %s %s\n", p.Name, p.Type)
		}
	case *typespec.Class:
		fmt.Fprintf(output, "Class:\n")
		fmt.Fprintf(output, "  Name: %s\n", d.Name)
		if d.Superclass != "" {
			fmt.Fprintf(output, "  Superclass: %s\n", d.Superclass)
		}
		fmt.Fprintf(output, "  Properties: %d\n", len(d.Properties))
		fmt.Fprintf(output, "  Functions: %d\n", len(d.Functions))
		fmt.Fprintf(output, "  Signals: %d\n", len(d.Signals))
		fmt.Fprintf(output, "  Singleton: %v\n", d.Singleton)
		fmt.Fprintf(output, "  Uncreatable: %v\n", d.Uncreatable)
	}
}
