package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [spec-file...]",
	Short: "Display specification statistics",
	Long:  `Display the number of mappings, classes, gadgets, enums and members in a specification.`,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	spec, paths, err := loadSpec(args)
	if err != nil {
		return err
	}

	st := spec.Stats()
	fmt.Fprintf(output, "Spec Files: %d\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(output, "  %s\n", p)
	}
	fmt.Fprintf(output, "Modules: %d\n", st.Modules)
	fmt.Fprintf(output, "Type Mappings: %d\n", st.Mappings)
	fmt.Fprintf(output, "Classes: %d\n", st.Classes)
	fmt.Fprintf(output, "Gadgets: %d\n", st.Gadgets)
	fmt.Fprintf(output, "Enums: %d\n", st.Enums)
	fmt.Fprintf(output, "Properties: %d\n", st.Properties)
	fmt.Fprintf(output, "Functions: %d\n", st.Functions)
	fmt.Fprintf(output, "Signals: %d\n", st.Signals)
	return nil
}
