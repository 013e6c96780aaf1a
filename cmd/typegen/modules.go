package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	modulesLong bool
)

var modulesCmd = &cobra.Command{
	Use:   "modules [spec-file...]",
	Short: "List modules declared by the specification",
	Long:  `List every module declared by a type mapping or an enum.`,
	RunE:  runModules,
}

func init() {
	modulesCmd.Flags().BoolVarP(&modulesLong, "long", "l", false, "show mapping and enum counts")
}

func runModules(cmd *cobra.Command, args []string) error {
	spec, _, err := loadSpec(args)
	if err != nil {
		return err
	}

	modules := spec.Modules()

	if modulesLong {
		mappings := make(map[string]int)
		for _, m := range spec.TypeMap {
			mappings[m.Module]++
		}
		enums := make(map[string]int)
		for _, e := range spec.Enums {
			enums[e.Module]++
		}

		fmt.Fprintf(output, "%-8s %-8s %s\n", "TYPES", "ENUMS", "MODULE")
		fmt.Fprintf(output, "%s\n", strings.Repeat("-", 60))
		for _, m := range modules {
			fmt.Fprintf(output, "%-8d %-8d %s\n", mappings[m], enums[m], m)
		}
	} else {
		for _, m := range modules {
			fmt.Fprintln(output, m)
		}
	}

	fmt.Fprintf(output, "\nTotal: %d modules\n", len(modules))
	return nil
}
