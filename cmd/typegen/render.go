package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/typegen-go/typegen"
)

type ModuleDump struct {
	Module string     `json:"module" yaml:"module"`
	Types  []TypeDump `json:"types" yaml:"types"`
}

type TypeDump struct {
	Name        string         `json:"name" yaml:"name"`
	Kind        string         `json:"kind" yaml:"kind"`
	Superclass  *TypeRefDump   `json:"superclass,omitempty" yaml:"superclass,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Details     string         `json:"details,omitempty" yaml:"details,omitempty"`
	Flags       []string       `json:"flags,omitempty" yaml:"flags,omitempty"`
	Properties  []PropertyDump `json:"properties,omitempty" yaml:"properties,omitempty"`
	Functions   []FunctionDump `json:"functions,omitempty" yaml:"functions,omitempty"`
	Signals     []SignalDump   `json:"signals,omitempty" yaml:"signals,omitempty"`
	Variants    []VariantDump  `json:"variants,omitempty" yaml:"variants,omitempty"`
}

type TypeRefDump struct {
	Source string       `json:"source" yaml:"source"`
	Module string       `json:"module,omitempty" yaml:"module,omitempty"`
	Name   string       `json:"name,omitempty" yaml:"name,omitempty"`
	Of     *TypeRefDump `json:"of,omitempty" yaml:"of,omitempty"`
}

// MemberDump is a property type. Kind is "type" for a reference and
// "gadget" for the members of an inline gadget, which may be empty.
type MemberDump struct {
	Kind   string       `json:"kind" yaml:"kind"`
	Type   *TypeRefDump `json:"type,omitempty" yaml:"type,omitempty"`
	Gadget []FieldDump  `json:"gadget,omitempty" yaml:"gadget,omitempty"`
}

type FieldDump struct {
	Name       string `json:"name" yaml:"name"`
	MemberDump `yaml:",inline"`
}

type PropertyDump struct {
	Name       string `json:"name" yaml:"name"`
	MemberDump `yaml:",inline"`
	Details    string   `json:"details,omitempty" yaml:"details,omitempty"`
	Flags      []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

type ParamDump struct {
	Name string       `json:"name" yaml:"name"`
	Type *TypeRefDump `json:"type" yaml:"type"`
}

type FunctionDump struct {
	Name    string       `json:"name" yaml:"name"`
	Ret     *TypeRefDump `json:"ret" yaml:"ret"`
	Details string       `json:"details,omitempty" yaml:"details,omitempty"`
	Params  []ParamDump  `json:"params,omitempty" yaml:"params,omitempty"`
}

type SignalDump struct {
	Name    string      `json:"name" yaml:"name"`
	Details string      `json:"details,omitempty" yaml:"details,omitempty"`
	Params  []ParamDump `json:"params,omitempty" yaml:"params,omitempty"`
}

type VariantDump struct {
	Name    string `json:"name" yaml:"name"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// newModuleDump converts a catalog into a deterministic, name-ordered dump.
func newModuleDump(module string, catalog typegen.Catalog) *ModuleDump {
	dump := &ModuleDump{Module: module, Types: make([]TypeDump, 0, len(catalog))}
	for _, name := range catalog.Names() {
		dump.Types = append(dump.Types, newTypeDump(name, catalog[name]))
	}
	return dump
}

func newTypeDump(name string, info typegen.TypeInfo) TypeDump {
	td := TypeDump{Name: name, Kind: info.Kind().String()}

	switch t := info.(type) {
	case *typegen.ClassInfo:
		td.Superclass = newTypeRef(t.Superclass)
		td.Description = t.Description
		td.Details = t.Details
		td.Flags = flagNames(t.Flags)
		for _, n := range mapKeys(t.Properties) {
			p := t.Properties[n]
			td.Properties = append(td.Properties, PropertyDump{
				Name:       n,
				MemberDump: newMemberDump(p.Type),
				Details:    p.Details,
				Flags:      flagNames(p.Flags),
			})
		}
		for _, n := range mapKeys(t.Functions) {
			f := t.Functions[n]
			td.Functions = append(td.Functions, FunctionDump{
				Name:    n,
				Ret:     newTypeRef(f.Ret),
				Details: f.Details,
				Params:  newParams(f.Params),
			})
		}
		for _, n := range mapKeys(t.Signals) {
			s := t.Signals[n]
			td.Signals = append(td.Signals, SignalDump{
				Name:    n,
				Details: s.Details,
				Params:  newParams(s.Params),
			})
		}
	case *typegen.EnumInfo:
		td.Description = t.Description
		td.Details = t.Details
		for _, n := range mapKeys(t.Variants) {
			td.Variants = append(td.Variants, VariantDump{Name: n, Details: t.Variants[n].Details})
		}
	}
	return td
}

func newTypeRef(t typegen.Type) *TypeRefDump {
	ref := &TypeRefDump{Source: t.Source.String(), Module: t.Module, Name: t.Name}
	if t.Of != nil {
		ref.Of = newTypeRef(*t.Of)
	}
	return ref
}

func newMemberDump(pt typegen.PropertyType) MemberDump {
	switch t := pt.(type) {
	case typegen.Type:
		return MemberDump{Kind: "type", Type: newTypeRef(t)}
	case typegen.Gadget:
		fields := make([]FieldDump, 0, len(t))
		for _, n := range t.Names() {
			fields = append(fields, FieldDump{Name: n, MemberDump: newMemberDump(t[n])})
		}
		return MemberDump{Kind: "gadget", Gadget: fields}
	}
	return MemberDump{}
}

func newParams(params []typegen.Param) []ParamDump {
	if len(params) == 0 {
		return nil
	}
	out := make([]ParamDump, len(params))
	for i, p := range params {
		out[i] = ParamDump{Name: p.Name, Type: newTypeRef(p.Type)}
	}
	return out
}

func flagNames(flags []typegen.Flag) []string {
	if len(flags) == 0 {
		return nil
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return names
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// fileExt returns the file extension used by dump for format.
func fileExt(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}

func writeModule(w io.Writer, format string, dump *ModuleDump) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dump)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(dump); err != nil {
			return err
		}
		return encoder.Close()
	case "text":
		printModule(w, dump)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printModule(w io.Writer, dump *ModuleDump) {
	fmt.Fprintf(w, "Module: %s\n", dump.Module)
	fmt.Fprintf(w, "Types: %d\n", len(dump.Types))

	for _, t := range dump.Types {
		fmt.Fprintln(w)
		switch t.Kind {
		case "class":
			fmt.Fprintf(w, "class %s : %s%s\n", t.Name, formatRef(t.Superclass), formatFlags(t.Flags))
		default:
			fmt.Fprintf(w, "%s %s\n", t.Kind, t.Name)
		}
		if t.Description != "" {
			fmt.Fprintf(w, "  // %s\n", t.Description)
		}

		for _, p := range t.Properties {
			fmt.Fprintf(w, "  property %s: %s%s\n", p.Name, formatMember(p.MemberDump), formatFlags(p.Flags))
		}
		for _, f := range t.Functions {
			fmt.Fprintf(w, "  function %s(%s): %s\n", f.Name, formatParams(f.Params), formatRef(f.Ret))
		}
		for _, s := range t.Signals {
			fmt.Fprintf(w, "  signal %s(%s)\n", s.Name, formatParams(s.Params))
		}
		for _, v := range t.Variants {
			fmt.Fprintf(w, "  %s\n", v.Name)
		}
	}
}

func formatRef(ref *TypeRefDump) string {
	if ref == nil || ref.Source == "unknown" && ref.Of == nil {
		return "<unknown>"
	}
	s := ref.Name
	if ref.Module != "" {
		s = ref.Module + "." + ref.Name
	}
	if ref.Of != nil {
		s += "<" + formatRef(ref.Of) + ">"
	}
	return s
}

func formatMember(m MemberDump) string {
	if m.Kind != "gadget" {
		return formatRef(m.Type)
	}
	fields := make([]string, len(m.Gadget))
	for i, f := range m.Gadget {
		fields[i] = f.Name + ": " + formatMember(f.MemberDump)
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

func formatParams(params []ParamDump) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + ": " + formatRef(p.Type)
	}
	return strings.Join(parts, ", ")
}

func formatFlags(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}
