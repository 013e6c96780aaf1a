// Package typespec models the raw class, property, enum and gadget
// declarations produced by the header extractor.
package typespec

import (
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// TypeSpec is the raw specification produced by the header extractor.
// It is read-only during resolution.
type TypeSpec struct {
	TypeMap []TypeMapping `json:"typemap" yaml:"typemap"`
	Classes []Class       `json:"classes" yaml:"classes"`
	Gadgets []Gadget      `json:"gadgets" yaml:"gadgets"`
	Enums   []Enum        `json:"enums" yaml:"enums"`
}

// TypeMapping exposes a native class to the target language under a module and name.
type TypeMapping struct {
	CName  string `json:"cname" yaml:"cname"`
	Module string `json:"module,omitempty" yaml:"module,omitempty"` // empty if not declared
	Name   string `json:"name" yaml:"name"`
}

// Class is a native class declaration.
type Class struct {
	Name        string     `json:"name" yaml:"name"`
	Superclass  string     `json:"superclass" yaml:"superclass"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Details     string     `json:"details,omitempty" yaml:"details,omitempty"`
	Singleton   bool       `json:"singleton,omitempty" yaml:"singleton,omitempty"`
	Uncreatable bool       `json:"uncreatable,omitempty" yaml:"uncreatable,omitempty"`
	Properties  []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Functions   []Function `json:"functions,omitempty" yaml:"functions,omitempty"`
	Signals     []Signal   `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// Property is a declared property with its native type name.
// Readable defaults to true when the key is absent; Writable defaults to false.
type Property struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Details  string `json:"details,omitempty" yaml:"details,omitempty"`
	Readable bool   `json:"readable" yaml:"readable"`
	Writable bool   `json:"writable" yaml:"writable"`
	Default  bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

func (p *Property) UnmarshalJSON(data []byte) error {
	type raw Property
	r := raw{Readable: true}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*p = Property(r)
	return nil
}

func (p *Property) UnmarshalYAML(value *yaml.Node) error {
	type raw Property
	r := raw{Readable: true}
	if err := value.Decode(&r); err != nil {
		return err
	}
	*p = Property(r)
	return nil
}

// Function is an invokable method.
type Function struct {
	Name    string    `json:"name" yaml:"name"`
	Ret     string    `json:"ret" yaml:"ret"`
	Details string    `json:"details,omitempty" yaml:"details,omitempty"`
	Params  []FnParam `json:"params,omitempty" yaml:"params,omitempty"`
}

// Signal is a declared signal.
type Signal struct {
	Name    string    `json:"name" yaml:"name"`
	Details string    `json:"details,omitempty" yaml:"details,omitempty"`
	Params  []FnParam `json:"params,omitempty" yaml:"params,omitempty"`
}

// FnParam is a single function or signal parameter.
type FnParam struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Enum is an enum declaration. CName is empty for enums that cannot be
// referenced by native type name.
type Enum struct {
	Name        string    `json:"name" yaml:"name"`
	Module      string    `json:"module,omitempty" yaml:"module,omitempty"`
	CName       string    `json:"cname,omitempty" yaml:"cname,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Details     string    `json:"details,omitempty" yaml:"details,omitempty"`
	Variants    []Variant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Variant is a single enum value.
type Variant struct {
	Name    string `json:"name" yaml:"name"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Gadget is a value type that is expanded inline wherever it is referenced.
type Gadget struct {
	CName      string     `json:"cname" yaml:"cname"`
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Merge appends the declarations of other to s.
func (s *TypeSpec) Merge(other *TypeSpec) {
	if other == nil {
		return
	}
	s.TypeMap = append(s.TypeMap, other.TypeMap...)
	s.Classes = append(s.Classes, other.Classes...)
	s.Gadgets = append(s.Gadgets, other.Gadgets...)
	s.Enums = append(s.Enums, other.Enums...)
}

// Modules returns the sorted names of every module declared by a type
// mapping or an enum.
func (s *TypeSpec) Modules() []string {
	seen := make(map[string]struct{})
	for _, m := range s.TypeMap {
		if m.Module != "" {
			seen[m.Module] = struct{}{}
		}
	}
	for _, e := range s.Enums {
		if e.Module != "" {
			seen[e.Module] = struct{}{}
		}
	}

	modules := make([]string, 0, len(seen))
	for m := range seen {
		modules = append(modules, m)
	}
	slices.Sort(modules)
	return modules
}

// SpecStats summarizes a specification.
type SpecStats struct {
	Mappings   int
	Classes    int
	Gadgets    int
	Enums      int
	Properties int
	Functions  int
	Signals    int
	Modules    int
}

// Stats counts the declarations in the specification.
func (s *TypeSpec) Stats() SpecStats {
	st := SpecStats{
		Mappings: len(s.TypeMap),
		Classes:  len(s.Classes),
		Gadgets:  len(s.Gadgets),
		Enums:    len(s.Enums),
		Modules:  len(s.Modules()),
	}
	for _, c := range s.Classes {
		st.Properties += len(c.Properties)
		st.Functions += len(c.Functions)
		st.Signals += len(c.Signals)
	}
	return st
}
