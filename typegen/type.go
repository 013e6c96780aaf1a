package typegen

import "slices"

// TypeSource identifies where a resolved type comes from.
type TypeSource uint8

const (
	SourceUnknown TypeSource = iota
	SourceBuiltin
	SourceLocal
)

func (s TypeSource) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s TypeSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Flag marks a property or class attribute.
type Flag uint8

const (
	FlagDefault Flag = iota + 1
	FlagReadonly
	FlagWriteonly
	FlagSingleton
	FlagUncreatable
)

func (f Flag) String() string {
	switch f {
	case FlagDefault:
		return "default"
	case FlagReadonly:
		return "readonly"
	case FlagWriteonly:
		return "writeonly"
	case FlagSingleton:
		return "singleton"
	case FlagUncreatable:
		return "uncreatable"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Flag) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// PropertyType is the resolved type of a property: either a Type or an
// inline Gadget expansion.
type PropertyType interface {
	propertyType()
}

// Type is a resolved reference to a type of the target language.
// Of is set only for list types.
type Type struct {
	Source TypeSource
	Module string
	Name   string
	Of     *Type
}

func (Type) propertyType() {}

// UnknownType returns the marker for types that could not be resolved.
func UnknownType() Type {
	return Type{Source: SourceUnknown}
}

// IsUnknown reports whether t is the unknown marker.
func (t Type) IsUnknown() bool {
	return t.Source == SourceUnknown && t.Of == nil
}

// IsList reports whether t wraps an element type.
func (t Type) IsList() bool {
	return t.Of != nil
}

func (t Type) String() string {
	if t.IsUnknown() {
		return "<unknown>"
	}
	s := t.Name
	if t.Module != "" {
		s = t.Module + "." + t.Name
	}
	if t.Of != nil {
		s += "<" + t.Of.String() + ">"
	}
	return s
}

// Gadget is a value type expanded inline: member name to resolved type.
// Nested gadgets appear as Gadget values.
type Gadget map[string]PropertyType

func (Gadget) propertyType() {}

// Names returns the member names in sorted order.
func (g Gadget) Names() []string {
	return sortedKeys(g)
}

// Property is a resolved property.
type Property struct {
	Type    PropertyType
	Details string
	Flags   []Flag
}

// Param is a resolved function or signal parameter.
type Param struct {
	Name string
	Type Type
}

// Function is a resolved function.
type Function struct {
	Name    string
	Ret     Type
	Details string
	Params  []Param
}

// Signal is a resolved signal.
type Signal struct {
	Name    string
	Details string
	Params  []Param
}

// TypeKind identifies the category of a catalog entry.
type TypeKind uint8

const (
	TypeKindClass TypeKind = iota + 1
	TypeKindEnum
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindClass:
		return "class"
	case TypeKindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// TypeInfo is a catalog entry: *ClassInfo or *EnumInfo.
type TypeInfo interface {
	Kind() TypeKind
	typeInfo()
}

// ClassInfo is a fully resolved class.
type ClassInfo struct {
	Superclass  Type
	Description string
	Details     string
	Flags       []Flag
	Properties  map[string]Property
	Functions   map[string]Function
	Signals     map[string]Signal
}

func (c *ClassInfo) Kind() TypeKind { return TypeKindClass }
func (c *ClassInfo) typeInfo()      {}

// HasFlag reports whether the class carries f.
func (c *ClassInfo) HasFlag(f Flag) bool {
	return slices.Contains(c.Flags, f)
}

// EnumInfo is an enum with its variants.
type EnumInfo struct {
	Description string
	Details     string
	Variants    map[string]EnumVariant
}

func (e *EnumInfo) Kind() TypeKind { return TypeKindEnum }
func (e *EnumInfo) typeInfo()      {}

// EnumVariant carries the details of one enum value.
type EnumVariant struct {
	Details string
}

// Catalog maps exposed type names to their resolved descriptions.
type Catalog map[string]TypeInfo

// Names returns the catalog entries in sorted order.
func (c Catalog) Names() []string {
	return sortedKeys(c)
}

// Classes returns the number of class entries.
func (c Catalog) Classes() int {
	n := 0
	for _, info := range c {
		if info.Kind() == TypeKindClass {
			n++
		}
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
