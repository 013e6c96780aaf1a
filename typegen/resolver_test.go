package typegen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skdltmxn/typegen-go/typespec"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func newTestResolver(spec *typespec.TypeSpec) *Resolver {
	return NewResolver(spec, quietOptions())
}

func rw(name, typ string) typespec.Property {
	return typespec.Property{Name: name, Type: typ, Readable: true, Writable: true}
}

var intType = Type{Source: SourceBuiltin, Module: "qml", Name: "int"}

// baseSpec is the Base/Derived example: Base is both a hidden class and a gadget.
func baseSpec() *typespec.TypeSpec {
	return &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "int", Name: "int"},
			{CName: "Derived", Module: "ui", Name: "Widget"},
		},
		Classes: []typespec.Class{
			{Name: "Base", Properties: []typespec.Property{rw("x", "int")}},
			{Name: "Derived", Superclass: "Base", Properties: []typespec.Property{rw("y", "Base")}},
		},
		Gadgets: []typespec.Gadget{
			{CName: "Base", Properties: []typespec.Property{rw("x", "int")}},
		},
	}
}

func TestResolveModule_EndToEnd(t *testing.T) {
	catalog, err := newTestResolver(baseSpec()).ResolveModule("ui")
	require.NoError(t, err)

	require.Len(t, catalog, 1)
	info, ok := catalog["Widget"].(*ClassInfo)
	require.True(t, ok, "expected Widget to be a class")

	assert.True(t, info.Superclass.IsUnknown())
	assert.Equal(t, map[string]Property{
		"x": {Type: intType},
		"y": {Type: Gadget{"x": intType}},
	}, info.Properties)
	assert.Empty(t, info.Functions)
	assert.Empty(t, info.Signals)
	assert.Empty(t, info.Flags)
}

func TestResolveModule_PackageFunction(t *testing.T) {
	catalog, err := ResolveModule("ui", baseSpec())
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, catalog.Names())
}

func TestResolveModule_Idempotent(t *testing.T) {
	spec := baseSpec()
	r := newTestResolver(spec)

	first, err := r.ResolveModule("ui")
	require.NoError(t, err)
	second, err := r.ResolveModule("ui")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Catalogs are independently owned.
	first["Widget"].(*ClassInfo).Properties["y"].Type.(Gadget)["x"] = UnknownType()
	assert.Equal(t, intType, second["Widget"].(*ClassInfo).Properties["y"].Type.(Gadget)["x"])
}

func TestResolveModule_DeclaredOverridesInherited(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "Child", Module: "ui", Name: "Child"}},
		Classes: []typespec.Class{
			{
				Name: "Parent",
				Properties: []typespec.Property{
					{Name: "value", Type: "int", Details: "parent", Readable: true},
					rw("inherited", "int"),
				},
				Functions: []typespec.Function{{Name: "reset", Details: "parent"}},
				Signals:   []typespec.Signal{{Name: "changed", Details: "parent"}},
			},
			{
				Name:       "Child",
				Superclass: "Parent",
				Properties: []typespec.Property{
					{Name: "value", Type: "int", Details: "child", Readable: true, Writable: true, Default: true},
				},
				Functions: []typespec.Function{{Name: "reset", Details: "child"}},
				Signals:   []typespec.Signal{{Name: "changed", Details: "child"}},
			},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("ui")
	require.NoError(t, err)
	info := catalog["Child"].(*ClassInfo)

	require.Contains(t, info.Properties, "value")
	assert.Equal(t, "child", info.Properties["value"].Details)
	assert.Equal(t, []Flag{FlagDefault}, info.Properties["value"].Flags)
	assert.Contains(t, info.Properties, "inherited")
	assert.Equal(t, "child", info.Functions["reset"].Details)
	assert.Equal(t, "child", info.Signals["changed"].Details)
}

func TestResolveModule_SuperclassWalk(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "QObject", Module: "QtQml", Name: "QtObject"},
			{CName: "Item", Module: "Quickshell", Name: "Item"},
		},
		Classes: []typespec.Class{
			{Name: "QObject", Properties: []typespec.Property{rw("objectName", "QString")}},
			{Name: "HiddenBase", Superclass: "QObject", Properties: []typespec.Property{rw("far", "int")}},
			{Name: "HiddenMid", Superclass: "HiddenBase", Properties: []typespec.Property{rw("near", "int")}},
			{Name: "Item", Superclass: "HiddenMid", Properties: []typespec.Property{rw("own", "int")}},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("Quickshell")
	require.NoError(t, err)
	info := catalog["Item"].(*ClassInfo)

	assert.Equal(t, Type{Source: SourceBuiltin, Module: "QtQml", Name: "QtObject"}, info.Superclass)
	assert.ElementsMatch(t, []string{"far", "near", "own"}, mapKeys(info.Properties))
	assert.NotContains(t, info.Properties, "objectName", "members of exposed ancestors are not absorbed")
}

func TestResolveModule_FartherHiddenAncestorWins(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "C", Module: "ui", Name: "C"}},
		Classes: []typespec.Class{
			{
				Name:       "C",
				Superclass: "Near",
				Properties: []typespec.Property{{Name: "own", Type: "int", Details: "c", Readable: true}},
			},
			{
				Name:       "Near",
				Superclass: "Far",
				Properties: []typespec.Property{
					{Name: "p", Type: "int", Details: "near", Readable: true},
					{Name: "own", Type: "int", Details: "near", Readable: true},
				},
				Functions: []typespec.Function{{Name: "f", Details: "near"}},
				Signals:   []typespec.Signal{{Name: "s", Details: "near"}},
			},
			{
				Name: "Far",
				Properties: []typespec.Property{
					{Name: "p", Type: "int", Details: "far", Readable: true},
					{Name: "own", Type: "int", Details: "far", Readable: true},
				},
				Functions: []typespec.Function{{Name: "f", Details: "far"}},
				Signals:   []typespec.Signal{{Name: "s", Details: "far"}},
			},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("ui")
	require.NoError(t, err)
	info := catalog["C"].(*ClassInfo)

	assert.Equal(t, "far", info.Properties["p"].Details)
	assert.Equal(t, "far", info.Functions["f"].Details)
	assert.Equal(t, "far", info.Signals["s"].Details)
	assert.Equal(t, "c", info.Properties["own"].Details)
}

func TestResolveModule_SuperclassExposedLocally(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "Base", Module: "Quickshell.Io", Name: "Base"},
			{CName: "Derived", Module: "Quickshell.Io", Name: "Derived"},
		},
		Classes: []typespec.Class{
			{Name: "Base"},
			{Name: "Derived", Superclass: "Base"},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("Quickshell.Io")
	require.NoError(t, err)

	assert.Equal(t, Type{Source: SourceLocal, Module: "Quickshell.Io", Name: "Base"},
		catalog["Derived"].(*ClassInfo).Superclass)
	assert.True(t, catalog["Base"].(*ClassInfo).Superclass.IsUnknown())
}

func TestResolveModule_CyclicSuperclass(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "Widget", Module: "ui", Name: "Widget"}},
		Classes: []typespec.Class{
			{Name: "A", Superclass: "B"},
			{Name: "B", Superclass: "A"},
			{Name: "Widget", Superclass: "A"},
		},
	}

	_, err := newTestResolver(spec).ResolveModule("ui")
	require.ErrorIs(t, err, ErrCyclicType)

	var re *ResolveError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "ui", re.Module)
	assert.Equal(t, "Widget", re.Type)
	assert.Equal(t, []string{"Widget", "A", "B", "A"}, re.Chain)
}

func TestResolveModule_ListUnwrapping(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "Foo", Module: "Quickshell", Name: "Foo"},
			{CName: "Holder", Module: "Quickshell", Name: "Holder"},
		},
		Classes: []typespec.Class{
			{Name: "Foo"},
			{
				Name: "Holder",
				Properties: []typespec.Property{
					rw("plain", "QList<Foo>"),
					rw("qml", "QQmlListProperty<Foo>"),
					rw("nested", "QList<QList<Foo>>"),
					rw("unknownInner", "QList<Missing>"),
				},
				Functions: []typespec.Function{
					{Name: "items", Ret: "QList<Foo>", Params: []typespec.FnParam{{Name: "filter", Type: "QList<Foo>"}}},
				},
			},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("Quickshell")
	require.NoError(t, err)
	info := catalog["Holder"].(*ClassInfo)

	foo := Type{Source: SourceLocal, Module: "Quickshell", Name: "Foo"}
	listOf := func(of Type) Type {
		return Type{Source: SourceBuiltin, Module: "qml", Name: "list", Of: &of}
	}

	assert.Equal(t, listOf(foo), info.Properties["plain"].Type)
	assert.True(t, info.Properties["plain"].Type.(Type).IsList())
	assert.False(t, info.Functions["items"].Params[0].Type.Of.IsList())
	assert.Equal(t, listOf(foo), info.Properties["qml"].Type)
	assert.Equal(t, listOf(listOf(foo)), info.Properties["nested"].Type)
	assert.Equal(t, listOf(UnknownType()), info.Properties["unknownInner"].Type)
	assert.Equal(t, listOf(foo), info.Functions["items"].Ret)
	assert.Equal(t, []Param{{Name: "filter", Type: listOf(foo)}}, info.Functions["items"].Params)
}

func TestResolveModule_GadgetInlining(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "int", Name: "int"},
			{CName: "Screen", Module: "Quickshell", Name: "Screen"},
		},
		Classes: []typespec.Class{
			{
				Name: "Screen",
				Properties: []typespec.Property{
					rw("margins", "Margins"),
					rw("padding", "Margins"),
					rw("box", "Box"),
				},
				Functions: []typespec.Function{
					{Name: "setMargins", Params: []typespec.FnParam{{Name: "m", Type: "Margins"}}},
				},
			},
		},
		Gadgets: []typespec.Gadget{
			{CName: "Margins", Properties: []typespec.Property{rw("left", "int"), rw("right", "int"), rw("extra", "Unmapped")}},
			{CName: "Box", Properties: []typespec.Property{rw("inner", "Margins"), rw("size", "int")}},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("Quickshell")
	require.NoError(t, err)
	info := catalog["Screen"].(*ClassInfo)

	margins := Gadget{"left": intType, "right": intType, "extra": UnknownType()}
	assert.Equal(t, margins, info.Properties["margins"].Type)
	assert.Equal(t, margins, info.Properties["padding"].Type)
	assert.Equal(t, Gadget{"inner": margins, "size": intType}, info.Properties["box"].Type)

	// Gadget expansion applies only to properties.
	assert.True(t, info.Functions["setMargins"].Params[0].Type.IsUnknown())

	// Each occurrence is independently owned.
	info.Properties["margins"].Type.(Gadget)["left"] = UnknownType()
	assert.Equal(t, intType, info.Properties["padding"].Type.(Gadget)["left"])
}

func TestResolveModule_CyclicGadget(t *testing.T) {
	tests := []struct {
		name      string
		gadgets   []typespec.Gadget
		wantChain []string
	}{
		{
			name:      "self reference",
			gadgets:   []typespec.Gadget{{CName: "Node", Properties: []typespec.Property{rw("next", "Node")}}},
			wantChain: []string{"Node", "Node"},
		},
		{
			name: "mutual reference",
			gadgets: []typespec.Gadget{
				{CName: "Node", Properties: []typespec.Property{rw("edge", "Edge")}},
				{CName: "Edge", Properties: []typespec.Property{rw("to", "Node")}},
			},
			wantChain: []string{"Node", "Edge", "Node"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := &typespec.TypeSpec{
				TypeMap: []typespec.TypeMapping{{CName: "Graph", Module: "ui", Name: "Graph"}},
				Classes: []typespec.Class{{Name: "Graph", Properties: []typespec.Property{rw("root", "Node")}}},
				Gadgets: tc.gadgets,
			}

			_, err := newTestResolver(spec).ResolveModule("ui")
			require.ErrorIs(t, err, ErrCyclicType)

			var re *ResolveError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, "ui", re.Module)
			assert.Equal(t, "Graph", re.Type)
			assert.Equal(t, "root", re.Member)
			assert.Equal(t, tc.wantChain, re.Chain)
			assert.Contains(t, err.Error(), "Graph.root")
		})
	}
}

func TestResolveModule_MaxDepth(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "Holder", Module: "ui", Name: "Holder"}},
		Classes: []typespec.Class{{Name: "Holder", Properties: []typespec.Property{rw("a", "A")}}},
		Gadgets: []typespec.Gadget{
			{CName: "A", Properties: []typespec.Property{rw("b", "B")}},
			{CName: "B", Properties: []typespec.Property{rw("c", "C")}},
			{CName: "C", Properties: []typespec.Property{rw("v", "int")}},
		},
	}

	opts := quietOptions()
	opts.MaxDepth = 2
	_, err := NewResolver(spec, opts).ResolveModule("ui")
	require.ErrorIs(t, err, ErrMaxDepth)

	opts.MaxDepth = 3
	_, err = NewResolver(spec, opts).ResolveModule("ui")
	require.NoError(t, err)
}

func TestResolveModule_UnknownFallback(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "W", Module: "ui", Name: "W"}},
		Classes: []typespec.Class{{
			Name:       "W",
			Superclass: "NotDeclared",
			Properties: []typespec.Property{rw("mystery", "QVariantMap")},
			Functions:  []typespec.Function{{Name: "f", Ret: "void"}},
		}},
	}

	catalog, err := newTestResolver(spec).ResolveModule("ui")
	require.NoError(t, err)
	info := catalog["W"].(*ClassInfo)

	assert.True(t, info.Superclass.IsUnknown())
	assert.Equal(t, UnknownType(), info.Properties["mystery"].Type)
	assert.True(t, info.Functions["f"].Ret.IsUnknown())
}

func TestResolveModule_ModuleFiltering(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "A1", Module: "A", Name: "One"},
			{CName: "B1", Module: "B", Name: "Two"},
			{CName: "Orphan", Module: "A", Name: "Orphan"},
		},
		Classes: []typespec.Class{{Name: "A1"}, {Name: "B1"}},
		Enums: []typespec.Enum{
			{Name: "Mode", Module: "A", Variants: []typespec.Variant{{Name: "On"}}},
			{Name: "Other", Module: "B"},
			{Name: "Floating"},
		},
	}

	r := newTestResolver(spec)

	a, err := r.ResolveModule("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mode", "One"}, a.Names())

	b, err := r.ResolveModule("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"Other", "Two"}, b.Names())

	none, err := r.ResolveModule("C")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestResolveModule_EmptyModule(t *testing.T) {
	_, err := newTestResolver(baseSpec()).ResolveModule("")
	assert.ErrorIs(t, err, ErrEmptyModule)
}

func TestResolveModule_Enums(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "Window", Module: "Quickshell", Name: "Window"}},
		Classes: []typespec.Class{{
			Name: "Window",
			Properties: []typespec.Property{
				rw("edge", "Edges::Enum"),
				rw("legacy", "LegacyMode"),
			},
		}},
		Enums: []typespec.Enum{
			{
				Name:        "Edges",
				Module:      "Quickshell",
				CName:       "Edges::Enum",
				Description: "Screen edges.",
				Details:     "Combine with |.",
				Variants: []typespec.Variant{
					{Name: "Top", Details: "top edge"},
					{Name: "Bottom"},
				},
			},
			{Name: "LegacyMode", CName: "LegacyMode"},
		},
	}

	catalog, err := newTestResolver(spec).ResolveModule("Quickshell")
	require.NoError(t, err)

	edges, ok := catalog["Edges"].(*EnumInfo)
	require.True(t, ok)
	assert.Equal(t, TypeKindEnum, edges.Kind())
	assert.Equal(t, &EnumInfo{
		Description: "Screen edges.",
		Details:     "Combine with |.",
		Variants: map[string]EnumVariant{
			"Top":    {Details: "top edge"},
			"Bottom": {},
		},
	}, edges)

	window := catalog["Window"].(*ClassInfo)
	assert.Equal(t, Type{Source: SourceLocal, Module: "Quickshell", Name: "Edges"}, window.Properties["edge"].Type)
	assert.Equal(t, Type{Source: SourceBuiltin, Module: "qml", Name: "LegacyMode"}, window.Properties["legacy"].Type)
	assert.NotContains(t, catalog, "LegacyMode")
}

func TestPropertyFlags(t *testing.T) {
	tests := []struct {
		name string
		prop typespec.Property
		want []Flag
	}{
		{"read write", typespec.Property{Readable: true, Writable: true}, nil},
		{"read only", typespec.Property{Readable: true}, []Flag{FlagReadonly}},
		{"write only", typespec.Property{Writable: true}, []Flag{FlagWriteonly}},
		{"neither", typespec.Property{}, []Flag{FlagWriteonly}},
		{"default read write", typespec.Property{Readable: true, Writable: true, Default: true}, []Flag{FlagDefault}},
		{"default read only", typespec.Property{Readable: true, Default: true}, []Flag{FlagDefault, FlagReadonly}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, propertyFlags(&tc.prop))
		})
	}
}

func TestClassFlags(t *testing.T) {
	assert.Equal(t, []Flag{FlagSingleton}, classFlags(&typespec.Class{Singleton: true, Uncreatable: true}))
	assert.Equal(t, []Flag{FlagUncreatable}, classFlags(&typespec.Class{Uncreatable: true}))
	assert.Nil(t, classFlags(&typespec.Class{}))

	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "S", Module: "ui", Name: "S"},
			{CName: "U", Module: "ui", Name: "U"},
		},
		Classes: []typespec.Class{
			{Name: "S", Singleton: true, Uncreatable: true},
			{Name: "U", Uncreatable: true},
		},
	}
	catalog, err := newTestResolver(spec).ResolveModule("ui")
	require.NoError(t, err)

	s := catalog["S"].(*ClassInfo)
	assert.True(t, s.HasFlag(FlagSingleton))
	assert.False(t, s.HasFlag(FlagUncreatable))
	assert.True(t, catalog["U"].(*ClassInfo).HasFlag(FlagUncreatable))
}

func TestResolveType(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{
			{CName: "QString", Name: "string"},
			{CName: "PwNode", Module: "Quickshell.Services.Pipewire", Name: "PwNode"},
			{CName: "QQuickItem", Module: "QtQuick", Name: "Item"},
		},
		Enums: []typespec.Enum{{Name: "PwNodeType", Module: "Quickshell.Services.Pipewire", CName: "PwNodeType::Enum"}},
	}
	r := newTestResolver(spec)

	tests := []struct {
		cname string
		want  Type
	}{
		{"QString", Type{Source: SourceBuiltin, Module: "qml", Name: "string"}},
		{"PwNode", Type{Source: SourceLocal, Module: "Quickshell.Services.Pipewire", Name: "PwNode"}},
		{"QQuickItem", Type{Source: SourceBuiltin, Module: "QtQuick", Name: "Item"}},
		{"PwNodeType::Enum", Type{Source: SourceLocal, Module: "Quickshell.Services.Pipewire", Name: "PwNodeType"}},
		{"QuickshellNotAType", UnknownType()},
	}

	for _, tc := range tests {
		t.Run(tc.cname, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ResolveType(tc.cname))
		})
	}
}

func TestResolveType_CustomOptions(t *testing.T) {
	spec := &typespec.TypeSpec{TypeMap: []typespec.TypeMapping{{CName: "Foo", Module: "Mine", Name: "Foo"}}}

	r := NewResolver(spec, Options{
		ListWrappers: []string{"std::vector"},
		ListModule:   "builtins",
		ListName:     "array",
		LocalModules: []string{"Mine"},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	foo := Type{Source: SourceLocal, Module: "Mine", Name: "Foo"}
	assert.Equal(t, Type{Source: SourceBuiltin, Module: "builtins", Name: "array", Of: &foo}, r.ResolveType("std::vector<Foo>"))
	assert.True(t, r.ResolveType("QList<Foo>").IsUnknown())
}

func TestLookupType(t *testing.T) {
	r := newTestResolver(baseSpec())

	decl, err := r.LookupType("Derived")
	require.NoError(t, err)
	assert.IsType(t, &typespec.TypeMapping{}, decl)

	decl, err = r.LookupType("Base")
	require.NoError(t, err)
	assert.IsType(t, &typespec.Gadget{}, decl)

	_, err = r.LookupType("Nope")
	assert.ErrorIs(t, err, ErrTypeNotFound)
}

func TestResolveModules(t *testing.T) {
	spec := baseSpec()
	spec.TypeMap = append(spec.TypeMap, typespec.TypeMapping{CName: "Base", Module: "core", Name: "Base"})
	r := newTestResolver(spec)

	results, err := r.ResolveModules(context.Background(), spec.Modules())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Contains(t, results["ui"], "Widget")
	assert.Contains(t, results["core"], "Base")

	// Base is now exposed, so Widget no longer inherits x.
	widget := results["ui"]["Widget"].(*ClassInfo)
	assert.Equal(t, Type{Source: SourceBuiltin, Module: "core", Name: "Base"}, widget.Superclass)
	assert.NotContains(t, widget.Properties, "x")
}

func TestResolveModules_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestResolver(baseSpec()).ResolveModules(ctx, []string{"ui"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveModules_PropagatesError(t *testing.T) {
	spec := &typespec.TypeSpec{
		TypeMap: []typespec.TypeMapping{{CName: "G", Module: "ui", Name: "G"}},
		Classes: []typespec.Class{{Name: "G", Properties: []typespec.Property{rw("n", "Node")}}},
		Gadgets: []typespec.Gadget{{CName: "Node", Properties: []typespec.Property{rw("next", "Node")}}},
	}

	_, err := newTestResolver(spec).ResolveModules(context.Background(), []string{"ui"})
	assert.ErrorIs(t, err, ErrCyclicType)
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
