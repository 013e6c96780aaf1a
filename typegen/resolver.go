package typegen

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/skdltmxn/typegen-go/typespec"
)

// Options configures type resolution. Zero fields take their defaults; a
// nil slice means the default list, an empty non-nil slice means none.
type Options struct {
	// ListWrappers are the template names unwrapped into list types.
	ListWrappers []string

	// ListModule and ListName identify the list type of the target language.
	ListModule string
	ListName   string

	// DefaultModule is used for mapped types declared without a module.
	DefaultModule string

	// LocalModules are module prefixes owned by the documented project.
	// Types of these modules resolve with SourceLocal.
	LocalModules []string

	// MaxDepth bounds gadget nesting.
	MaxDepth int

	Logger *slog.Logger
}

// DefaultOptions returns the options used by ResolveModule.
func DefaultOptions() Options {
	return Options{
		ListWrappers:  []string{"QQmlListProperty", "QList"},
		ListModule:    "qml",
		ListName:      "list",
		DefaultModule: "qml",
		LocalModules:  []string{"Quickshell"},
		MaxDepth:      64,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ListWrappers == nil {
		o.ListWrappers = def.ListWrappers
	}
	if o.ListModule == "" {
		o.ListModule = def.ListModule
	}
	if o.ListName == "" {
		o.ListName = def.ListName
	}
	if o.DefaultModule == "" {
		o.DefaultModule = def.DefaultModule
	}
	if o.LocalModules == nil {
		o.LocalModules = def.LocalModules
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = def.MaxDepth
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Resolver resolves modules of a specification into catalogs.
// It is safe for concurrent use; the spec must not be modified while in use.
type Resolver struct {
	spec   *typespec.TypeSpec
	opts   Options
	logger *slog.Logger

	// Lookup tables by native name. The first declaration wins.
	mappings map[string]*typespec.TypeMapping
	classes  map[string]*typespec.Class
	enums    map[string]*typespec.Enum
	gadgets  map[string]*typespec.Gadget
}

// NewResolver indexes spec for resolution.
func NewResolver(spec *typespec.TypeSpec, opts Options) *Resolver {
	opts = opts.withDefaults()

	r := &Resolver{
		spec:     spec,
		opts:     opts,
		logger:   opts.Logger,
		mappings: make(map[string]*typespec.TypeMapping, len(spec.TypeMap)),
		classes:  make(map[string]*typespec.Class, len(spec.Classes)),
		enums:    make(map[string]*typespec.Enum, len(spec.Enums)),
		gadgets:  make(map[string]*typespec.Gadget, len(spec.Gadgets)),
	}

	for i := range spec.TypeMap {
		m := &spec.TypeMap[i]
		if _, exists := r.mappings[m.CName]; !exists {
			r.mappings[m.CName] = m
		}
	}
	for i := range spec.Classes {
		c := &spec.Classes[i]
		if _, exists := r.classes[c.Name]; !exists {
			r.classes[c.Name] = c
		}
	}
	for i := range spec.Enums {
		e := &spec.Enums[i]
		if e.CName == "" {
			continue
		}
		if _, exists := r.enums[e.CName]; !exists {
			r.enums[e.CName] = e
		}
	}
	for i := range spec.Gadgets {
		g := &spec.Gadgets[i]
		if _, exists := r.gadgets[g.CName]; !exists {
			r.gadgets[g.CName] = g
		}
	}

	return r
}

// ResolveModule resolves module from spec with default options.
func ResolveModule(module string, spec *typespec.TypeSpec) (Catalog, error) {
	return NewResolver(spec, DefaultOptions()).ResolveModule(module)
}

// ResolveModule returns every class and enum exposed under module.
// Mappings without a class declaration are skipped.
func (r *Resolver) ResolveModule(module string) (Catalog, error) {
	if module == "" {
		return nil, ErrEmptyModule
	}

	catalog := make(Catalog)

	for i := range r.spec.TypeMap {
		mapping := &r.spec.TypeMap[i]
		if mapping.Module != module {
			continue
		}

		info, err := r.resolveClass(module, mapping)
		if err != nil {
			return nil, err
		}
		if info == nil {
			r.logger.Debug("Skipping mapping without class",
				"module", module,
				"cname", mapping.CName,
				"name", mapping.Name)
			continue
		}
		catalog[mapping.Name] = info
	}

	for i := range r.spec.Enums {
		e := &r.spec.Enums[i]
		if e.Module != module {
			continue
		}
		catalog[e.Name] = resolveEnum(e)
	}

	r.logger.Debug("Resolved module",
		"module", module,
		"types", len(catalog),
		"classes", catalog.Classes())

	return catalog, nil
}

// ResolveModules resolves each module concurrently. The first error cancels
// the remaining work.
func (r *Resolver) ResolveModules(ctx context.Context, modules []string) (map[string]Catalog, error) {
	var mu sync.Mutex
	results := make(map[string]Catalog, len(modules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, module := range modules {
		module := module // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			catalog, err := r.ResolveModule(module)
			if err != nil {
				return err
			}

			mu.Lock()
			results[module] = catalog
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func resolveEnum(e *typespec.Enum) *EnumInfo {
	variants := make(map[string]EnumVariant, len(e.Variants))
	for _, v := range e.Variants {
		variants[v.Name] = EnumVariant{Details: v.Details}
	}
	return &EnumInfo{
		Description: e.Description,
		Details:     e.Details,
		Variants:    variants,
	}
}

// exposedType builds the reference to a mapped type or enum.
func (r *Resolver) exposedType(module, name string) Type {
	if module == "" {
		return Type{Source: SourceBuiltin, Module: r.opts.DefaultModule, Name: name}
	}

	source := SourceBuiltin
	if r.isLocal(module) {
		source = SourceLocal
	}
	return Type{Source: source, Module: module, Name: name}
}

func (r *Resolver) isLocal(module string) bool {
	for _, prefix := range r.opts.LocalModules {
		if module == prefix || strings.HasPrefix(module, prefix+".") {
			return true
		}
	}
	return false
}
