package typegen

import (
	"errors"
	"slices"
	"strings"

	"github.com/skdltmxn/typegen-go/typespec"
)

// resolveClass returns nil if no class matches the mapping.
func (r *Resolver) resolveClass(module string, mapping *typespec.TypeMapping) (*ClassInfo, error) {
	class, ok := r.classes[mapping.CName]
	if !ok {
		return nil, nil
	}

	var (
		properties []*typespec.Property
		functions  []*typespec.Function
		signals    []*typespec.Signal
	)

	// Walk up to the first ancestor exposed to the target language,
	// absorbing the members of every hidden ancestor on the way.
	superclass := UnknownType()
	visited := []string{class.Name}
	for name := class.Superclass; ; {
		if typ, ok := r.superclassType(name); ok {
			superclass = typ
			break
		}

		ancestor, ok := r.classes[name]
		if !ok {
			r.logger.Debug("Superclass chain ends at unknown root",
				"module", module,
				"class", class.Name,
				"root", name)
			break
		}
		if slices.Contains(visited, name) {
			return nil, &ResolveError{
				Module: module,
				Type:   mapping.Name,
				Chain:  append(visited, name),
				Err:    ErrCyclicType,
			}
		}
		visited = append(visited, name)

		properties = appendPtrs(properties, ancestor.Properties)
		functions = appendPtrs(functions, ancestor.Functions)
		signals = appendPtrs(signals, ancestor.Signals)
		name = ancestor.Superclass
	}

	properties = appendPtrs(properties, class.Properties)
	functions = appendPtrs(functions, class.Functions)
	signals = appendPtrs(signals, class.Signals)

	// Stable sorts keep declared members after inherited ones of the same
	// name, so the declared member wins below.
	slices.SortStableFunc(properties, func(a, b *typespec.Property) int { return strings.Compare(a.Name, b.Name) })
	slices.SortStableFunc(functions, func(a, b *typespec.Function) int { return strings.Compare(a.Name, b.Name) })
	slices.SortStableFunc(signals, func(a, b *typespec.Signal) int { return strings.Compare(a.Name, b.Name) })

	info := &ClassInfo{
		Superclass:  superclass,
		Description: class.Description,
		Details:     class.Details,
		Flags:       classFlags(class),
		Properties:  make(map[string]Property, len(properties)),
		Functions:   make(map[string]Function, len(functions)),
		Signals:     make(map[string]Signal, len(signals)),
	}

	for _, p := range properties {
		prop, err := r.resolveProperty(p)
		if err != nil {
			return nil, annotate(err, module, mapping.Name, p.Name)
		}
		info.Properties[p.Name] = prop
	}
	for _, f := range functions {
		info.Functions[f.Name] = r.resolveFunction(f)
	}
	for _, s := range signals {
		info.Signals[s.Name] = r.resolveSignal(s)
	}

	return info, nil
}

// classFlags: singleton takes precedence over uncreatable.
func classFlags(c *typespec.Class) []Flag {
	switch {
	case c.Singleton:
		return []Flag{FlagSingleton}
	case c.Uncreatable:
		return []Flag{FlagUncreatable}
	default:
		return nil
	}
}

func appendPtrs[T any](dst []*T, src []T) []*T {
	for i := range src {
		dst = append(dst, &src[i])
	}
	return dst
}

// annotate places a member resolution error in the context of its class.
func annotate(err error, module, typeName, member string) error {
	var re *ResolveError
	if !errors.As(err, &re) {
		return &ResolveError{Module: module, Type: typeName, Member: member, Err: err}
	}
	out := *re
	out.Module = module
	out.Type = typeName
	out.Member = member
	return &out
}
