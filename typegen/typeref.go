package typegen

import "github.com/skdltmxn/typegen-go/internal/ctype"

// ResolveType resolves a bare native type name. List wrappers are unwrapped
// into the list type of the target language; names that are neither mapped
// nor a known enum resolve to the unknown marker.
func (r *Resolver) ResolveType(cname string) Type {
	if _, inner, ok := ctype.Unwrap(cname, r.opts.ListWrappers); ok {
		of := r.ResolveType(inner)
		return Type{
			Source: SourceBuiltin,
			Module: r.opts.ListModule,
			Name:   r.opts.ListName,
			Of:     &of,
		}
	}

	if m, ok := r.mappings[cname]; ok {
		return r.exposedType(m.Module, m.Name)
	}

	if e, ok := r.enums[cname]; ok {
		return r.exposedType(e.Module, e.Name)
	}

	r.logger.Debug("Unknown type", "cname", cname)
	return UnknownType()
}

// LookupType returns the declaration a native name refers to: a
// *typespec.TypeMapping, *typespec.Enum, *typespec.Gadget or
// *typespec.Class, in that order of precedence.
func (r *Resolver) LookupType(cname string) (any, error) {
	if m, ok := r.mappings[cname]; ok {
		return m, nil
	}
	if e, ok := r.enums[cname]; ok {
		return e, nil
	}
	if g, ok := r.gadgets[cname]; ok {
		return g, nil
	}
	if c, ok := r.classes[cname]; ok {
		return c, nil
	}
	return nil, ErrTypeNotFound
}

// superclassType resolves an exposed ancestor directly from its mapping.
func (r *Resolver) superclassType(cname string) (Type, bool) {
	m, ok := r.mappings[cname]
	if !ok {
		return Type{}, false
	}
	return r.exposedType(m.Module, m.Name), true
}
