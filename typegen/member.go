package typegen

import (
	"slices"

	"github.com/skdltmxn/typegen-go/typespec"
)

func (r *Resolver) resolveProperty(p *typespec.Property) (Property, error) {
	typ, err := r.resolvePropertyType(p.Type, nil)
	if err != nil {
		return Property{}, err
	}
	return Property{
		Type:    typ,
		Details: p.Details,
		Flags:   propertyFlags(p),
	}, nil
}

// resolvePropertyType expands gadgets inline. stack holds the gadgets
// currently being expanded.
func (r *Resolver) resolvePropertyType(cname string, stack []string) (PropertyType, error) {
	g, ok := r.gadgets[cname]
	if !ok {
		return r.ResolveType(cname), nil
	}

	if slices.Contains(stack, cname) {
		return nil, &ResolveError{
			Type:  cname,
			Chain: append(slices.Clone(stack), cname),
			Err:   ErrCyclicType,
		}
	}
	if len(stack) >= r.opts.MaxDepth {
		return nil, &ResolveError{
			Type:  cname,
			Chain: append(slices.Clone(stack), cname),
			Err:   ErrMaxDepth,
		}
	}

	stack = append(stack, cname)
	gadget := make(Gadget, len(g.Properties))
	for i := range g.Properties {
		gp := &g.Properties[i]
		typ, err := r.resolvePropertyType(gp.Type, stack)
		if err != nil {
			return nil, err
		}
		gadget[gp.Name] = typ
	}
	return gadget, nil
}

// propertyFlags: write-only and read-only are exclusive.
func propertyFlags(p *typespec.Property) []Flag {
	var flags []Flag
	if p.Default {
		flags = append(flags, FlagDefault)
	}
	if !p.Readable {
		flags = append(flags, FlagWriteonly)
	} else if !p.Writable {
		flags = append(flags, FlagReadonly)
	}
	return flags
}

func (r *Resolver) resolveFunction(f *typespec.Function) Function {
	return Function{
		Name:    f.Name,
		Ret:     r.ResolveType(f.Ret),
		Details: f.Details,
		Params:  r.resolveParams(f.Params),
	}
}

func (r *Resolver) resolveSignal(s *typespec.Signal) Signal {
	return Signal{
		Name:    s.Name,
		Details: s.Details,
		Params:  r.resolveParams(s.Params),
	}
}

func (r *Resolver) resolveParams(params []typespec.FnParam) []Param {
	if len(params) == 0 {
		return nil
	}
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = Param{Name: p.Name, Type: r.ResolveType(p.Type)}
	}
	return out
}
