// Package typegen resolves a raw class/property/enum specification extracted
// from native headers into per-module type catalogs for a declarative UI
// language.
package typegen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions.
var (
	// ErrCyclicType indicates a gadget or superclass chain refers back to itself.
	ErrCyclicType = errors.New("typegen: cyclic type reference")

	// ErrMaxDepth indicates gadget nesting deeper than the configured bound.
	ErrMaxDepth = errors.New("typegen: gadget nesting too deep")

	// ErrEmptyModule indicates an empty target module name.
	ErrEmptyModule = errors.New("typegen: empty module name")

	// ErrTypeNotFound indicates a type name is not declared in the specification.
	ErrTypeNotFound = errors.New("typegen: type not found")
)

// ResolveError provides detailed information about resolution failures.
type ResolveError struct {
	Module string   // Target module being resolved
	Type   string   // Exposed or native name of the type being resolved
	Member string   // Property name, if the failure is inside a member
	Chain  []string // Native names visited when the failure occurred
	Err    error    // Underlying error
}

func (e *ResolveError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "typegen: resolve %s", e.Type)
	if e.Member != "" {
		fmt.Fprintf(&b, ".%s", e.Member)
	}
	if e.Module != "" {
		fmt.Fprintf(&b, " in module %s", e.Module)
	}
	if len(e.Chain) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Chain, " -> "))
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ResolveError) Unwrap() error { return e.Err }
