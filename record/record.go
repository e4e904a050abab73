package record

import (
	"fmt"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/schema/attr"
)

// Type is a runtime record type: an attribute list plus the generated
// operations wired onto it. A Type is built once at composition time and
// is safe for concurrent use afterwards; instances are not synchronized.
type Type struct {
	name  string
	attrs []*attr.Descriptor
	index map[string]*attr.Descriptor

	cmpAttrs  []*attr.Descriptor
	hasCmp    bool
	reprAttrs []*attr.Descriptor
	hasRepr   bool
	initAttrs []*attr.Descriptor
	hasInit   bool
	protected map[string]struct{}
	base      BaseInit
}

// NewType returns a bare record type with no generated operations.
// Operations are wired with AddRepr, AddCmp, AddImmutability, and AddInit,
// or all at once through Compose.
func NewType(name string) *Type {
	return &Type{name: name, index: make(map[string]*attr.Descriptor)}
}

// Name returns the record type name.
func (t *Type) Name() string { return t.name }

// Attrs returns the attributes known to the type, in canonical order.
func (t *Type) Attrs() []*attr.Descriptor {
	out := make([]*attr.Descriptor, len(t.attrs))
	copy(out, t.attrs)
	return out
}

// HasCmp reports whether comparison operations were generated.
func (t *Type) HasCmp() bool { return t.hasCmp }

// HasRepr reports whether the string representation was generated.
func (t *Type) HasRepr() bool { return t.hasRepr }

// HasInit reports whether the initializer was generated.
func (t *Type) HasInit() bool { return t.hasInit }

// Immutable reports whether immutability enforcement was generated.
func (t *Type) Immutable() bool { return t.protected != nil }

// register merges descriptors into the canonical attribute list.
// The first descriptor registered under a name wins.
func (t *Type) register(ds []*attr.Descriptor) {
	for _, d := range ds {
		if _, ok := t.index[d.Name]; ok {
			continue
		}
		t.index[d.Name] = d
		t.attrs = append(t.attrs, d)
	}
}

// Instance is a value of a runtime record type. Attribute values live in
// an open map: names declared on the type participate in the generated
// operations, undeclared names are plain instance extras.
type Instance struct {
	t      *Type
	values map[string]any

	// constructing permits writes to protected attributes for the
	// duration of an initializer call.
	constructing bool
}

// NewRaw constructs an instance directly from a value map, bypassing the
// generated initializer: no aliases, no defaults, no type checks, and no
// required-attribute enforcement. It is the raw construction context, so
// protected attributes may be populated here.
func (t *Type) NewRaw(values map[string]any) *Instance {
	in := &Instance{t: t, values: make(map[string]any, len(values))}
	in.constructing = true
	for name, v := range values {
		// Cannot fail while constructing.
		_ = in.Set(name, v)
	}
	in.constructing = false
	return in
}

// Type returns the record type of the instance.
func (in *Instance) Type() *Type { return in.t }

// Get returns the value of the named attribute and whether it is set.
func (in *Instance) Get(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// MustGet returns the value of the named attribute and panics if unset.
func (in *Instance) MustGet(name string) any {
	v, ok := in.values[name]
	if !ok {
		panic(fmt.Sprintf("attrkit: attribute %q of %s is not set", name, in.t.name))
	}
	return v
}

// project maps the instance onto the ordered tuple of values of the given
// descriptors. Unset attributes project to the Nothing sentinel.
func (in *Instance) project(ds []*attr.Descriptor) []any {
	tuple := make([]any, len(ds))
	for i, d := range ds {
		v, ok := in.values[d.Name]
		if !ok {
			tuple[i] = attrkit.Nothing
		} else {
			tuple[i] = v
		}
	}
	return tuple
}
