package attr

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
)

// counter orders attributes by creation time. Declarative definitions rely
// on it to recover the order attributes were written in, so it only ever
// increases; the absolute values carry no meaning.
var counter atomic.Uint64

// Descriptor holds the finalized generation options of one attribute.
// Descriptors are immutable value objects: they are created once, either
// by a builder or synthesized from a plain name, and never modified after
// resolution.
type Descriptor struct {
	Name          string       // storage name, unique within a record
	Alias         string       // keyword name accepted by the initializer
	Default       any          // literal default value
	HasDefault    bool         // distinguishes "no default" from a nil default
	DefaultFunc   func() any   // factory default, invoked per construction
	Type          reflect.Type // runtime type constraint (nil = unconstrained)
	OmitCmp       bool         // skip in comparison operations
	OmitInit      bool         // skip in the generated initializer
	OmitRepr      bool         // skip in the string representation
	OmitImmutable bool         // skip in immutability enforcement
	Comment       string
	Err           error // deferred builder error, checked at resolution

	seq uint64
}

// Seq returns the creation sequence number of the descriptor. Later-created
// attributes have strictly greater sequence numbers.
func (d *Descriptor) Seq() uint64 { return d.seq }

// Required reports whether the attribute must be supplied at construction.
func (d *Descriptor) Required() bool { return !d.HasDefault && d.DefaultFunc == nil }

// Accepts reports whether v satisfies the attribute's type constraint.
// Unconstrained attributes accept every value; a constrained attribute
// rejects untyped nil.
func (d *Descriptor) Accepts(v any) bool {
	if d.Type == nil {
		return true
	}
	rt := reflect.TypeOf(v)
	if rt == nil {
		return false
	}
	if d.Type.Kind() == reflect.Interface {
		return rt.Implements(d.Type)
	}
	return rt == d.Type || rt.AssignableTo(d.Type)
}

// A is an attribute builder. Builders are not safe for concurrent use and
// must not be shared between record types.
type A struct {
	desc     Descriptor
	alias    string
	hasAlias bool
	keepName bool
}

// New returns a builder for an attribute with the given storage name.
func New(name string) *A {
	return &A{desc: Descriptor{Name: name, seq: counter.Add(1)}}
}

// Of synthesizes a finalized descriptor from a plain name: no default, no
// type constraint, and the keyword alias is the name verbatim.
func Of(name string) *Descriptor {
	return New(name).KeepName().Descriptor()
}

// Default sets a literal default value for the attribute.
func (a *A) Default(v any) *A {
	if a.desc.HasDefault || a.desc.DefaultFunc != nil {
		a.err(fmt.Errorf("default already set for %q", a.desc.Name))
		return a
	}
	a.desc.Default = v
	a.desc.HasDefault = true
	return a
}

// DefaultFunc sets a factory default. fn must be a niladic function with a
// single result; it is invoked once per construction so every instance
// receives a fresh value. The result type is checked against GoType when
// both are configured.
func (a *A) DefaultFunc(fn any) *A {
	if a.desc.HasDefault || a.desc.DefaultFunc != nil {
		a.err(fmt.Errorf("default already set for %q", a.desc.Name))
		return a
	}
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		a.err(fmt.Errorf("DefaultFunc for %q must be a function, got %T", a.desc.Name, fn))
		return a
	}
	ft := fv.Type()
	if ft.NumIn() != 0 || ft.NumOut() != 1 {
		a.err(fmt.Errorf("DefaultFunc for %q must take no arguments and return one value", a.desc.Name))
		return a
	}
	a.desc.DefaultFunc = func() any { return fv.Call(nil)[0].Interface() }
	return a
}

// GoType constrains the runtime type of the attribute. It accepts either a
// sample value or a reflect.Type (use the latter for interface constraints).
func (a *A) GoType(sample any) *A {
	switch t := sample.(type) {
	case nil:
		a.err(fmt.Errorf("GoType for %q requires a sample value or reflect.Type", a.desc.Name))
	case reflect.Type:
		a.desc.Type = t
	default:
		a.desc.Type = reflect.TypeOf(sample)
	}
	return a
}

// Alias overrides the keyword name accepted by the generated initializer.
func (a *A) Alias(alias string) *A {
	a.alias = alias
	a.hasAlias = true
	return a
}

// KeepName disables underscore-stripping: the initializer keyword is the
// attribute name verbatim.
func (a *A) KeepName() *A {
	a.keepName = true
	return a
}

// OmitCmp excludes the attribute from the comparison operations.
func (a *A) OmitCmp() *A {
	a.desc.OmitCmp = true
	return a
}

// OmitInit excludes the attribute from the generated initializer.
func (a *A) OmitInit() *A {
	a.desc.OmitInit = true
	return a
}

// OmitRepr excludes the attribute from the string representation.
func (a *A) OmitRepr() *A {
	a.desc.OmitRepr = true
	return a
}

// OmitImmutable excludes the attribute from immutability enforcement.
func (a *A) OmitImmutable() *A {
	a.desc.OmitImmutable = true
	return a
}

// Comment sets a description used by the static code generator.
func (a *A) Comment(c string) *A {
	a.desc.Comment = c
	return a
}

// Descriptor finalizes the builder and returns a copy of the descriptor,
// so later builder calls cannot reach descriptors already handed out.
// Errors accumulated during building are carried on Descriptor.Err and
// reported when the attribute is resolved into a record type.
func (a *A) Descriptor() *Descriptor {
	a.desc.Alias = a.resolveAlias()
	if a.desc.Err == nil {
		a.checkDefaultType()
	}
	d := a.desc
	return &d
}

func (a *A) resolveAlias() string {
	switch {
	case a.hasAlias:
		return a.alias
	case a.keepName:
		return a.desc.Name
	default:
		alias := strings.TrimLeft(a.desc.Name, "_")
		if alias == "" {
			// A fully-underscored name has no strippable form.
			return a.desc.Name
		}
		return alias
	}
}

// checkDefaultType verifies the configured default against GoType.
// Factory results are checked by probing the wrapped function's dynamic
// result at construction time, so only literal defaults are checked here.
func (a *A) checkDefaultType() {
	if a.desc.Type == nil || !a.desc.HasDefault {
		return
	}
	if !a.desc.Accepts(a.desc.Default) {
		a.err(fmt.Errorf("default value %v is not a %s", a.desc.Default, a.desc.Type))
	}
}

func (a *A) err(err error) {
	if a.desc.Err == nil {
		a.desc.Err = err
	}
}
