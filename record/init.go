package record

import (
	"maps"
	"reflect"
	"sort"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/schema/attr"
)

// BaseInit is the prior initializer of a record type. The generated
// initializer invokes it after all attributes were consumed, passing the
// remaining positional and keyword arguments. Keyword collisions with
// attribute aliases were already removed and cannot leak through.
type BaseInit func(in *Instance, args []any, kwargs map[string]any) error

// AddInit wires the keyword-argument initializer onto the type, consuming
// the given attributes in list order.
func (t *Type) AddInit(attrs ...*attr.A) error {
	ds, err := finalize(t.name, attrs)
	if err != nil {
		return err
	}
	t.addInit(ds)
	return nil
}

func (t *Type) addInit(ds []*attr.Descriptor) {
	t.register(ds)
	t.initAttrs = ds
	t.hasInit = true
}

// SetBaseInit installs the prior initializer invoked by New for leftover
// arguments. Without one, any leftover argument fails construction.
func (t *Type) SetBaseInit(base BaseInit) { t.base = base }

// New constructs an instance from keyword arguments. Per attribute, in
// list order: the keyword alias is consumed from kwargs (a Nothing value
// counts as absent), then the literal default applies, then the factory
// default produces a fresh value; a still-missing value fails with a
// MissingArgumentError naming the alias. Values failing the attribute's
// type constraint fail with a TypeMismatchError. Assignments go under the
// true attribute name through the construction bypass, so immutability
// and initialization cooperate.
//
// Positional arguments are forwarded verbatim to the base initializer
// along with unconsumed keywords. Errors abort the whole construction;
// no partial instance is returned.
func (t *Type) New(kwargs map[string]any, args ...any) (*Instance, error) {
	if !t.hasInit {
		return nil, attrkit.NewConfigError(t.name, "", "initializer was not generated")
	}
	kw := maps.Clone(kwargs)
	if kw == nil {
		kw = make(map[string]any)
	}
	in := &Instance{t: t, values: make(map[string]any, len(t.initAttrs))}
	in.constructing = true
	defer func() { in.constructing = false }()

	for _, d := range t.initAttrs {
		v, ok := kw[d.Alias]
		if ok {
			delete(kw, d.Alias)
			if v == attrkit.Nothing {
				ok = false
			}
		}
		if !ok {
			switch {
			case d.HasDefault:
				v = d.Default
			case d.DefaultFunc != nil:
				v = d.DefaultFunc()
			default:
				return nil, attrkit.NewMissingArgumentError(t.name, d.Alias)
			}
		}
		if !d.Accepts(v) {
			return nil, attrkit.NewTypeMismatchError(t.name, d.Name, d.Type, reflect.TypeOf(v))
		}
		if err := in.Set(d.Name, v); err != nil {
			return nil, err
		}
	}

	if t.base != nil {
		if err := t.base(in, args, kw); err != nil {
			return nil, err
		}
		return in, nil
	}
	if len(args) > 0 {
		return nil, attrkit.NewPositionalArgumentError(t.name)
	}
	if len(kw) > 0 {
		// Deterministic choice of the reported leftover.
		names := make([]string, 0, len(kw))
		for name := range kw {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, attrkit.NewUnknownArgumentError(t.name, names[0])
	}
	return in, nil
}
