package record

import (
	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/schema/attr"
)

// AddImmutability wires write interception onto the type. The protected
// name set is computed once from the given attributes; writes to other
// names pass through untouched.
func (t *Type) AddImmutability(attrs ...*attr.A) error {
	ds, err := finalize(t.name, attrs)
	if err != nil {
		return err
	}
	t.addImmutability(ds)
	return nil
}

func (t *Type) addImmutability(ds []*attr.Descriptor) {
	t.register(ds)
	t.protected = make(map[string]struct{}, len(ds))
	for _, d := range ds {
		t.protected[d.Name] = struct{}{}
	}
}

// Set writes an attribute value. Writes to protected names are permitted
// only while construction is in progress; any later write fails with an
// ImmutableFieldError. Unprotected names, including undeclared instance
// extras, are always writable.
func (in *Instance) Set(name string, v any) error {
	if !in.constructing && in.t.protected != nil {
		if _, ok := in.t.protected[name]; ok {
			return attrkit.NewImmutableFieldError(in.t.name, name)
		}
	}
	in.values[name] = v
	return nil
}
