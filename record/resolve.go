package record

import (
	"sort"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/schema/attr"
)

// errMixing mirrors the rule that a record's attributes come from exactly
// one place: either the explicit list handed to the composer or the
// type's own declarative definition.
const errMixing = "mixing of explicit and declarative attribute definitions is prohibited"

// Names synthesizes attribute builders from plain names. Synthesized
// attributes carry no default, no type constraint, and their initializer
// keyword is the name verbatim.
func Names(names ...string) []*attr.A {
	out := make([]*attr.A, len(names))
	for i, n := range names {
		out[i] = attr.New(n).KeepName()
	}
	return out
}

// Resolve produces the canonical, ordered, deduplicated descriptor list of
// a record from either an explicit attribute list or the target's
// declarative definition.
//
// Explicit attributes keep their given order. Declarative attributes are
// ordered by builder creation order, regardless of the order the Attrs
// slice was assembled in. The legacy defaults map attaches literal
// defaults to explicitly-named attributes; an entry for an attribute that
// already carries a default, or for an unknown attribute, is a
// configuration error, as is combining the map (or the explicit list)
// with a declarative definition.
func Resolve(typeName string, target any, explicit []*attr.A, defaults map[string]any) ([]*attr.Descriptor, error) {
	var declared []*attr.A
	if definer, ok := target.(attrkit.Definer); ok {
		declared = definer.Attrs()
	}
	if len(declared) > 0 && (explicit != nil || len(defaults) > 0) {
		return nil, attrkit.NewConfigError(typeName, "", errMixing)
	}

	source := explicit
	declarative := source == nil
	if declarative {
		source = declared
	}

	ds, err := finalize(typeName, source)
	if err != nil {
		return nil, err
	}
	if declarative {
		sort.SliceStable(ds, func(i, j int) bool { return ds[i].Seq() < ds[j].Seq() })
	}
	if err := applyDefaults(typeName, ds, defaults); err != nil {
		return nil, err
	}
	return ds, nil
}

// finalize materializes builders into descriptors and enforces the static
// invariants: builder errors, empty names, and duplicates all fail loudly.
func finalize(typeName string, attrs []*attr.A) ([]*attr.Descriptor, error) {
	ds := make([]*attr.Descriptor, 0, len(attrs))
	seen := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		d := a.Descriptor()
		if d.Err != nil {
			return nil, attrkit.NewConfigErrorCause(typeName, d.Name, "invalid attribute", d.Err)
		}
		if d.Name == "" {
			return nil, attrkit.NewConfigError(typeName, "", "attribute name cannot be empty")
		}
		if _, ok := seen[d.Name]; ok {
			return nil, attrkit.NewConfigError(typeName, d.Name, "duplicate attribute name")
		}
		seen[d.Name] = struct{}{}
		ds = append(ds, d)
	}
	return ds, nil
}

// applyDefaults folds the legacy defaults map into the descriptor list.
// Descriptors are immutable, so affected entries are replaced by copies.
func applyDefaults(typeName string, ds []*attr.Descriptor, defaults map[string]any) error {
	for name, value := range defaults {
		i := -1
		for j, d := range ds {
			if d.Name == name {
				i = j
				break
			}
		}
		if i < 0 {
			return attrkit.NewConfigError(typeName, name, "default refers to an unknown attribute")
		}
		if !ds[i].Required() {
			return attrkit.NewConfigError(typeName, name, "attribute already has a default")
		}
		nd := *ds[i]
		nd.Default = value
		nd.HasDefault = true
		ds[i] = &nd
	}
	return nil
}
