package record

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/schema/attr"
)

// Ordering is the three-way result of a comparison. Incomparable stands in
// for the "not supported" signal of two-sided dispatch: operands of
// different record types are never ordered and never raise.
type Ordering int8

const (
	// Less orders the receiver before the operand.
	Less Ordering = iota - 1
	// Equal means both operands project onto the same value tuple.
	Equal
	// Greater orders the receiver after the operand.
	Greater
	// Incomparable means the operands cannot be compared at all.
	Incomparable
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Incomparable"
	}
}

// AddCmp wires the comparison operations and the hash onto the type,
// computed over the given attributes in list order.
func (t *Type) AddCmp(attrs ...*attr.A) error {
	ds, err := finalize(t.name, attrs)
	if err != nil {
		return err
	}
	t.addCmp(ds)
	return nil
}

func (t *Type) addCmp(ds []*attr.Descriptor) {
	t.register(ds)
	t.cmpAttrs = ds
	t.hasCmp = true
}

// Compare compares two instances by projecting both onto the ordered tuple
// of their comparison attributes. It returns Incomparable when the operand
// belongs to a different record type: type identity is strict, so related
// types never compare asymmetrically.
func (in *Instance) Compare(other *Instance) Ordering {
	if in == nil || other == nil || other.t != in.t || !in.t.hasCmp {
		return Incomparable
	}
	return compareTuple(in.project(in.t.cmpAttrs), other.project(in.t.cmpAttrs))
}

// Equal reports whether both instances project onto equal value tuples.
// Incomparable operands are never equal.
func (in *Instance) Equal(other *Instance) bool {
	return in.Compare(other) == Equal
}

// NotEqual is the negation of Equal. For incomparable operands it is true,
// matching the host-language fallback of two-sided dispatch.
func (in *Instance) NotEqual(other *Instance) bool {
	return !in.Equal(other)
}

// Less reports whether the receiver orders before the operand.
// Incomparable operands are never ordered.
func (in *Instance) Less(other *Instance) bool {
	return in.Compare(other) == Less
}

// LessEqual reports whether the receiver orders before or equal to the operand.
func (in *Instance) LessEqual(other *Instance) bool {
	o := in.Compare(other)
	return o == Less || o == Equal
}

// Greater reports whether the receiver orders after the operand.
func (in *Instance) Greater(other *Instance) bool {
	return in.Compare(other) == Greater
}

// GreaterEqual reports whether the receiver orders after or equal to the operand.
func (in *Instance) GreaterEqual(other *Instance) bool {
	o := in.Compare(other)
	return o == Greater || o == Equal
}

// Hash returns a hash of the comparison value tuple. Equal instances hash
// equally. Values the tuple encoder cannot handle make the instance
// unhashable, which is reported as an error.
func (in *Instance) Hash() (uint64, error) {
	if !in.t.hasCmp {
		return 0, attrkit.NewConfigError(in.t.name, "", "comparison operations were not generated")
	}
	b, err := msgpack.Marshal(in.project(in.t.cmpAttrs))
	if err != nil {
		return 0, fmt.Errorf("attrkit: hashing %s: %w", in.t.name, err)
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64(), nil
}

// compareTuple compares two equally-sized value tuples element-wise.
// The first unequal element decides; an incomparable element makes the
// whole tuple incomparable.
func compareTuple(a, b []any) Ordering {
	for i := range a {
		if o := compareValue(a[i], b[i]); o != Equal {
			return o
		}
	}
	return Equal
}

// compareValue applies native comparison semantics to two values.
// Ordered kinds (bools, integers, floats, strings) compare by value,
// slices and arrays lexicographically. Values of differing types, and
// unordered kinds that are not deeply equal, are incomparable.
func compareValue(a, b any) Ordering {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return Equal
		}
		return Incomparable
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return Incomparable
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Bool:
		return compareBool(va.Bool(), vb.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareOrdered(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return compareOrdered(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return compareOrdered(va.Float(), vb.Float())
	case reflect.String:
		return compareOrdered(va.String(), vb.String())
	case reflect.Slice, reflect.Array:
		return compareSequence(va, vb)
	default:
		if reflect.DeepEqual(a, b) {
			return Equal
		}
		return Incomparable
	}
}

func compareBool(a, b bool) Ordering {
	switch {
	case a == b:
		return Equal
	case !a:
		return Less
	default:
		return Greater
	}
}

func compareOrdered[T int64 | uint64 | float64 | string](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// compareSequence compares slices and arrays lexicographically, the same
// way tuples compare: element-wise, shorter prefix first.
func compareSequence(a, b reflect.Value) Ordering {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if o := compareValue(a.Index(i).Interface(), b.Index(i).Interface()); o != Equal {
			return o
		}
	}
	return compareOrdered(int64(a.Len()), int64(b.Len()))
}
