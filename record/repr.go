package record

import (
	"fmt"
	"strings"

	"github.com/syssam/attrkit/schema/attr"
)

// AddRepr wires the diagnostic string representation onto the type,
// rendering the given attributes in list order.
func (t *Type) AddRepr(attrs ...*attr.A) error {
	ds, err := finalize(t.name, attrs)
	if err != nil {
		return err
	}
	t.addRepr(ds)
	return nil
}

func (t *Type) addRepr(ds []*attr.Descriptor) {
	t.register(ds)
	t.reprAttrs = ds
	t.hasRepr = true
}

// String renders the instance as <TypeName(a=1, b="x")> with each value in
// its own diagnostic representation. Unset attributes render as NOTHING.
// Without the representation generator applied it falls back to <TypeName>.
func (in *Instance) String() string {
	if !in.t.hasRepr {
		return "<" + in.t.name + ">"
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(in.t.name)
	b.WriteString("(")
	for i, d := range in.t.reprAttrs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.Name)
		b.WriteString("=")
		if v, ok := in.values[d.Name]; ok {
			b.WriteString(reprValue(v))
		} else {
			b.WriteString("NOTHING")
		}
	}
	b.WriteString(")>")
	return b.String()
}

// reprValue renders one value for diagnostics. Stringer sentinels keep
// their self-representation; everything else uses Go syntax so strings
// stay quoted and escaped.
func reprValue(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case fmt.GoStringer, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		return fmt.Sprintf("%#v", v)
	default:
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%#v", v)
	}
}
