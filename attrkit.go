package attrkit

import (
	"github.com/syssam/attrkit/schema/attr"
)

// Definer is implemented by types that declare their own attributes.
// It is the declarative counterpart to passing an explicit attribute
// list to the composer; the two styles must not be mixed on one type.
type Definer interface {
	// Attrs returns the attribute builders of the record. The canonical
	// attribute order is the order the builders were created in, so the
	// slice may be assembled in any order.
	Attrs() []*attr.A
}

// Schema is the default implementation for the Definer interface.
// It should be embedded in declarative record definitions:
//
//	type Endpoint struct {
//	    attrkit.Schema
//	}
//
//	func (Endpoint) Attrs() []*attr.A {
//	    return []*attr.A{
//	        attr.New("host").Default("localhost"),
//	        attr.New("port").GoType(0),
//	    }
//	}
type Schema struct{}

// Attrs returns the attributes of the record.
// Override this method to declare attributes.
func (Schema) Attrs() []*attr.A { return nil }

// Schema must implement the Definer interface.
var _ Definer = (*Schema)(nil)
