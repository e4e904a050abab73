// Package attrkit generates record boilerplate at runtime: comparison
// operations, a diagnostic string representation, a keyword-argument
// initializer, and optional immutability enforcement, all derived from a
// list of attribute descriptors.
//
// # Defining Attributes
//
// Attributes are described with the fluent builders in schema/attr:
//
//	attr.New("host").GoType("").Default("localhost")
//	attr.New("port").GoType(0)
//	attr.New("tags").DefaultFunc(func() []string { return nil })
//
// # Declarative Definition
//
// A type may declare its own attributes by implementing Definer, usually
// by embedding Schema:
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
//
// Declarative attribute order is the order the builders were created in,
// not the order of the returned slice.
//
// # Composing a Record Type
//
// The record package turns attributes into a runtime type carrying the
// generated operations:
//
//	ty, err := record.Compose(Endpoint{})
//	inst, err := ty.New(map[string]any{"port": 443})
//	fmt.Println(inst) // <Endpoint(host="localhost", port=443)>
//
// Explicit and declarative definition styles are mutually exclusive;
// mixing them is a configuration error.
//
// # Static Code Generation
//
// The compiler/load and compiler/gen packages snapshot composed records
// and emit concrete Go struct definitions with the same operations
// attached at build time.
package attrkit
