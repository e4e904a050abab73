// Package record composes runtime record types from attribute descriptors.
//
// A record type carries up to four generated behaviors: comparison
// operations, a diagnostic string representation, a keyword-argument
// initializer, and immutability enforcement. Compose applies them in a
// fixed order from a declarative definition or an explicit attribute list:
//
//	ty, err := record.Compose(Endpoint{})
//	ty, err := record.Compose(nil,
//	    record.WithName("Endpoint"),
//	    record.WithAttrs(attr.New("host"), attr.New("port").Default(80)),
//	)
//
// Instances are constructed through the generated initializer:
//
//	inst, err := ty.New(map[string]any{"host": "example.org"})
//
// Each generator can also be applied on its own via AddRepr, AddCmp,
// AddImmutability, and AddInit, each taking its own descriptor list.
// Types must be fully configured before instances are constructed.
package record
