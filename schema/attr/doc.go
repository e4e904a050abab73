// Package attr provides fluent builders for defining record attributes.
//
// An attribute describes one named field and its generation options:
//
//	attr.New("host").Default("localhost")
//	attr.New("port").GoType(0)
//	attr.New("tags").DefaultFunc(func() []string { return []string{} })
//
// # Defaults
//
// Attributes support literal defaults and factory defaults. A factory is
// invoked once per construction, so every instance receives a fresh value:
//
//	attr.New("created_at").DefaultFunc(time.Now)
//	attr.New("id").DefaultFunc(uuid.New)
//
// Default and DefaultFunc are mutually exclusive; configuring both is
// recorded on the descriptor and surfaces as a configuration error when
// the attribute is resolved.
//
// # Type Constraints
//
// GoType constrains the runtime type accepted at construction:
//
//	attr.New("port").GoType(0)          // must be an int
//	attr.New("body").GoType(io.Reader(nil)) // not valid; pass a reflect.Type for interfaces
//	attr.New("r").GoType(reflect.TypeOf((*io.Reader)(nil)).Elem())
//
// # Initializer Aliases
//
// The keyword name accepted by the generated initializer is derived by
// stripping leading underscores from the attribute name. Alias overrides
// it and KeepName disables the stripping:
//
//	attr.New("_state")              // keyword "state"
//	attr.New("_state").KeepName()   // keyword "_state"
//	attr.New("_state").Alias("st")  // keyword "st"
//
// # Generator Exclusion
//
// Each of the four generated behaviors can skip an attribute
// independently via OmitCmp, OmitInit, OmitRepr, and OmitImmutable.
package attr
