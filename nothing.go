package attrkit

// nothing is the unexported type behind the Nothing sentinel. Having its
// own type guarantees the sentinel can never compare equal to a value a
// caller could construct, including nil.
type nothing struct{}

// String returns the stable self-representation of the sentinel.
func (nothing) String() string { return "NOTHING" }

// Nothing marks the absence of a value. It is distinct from nil and from
// every domain value: a keyword argument whose value is Nothing is treated
// as not supplied, and an attribute without a default reports Nothing.
var Nothing = nothing{}
