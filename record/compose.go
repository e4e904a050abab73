package record

import (
	"reflect"

	"github.com/syssam/attrkit"
	"github.com/syssam/attrkit/schema/attr"
)

// Config collects the composition settings. The three behavioral
// generators default to on, immutability to off.
type Config struct {
	name      string
	attrs     []*attr.A
	defaults  map[string]any
	base      BaseInit
	cmp       bool
	repr      bool
	init      bool
	immutable bool
}

// Option configures record composition.
type Option func(*Config) error

// WithName overrides the record type name. Without it, the name is the
// reflected name of the composition target.
func WithName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return attrkit.NewConfigError("", "", "record name cannot be empty")
		}
		c.name = name
		return nil
	}
}

// WithAttrs supplies the explicit attribute list, in order. It must not be
// combined with a declarative definition on the target.
func WithAttrs(attrs ...*attr.A) Option {
	return func(c *Config) error {
		c.attrs = append(c.attrs, attrs...)
		return nil
	}
}

// WithNames supplies explicit attributes as plain names, in order.
// See Names for the synthesized descriptor shape.
func WithNames(names ...string) Option {
	return func(c *Config) error {
		c.attrs = append(c.attrs, Names(names...)...)
		return nil
	}
}

// WithDefaults attaches literal defaults to explicitly-named attributes.
// Only valid together with WithAttrs or WithNames.
func WithDefaults(defaults map[string]any) Option {
	return func(c *Config) error {
		if c.defaults == nil {
			c.defaults = make(map[string]any, len(defaults))
		}
		for k, v := range defaults {
			c.defaults[k] = v
		}
		return nil
	}
}

// WithBaseInit installs the prior initializer that receives leftover
// positional and keyword arguments from the generated initializer.
func WithBaseInit(base BaseInit) Option {
	return func(c *Config) error {
		if base == nil {
			return attrkit.NewConfigError("", "", "base initializer cannot be nil")
		}
		c.base = base
		return nil
	}
}

// WithoutCmp skips generation of the comparison operations.
func WithoutCmp() Option {
	return func(c *Config) error {
		c.cmp = false
		return nil
	}
}

// WithoutRepr skips generation of the string representation.
func WithoutRepr() Option {
	return func(c *Config) error {
		c.repr = false
		return nil
	}
}

// WithoutInit skips generation of the initializer.
func WithoutInit() Option {
	return func(c *Config) error {
		c.init = false
		return nil
	}
}

// WithImmutable enables immutability enforcement, which is off by default.
func WithImmutable() Option {
	return func(c *Config) error {
		c.immutable = true
		return nil
	}
}

// Compose resolves the record's attributes and applies the selected
// generators to a fresh type in a fixed order: representation, then
// comparisons, then immutability, then the initializer. Immutability is
// wired before the initializer so construction runs with the write
// bypass in place.
//
// target is either a Definer carrying a declarative definition or any
// value whose reflected type names the record; it may be nil when
// WithName and an explicit attribute list are given.
func Compose(target any, opts ...Option) (*Type, error) {
	cfg := Config{cmp: true, repr: true, init: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	name := cfg.name
	if name == "" {
		if target == nil {
			return nil, attrkit.NewConfigError("", "", "a target value or WithName is required")
		}
		name = indirect(reflect.TypeOf(target)).Name()
		if name == "" {
			return nil, attrkit.NewConfigError("", "", "target type has no name; use WithName")
		}
	}

	ds, err := Resolve(name, target, cfg.attrs, cfg.defaults)
	if err != nil {
		return nil, err
	}

	t := NewType(name)
	t.register(ds)
	if cfg.repr {
		t.addRepr(exclude(ds, func(d *attr.Descriptor) bool { return d.OmitRepr }))
	}
	if cfg.cmp {
		t.addCmp(exclude(ds, func(d *attr.Descriptor) bool { return d.OmitCmp }))
	}
	if cfg.immutable {
		t.addImmutability(exclude(ds, func(d *attr.Descriptor) bool { return d.OmitImmutable }))
	}
	if cfg.init {
		t.addInit(exclude(ds, func(d *attr.Descriptor) bool { return d.OmitInit }))
	}
	t.base = cfg.base
	return t, nil
}

// exclude filters out descriptors the predicate marks as omitted,
// preserving order.
func exclude(ds []*attr.Descriptor, omitted func(*attr.Descriptor) bool) []*attr.Descriptor {
	out := make([]*attr.Descriptor, 0, len(ds))
	for _, d := range ds {
		if !omitted(d) {
			out = append(out, d)
		}
	}
	return out
}

// indirect unwraps pointer types, mirroring how the record name is
// derived from a schema value.
func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
