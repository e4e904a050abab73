// Package load provides serializable snapshots of composed record types.
//
// A snapshot is a plain data view of a record: its name, the generated
// behaviors, and per-attribute metadata. Snapshots decouple the static
// code generator from the runtime composer and can round-trip through
// JSON or YAML.
package load

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/syssam/attrkit/record"
	"github.com/syssam/attrkit/schema/attr"
)

// Record is the serializable form of a composed record type.
type Record struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Cmp       bool    `json:"cmp,omitempty" yaml:"cmp,omitempty"`
	Repr      bool    `json:"repr,omitempty" yaml:"repr,omitempty"`
	Init      bool    `json:"init,omitempty" yaml:"init,omitempty"`
	Immutable bool    `json:"immutable,omitempty" yaml:"immutable,omitempty"`
	Attrs     []*Attr `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Attr is the serializable form of one attribute descriptor. Function
// defaults are flagged but not serialized; literal defaults are carried
// only when they survive JSON encoding.
type Attr struct {
	Name          string       `json:"name,omitempty" yaml:"name,omitempty"`
	Alias         string       `json:"alias,omitempty" yaml:"alias,omitempty"`
	Ident         string       `json:"ident,omitempty" yaml:"ident,omitempty"`
	PkgPath       string       `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
	Required      bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Default       bool         `json:"default,omitempty" yaml:"default,omitempty"`
	DefaultValue  any          `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	DefaultKind   reflect.Kind `json:"default_kind,omitempty" yaml:"default_kind,omitempty"`
	DefaultFunc   bool         `json:"default_func,omitempty" yaml:"default_func,omitempty"`
	OmitCmp       bool         `json:"omit_cmp,omitempty" yaml:"omit_cmp,omitempty"`
	OmitInit      bool         `json:"omit_init,omitempty" yaml:"omit_init,omitempty"`
	OmitRepr      bool         `json:"omit_repr,omitempty" yaml:"omit_repr,omitempty"`
	OmitImmutable bool         `json:"omit_immutable,omitempty" yaml:"omit_immutable,omitempty"`
	Comment       string       `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewAttr creates a snapshot attribute from a descriptor.
// It returns an error if the descriptor carries a builder error.
func NewAttr(d *attr.Descriptor) (*Attr, error) {
	if d.Err != nil {
		return nil, fmt.Errorf("attribute %q: %w", d.Name, d.Err)
	}
	sa := &Attr{
		Name:          d.Name,
		Alias:         d.Alias,
		Required:      d.Required(),
		Default:       d.HasDefault,
		DefaultFunc:   d.DefaultFunc != nil,
		OmitCmp:       d.OmitCmp,
		OmitInit:      d.OmitInit,
		OmitRepr:      d.OmitRepr,
		OmitImmutable: d.OmitImmutable,
		Comment:       d.Comment,
	}
	if d.Type != nil {
		sa.Ident = d.Type.String()
		sa.PkgPath = pkgPath(d.Type)
	}
	if d.HasDefault {
		sa.DefaultKind = reflect.ValueOf(d.Default).Kind()
		// Only defaults the generator can re-emit as literals.
		if _, err := json.Marshal(d.Default); err == nil {
			sa.DefaultValue = d.Default
		}
	}
	return sa, nil
}

// FromType snapshots a composed record type.
func FromType(t *record.Type) (*Record, error) {
	r := &Record{
		Name:      t.Name(),
		Cmp:       t.HasCmp(),
		Repr:      t.HasRepr(),
		Init:      t.HasInit(),
		Immutable: t.Immutable(),
	}
	for _, d := range t.Attrs() {
		sa, err := NewAttr(d)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", r.Name, err)
		}
		r.Attrs = append(r.Attrs, sa)
	}
	return r, nil
}

// MarshalRecord encodes a snapshot of the record type as JSON.
func MarshalRecord(t *record.Type) ([]byte, error) {
	r, err := FromType(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

// UnmarshalRecord decodes a JSON snapshot.
func UnmarshalRecord(buf []byte) (*Record, error) {
	r := &Record{}
	if err := json.Unmarshal(buf, r); err != nil {
		return nil, err
	}
	return r, nil
}

// UnmarshalRecordYAML decodes a YAML snapshot.
func UnmarshalRecordYAML(buf []byte) (*Record, error) {
	r := &Record{}
	if err := yaml.Unmarshal(buf, r); err != nil {
		return nil, err
	}
	return r, nil
}

// pkgPath resolves the defining package of a possibly-pointer type.
func pkgPath(t reflect.Type) string {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.PkgPath()
}
