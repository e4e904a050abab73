package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/attrkit/compiler/load"
)

// Generator emits one Go file per record snapshot. Files are built with
// jennifer, so imports are tracked automatically and the output needs no
// extra formatting pass.
type Generator struct {
	cfg     *Config
	records []*load.Record
}

// NewGenerator returns a generator for the given snapshots.
func NewGenerator(cfg *Config, records ...*load.Record) *Generator {
	return &Generator{cfg: cfg, records: records}
}

// Generate writes all record files into the target directory, one worker
// per record.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg.Target == "" {
		return fmt.Errorf("gen: no target directory configured")
	}
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return fmt.Errorf("gen: creating target directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	for _, r := range g.records {
		r := r
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := g.File(r)
			if err != nil {
				return err
			}
			name := filepath.Join(g.cfg.Target, inflect.Underscore(r.Name)+".go")
			return f.Save(name)
		})
	}
	return eg.Wait()
}

// File builds the source file of a single record.
func (g *Generator) File(r *load.Record) (*jen.File, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("gen: record has no name")
	}
	f := jen.NewFilePathName(g.cfg.Package, g.cfg.pkgName())
	if g.cfg.Header != "" {
		f.HeaderComment(g.cfg.Header)
	}
	g.genStruct(f, r)
	if r.Init {
		g.genConstructor(f, r)
	}
	if r.Immutable {
		g.genGetters(f, r)
	}
	if r.Cmp {
		g.genEqual(f, r)
	}
	if r.Repr {
		g.genString(f, r)
	}
	return f, nil
}

// genStruct emits the record struct. Immutable records get unexported
// fields so the only write path is the constructor.
func (g *Generator) genStruct(f *jen.File, r *load.Record) {
	f.Commentf("%s is the generated form of the %q record.", r.Name, r.Name)
	f.Type().Id(r.Name).StructFunc(func(s *jen.Group) {
		for _, a := range r.Attrs {
			field := s.Id(g.fieldName(r, a)).Add(typeStmt(a))
			if a.Comment != "" {
				field.Comment(a.Comment)
			}
		}
	})
}

// genConstructor emits New<Name>. Required attributes and factory-default
// attributes become parameters; literal defaults are inlined.
func (g *Generator) genConstructor(f *jen.File, r *load.Record) {
	params := make([]*load.Attr, 0, len(r.Attrs))
	for _, a := range r.Attrs {
		if a.OmitInit {
			continue
		}
		if !inlinableDefault(a) {
			params = append(params, a)
		}
	}
	f.Commentf("New%s constructs a %s.", r.Name, r.Name)
	f.Func().Id("New" + r.Name).ParamsFunc(func(p *jen.Group) {
		for _, a := range params {
			p.Id(paramName(a)).Add(typeStmt(a))
		}
	}).Op("*").Id(r.Name).BlockFunc(func(b *jen.Group) {
		b.Return(jen.Op("&").Id(r.Name).ValuesFunc(func(v *jen.Group) {
			for _, a := range r.Attrs {
				if a.OmitInit {
					continue
				}
				if inlinableDefault(a) {
					v.Id(g.fieldName(r, a)).Op(":").Lit(defaultLit(a))
				} else {
					v.Id(g.fieldName(r, a)).Op(":").Id(paramName(a))
				}
			}
		}))
	})
}

// genGetters emits read accessors for the unexported fields of an
// immutable record.
func (g *Generator) genGetters(f *jen.File, r *load.Record) {
	recv := receiver(r.Name)
	for _, a := range r.Attrs {
		goName := exportedName(a.Name)
		f.Commentf("%s returns the %s attribute.", goName, a.Name)
		f.Func().Params(jen.Id(recv).Op("*").Id(r.Name)).Id(goName).Params().Add(typeStmt(a)).Block(
			jen.Return(jen.Id(recv).Dot(g.fieldName(r, a))),
		)
	}
}

// genEqual emits attribute-wise equality over the comparison attributes.
// reflect.DeepEqual keeps the semantics uniform across field types the
// snapshot does not describe.
func (g *Generator) genEqual(f *jen.File, r *load.Record) {
	recv := receiver(r.Name)
	f.Commentf("Equal reports whether both records hold equal attribute values.")
	f.Func().Params(jen.Id(recv).Op("*").Id(r.Name)).Id("Equal").
		Params(jen.Id("other").Op("*").Id(r.Name)).Bool().
		BlockFunc(func(b *jen.Group) {
			b.If(jen.Id("other").Op("==").Nil()).Block(jen.Return(jen.False()))
			cond := jen.True()
			for _, a := range r.Attrs {
				if a.OmitCmp {
					continue
				}
				cond = cond.Op("&&").Line().Qual("reflect", "DeepEqual").Call(
					jen.Id(recv).Dot(g.fieldName(r, a)),
					jen.Id("other").Dot(g.fieldName(r, a)),
				)
			}
			b.Return(cond)
		})
}

// genString emits the diagnostic representation.
func (g *Generator) genString(f *jen.File, r *load.Record) {
	recv := receiver(r.Name)
	var format strings.Builder
	args := []jen.Code{}
	format.WriteString("<" + r.Name + "(")
	first := true
	for _, a := range r.Attrs {
		if a.OmitRepr {
			continue
		}
		if !first {
			format.WriteString(", ")
		}
		first = false
		format.WriteString(a.Name + "=%#v")
		args = append(args, jen.Id(recv).Dot(g.fieldName(r, a)))
	}
	format.WriteString(")>")
	f.Commentf("String returns the diagnostic representation of the record.")
	f.Func().Params(jen.Id(recv).Op("*").Id(r.Name)).Id("String").Params().String().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(
			append([]jen.Code{jen.Lit(format.String())}, args...)...,
		)),
	)
}

// fieldName picks the struct field identifier: exported for plain
// records, unexported for immutable ones.
func (g *Generator) fieldName(r *load.Record, a *load.Attr) string {
	if r.Immutable {
		return unexportedName(a.Name)
	}
	return exportedName(a.Name)
}

// exportedName converts an attribute name to an exported Go identifier.
func exportedName(name string) string {
	return inflect.Camelize(strings.TrimLeft(name, "_"))
}

// unexportedName converts an attribute name to an unexported Go identifier.
func unexportedName(name string) string {
	return inflect.CamelizeDownFirst(strings.TrimLeft(name, "_"))
}

// paramName derives the constructor parameter from the initializer alias.
func paramName(a *load.Attr) string {
	name := a.Alias
	if name == "" {
		name = a.Name
	}
	return unexportedName(name)
}

// inlinableDefault reports whether the attribute default can be emitted
// as a Go literal; everything else becomes a constructor parameter.
func inlinableDefault(a *load.Attr) bool {
	if !a.Default || a.DefaultValue == nil {
		return false
	}
	switch a.DefaultKind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// defaultLit restores the Go type of an inlinable default. JSON-decoded
// snapshots carry every number as float64, so integral kinds are converted
// back before the literal is emitted.
func defaultLit(a *load.Attr) any {
	f, ok := a.DefaultValue.(float64)
	if !ok {
		return a.DefaultValue
	}
	switch a.DefaultKind {
	case reflect.Int:
		return int(f)
	case reflect.Int8:
		return int8(f)
	case reflect.Int16:
		return int16(f)
	case reflect.Int32:
		return int32(f)
	case reflect.Int64:
		return int64(f)
	case reflect.Uint:
		return uint(f)
	case reflect.Uint8:
		return uint8(f)
	case reflect.Uint16:
		return uint16(f)
	case reflect.Uint32:
		return uint32(f)
	case reflect.Uint64:
		return uint64(f)
	case reflect.Float32:
		return float32(f)
	default:
		return a.DefaultValue
	}
}

// receiver picks the conventional one-letter receiver.
func receiver(name string) string {
	return strings.ToLower(name[:1])
}

// typeStmt renders the Go type of an attribute. Attributes without a type
// constraint fall back to any.
func typeStmt(a *load.Attr) *jen.Statement {
	if a.Ident == "" {
		return jen.Any()
	}
	return identStmt(a.Ident, a.PkgPath)
}

// identStmt renders a reflected type identifier, qualifying package types
// so jennifer tracks the import.
func identStmt(ident, pkgPath string) *jen.Statement {
	switch {
	case strings.HasPrefix(ident, "*"):
		return jen.Op("*").Add(identStmt(ident[1:], pkgPath))
	case strings.HasPrefix(ident, "[]"):
		return jen.Index().Add(identStmt(ident[2:], pkgPath))
	case pkgPath != "" && strings.Contains(ident, "."):
		return jen.Qual(pkgPath, ident[strings.LastIndex(ident, ".")+1:])
	default:
		return jen.Id(ident)
	}
}
