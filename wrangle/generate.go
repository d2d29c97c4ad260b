package wrangle

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dave/jennifer/jen"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

const (
	generatedMarker = "Code generated by spvgen. DO NOT EDIT."
	timestampLayout = "2006-01-02 15:04:05.000000"
)

type Config struct {
	// Package is the package clause of the generated file.
	Package string
	Target  Target

	// Now stamps the generated file. Defaults to time.Now.
	Now func() time.Time
}

type Result struct {
	Source      []byte
	Methods     []*Method
	Diagnostics Diagnostics

	// Skipped holds classes that appear in the grammar but not in
	// ClassOrder. Their instructions are not generated.
	Skipped Classes
}

func (c Config) withDefaults() Config {
	if c.Package == "" {
		c.Package = "spirv"
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	c.Target = c.Target.withDefaults()
	return c
}

// Generate renders one builder method per instruction of g, class by class
// in ClassOrder. Nothing is returned unless every method rendered.
func Generate(ctx context.Context, g *Grammar, cfg Config) (res *Result, err error) {
	cfg = cfg.withDefaults()

	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "generate", "package", cfg.Package, "instructions", len(g.Instructions))
	defer tr.Finish("err", &err)

	f := jen.NewFile(cfg.Package)

	f.HeaderComment(generatedMarker)
	f.HeaderComment("Last update date: " + cfg.Now().Format(timestampLayout))
	f.HeaderComment("//")
	f.HeaderComment("Grammar License")
	for _, line := range g.Copyright {
		f.HeaderComment(commentLine(line))
	}
	if v := g.Version(); v != "" {
		f.HeaderComment("//")
		f.HeaderComment(fmt.Sprintf("Grammar version %s, magic number %s", v, g.MagicNumber))
	}

	if cfg.Target.SpecPackage != "" {
		f.ImportAlias(cfg.Target.SpecPackage, "spec")
	}

	res = &Result{
		Skipped: g.Classes().unordered(),
	}

	e := NewEmitter(cfg.Target)

	for _, cl := range ClassOrder {
		err = generateClass(ctx, f, e, g, cl, res)
		if err != nil {
			return nil, errors.Wrap(err, "class %v", cl)
		}
	}

	if len(res.Skipped) != 0 {
		tr.Printw("classes not generated", "classes", res.Skipped.String())
	}

	var buf bytes.Buffer

	err = f.Render(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "render")
	}

	res.Source = buf.Bytes()

	tr.Printw("generated", "methods", len(res.Methods), "diagnostics", len(res.Diagnostics), "size", len(res.Source))

	return res, nil
}

func generateClass(ctx context.Context, f *jen.File, e *Emitter, g *Grammar, cl Class, res *Result) error {
	tr := tlog.SpanFromContext(ctx)

	f.Comment(string(cl))
	f.Line()

	for _, inst := range g.InstructionsOfClass(cl) {
		m, err := BuildMethod(inst)
		if err != nil {
			return errors.Wrap(err, "instruction %v", inst.OpName)
		}

		for _, d := range m.Diagnostics {
			tr.Printw("unmanaged argument name", "op", d.OpName, "pos", d.Position, "kind", d.Operand.Kind, "name", d.Operand.Name, "fallback", d.Fallback)
		}

		if tr.If("methods") {
			tr.Printw("method", "name", m.Name, "args", m.Args, "result_type", m.ResultTypeIndex, "needs_id", m.NeedsID)
		}

		code, err := e.Method(m)
		if err != nil {
			return errors.Wrap(err, "instruction %v", inst.OpName)
		}

		f.Add(code)
		f.Line()

		res.Methods = append(res.Methods, m)
		res.Diagnostics = append(res.Diagnostics, m.Diagnostics...)
	}

	return nil
}

// commentLine keeps blank copyright lines from rendering with a trailing
// space.
func commentLine(s string) string {
	if s == "" {
		return "//"
	}
	return s
}
