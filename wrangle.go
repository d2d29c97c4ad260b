package main

import (
	"context"
	"os"

	"github.com/davecgh/go-spew/spew"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/Thog/Spv.Generator/wrangle"
)

const usage = "[flags] <grammar.json> <output.go>"

func main() {
	app := &cli.Command{
		Name:        "spvgen",
		Description: "spvgen generates SPIR-V builder methods from the core grammar",
		Action:      generateAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("package", "spirv", "package name of the generated file"),
			cli.NewFlag("spec-package", "", "import path declaring opcodes and enums (empty: generated package)"),
			cli.NewFlag("receiver", wrangle.DefaultTarget.Receiver, "receiver name of the generated methods"),
			cli.NewFlag("module", wrangle.DefaultTarget.Module, "builder module type"),
			cli.NewFlag("dump", false, "dump method descriptors to stderr"),
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func generateAct(c *cli.Command) (err error) {
	if len(c.Args) != 2 {
		return errors.New("usage: %v %v", c.Name, usage)
	}

	grammarPath, outPath := c.Args[0], c.Args[1]

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	g, err := wrangle.LoadGrammar(grammarPath)
	if err != nil {
		return errors.Wrap(err, "load grammar")
	}

	tlog.SpanFromContext(ctx).Printw("loaded grammar", "name", grammarPath, "instructions", len(g.Instructions), "version", g.Version())

	res, err := wrangle.Generate(ctx, g, wrangle.Config{
		Package: c.String("package"),
		Target: wrangle.Target{
			SpecPackage: c.String("spec-package"),
			Receiver:    c.String("receiver"),
			Module:      c.String("module"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "generate %v", grammarPath)
	}

	if c.Bool("dump") {
		spew.Fdump(os.Stderr, res.Methods)
	}

	err = os.WriteFile(outPath, res.Source, 0o644)
	if err != nil {
		return errors.Wrap(err, "write output")
	}

	tlog.SpanFromContext(ctx).Printw("wrote output", "name", outPath, "size", len(res.Source))

	return nil
}
