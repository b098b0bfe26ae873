// Command facet generates backend artifacts from a service manifest.
//
// The manifest is a YAML file describing one service block; facet builds the
// validated service model from it and projects the model into the selected
// backends, writing each backend's artifacts under its own subdirectory of
// the output directory.
//
// # Example
//
//	facet -manifest service.yaml -out gen -backends openapi,cli,proto
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goa.design/clue/log"

	"goa.design/facet/codegen"
	"goa.design/facet/emit"
	"goa.design/facet/emit/all"
	"goa.design/facet/manifest"
)

func main() {
	var (
		manifestF = flag.String("manifest", "facet.yaml", "Path to the service manifest")
		outF      = flag.String("out", "gen", "Output directory")
		backendsF = flag.String("backends", "all", "Comma-separated backends to generate ("+strings.Join(all.Names(), ", ")+")")
		dbgF      = flag.Bool("debug", false, "Enable debug logs")
	)
	flag.Parse()

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))
	if *dbgF {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	if err := run(ctx, *manifestF, *outF, *backendsF); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, manifestPath, outDir, backends string) error {
	src, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	log.Debugf(ctx, "loaded manifest %s: service %s, %d method(s)", manifestPath, src.Name, len(src.Methods))

	svc, err := codegen.Build(src)
	if err != nil {
		return fmt.Errorf("build model:\n%s", err)
	}

	emitters, err := all.Select(backends)
	if err != nil {
		return err
	}
	for _, e := range emitters {
		files, err := e.Emit(svc)
		if err != nil {
			return fmt.Errorf("%s:\n%s", e.Name(), err)
		}
		dir := filepath.Join(outDir, e.Name())
		if err := emit.WriteFiles(dir, files); err != nil {
			return err
		}
		log.Print(ctx, log.KV{K: "backend", V: e.Name()}, log.KV{K: "files", V: len(files)})
	}
	return nil
}
