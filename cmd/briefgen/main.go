package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"

	briefgen "github.com/goliatone/go-briefgen"
	"github.com/goliatone/go-briefgen/internal/outdir"
	"github.com/goliatone/go-briefgen/pkg/answers"
	"github.com/goliatone/go-briefgen/pkg/brief"
	"github.com/goliatone/go-briefgen/pkg/emit"
	"github.com/goliatone/go-briefgen/pkg/prompt"
)

func main() {
	var (
		outFlag     = flag.String("out", "", "Output directory (default: ~/Downloads)")
		answersFlag = flag.String("answers", "", "YAML answers file for a non-interactive run")
		noColorFlag = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	if *noColorFlag {
		color.NoColor = true
	}

	ctx := context.Background()

	dir, err := outdir.Resolve(*outFlag)
	if err != nil {
		log.Fatalf("resolve output directory: %v (try a writable --out directory)", err)
	}

	schema := briefgen.ProjectBrief()

	b, err := collect(ctx, schema, *answersFlag)
	if err != nil {
		log.Fatalf("collect answers: %v", err)
	}

	b.Finalize(time.Now())

	registry, err := briefgen.DefaultRegistry()
	if err != nil {
		log.Fatalf("configure renderers: %v", err)
	}

	document, err := registry.MustGet("markdown").Render(ctx, b)
	if err != nil {
		log.Fatalf("render document: %v", err)
	}
	record, err := registry.MustGet("json").Render(ctx, b)
	if err != nil {
		log.Fatalf("render record: %v", err)
	}

	result, err := emit.Write(dir, document, record)
	if err != nil {
		log.Fatalf("write brief: %v (try a writable --out directory)", err)
	}

	fmt.Println(string(document))
	fmt.Printf("\nSaved to: %s\n", color.New(color.FgGreen).Sprint(dir))
	fmt.Println(result.DocumentPath)
	fmt.Println(result.RecordPath)
}

func collect(ctx context.Context, schema *briefgen.Schema, answersPath string) (*brief.Brief, error) {
	if answersPath != "" {
		values, err := answers.Load(answersPath)
		if err != nil {
			return nil, err
		}
		return answers.Apply(schema, values)
	}

	fmt.Println("=== Alignment Checklist ===")
	collector := prompt.NewCollector()
	return collector.Collect(ctx, schema)
}
