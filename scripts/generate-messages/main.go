package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	intl "github.com/goliatone/go-intl"
	"github.com/goliatone/go-intl/pkg/gen"
)

func main() {
	var (
		fixturesDir  = flag.String("fixtures", "examples/fixtures", "directory holding the ARB documents")
		outputDir    = flag.String("output", "examples/generated", "directory for the generated accessor sources")
		typeName     = flag.String("type-name", "Messages", "generated contract type name")
		snapshotPath = flag.String("snapshot", "", "optional path for a JSON snapshot of the generation contract")
	)
	flag.Parse()

	ctx := context.Background()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
		os.Exit(1)
	}

	targets := []struct {
		backend string
		file    string
	}{
		{backend: "golang", file: "messages.go"},
		{backend: "dart", file: "messages.dart"},
	}
	for _, target := range targets {
		cfg := baseConfig(*fixturesDir, *typeName)
		cfg.Generator.Backend = target.backend
		cfg.Generator.Output = filepath.Join(*outputDir, target.file)

		dest, err := intl.GenerateAccessors(ctx, cfg, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to generate %s accessors: %v\n", target.backend, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wrote %s accessors to %s\n", target.backend, dest)
	}

	if *snapshotPath != "" {
		if err := writeSnapshot(ctx, baseConfig(*fixturesDir, *typeName), *snapshotPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to snapshot contract: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wrote contract snapshot to %s\n", *snapshotPath)
	}
}

func baseConfig(fixturesDir, typeName string) intl.Config {
	var cfg intl.Config
	cfg.ARBDir = fixturesDir
	cfg.Generator.TypeName = typeName
	return cfg
}

// writeSnapshot serializes the language-neutral contract the backends render
// from, so changes to name mangling or parameter binding show up in review as
// a plain JSON diff.
func writeSnapshot(ctx context.Context, cfg intl.Config, path string) error {
	ws := intl.NewWorkspace(cfg)
	set, err := ws.Load(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}

	effective := ws.Config()
	contract := gen.Build(set, gen.Options{
		TypeName: effective.Generator.TypeName,
		Package:  effective.Generator.Package,
	})

	payload, err := json.MarshalIndent(contract, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
