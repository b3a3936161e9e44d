package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/deepwatch/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
	skipFormatKey        = "raw"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed Derived and Watch combinators",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of explicit sources to generate combinators up to",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "reactivity/derived_gen.go",
			},
			&cli.BoolFlag{
				Name:  skipFormatKey,
				Usage: "Write the template output without running gofmt on it",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for derived values started !")
	defer func() {
		log.Printf("Codegen for derived values finished in %v", time.Since(start))
	}()

	count := cmd.Uint(genericParamCountKey)
	if count == 0 {
		return fmt.Errorf("--%s must be at least 1", genericParamCountKey)
	}
	out := cmd.String(outputKey)
	log.Printf("Generating up to %d sources into %s", count, out)

	contents := []byte(templates.DerivedGen(int(count)))
	if !cmd.Bool(skipFormatKey) {
		formatted, err := format.Source(contents)
		if err != nil {
			return fmt.Errorf("format generated code: %w", err)
		}
		contents = formatted
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
