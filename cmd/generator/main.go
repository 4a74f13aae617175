// generator writes primitive shapes and tessellated Bézier patches as OBJ
// models for the scene viewer.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/generator"
	"github.com/Faultbox/scenery/internal/logger"
	"github.com/Faultbox/scenery/pkg/formats"
)

func main() {
	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one generator invocation and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return 1
	}

	switch args[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	shape, ok := generator.Lookup(args[0])
	if !ok {
		fmt.Fprintf(stderr, "Unknown shape: %s\n", args[0])
		printUsage(stderr)
		return 1
	}

	rest := args[1:]
	if len(rest) != len(shape.Params)+1 {
		fmt.Fprintf(stderr, "Usage: generator %s <output>\n", shape.Usage())
		return 1
	}
	params, output := rest[:len(rest)-1], rest[len(rest)-1]

	obj, err := shape.Build(params)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	if err := formats.WriteOBJFile(output, obj); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("model written",
		zap.String("shape", shape.Name),
		zap.String("file", output),
		zap.Int("vertices", len(obj.Positions)),
		zap.Int("triangles", len(obj.Faces)))
	return 0
}

func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString(`generator - model generator for the scene viewer

Usage:
  generator <shape> <parameters...> <output>

Shapes:
`)
	for _, s := range generator.Shapes() {
		fmt.Fprintf(&b, "  %s\n", s.Usage())
	}
	b.WriteString(`
Examples:
  generator sphere 1 20 20 models/sphere.obj
  generator box 2 3 models/box.obj
  generator bezier teapot.patch 10 models/teapot.obj`)
	fmt.Fprintln(w, b.String())
}
