package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/scenery/pkg/formats"
)

func TestRunWritesModel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "models", "plane.obj")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"plane", "2", "2", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}

	obj, err := formats.ParseOBJFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(obj.Positions) != 9 || len(obj.Faces) != 8 {
		t.Errorf("got %d vertices, %d faces", len(obj.Positions), len(obj.Faces))
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "Usage:"},
		{"unknown shape", []string{"torus", "1", "x.obj"}, "Unknown shape"},
		{"wrong count", []string{"sphere", "1", "10", filepath.Join(dir, "s.obj")}, "generator sphere <radius>"},
		{"bad number", []string{"box", "big", "2", filepath.Join(dir, "b.obj")}, "not a number"},
		{"bad value", []string{"sphere", "1", "2", "2", filepath.Join(dir, "s.obj")}, "slices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("exit code %d, want 1", code)
			}
			if got := stdout.String() + stderr.String(); !strings.Contains(got, tt.want) {
				t.Errorf("output %q does not mention %q", got, tt.want)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	var stdout bytes.Buffer
	if code := run([]string{"help"}, &stdout, &stdout); code != 0 {
		t.Errorf("help exit code %d", code)
	}
	if !strings.Contains(stdout.String(), "tube <inner> <outer> <height> <slices>") {
		t.Errorf("usage lacks shape list: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "models/sphere.obj") || strings.Contains(stdout.String(), ".3d") {
		t.Errorf("examples should write .obj files: %s", stdout.String())
	}
}
