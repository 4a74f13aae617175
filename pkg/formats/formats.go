// Package formats provides parsers for the scene viewer's file formats:
// the XML scene description, Wavefront OBJ meshes, the early positional
// ".3d" vertex lists and Bézier patch files.
package formats

import (
	"strconv"
	"strings"
)

// fields splits a line on whitespace and commas.
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(f), err
}
