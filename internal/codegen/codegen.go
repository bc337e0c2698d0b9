// Package codegen renders resolved constants into a gofmt-formatted Go
// source file. The output carries the standard generated-code marker so
// tooling and reviewers skip it.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
)

const header = "// Code generated by constgen. DO NOT EDIT."

// ResolvedConstant pairs a constant name with its resolved value.
type ResolvedConstant struct {
	Name  string
	Value string
}

// Render produces the generated source for a package declaring the given
// constants, in order. Values are quoted so arbitrary text, including
// newlines and quotes, round-trips exactly.
func Render(pkg string, constants []ResolvedConstant) ([]byte, error) {
	if len(constants) == 0 {
		return nil, fmt.Errorf("no constants to render")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n\nconst (\n", header, pkg)
	for _, c := range constants {
		fmt.Fprintf(&buf, "\t%s = %s\n", c.Name, strconv.Quote(c.Value))
	}
	buf.WriteString(")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// Write stores the generated source at path, creating parent directories
// as needed.
func Write(path string, src []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write generated file: %w", err)
	}
	return nil
}
