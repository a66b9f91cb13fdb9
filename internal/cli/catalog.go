// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/umutseven92/sgf-parser/parser"
)

// catalogFile is the YAML shape for user-supplied property definitions:
//
//	properties:
//	  - ident: XY
//	    kind: SimpleText
//	  - ident: ZZ
//	    kind: Number
//	    min: 1
//	    max: 10
type catalogFile struct {
	Properties []catalogEntry `json:"properties"`
}

type catalogEntry struct {
	Ident         string `json:"ident"`
	Kind          string `json:"kind"`
	Second        string `json:"second,omitempty"`
	Min           int    `json:"min,omitempty"`
	Max           int    `json:"max,omitempty"`
	DisallowEmpty bool   `json:"disallowEmpty,omitempty"`
}

var valueKinds = map[string]parser.ValueKind{
	"None":       parser.KindNone,
	"Number":     parser.KindNumber,
	"Real":       parser.KindReal,
	"Double":     parser.KindDouble,
	"Color":      parser.KindColor,
	"SimpleText": parser.KindSimpleText,
	"Text":       parser.KindText,
	"Point":      parser.KindPoint,
	"Move":       parser.KindMove,
	"Stone":      parser.KindStone,
}

// loadCatalogFile registers extra property definitions before any parsing
// starts, so the catalog stays read-only during parsing.
func loadCatalogFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read catalog file %q: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("cannot parse catalog file %q: %w", path, err)
	}

	for _, entry := range file.Properties {
		spec, err := toPropertySpec(entry)
		if err != nil {
			return fmt.Errorf("catalog file %q: %w", path, err)
		}

		if err := parser.Register(spec); err != nil {
			return fmt.Errorf("catalog file %q: %w", path, err)
		}
	}

	return nil
}

func toPropertySpec(entry catalogEntry) (parser.PropertySpec, error) {
	spec := parser.PropertySpec{
		Ident:         entry.Ident,
		Min:           entry.Min,
		Max:           entry.Max,
		DisallowEmpty: entry.DisallowEmpty,
	}

	kind, ok := valueKinds[entry.Kind]
	if !ok {
		return spec, fmt.Errorf("property %s: unknown value kind %q", entry.Ident, entry.Kind)
	}

	spec.Kind = kind

	if entry.Second != "" {
		second, ok := valueKinds[entry.Second]
		if !ok {
			return spec, fmt.Errorf("property %s: unknown value kind %q", entry.Ident, entry.Second)
		}

		spec.Second = second
	}

	return spec, nil
}
