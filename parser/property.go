// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a PropertyValue.
type ValueKind string

const (
	KindNone       ValueKind = "None"
	KindNumber     ValueKind = "Number"
	KindReal       ValueKind = "Real"
	KindDouble     ValueKind = "Double"
	KindColor      ValueKind = "Color"
	KindSimpleText ValueKind = "SimpleText"
	KindText       ValueKind = "Text"
	KindPoint      ValueKind = "Point"
	KindMove       ValueKind = "Move"
	KindStone      ValueKind = "Stone"
	KindCompose    ValueKind = "Compose"
	// KindUnknown holds the decoded text of a value whose identifier is
	// not in the catalog. Unknown identifiers are recoverable, see Warning.
	KindUnknown ValueKind = "Unknown"
)

// Color is the value of a color property, "B" or "W".
type Color string

const (
	ColorBlack Color = "B"
	ColorWhite Color = "W"
)

// PropertyValue is one typed value carried by a property.
//
// Kind selects the variant. Text holds the decoded text for all
// text-bearing variants (Real, Double, Color, SimpleText, Text, Point,
// Move, Stone, Unknown). Number, Double and Color are convenience fields
// populated when the text converts; First and Second are set for
// KindCompose only.
type PropertyValue struct {
	Kind ValueKind

	Number   int
	Min, Max int

	// Double is true when the value is emphasized ("2").
	Double bool

	Color Color

	Text string

	First  *PropertyValue
	Second *PropertyValue
}

// realPattern matches an optionally-signed decimal number.
// Exponents are not part of the format.
var realPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// Validate checks this value against its variant rules. Point, Move and
// Stone values are delegated to the coordinate validator registered for
// the given game type; without one they are accepted as opaque text.
func (v PropertyValue) Validate(gameType int) error {
	switch v.Kind {
	case KindNone:
		if v.Text != "" {
			return fmt.Errorf("unexpected value %q, expected an empty value", v.Text)
		}
	case KindNumber:
		if v.Min != 0 || v.Max != 0 {
			if v.Number < v.Min || v.Number > v.Max {
				return fmt.Errorf("value %d not in range (min %d, max %d)", v.Number, v.Min, v.Max)
			}
		}
	case KindReal:
		if !realPattern.MatchString(v.Text) {
			return fmt.Errorf("value %q is not a decimal number", v.Text)
		}
	case KindDouble:
		if v.Text != "1" && v.Text != "2" {
			return fmt.Errorf("value %q is not a double, expected \"1\" or \"2\"", v.Text)
		}
	case KindColor:
		if v.Text != string(ColorBlack) && v.Text != string(ColorWhite) {
			return fmt.Errorf("value %q is not a color, expected \"B\" or \"W\"", v.Text)
		}
	case KindPoint, KindMove, KindStone:
		if validate := coordValidatorFor(gameType); validate != nil {
			return validate(v.Kind, v.Text)
		}
	case KindCompose:
		if err := v.First.Validate(gameType); err != nil {
			return err
		}

		return v.Second.Validate(gameType)
	}

	return nil
}

// makeValue decodes a raw bracket body into a typed value according to
// the given kind. The returned value still has to pass Validate.
func makeValue(kind ValueKind, raw string, spec *PropertySpec) (PropertyValue, error) {
	v := PropertyValue{Kind: kind}

	switch kind {
	case KindNone:
		v.Text = strings.TrimSpace(raw)
	case KindNumber:
		v.Text = strings.TrimSpace(raw)
		v.Min = spec.Min
		v.Max = spec.Max

		n, err := strconv.Atoi(v.Text)
		if err != nil {
			return v, fmt.Errorf("value %q is not a number", v.Text)
		}

		v.Number = n
	case KindReal:
		v.Text = strings.TrimSpace(raw)
	case KindDouble:
		v.Text = strings.TrimSpace(raw)
		v.Double = v.Text == "2"
	case KindColor:
		v.Text = strings.TrimSpace(raw)
		v.Color = Color(v.Text)
	case KindSimpleText:
		v.Text = decodeText(raw, true)
	case KindText:
		v.Text = decodeText(raw, false)
	case KindPoint, KindMove, KindStone:
		v.Text = decodeText(raw, true)
	case KindUnknown:
		v.Text = decodeText(raw, false)
	}

	return v, nil
}

// decodeValue turns a raw bracket body into the typed value demanded by
// the catalog entry, splitting composed values on the first unescaped ':'.
func decodeValue(spec *PropertySpec, raw string) (PropertyValue, error) {
	if spec == nil {
		return makeValue(KindUnknown, raw, nil)
	}

	if spec.Second != "" {
		if sep := indexUnescaped(raw, ':'); sep >= 0 {
			first, err := makeValue(spec.Kind, raw[:sep], spec)
			if err != nil {
				return first, err
			}

			second, err := makeValue(spec.Second, raw[sep+1:], spec)
			if err != nil {
				return second, err
			}

			return PropertyValue{
				Kind:   KindCompose,
				First:  &first,
				Second: &second,
			}, nil
		}
	}

	return makeValue(spec.Kind, raw, spec)
}

// indexUnescaped returns the byte index of the first unescaped occurrence
// of sep, or -1. A backslash escapes the following rune.
func indexUnescaped(raw string, sep rune) int {
	escaped := false

	for i, r := range raw {
		if escaped {
			escaped = false

			continue
		}

		if r == '\\' {
			escaped = true

			continue
		}

		if r == sep {
			return i
		}
	}

	return -1
}

// decodeText applies the SGF text decoding rules to a raw bracket body.
//
// A backslash inserts the following rune verbatim and is itself discarded.
// A backslash directly followed by a line break removes the break entirely
// (a soft break). Any other line break becomes a space in collapsing mode
// and a '\n' otherwise. Whitespace other than line breaks becomes a space,
// and in collapsing mode runs of spaces shrink to a single one.
func decodeText(raw string, collapse bool) string {
	var b strings.Builder

	rs := []rune(raw)

	i := 0
	for i < len(rs) {
		r := rs[i]

		switch {
		case r == '\\':
			if i+1 >= len(rs) {
				// A dangling backslash at the very end escapes nothing.
				i++

				continue
			}

			if n := lineBreakLen(rs, i+1); n > 0 {
				// Soft break, the line break vanishes.
				i += 1 + n

				continue
			}

			b.WriteRune(rs[i+1])
			i += 2
		case lineBreakLen(rs, i) > 0:
			if collapse {
				b.WriteRune(' ')
			} else {
				b.WriteRune('\n')
			}

			i += lineBreakLen(rs, i)
		case r == ' ' || r == '\t' || r == '\v' || r == '\f':
			b.WriteRune(' ')
			i++
		default:
			b.WriteRune(r)
			i++
		}
	}

	if collapse {
		return collapseSpaces(b.String())
	}

	return b.String()
}

// lineBreakLen returns the rune length of the line break starting at i,
// or 0 if there is none. "\r\n" and "\n\r" count as one break.
func lineBreakLen(rs []rune, i int) int {
	if i >= len(rs) {
		return 0
	}

	switch rs[i] {
	case '\n':
		if i+1 < len(rs) && rs[i+1] == '\r' {
			return 2
		}

		return 1
	case '\r':
		if i+1 < len(rs) && rs[i+1] == '\n' {
			return 2
		}

		return 1
	}

	return 0
}

// collapseSpaces shrinks runs of spaces to a single space. At this point
// all whitespace has already been converted to plain spaces.
func collapseSpaces(s string) string {
	var b strings.Builder

	lastSpace := false

	for _, r := range s {
		if r == ' ' {
			if lastSpace {
				continue
			}

			lastSpace = true
		} else {
			lastSpace = false
		}

		b.WriteRune(r)
	}

	return b.String()
}
