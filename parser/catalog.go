// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"unicode"
)

// PropertySpec is one entry of the identifier catalog. It determines how
// the raw bracket text of a property is decoded and validated.
type PropertySpec struct {
	// Ident is the property identifier, uppercase letters.
	Ident string
	// Kind is the value kind, or the first half when Second is set.
	Kind ValueKind
	// Second, when non-empty, declares that values may be composed of two
	// halves separated by an unescaped ':', with Second as the kind of
	// the second half.
	Second ValueKind
	// Min and Max bound KindNumber values inclusively.
	// Both zero means unbounded.
	Min, Max int
	// DisallowEmpty rejects empty decoded text values.
	DisallowEmpty bool
}

// catalog is the process-wide identifier table. It is built once below
// and must never be mutated once parsing has begun; with that contract
// concurrent parses need no locking.
var catalog = map[string]*PropertySpec{}

// standardProperties is the FF[4] standard property set.
var standardProperties = []PropertySpec{
	// Root properties.
	{Ident: "AP", Kind: KindSimpleText, Second: KindSimpleText, DisallowEmpty: true},
	{Ident: "CA", Kind: KindSimpleText, DisallowEmpty: true},
	{Ident: "FF", Kind: KindNumber, Min: 1, Max: 4},
	{Ident: "GM", Kind: KindNumber, Min: 1, Max: 16},
	{Ident: "ST", Kind: KindNumber, Min: 0, Max: 3},
	{Ident: "SZ", Kind: KindNumber, Second: KindNumber, Min: 1, Max: 52},

	// Move properties.
	{Ident: "B", Kind: KindMove},
	{Ident: "W", Kind: KindMove},
	{Ident: "KO", Kind: KindNone},
	{Ident: "MN", Kind: KindNumber},

	// Setup properties.
	{Ident: "AB", Kind: KindStone},
	{Ident: "AE", Kind: KindPoint},
	{Ident: "AW", Kind: KindStone},
	{Ident: "PL", Kind: KindColor},

	// Node annotation properties.
	{Ident: "C", Kind: KindText},
	{Ident: "DM", Kind: KindDouble},
	{Ident: "GB", Kind: KindDouble},
	{Ident: "GW", Kind: KindDouble},
	{Ident: "HO", Kind: KindDouble},
	{Ident: "N", Kind: KindSimpleText},
	{Ident: "UC", Kind: KindDouble},
	{Ident: "V", Kind: KindReal},

	// Move annotation properties.
	{Ident: "BM", Kind: KindDouble},
	{Ident: "DO", Kind: KindNone},
	{Ident: "IT", Kind: KindNone},
	{Ident: "TE", Kind: KindDouble},

	// Markup properties.
	{Ident: "AR", Kind: KindPoint, Second: KindPoint},
	{Ident: "CR", Kind: KindPoint},
	{Ident: "DD", Kind: KindPoint},
	{Ident: "LB", Kind: KindPoint, Second: KindSimpleText},
	{Ident: "LN", Kind: KindPoint, Second: KindPoint},
	{Ident: "MA", Kind: KindPoint},
	{Ident: "SL", Kind: KindPoint},
	{Ident: "SQ", Kind: KindPoint},
	{Ident: "TR", Kind: KindPoint},

	// Game info properties.
	{Ident: "AN", Kind: KindSimpleText},
	{Ident: "BR", Kind: KindSimpleText},
	{Ident: "BT", Kind: KindSimpleText},
	{Ident: "CP", Kind: KindSimpleText},
	{Ident: "DT", Kind: KindSimpleText},
	{Ident: "EV", Kind: KindSimpleText},
	{Ident: "GC", Kind: KindText},
	{Ident: "GN", Kind: KindSimpleText},
	{Ident: "ON", Kind: KindSimpleText},
	{Ident: "OT", Kind: KindSimpleText},
	{Ident: "PB", Kind: KindSimpleText},
	{Ident: "PC", Kind: KindSimpleText},
	{Ident: "PW", Kind: KindSimpleText},
	{Ident: "RE", Kind: KindSimpleText},
	{Ident: "RO", Kind: KindSimpleText},
	{Ident: "RU", Kind: KindSimpleText},
	{Ident: "SO", Kind: KindSimpleText},
	{Ident: "TM", Kind: KindReal},
	{Ident: "US", Kind: KindSimpleText},
	{Ident: "WR", Kind: KindSimpleText},
	{Ident: "WT", Kind: KindSimpleText},

	// Timing properties.
	{Ident: "BL", Kind: KindReal},
	{Ident: "OB", Kind: KindNumber},
	{Ident: "OW", Kind: KindNumber},
	{Ident: "WL", Kind: KindReal},

	// Miscellaneous properties.
	{Ident: "FG", Kind: KindNumber, Second: KindSimpleText},
	{Ident: "PM", Kind: KindNumber},
	{Ident: "VW", Kind: KindPoint},

	// Go specific properties.
	{Ident: "HA", Kind: KindNumber},
	{Ident: "KM", Kind: KindReal},
	{Ident: "TB", Kind: KindPoint},
	{Ident: "TW", Kind: KindPoint},
}

func init() {
	for i := range standardProperties {
		catalog[standardProperties[i].Ident] = &standardProperties[i]
	}
}

// LookupProperty returns the catalog entry for the identifier, or nil
// when the identifier is unknown.
func LookupProperty(ident string) *PropertySpec {
	return catalog[ident]
}

// Register adds or replaces a catalog entry, so that private identifiers
// can be parsed without warnings. Registration must be complete before
// any parsing begins; the catalog is read-only afterwards.
func Register(spec PropertySpec) error {
	if spec.Ident == "" {
		return fmt.Errorf("property identifier must not be empty")
	}

	for _, r := range spec.Ident {
		if !unicode.IsUpper(r) || r > unicode.MaxASCII {
			return fmt.Errorf("property identifier %q must consist of uppercase letters", spec.Ident)
		}
	}

	s := spec
	catalog[s.Ident] = &s

	return nil
}

// GameGo is the game-type number of Go in the GM property.
const GameGo = 1

// CoordValidator validates the game-specific Point, Move and Stone values
// of one game type.
type CoordValidator func(kind ValueKind, value string) error

// coordValidators is keyed by the game-type number of the GM property.
// Like the catalog it must not be mutated once parsing has begun.
var coordValidators = map[int]CoordValidator{
	GameGo: validateGoCoord,
}

// RegisterCoordValidator installs a coordinate validator for a game type.
// Game types without a validator accept coordinates as opaque text.
// Registration must be complete before any parsing begins.
func RegisterCoordValidator(gameType int, v CoordValidator) {
	coordValidators[gameType] = v
}

func coordValidatorFor(gameType int) CoordValidator {
	return coordValidators[gameType]
}

// validateGoCoord checks the two-letter Go coordinates. An empty Move is
// a pass and therefore valid; an empty Point or Stone is not.
func validateGoCoord(kind ValueKind, value string) error {
	if value == "" {
		if kind == KindMove {
			return nil
		}

		return fmt.Errorf("empty value is not a go %s", kindNoun(kind))
	}

	rs := []rune(value)
	if len(rs) != 2 || !isCoordLetter(rs[0]) || !isCoordLetter(rs[1]) {
		return fmt.Errorf("value %q is not a go %s", value, kindNoun(kind))
	}

	return nil
}

func isCoordLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func kindNoun(kind ValueKind) string {
	switch kind {
	case KindMove:
		return "move"
	case KindStone:
		return "stone"
	default:
		return "point"
	}
}
