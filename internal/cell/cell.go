// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package cell defines decagrid cell identifiers and records.
//
// The grid is fixed at 10 columns (A-J) by 10 rows (1-10), so exactly 100
// identifiers are valid. Identifiers are opaque comparable strings suitable
// as map keys.
package cell

import (
	"fmt"
	"regexp"
)

// Grid dimensions.
const (
	Columns = 10 // A through J
	Rows    = 10 // 1 through 10
)

// Sentinel display values. A record displays one of these exactly when its
// ErrorState is set.
const (
	SentinelError    = "#ERROR"
	SentinelCircular = "#CIRCULAR"
)

// ID is a cell identifier such as "A1" or "J10".
type ID string

// refPattern matches a cell reference token: column letter A-J followed by
// row number 1-10. Word boundaries keep "A1" from matching inside "A10".
var refPattern = regexp.MustCompile(`\b[A-J](10|[1-9])\b`)

// idPattern anchors refPattern for whole-string validation.
var idPattern = regexp.MustCompile(`^[A-J](10|[1-9])$`)

// ParseID validates a raw string as a cell identifier.
func ParseID(s string) (ID, error) {
	if !idPattern.MatchString(s) {
		return "", fmt.Errorf("invalid cell id %q (want column A-J, row 1-10)", s)
	}
	return ID(s), nil
}

// Valid reports whether s is a well-formed cell identifier.
func Valid(s string) bool {
	return idPattern.MatchString(s)
}

// At returns the identifier for a zero-based column and row.
func At(col, row int) ID {
	return ID(fmt.Sprintf("%c%d", 'A'+col, row+1))
}

// AllIDs enumerates the full 100-cell universe row by row: A1..J1, A2..J2,
// and so on through J10.
func AllIDs() []ID {
	ids := make([]ID, 0, Columns*Rows)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			ids = append(ids, At(col, row))
		}
	}
	return ids
}

// ExtractRefs returns the reference tokens in a formula in order of first
// appearance, deduplicated. Substitution still replaces every occurrence;
// deduplication here only serves edge bookkeeping.
func ExtractRefs(text string) []ID {
	matches := refPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[ID]struct{}, len(matches))
	refs := make([]ID, 0, len(matches))
	for _, m := range matches {
		id := ID(m)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, id)
	}
	return refs
}

// ReplaceRefs rewrites every reference token occurrence in text using the
// supplied mapping. Tokens are replaced atomically, so substituting A1 can
// never clobber part of A10.
func ReplaceRefs(text string, value func(ID) string) string {
	return refPattern.ReplaceAllStringFunc(text, func(m string) string {
		return value(ID(m))
	})
}

// Record is the full state of one cell.
type Record struct {
	RawInput   string // exactly what the caller last supplied
	Formula    string // equals RawInput; kept for future divergence
	Display    string // literal, canonical numeric string, or a sentinel
	ErrorState string // reason text, set exactly when Display is a sentinel
}

// IsFormula reports whether the record's raw input is a formula.
func (r Record) IsFormula() bool {
	return len(r.RawInput) > 0 && r.RawInput[0] == '='
}

// IsError reports whether the record currently displays a sentinel.
func (r Record) IsError() bool {
	return r.ErrorState != ""
}
