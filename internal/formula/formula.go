// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package formula compiles a cell's raw input into its display value.
//
// A raw input starting with '=' is a formula: reference tokens are resolved
// through a caller-supplied lookup, substituted as canonical decimal strings,
// and the remaining arithmetic text is handed to the evaluator. Anything
// else is a plain literal. Every failure is contained here: the result is a
// sentinel display value plus a reason, never an escaping error.
package formula

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"nickandperla.net/decagrid/internal/cell"
	"nickandperla.net/decagrid/internal/eval"
)

// Failure reasons, surfaced through Result.ErrorState.
var (
	ErrEmptyFormula    = errors.New("formula is empty")
	ErrEmptyExpression = errors.New("expression is empty after substitution")
	ErrInvalidChars    = errors.New("expression contains invalid characters")
	ErrInvalidResult   = errors.New("expression did not produce a finite result")
)

// Resolver looks up the current numeric value of a referenced cell.
// ok is false when the cell is empty, displays non-numeric text, or is
// itself in an error or circular state.
type Resolver func(id cell.ID) (value float64, ok bool)

// Result is the normalized outcome of compiling one raw input.
type Result struct {
	Display    string
	ErrorState string
	// Refs lists every distinct reference token found in the formula, in
	// order of first appearance. Populated even when compilation fails, so
	// the engine can still wire dependency edges.
	Refs []cell.ID
}

// allowed reports whether a substituted expression may contain r.
func allowed(r rune) bool {
	return (r >= '0' && r <= '9') ||
		r == '+' || r == '-' || r == '*' || r == '/' ||
		r == '(' || r == ')' || r == '.'
}

// FormatNumber renders a numeric result in canonical decimal form: no
// exponent, no trailing zeros, "8" rather than "8.000000".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Compile turns a raw input into a display value and error state.
func Compile(raw string, resolve Resolver) Result {
	// Plain value cell: the literal is the display, no references.
	if !strings.HasPrefix(raw, "=") {
		return Result{Display: raw}
	}

	body := raw[1:]
	if strings.TrimSpace(body) == "" {
		return fail(nil, ErrEmptyFormula)
	}

	refs := cell.ExtractRefs(body)

	values := make(map[cell.ID]string, len(refs))
	for _, ref := range refs {
		v, ok := resolve(ref)
		if !ok {
			return fail(refs, fmt.Errorf("invalid reference %s", ref))
		}
		values[ref] = FormatNumber(v)
	}

	expr := cell.ReplaceRefs(body, func(id cell.ID) string {
		return values[id]
	})
	expr = stripWhitespace(expr)

	for _, r := range expr {
		if !allowed(r) {
			return fail(refs, ErrInvalidChars)
		}
	}

	if expr == "" {
		return fail(refs, ErrEmptyExpression)
	}

	v, err := eval.Evaluate(expr)
	if err != nil {
		// Malformed structure reaching the evaluator degrades to a
		// visible error, never a crash.
		return fail(refs, fmt.Errorf("%w: %v", ErrInvalidResult, err))
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fail(refs, ErrInvalidResult)
	}

	return Result{Display: FormatNumber(v), Refs: refs}
}

func fail(refs []cell.ID, reason error) Result {
	return Result{
		Display:    cell.SentinelError,
		ErrorState: reason.Error(),
		Refs:       refs,
	}
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
