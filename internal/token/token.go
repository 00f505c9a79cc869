// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines the token types of the decagrid arithmetic grammar.
package token

// Token represents an arithmetic token type.
type Token int

const (
	EOF Token = iota
	NUMBER

	// Operators
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	LPAREN // (
	RPAREN // )
)

// Runes for each operator.
const (
	RunePlus   = '+'
	RuneMinus  = '-'
	RuneStar   = '*'
	RuneSlash  = '/'
	RuneLParen = '('
	RuneRParen = ')'
)

// IsOperator returns true if the rune is an operator or parenthesis.
func IsOperator(r rune) bool {
	switch r {
	case RunePlus, RuneMinus, RuneStar, RuneSlash, RuneLParen, RuneRParen:
		return true
	}
	return false
}

// IsNumberRune returns true if the rune can appear inside a numeric token.
func IsNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// TokenFromRune returns the token type for an operator rune.
func TokenFromRune(r rune) Token {
	switch r {
	case RunePlus:
		return PLUS
	case RuneMinus:
		return MINUS
	case RuneStar:
		return STAR
	case RuneSlash:
		return SLASH
	case RuneLParen:
		return LPAREN
	case RuneRParen:
		return RPAREN
	}
	return NUMBER
}

// String returns the string representation of a token.
func (t Token) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	}
	return "UNKNOWN"
}

// IsBinaryOp returns true for the four binary operators.
func (t Token) IsBinaryOp() bool {
	switch t {
	case PLUS, MINUS, STAR, SLASH:
		return true
	}
	return false
}

// Precedence returns the binding strength of a binary operator.
// STAR and SLASH bind tighter than PLUS and MINUS; all four are
// left-associative and binary only.
func (t Token) Precedence() int {
	switch t {
	case STAR, SLASH:
		return 2
	case PLUS, MINUS:
		return 1
	}
	return 0
}
