// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming lexer for decagrid arithmetic
// expressions. Input is expected to be whitespace-free and restricted to
// digits, the four operators, parentheses, and the decimal point; anything
// else surfaces as an error from Next.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"nickandperla.net/decagrid/internal/token"
)

// Scanner tokenizes an arithmetic expression rune-by-rune.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	peeked *Item
}

// Item represents a scanned token with its value.
type Item struct {
	Token token.Token
	Value string
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Peek returns the next item without consuming it.
func (s *Scanner) Peek() (*Item, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	item, err := s.Next()
	if err != nil {
		return nil, err
	}
	s.peeked = item
	return item, nil
}

// Next returns the next token from the input. Consecutive digit and '.'
// runes accumulate into a single NUMBER token; each operator or parenthesis
// is its own token.
func (s *Scanner) Next() (*Item, error) {
	if s.peeked != nil {
		item := s.peeked
		s.peeked = nil
		return item, nil
	}

	s.buf.Reset()

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				return &Item{Token: token.NUMBER, Value: s.buf.String()}, nil
			}
			return &Item{Token: token.EOF}, nil
		}
		if err != nil {
			return nil, err
		}

		if token.IsOperator(r) {
			// If we have accumulated a number, return it first
			if s.buf.Len() > 0 {
				s.reader.UnreadRune()
				return &Item{Token: token.NUMBER, Value: s.buf.String()}, nil
			}
			return &Item{Token: token.TokenFromRune(r), Value: string(r)}, nil
		}

		if !token.IsNumberRune(r) {
			return nil, fmt.Errorf("unexpected character %q in expression", r)
		}

		s.buf.WriteRune(r)
	}
}
