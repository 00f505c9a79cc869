// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval evaluates decagrid arithmetic expressions.
//
// The pipeline is tokenize, convert infix to postfix with the shunting-yard
// algorithm, then reduce the postfix sequence with a single numeric stack.
// The grammar is digits, '+', '-', '*', '/', parentheses, and the decimal
// point; operators are binary and left-associative. There is no fallback
// interpreter: input outside the grammar is an error, never re-parsed some
// other way.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"nickandperla.net/decagrid/internal/scanner"
	"nickandperla.net/decagrid/internal/token"
)

// ErrMalformed reports a structurally invalid expression: mismatched
// parentheses, missing operands, or an empty input.
var ErrMalformed = errors.New("malformed expression")

// ErrUnaryMinus reports a '-' or '+' used in prefix position. The grammar
// has no unary operators; rejecting them here gives callers a clear reason
// instead of an ambiguous stack underflow.
var ErrUnaryMinus = errors.New("unary operators are not supported")

// Evaluate computes the numeric value of an arithmetic expression.
// Division by zero is not an error at this layer: it produces a non-finite
// value the caller is expected to reject.
func Evaluate(input string) (float64, error) {
	postfix, err := toPostfix(input)
	if err != nil {
		return 0, err
	}
	return evalPostfix(postfix)
}

// toPostfix tokenizes the input and reorders it into postfix (RPN) form.
func toPostfix(input string) ([]scanner.Item, error) {
	s := scanner.NewFromString(input)

	var output []scanner.Item
	var ops []scanner.Item

	// expectOperand tracks whether the next token must be a value. An
	// operator in that position is a unary usage, which the grammar rejects.
	expectOperand := true

	for {
		item, err := s.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if item.Token == token.EOF {
			break
		}

		switch {
		case item.Token == token.NUMBER:
			if !expectOperand {
				return nil, fmt.Errorf("%w: adjacent values", ErrMalformed)
			}
			output = append(output, *item)
			expectOperand = false

		case item.Token.IsBinaryOp():
			if expectOperand {
				if item.Token == token.MINUS || item.Token == token.PLUS {
					return nil, ErrUnaryMinus
				}
				return nil, fmt.Errorf("%w: operator %q needs a left operand", ErrMalformed, item.Value)
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !top.Token.IsBinaryOp() || top.Token.Precedence() < item.Token.Precedence() {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, *item)
			expectOperand = true

		case item.Token == token.LPAREN:
			if !expectOperand {
				return nil, fmt.Errorf("%w: value before '('", ErrMalformed)
			}
			ops = append(ops, *item)

		case item.Token == token.RPAREN:
			if expectOperand {
				return nil, fmt.Errorf("%w: ')' after operator", ErrMalformed)
			}
			// flush operators down to the matching '('
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Token == token.LPAREN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w: unmatched ')'", ErrMalformed)
			}
		}
	}

	if expectOperand {
		return nil, fmt.Errorf("%w: expression ends on an operator", ErrMalformed)
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Token == token.LPAREN {
			return nil, fmt.Errorf("%w: unmatched '('", ErrMalformed)
		}
		output = append(output, top)
	}

	if len(output) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrMalformed)
	}

	return output, nil
}

// evalPostfix reduces a postfix token sequence with a single numeric stack.
// Operands push; operators pop two operands (a pushed before b) and push
// a <op> b. The final stack must hold exactly one value.
func evalPostfix(items []scanner.Item) (float64, error) {
	var stack []float64

	for _, item := range items {
		if item.Token == token.NUMBER {
			v, err := strconv.ParseFloat(item.Value, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, item.Value)
			}
			stack = append(stack, v)
			continue
		}

		if len(stack) < 2 {
			return 0, fmt.Errorf("%w: operator %q is missing operands", ErrMalformed, item.Value)
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v float64
		switch item.Token {
		case token.PLUS:
			v = a + b
		case token.MINUS:
			v = a - b
		case token.STAR:
			v = a * b
		case token.SLASH:
			// zero divisor yields ±Inf or NaN for the caller to reject
			v = a / b
		default:
			return 0, fmt.Errorf("%w: unexpected token %q", ErrMalformed, item.Value)
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrMalformed, len(stack))
	}
	return stack[0], nil
}
