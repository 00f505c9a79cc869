package eval

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5", 5},
		{"1+2", 3},
		{"10-4", 6},
		{"6*7", 42},
		{"10/4", 2.5},
		{"2+3*4", 14},
		{"3*4+2", 14},
		{"(2+3)*4", 20},
		{"2*(3+4)", 14},
		{"10-2-3", 5},
		{"100/10/2", 5},
		{"1.5+2.25", 3.75},
		{"((1+2))", 3},
		{"(1+2)*(3+4)", 21},
		{"8/2*3", 12},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.input)
		if err != nil {
			t.Errorf("Evaluate(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Evaluate(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	got, err := Evaluate("5/0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}

	got, err = Evaluate("0/0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	inputs := []string{
		"",
		"1+",
		"+1",
		"*3",
		"(1+2",
		"1+2)",
		"()",
		"1..2+3",
		"1 + 2", // whitespace must already be stripped by the caller
		"1+a",
	}

	for _, input := range inputs {
		if _, err := Evaluate(input); err == nil {
			t.Errorf("Evaluate(%q): expected error, got none", input)
		}
	}
}

func TestEvaluateUnaryMinusRejected(t *testing.T) {
	for _, input := range []string{"-1", "3*-2", "(-1+2)", "2--3"} {
		_, err := Evaluate(input)
		if !errors.Is(err, ErrUnaryMinus) {
			t.Errorf("Evaluate(%q): expected ErrUnaryMinus, got %v", input, err)
		}
	}
}

func TestEvaluateMalformedIsErrMalformed(t *testing.T) {
	for _, input := range []string{"1+", "(1", ""} {
		_, err := Evaluate(input)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Evaluate(%q): expected ErrMalformed, got %v", input, err)
		}
	}
}
