package formula

import (
	"strings"
	"testing"

	"nickandperla.net/decagrid/internal/cell"
)

func resolverFrom(values map[cell.ID]float64) Resolver {
	return func(id cell.ID) (float64, bool) {
		v, ok := values[id]
		return v, ok
	}
}

func noRefs(id cell.ID) (float64, bool) { return 0, false }

func TestCompileLiteral(t *testing.T) {
	for _, raw := range []string{"hello", "5", "", "3.14", "A1"} {
		res := Compile(raw, noRefs)
		if res.Display != raw {
			t.Errorf("Compile(%q).Display = %q", raw, res.Display)
		}
		if res.ErrorState != "" {
			t.Errorf("Compile(%q).ErrorState = %q", raw, res.ErrorState)
		}
		if res.Refs != nil {
			t.Errorf("Compile(%q).Refs = %v, expected none", raw, res.Refs)
		}
	}
}

func TestCompileArithmetic(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"=5+3", "8"},
		{"=2+3*4", "14"},
		{"=(2+3)*4", "20"},
		{"=10/4", "2.5"},
		{"= 1 + 2 ", "3"}, // whitespace is stripped
	}
	for _, tt := range tests {
		res := Compile(tt.raw, noRefs)
		if res.ErrorState != "" {
			t.Errorf("Compile(%q): unexpected error %q", tt.raw, res.ErrorState)
			continue
		}
		if res.Display != tt.want {
			t.Errorf("Compile(%q).Display = %q, expected %q", tt.raw, res.Display, tt.want)
		}
	}
}

func TestCompileWithReferences(t *testing.T) {
	resolve := resolverFrom(map[cell.ID]float64{"A1": 5, "B2": 2.5})

	res := Compile("=A1+3", resolve)
	if res.Display != "8" || res.ErrorState != "" {
		t.Errorf("=A1+3: got %q / %q", res.Display, res.ErrorState)
	}
	if len(res.Refs) != 1 || res.Refs[0] != "A1" {
		t.Errorf("=A1+3 refs = %v", res.Refs)
	}

	res = Compile("=A1*B2", resolve)
	if res.Display != "12.5" {
		t.Errorf("=A1*B2: got %q", res.Display)
	}

	// every occurrence is substituted, refs are deduplicated
	res = Compile("=A1+A1", resolve)
	if res.Display != "10" {
		t.Errorf("=A1+A1: got %q", res.Display)
	}
	if len(res.Refs) != 1 {
		t.Errorf("=A1+A1 refs = %v", res.Refs)
	}
}

func TestCompileA1DoesNotClobberA10(t *testing.T) {
	resolve := resolverFrom(map[cell.ID]float64{"A1": 5, "A10": 7})
	res := Compile("=A10+A1", resolve)
	if res.Display != "12" {
		t.Errorf("=A10+A1: got %q / %q", res.Display, res.ErrorState)
	}
}

func TestCompileEmptyFormula(t *testing.T) {
	for _, raw := range []string{"=", "=  "} {
		res := Compile(raw, noRefs)
		if res.Display != cell.SentinelError {
			t.Errorf("Compile(%q).Display = %q", raw, res.Display)
		}
		if res.ErrorState != ErrEmptyFormula.Error() {
			t.Errorf("Compile(%q).ErrorState = %q", raw, res.ErrorState)
		}
	}
}

func TestCompileInvalidReference(t *testing.T) {
	res := Compile("=A1+3", noRefs)
	if res.Display != cell.SentinelError {
		t.Errorf("Display = %q", res.Display)
	}
	if !strings.Contains(res.ErrorState, "A1") {
		t.Errorf("ErrorState %q should name A1", res.ErrorState)
	}
	// refs still reported so edges can be wired
	if len(res.Refs) != 1 || res.Refs[0] != "A1" {
		t.Errorf("Refs = %v", res.Refs)
	}
}

func TestCompileInvalidCharacters(t *testing.T) {
	for _, raw := range []string{"=5+x", "=hello", "=1^2", "=K1"} {
		res := Compile(raw, noRefs)
		if res.Display != cell.SentinelError {
			t.Errorf("Compile(%q).Display = %q", raw, res.Display)
		}
		if res.ErrorState != ErrInvalidChars.Error() {
			t.Errorf("Compile(%q).ErrorState = %q", raw, res.ErrorState)
		}
	}
}

func TestCompileNonFiniteResult(t *testing.T) {
	for _, raw := range []string{"=5/0", "=0/0", "=1/(1-1)"} {
		res := Compile(raw, noRefs)
		if res.Display != cell.SentinelError {
			t.Errorf("Compile(%q).Display = %q, expected sentinel", raw, res.Display)
		}
		if res.ErrorState == "" {
			t.Errorf("Compile(%q): expected error state", raw)
		}
	}
}

func TestCompileMalformedExpression(t *testing.T) {
	for _, raw := range []string{"=1+", "=(1+2", "=-1", "=3*-2"} {
		res := Compile(raw, noRefs)
		if res.Display != cell.SentinelError {
			t.Errorf("Compile(%q).Display = %q, expected sentinel", raw, res.Display)
		}
		if res.ErrorState == "" {
			t.Errorf("Compile(%q): expected error state", raw)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{8, "8"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0, "0"},
		{1.25, "1.25"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, expected %q", tt.v, got, tt.want)
		}
	}
}
