package genops

import (
	"testing"

	"github.com/buildgraph/genexpr/pkg/genast"
)

func TestPunctuationLiterals(t *testing.T) {
	tests := []struct {
		ident, want string
	}{
		{"ANGLE-R", ">"},
		{"COMMA", ","},
		{"SEMICOLON", ";"},
	}
	for _, tt := range tests {
		ctx := NewContext(newMockBuild())
		node := genast.NewContent(genast.TextSeq(tt.ident), nil)
		got := evalSimple(t, ctx, nil, node)
		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.ident, got, tt.want)
		}
	}
}

func TestCaseConversion(t *testing.T) {
	ctx := NewContext(newMockBuild())
	if got := evalSimple(t, ctx, nil, genast.Simple("LOWER_CASE", "HeLLo")); got != "hello" {
		t.Errorf("LOWER_CASE = %q", got)
	}
	ctx2 := NewContext(newMockBuild())
	if got := evalSimple(t, ctx2, nil, genast.Simple("UPPER_CASE", "HeLLo")); got != "HELLO" {
		t.Errorf("UPPER_CASE = %q", got)
	}
}

func TestMakeCIdentifier(t *testing.T) {
	tests := []struct{ in, want string }{
		{"9lives/cat", "_9lives_cat"},
		{"a-b.c", "a_b_c"},
		{"already_ok", "already_ok"},
	}
	for _, tt := range tests {
		ctx := NewContext(newMockBuild())
		got := evalSimple(t, ctx, nil, genast.Simple("MAKE_C_IDENTIFIER", tt.in))
		if got != tt.want {
			t.Errorf("MAKE_C_IDENTIFIER(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	ctx := NewContext(newMockBuild())
	got := evalSimple(t, ctx, nil, genast.Simple("JOIN", "a;b;c", "-I"))
	if got != "a-Ib-Ic" {
		t.Errorf("JOIN(a;b;c,-I) = %q, want a-Ib-Ic", got)
	}
}
