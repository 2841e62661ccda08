package geneval

import (
	"testing"

	"github.com/buildgraph/genexpr/internal/genops"
	"github.com/buildgraph/genexpr/pkg/genast"
)

func TestEvaluateTextLeaf(t *testing.T) {
	ctx := genops.NewContext(newMockBuild())
	got := Evaluate(genops.DefaultRegistry(), genast.NewText("literal text"), ctx, nil)
	if got != "literal text" {
		t.Errorf("got %q", got)
	}
}

func TestEvaluateUnknownIdentifierIsFatal(t *testing.T) {
	ctx := genops.NewContext(newMockBuild())
	node := genast.Simple("NOT_A_REAL_OPERATOR", "x")
	got := Evaluate(genops.DefaultRegistry(), node, ctx, nil)
	if got != "" || !ctx.HadError() {
		t.Fatalf("expected empty result and sticky error for unknown identifier, got %q err=%v", got, ctx.HadError())
	}
}

func TestEvaluateWrongArity(t *testing.T) {
	ctx := genops.NewContext(newMockBuild())
	node := genast.Simple("NOT", "a", "b") // NOT takes exactly 1
	Evaluate(genops.DefaultRegistry(), node, ctx, nil)
	if !ctx.HadError() {
		t.Fatalf("expected arity mismatch to be fatal")
	}
}

func TestEvaluateStickyErrorShortCircuitsSiblings(t *testing.T) {
	// Once an earlier child sets HadError, a later sibling Text leaf in the
	// same sequence must not contribute to the result.
	ctx := genops.NewContext(newMockBuild())
	bad := genast.Simple("NOT_A_REAL_OPERATOR")
	nodes := []genast.Node{bad, genast.NewText("should never appear")}
	got := New(genops.DefaultRegistry()).Eval(nodes, ctx, nil)
	if got != "" {
		t.Errorf("got %q, want empty after sticky error", got)
	}
}

func TestFoldParamsArbitraryContent(t *testing.T) {
	// $<1:a,b,c> folds parameters 1..N into one logical parameter, re-
	// inserting a literal comma at each original boundary, for a node
	// declared with arity Exact(1) and AcceptsArbitraryContent.
	desc := &genops.Descriptor{
		Name:                    "1",
		Arity:                   genops.Exact(1),
		GeneratesContent:        true,
		AcceptsArbitraryContent: true,
	}
	raw := [][]genast.Node{genast.TextSeq("a"), genast.TextSeq("b"), genast.TextSeq("c")}
	folded, count := foldParams(raw, desc)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	var out string
	for _, n := range folded[0] {
		out += n.String()
	}
	if out != "a,b,c" {
		t.Errorf("folded content = %q, want a,b,c", out)
	}
}

func TestFoldParamsPrefixPreserved(t *testing.T) {
	// A hypothetical arity-2 arbitrary-content node keeps its first
	// parameter untouched and folds only the remainder into the second.
	desc := &genops.Descriptor{
		Name:                    "IF",
		Arity:                   genops.Exact(2),
		GeneratesContent:        true,
		AcceptsArbitraryContent: true,
	}
	raw := [][]genast.Node{genast.TextSeq("cond"), genast.TextSeq("a"), genast.TextSeq("b")}
	folded, count := foldParams(raw, desc)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if folded[0][0].String() != "cond" {
		t.Errorf("prefix parameter = %q, want cond", folded[0][0].String())
	}
	var out string
	for _, n := range folded[1] {
		out += n.String()
	}
	if out != "a,b" {
		t.Errorf("folded tail = %q, want a,b", out)
	}
}

func TestEvalContentRequiresLiteralInput(t *testing.T) {
	registry := genops.NewRegistry()
	registry.Register(&genops.Descriptor{
		Name:                 "LITERAL_ONLY",
		Arity:                genops.Exact(1),
		GeneratesContent:     true,
		RequiresLiteralInput: true,
		Eval: func(c *genops.Call) string {
			return c.Eval(0)
		},
	})

	ctx := genops.NewContext(newMockBuild())
	nested := genast.Simple("1", "x")
	node := genast.NewContent(genast.TextSeq("LITERAL_ONLY"), [][]genast.Node{{nested}})
	Evaluate(registry, node, ctx, nil)
	if !ctx.HadError() {
		t.Fatalf("expected a nested sub-expression parameter to violate requires-literal-input")
	}
}

func TestEvalContentAllowsLiteralInput(t *testing.T) {
	registry := genops.NewRegistry()
	registry.Register(&genops.Descriptor{
		Name:                 "LITERAL_ONLY",
		Arity:                genops.Exact(1),
		GeneratesContent:     true,
		RequiresLiteralInput: true,
		Eval: func(c *genops.Call) string {
			return c.Eval(0)
		},
	})

	ctx := genops.NewContext(newMockBuild())
	node := genast.Simple("LITERAL_ONLY", "plain text")
	got := Evaluate(registry, node, ctx, nil)
	if ctx.HadError() || got != "plain text" {
		t.Errorf("got %q, err=%v", got, ctx.HadError())
	}
}
