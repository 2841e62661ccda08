// Package geneval implements the recursive evaluation driver: it walks a
// compiled genast.Node tree, resolves Content nodes through the node
// registry (internal/genops), applies the parameter-evaluation rules, and
// invokes each node's operator. Children evaluate left to right; the sticky
// error flag is checked after every sub-evaluation and short-circuits the
// moment it's set, so the first error wins.
package geneval

import (
	"strings"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/internal/genops"
	"github.com/buildgraph/genexpr/pkg/genast"
)

// Engine is the concrete evaluation driver. It holds only an operator
// registry and is otherwise stateless and safe for concurrent use across
// independent EvalContexts.
type Engine struct {
	registry *genops.Registry
}

// New constructs an Engine against the given registry.
func New(registry *genops.Registry) *Engine {
	return &Engine{registry: registry}
}

// Eval implements genops.Driver: it evaluates a node sequence to its
// concatenated string value. Children are evaluated left to right; once
// ctx.HadError() becomes true, every subsequent child evaluates to "" with
// no further work.
func (e *Engine) Eval(nodes []genast.Node, ctx *genops.EvalContext, dag *genops.Frame) string {
	if ctx.HadError() {
		return ""
	}
	var out strings.Builder
	for _, n := range nodes {
		if ctx.HadError() {
			return ""
		}
		out.WriteString(e.evalNode(n, ctx, dag))
	}
	return out.String()
}

func (e *Engine) evalNode(n genast.Node, ctx *genops.EvalContext, dag *genops.Frame) string {
	switch v := n.(type) {
	case *genast.Text:
		return v.Value
	case *genast.Content:
		return e.evalContent(v, ctx, dag)
	default:
		return ctx.Fail(errs.New(errs.CategoryInternal, n.String(), "unknown node type %T", n))
	}
}

func (e *Engine) evalContent(c *genast.Content, ctx *genops.EvalContext, dag *genops.Frame) string {
	if ctx.HadError() {
		return ""
	}

	ident := e.Eval(c.Identifier, ctx, dag)
	if ctx.HadError() {
		return ""
	}

	desc, ok := e.registry.Lookup(ident)
	if !ok {
		return ctx.Fail(errs.NewSyntax(c.String(), errs.MsgUnknownIdentifier, ident))
	}

	ctx.Backtrace().Push(c.String())
	defer ctx.Backtrace().Pop()

	params, count := foldParams(c.Params, desc)

	if desc.RequiresLiteralInput {
		for _, group := range params {
			for _, node := range group {
				if _, isText := node.(*genast.Text); !isText {
					return ctx.Fail(errs.NewSyntax(c.String(), errs.MsgNonLiteralParam, desc.Name))
				}
			}
		}
	}

	if desc.Arity.Kind != genops.ArityDynamic {
		switch {
		case !desc.GeneratesContent && desc.AcceptsArbitraryContent:
			// The presence of any parameter children satisfies a
			// discard-only arbitrary-content node; a missing parameter is
			// still fatal.
			if count < 1 && len(c.Params) == 0 {
				return ctx.Fail(errs.NewSyntax(c.String(), errs.MsgWrongArgCount, desc.Name, desc.Arity.String(), count))
			}
		case !desc.Arity.Check(count):
			return ctx.Fail(errs.NewSyntax(c.String(), errs.MsgWrongArgCount, desc.Name, desc.Arity.String(), count))
		}
	}

	call := genops.NewCall(ctx, dag, params, e)
	return desc.Eval(call)
}

// foldParams applies arbitrary-content folding: when desc
// accepts arbitrary content, the declared arity N means the first N-1
// parameter groups stay as-is and every remaining group is concatenated
// into one logical final parameter, with a literal comma spliced in at each
// original group boundary (this is what lets a generator expression embed
// an unescaped comma, by writing it as a separate $<COMMA>-free parameter
// group instead).
func foldParams(raw [][]genast.Node, desc *genops.Descriptor) ([][]genast.Node, int) {
	if !desc.AcceptsArbitraryContent || len(raw) == 0 {
		return raw, len(raw)
	}

	n := desc.Arity.N
	if desc.Arity.Kind != genops.ArityExact || n < 1 {
		n = 1
	}
	prefixLen := n - 1
	if prefixLen > len(raw) {
		prefixLen = len(raw)
	}

	folded := make([]genast.Node, 0, len(raw)-prefixLen)
	for i, group := range raw[prefixLen:] {
		if i > 0 {
			folded = append(folded, genast.NewText(","))
		}
		folded = append(folded, group...)
	}

	out := make([][]genast.Node, 0, prefixLen+1)
	out = append(out, raw[:prefixLen]...)
	out = append(out, folded)
	return out, len(out)
}

// Evaluate is the single external operation the engine produces:
// it evaluates a compiled expression against ctx, descending from the
// given parent DAG frame (nil for a fresh top-level call).
func Evaluate(registry *genops.Registry, root genast.Node, ctx *genops.EvalContext, parent *genops.Frame) string {
	if ctx.HadError() {
		return ""
	}
	return New(registry).Eval([]genast.Node{root}, ctx, parent)
}
