package genops

import "github.com/buildgraph/genexpr/pkg/genast"

// Driver is the minimal recursive-evaluation capability an operator needs.
// It is declared here, at the point of use, rather than imported from the
// driver package (internal/geneval): the driver package imports genops,
// not the other way around, so this interface is what lets TARGET_PROPERTY
// and friends recurse without an import cycle. Concrete driver types
// satisfy it structurally; see internal/geneval/driver.go.
type Driver interface {
	// Eval evaluates a node sequence (as found in a Content parameter or
	// identifier slot) to its string value, under dag (nil until the host
	// or a TARGET_PROPERTY descent has pushed a frame).
	Eval(nodes []genast.Node, ctx *EvalContext, dag *Frame) string
}

// Call bundles everything an operator's Eval function needs: the context,
// the DAG frame it was invoked under, its raw (unevaluated) parameters, and
// a driver to evaluate them on demand. Parameters are evaluated lazily and
// memoized so an operator that reads the same parameter twice (e.g. IF
// reading its condition once, NOT reading its single operand once) never
// duplicates evaluation side effects such as target registration.
type Call struct {
	Ctx    *EvalContext
	Dag    *Frame
	Params [][]genast.Node

	driver Driver
	cache  []*string
}

// NewCall constructs a Call for invoking a node's Eval function.
func NewCall(ctx *EvalContext, dag *Frame, params [][]genast.Node, driver Driver) *Call {
	return &Call{Ctx: ctx, Dag: dag, Params: params, driver: driver, cache: make([]*string, len(params))}
}

// Count returns the number of logical parameters.
func (c *Call) Count() int { return len(c.Params) }

// Eval evaluates logical parameter i and returns its string value. Out of
// range indices evaluate to "". Results are memoized per Call.
func (c *Call) Eval(i int) string {
	if i < 0 || i >= len(c.Params) {
		return ""
	}
	if c.cache[i] != nil {
		return *c.cache[i]
	}
	v := c.driver.Eval(c.Params[i], c.Ctx, c.Dag)
	c.cache[i] = &v
	return v
}

// EvalAll evaluates every logical parameter in order and returns the
// resulting strings. Used by operators that never short-circuit (AND, OR).
func (c *Call) EvalAll() []string {
	out := make([]string, c.Count())
	for i := range out {
		out[i] = c.Eval(i)
	}
	return out
}

// Raw returns the unevaluated node sequence for parameter i, for operators
// that need to recurse into the driver themselves under a different
// (target, property) pair, such as TARGET_PROPERTY synthesizing sub-calls.
func (c *Call) Raw(i int) []genast.Node {
	if i < 0 || i >= len(c.Params) {
		return nil
	}
	return c.Params[i]
}

// EvalNodes evaluates an arbitrary node sequence not among this Call's own
// parameters, under this Call's context and DAG frame. Used by
// TARGET_PROPERTY to evaluate a synthesized sub-expression.
func (c *Call) EvalNodes(nodes []genast.Node, dag *Frame) string {
	return c.driver.Eval(nodes, c.Ctx, dag)
}
