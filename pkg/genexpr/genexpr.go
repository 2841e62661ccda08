// Package genexpr is the public facade for the generator-expression
// evaluation engine: a host buildsystem generator imports only this
// package. It re-exports the host-facing interfaces of pkg/genhost, the
// evaluation context and DAG frame types of internal/genops, and the single
// external operation, Evaluate(compiled-expr, context, parent-dag).
package genexpr

import (
	"github.com/buildgraph/genexpr/internal/geneval"
	"github.com/buildgraph/genexpr/internal/genops"
	"github.com/buildgraph/genexpr/pkg/genast"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// Node is a parsed generator-expression AST node: either a Text leaf or a
// Content compound. The core never parses surface syntax (see package doc);
// hosts construct or otherwise obtain a Node tree and hand it to Evaluate.
type Node = genast.Node

// Text and Content are the two Node variants. See pkg/genast for their
// fields and constructors (NewText, NewContent, Simple, TextSeq).
type (
	Text    = genast.Text
	Content = genast.Content
)

// EvalContext is the per-top-level-call evaluation context: active
// config, head/current target, quiet and build-system flags, sticky error
// and context-sensitive-condition flags, and the side-effect sets a host's
// buildsystem linker consumes after evaluation.
type EvalContext = genops.EvalContext

// Option configures a new EvalContext.
type Option = genops.Option

// Frame is a DAG guard frame. A nil *Frame is the valid parent for the
// first evaluation of a top-level expression.
type Frame = genops.Frame

// Role is the DAG frame role bitmask. RoleLinkLibraries and RoleSources mark
// the two host-visible evaluation modes a caller must seed a root Frame with
// before evaluating a target's link libraries or sources, respectively.
type Role = genops.Role

const (
	RoleLinkLibraries  = genops.RoleLinkLibraries
	RoleSources        = genops.RoleSources
	RoleTransitiveOnly = genops.RoleTransitiveOnly
	RoleTopTarget      = genops.RoleTopTarget
)

// Registry maps identifier strings to operator Descriptors.
type Registry = genops.Registry

// Descriptor is a single operator's fixed, process-wide, stateless
// attribute set plus its evaluator.
type Descriptor = genops.Descriptor

// Host interface re-exports, so a host needs only this one import.
type (
	TargetHandle      = genhost.TargetHandle
	BuildContext      = genhost.BuildContext
	GeneratorTarget   = genhost.GeneratorTarget
	SourceStore       = genhost.SourceStore
	DiagnosticSink    = genhost.DiagnosticSink
	TargetKind        = genhost.TargetKind
	LinkDependentKind = genhost.LinkDependentKind
	PolicyStatus      = genhost.PolicyStatus
)

const (
	TargetUnknown          = genhost.TargetUnknown
	TargetExecutable       = genhost.TargetExecutable
	TargetStaticLibrary    = genhost.TargetStaticLibrary
	TargetSharedLibrary    = genhost.TargetSharedLibrary
	TargetModuleLibrary    = genhost.TargetModuleLibrary
	TargetObjectLibrary    = genhost.TargetObjectLibrary
	TargetInterfaceLibrary = genhost.TargetInterfaceLibrary

	LinkDependentBool      = genhost.LinkDependentBool
	LinkDependentString    = genhost.LinkDependentString
	LinkDependentNumberMin = genhost.LinkDependentNumberMin
	LinkDependentNumberMax = genhost.LinkDependentNumberMax

	PolicyOld  = genhost.PolicyOld
	PolicyNew  = genhost.PolicyNew
	PolicyWarn = genhost.PolicyWarn
)

// Context constructor and option re-exports.
var (
	NewContext                = genops.NewContext
	WithConfig                = genops.WithConfig
	WithHeadTarget            = genops.WithHeadTarget
	WithQuiet                 = genops.WithQuiet
	WithBuildSystemEvaluation = genops.WithBuildSystemEvaluation
	WithExporting             = genops.WithExporting
)

// DefaultRegistry returns the process-wide, lazily-built registry of every
// built-in operator. Most hosts never need anything else.
func DefaultRegistry() *Registry {
	return genops.DefaultRegistry()
}

// NewRegistry builds an empty registry and populates it with every built-in
// operator, independent of the process-wide default. Hosts embedding
// multiple engine instances with different operator sets (e.g. for testing)
// can start from this instead of DefaultRegistry.
func NewRegistry() *Registry {
	r := genops.NewRegistry()
	genops.RegisterAll(r)
	return r
}

// NewLinkLibrariesFrame returns the root DAG frame a host must pass to
// Evaluate when resolving a target's link libraries, so that nested
// $<TARGET_PROPERTY:...> and $<TARGET_LINKER_FILE:...> descents correctly
// observe "currently evaluating link libraries".
func NewLinkLibrariesFrame(target string) *Frame {
	frame, _ := genops.Push(nil, target, "", RoleLinkLibraries|RoleTopTarget, false)
	return frame
}

// NewSourcesFrame is NewLinkLibrariesFrame's analogue for evaluating a
// target's sources.
func NewSourcesFrame(target string) *Frame {
	frame, _ := genops.Push(nil, target, "", RoleSources|RoleTopTarget, false)
	return frame
}

// NewTransitiveOnlyFrame returns a root DAG frame marking "propagating usage
// requirements only", the state LINK_ONLY consults to suppress a private
// link dependency's content.
func NewTransitiveOnlyFrame(target string) *Frame {
	frame, _ := genops.Push(nil, target, "", RoleTransitiveOnly|RoleTopTarget, false)
	return frame
}

// Evaluate walks root against ctx and the optional parent DAG frame,
// returning the resolved string. A
// nil parent is correct for any expression evaluated outside a link-
// libraries or sources context (ordinary target-property reads, compile
// definitions, install rules, and so on): TARGET_PROPERTY seeds its own
// frame chain from there. After return, check ctx.HadError() and
// ctx.HadContextSensitiveCondition() to decide whether the result is usable
// and memoizable.
func Evaluate(root Node, ctx *EvalContext, parent *Frame) string {
	return geneval.Evaluate(DefaultRegistry(), root, ctx, parent)
}

// EvaluateWith is Evaluate parameterized over an explicit registry, for
// hosts that built one via NewRegistry instead of using the process-wide
// default.
func EvaluateWith(registry *Registry, root Node, ctx *EvalContext, parent *Frame) string {
	return geneval.Evaluate(registry, root, ctx, parent)
}

// EvaluateSeq evaluates an ordered sequence of nodes, e.g. the inner
// sequence inside a single comma-separated parameter group, concatenating
// their results, short-circuiting on the first sticky error.
func EvaluateSeq(nodes []Node, ctx *EvalContext, parent *Frame) string {
	return geneval.New(DefaultRegistry()).Eval(nodes, ctx, parent)
}
