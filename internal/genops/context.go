// Package genops implements the per-call evaluation context, the DAG cycle
// checker, the node registry, and the built-in operators for generator
// expressions.
//
// This package deliberately does not import the evaluation driver
// (internal/geneval): operators that need to recurse into sub-expressions
// (TARGET_PROPERTY above all) do so through the small Driver interface
// declared in call.go, which the driver package satisfies structurally.
package genops

import (
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// EvalContext is the per-top-level-call evaluation context.
// It is created once per Evaluate call by the host and is exclusively
// owned by that call; it is not safe for concurrent use by multiple
// evaluations (each concurrent evaluation must construct its own).
type EvalContext struct {
	config     string
	headTarget genhost.TargetHandle
	currTarget genhost.TargetHandle
	quiet      bool
	forBuild   bool
	exporting  bool
	query      genhost.BuildContext

	hadError       bool
	hadContextFlag bool

	allTargets      map[string]genhost.TargetHandle
	dependTargets   map[string]genhost.TargetHandle
	seenTargetProps map[string]struct{}

	// maxLanguageStandard[target][language] = required standard level,
	// populated when COMPILE_FEATURES is consulted during link-libraries
	// evaluation.
	maxLanguageStandard map[string]map[string]string

	backtrace *Backtrace

	// collectingDepth is nonzero while TARGET_PROPERTY is recursing through
	// transitive-whitelist propagation. It is read by Push call sites
	// inside targetproperty.go to decide whether a non-immediate DAG-frame
	// match is the expected AlreadySeen diamond termination or a genuine
	// Cyclic re-entry.
	collectingDepth int
}

// Option configures a new EvalContext.
type Option func(*EvalContext)

// WithConfig sets the active build configuration.
func WithConfig(config string) Option {
	return func(c *EvalContext) { c.config = config }
}

// WithHeadTarget sets the target whose usage requirements are being
// assembled. May be nil for expressions evaluated outside any binary
// target.
func WithHeadTarget(t genhost.TargetHandle) Option {
	return func(c *EvalContext) {
		c.headTarget = t
		c.currTarget = t
	}
}

// WithQuiet suppresses diagnostic-sink dispatch while still setting the
// sticky error flag.
func WithQuiet(quiet bool) Option {
	return func(c *EvalContext) { c.quiet = quiet }
}

// WithBuildSystemEvaluation enables artifacts only valid for internal
// buildsystem evaluation (e.g. TARGET_OBJECTS).
func WithBuildSystemEvaluation(forBuild bool) Option {
	return func(c *EvalContext) { c.forBuild = forBuild }
}

// WithExporting marks this evaluation as happening while generating an
// install export file, flipping BUILD_INTERFACE/INSTALL_INTERFACE/
// INSTALL_PREFIX.
func WithExporting(exporting bool) Option {
	return func(c *EvalContext) { c.exporting = exporting }
}

// NewContext constructs a fresh evaluation context against the given host
// query surface.
func NewContext(query genhost.BuildContext, opts ...Option) *EvalContext {
	c := &EvalContext{
		query:               query,
		allTargets:          make(map[string]genhost.TargetHandle),
		dependTargets:       make(map[string]genhost.TargetHandle),
		seenTargetProps:     make(map[string]struct{}),
		maxLanguageStandard: make(map[string]map[string]string),
		backtrace:           NewBacktrace(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *EvalContext) Config() string                      { return c.config }
func (c *EvalContext) HeadTarget() genhost.TargetHandle    { return c.headTarget }
func (c *EvalContext) CurrentTarget() genhost.TargetHandle { return c.currTarget }
func (c *EvalContext) Quiet() bool                         { return c.quiet }
func (c *EvalContext) EvaluateForBuildSystem() bool        { return c.forBuild }
func (c *EvalContext) Exporting() bool                     { return c.exporting }
func (c *EvalContext) Query() genhost.BuildContext         { return c.query }
func (c *EvalContext) Backtrace() *Backtrace               { return c.backtrace }

// beginTransitiveCollection and endTransitiveCollection bracket a
// TARGET_PROPERTY descent made on behalf of transitive-whitelist
// propagation rather than a direct user-written reference. Reentrant: a
// descent triggered from within another descent keeps collecting() true
// until the outermost one ends.
func (c *EvalContext) beginTransitiveCollection() { c.collectingDepth++ }
func (c *EvalContext) endTransitiveCollection()   { c.collectingDepth-- }
func (c *EvalContext) collecting() bool           { return c.collectingDepth > 0 }

// HadError reports the sticky fatal-error flag. Once set, every subsequent
// Evaluate call on this context returns "" immediately.
func (c *EvalContext) HadError() bool { return c.hadError }

// HadContextSensitiveCondition reports whether evaluation touched
// $<CONFIG>, $<CONFIG:...>, $<TARGET_POLICY:...>, or a link-interface
// consistency consultation, meaning the result must not be memoized across
// configurations.
func (c *EvalContext) HadContextSensitiveCondition() bool { return c.hadContextFlag }

// MarkContextSensitive sets the sticky context-sensitive-condition flag.
func (c *EvalContext) MarkContextSensitive() { c.hadContextFlag = true }

// swapCurrentTarget sets CurrentTarget to t for the duration of a nested
// evaluation, returning a closure that restores the previous value. The
// context itself is mutated in place, rather than copied, so a fatal error
// set during the nested evaluation remains visible to the caller: copying
// EvalContext by value would fork hadError onto an object nobody else
// checks.
func (c *EvalContext) swapCurrentTarget(t genhost.TargetHandle) (restore func()) {
	prev := c.currTarget
	c.currTarget = t
	return func() { c.currTarget = prev }
}

// Fail sets the sticky error flag and, unless quiet, dispatches the error
// through the host's diagnostic sink with the current backtrace. It always
// returns "" so call sites can write `return ctx.Fail(...)`.
func (c *EvalContext) Fail(err error) string {
	c.hadError = true
	if !c.quiet && c.query != nil {
		if sink := c.query.Diagnostics(); sink != nil {
			sink.ReportError(err.Error(), c.backtrace.Frames())
		}
	}
	return ""
}

// Warn dispatches a non-fatal policy warning through the diagnostic sink.
// Unlike Fail, it never sets the sticky error flag.
func (c *EvalContext) Warn(policy, message string) {
	if !c.quiet && c.query != nil {
		if sink := c.query.Diagnostics(); sink != nil {
			sink.ReportPolicyWarning(policy, message, c.backtrace.Frames())
		}
	}
}

// RecordTarget records t in the all-targets set the caller's buildsystem
// linker consumes as a side effect of evaluation.
func (c *EvalContext) RecordTarget(t genhost.TargetHandle) {
	if t == nil {
		return
	}
	c.allTargets[t.Name()] = t
}

// RecordDependTarget records t in both the all-targets and depend-targets
// sets.
func (c *EvalContext) RecordDependTarget(t genhost.TargetHandle) {
	if t == nil {
		return
	}
	c.RecordTarget(t)
	c.dependTargets[t.Name()] = t
}

// AllTargets returns the side-effect set of every target referenced during
// evaluation.
func (c *EvalContext) AllTargets() map[string]genhost.TargetHandle { return c.allTargets }

// DependTargets returns the side-effect set of targets this evaluation
// established a dependency on.
func (c *EvalContext) DependTargets() map[string]genhost.TargetHandle { return c.dependTargets }

// MarkSeenTargetProperty records that prop was read on the head target,
// used for link-interface consistency diagnostics.
func (c *EvalContext) MarkSeenTargetProperty(prop string) {
	c.seenTargetProps[prop] = struct{}{}
}

// SeenTargetProperty reports whether prop was recorded via
// MarkSeenTargetProperty.
func (c *EvalContext) SeenTargetProperty(prop string) bool {
	_, ok := c.seenTargetProps[prop]
	return ok
}

// RecordMaxLanguageStandard records that target requires at least standard
// for language, used by COMPILE_FEATURES during link-libraries evaluation.
func (c *EvalContext) RecordMaxLanguageStandard(target, language, standard string) {
	langs, ok := c.maxLanguageStandard[target]
	if !ok {
		langs = make(map[string]string)
		c.maxLanguageStandard[target] = langs
	}
	langs[language] = standard
}

// MaxLanguageStandard returns the recorded (target, language) -> standard
// mapping.
func (c *EvalContext) MaxLanguageStandard() map[string]map[string]string {
	return c.maxLanguageStandard
}
