package genops

import (
	"strings"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/pkg/genast"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// transitiveWhitelistBases are the non-INTERFACE_-prefixed property base
// names propagated across the link-interface graph: compile
// definitions/options/features, include directories, system include
// directories, sources, position-independent code, compile language,
// autouic options, and autogen target depends.
var transitiveWhitelistBases = []string{
	"COMPILE_DEFINITIONS",
	"COMPILE_OPTIONS",
	"COMPILE_FEATURES",
	"INCLUDE_DIRECTORIES",
	"SYSTEM_INCLUDE_DIRECTORIES",
	"SOURCES",
	"POSITION_INDEPENDENT_CODE",
	"COMPILE_LANGUAGE",
	"AUTOUIC_OPTIONS",
	"AUTOGEN_TARGET_DEPENDS",
}

// transitiveBase returns the bare whitelist base name for prop, accepting
// either the bare form or its INTERFACE_ twin, and whether prop is
// transitive at all.
func transitiveBase(prop string) (base string, ok bool) {
	for _, b := range transitiveWhitelistBases {
		if prop == b || prop == "INTERFACE_"+b {
			return b, true
		}
	}
	return "", false
}

func isTransitive(prop string) bool {
	_, ok := transitiveBase(prop)
	return ok
}

// legacyCompileDefinitionsPolicy is consulted for the COMPILE_DEFINITIONS_*
// legacy per-config property form.
const legacyCompileDefinitionsPolicy = "CMP0043"

// registerTargetProperty installs TARGET_PROPERTY. Transitive propagation
// recurses via direct in-memory genast.Content construction rather than
// synthesizing and re-parsing expression text; this module never parses
// surface syntax.
func registerTargetProperty(r *Registry) {
	r.Register(&Descriptor{
		Name:             "TARGET_PROPERTY",
		Arity:            Dynamic,
		GeneratesContent: true,
		Category:         CategoryTargetProperty,
		Description:      "a target property's effective value, including transitive contributions from the link-interface graph for whitelisted properties",
		Eval:             evalTargetProperty,
	})
}

func evalTargetProperty(call *Call) string {
	ctx := call.Ctx

	if call.Count() != 1 && call.Count() != 2 {
		return ctx.Fail(errs.NewSyntax("", errs.MsgWrongArgCount, "TARGET_PROPERTY", "1 or 2", call.Count()))
	}

	var targetName, propName string
	var tgt genhost.TargetHandle

	if call.Count() == 1 {
		propName = call.Eval(0)
		if ctx.HadError() {
			return ""
		}
		tgt = ctx.HeadTarget()
		if tgt == nil {
			return ctx.Fail(errs.NewSemantic("", errs.MsgRequiresHeadTarget, "TARGET_PROPERTY"))
		}
		targetName = tgt.Name()
	} else {
		targetName = call.Eval(0)
		propName = call.Eval(1)
		if ctx.HadError() {
			return ""
		}
		if targetName == "" {
			return ctx.Fail(errs.NewSyntax("", errs.MsgEmptyTargetName, "TARGET_PROPERTY"))
		}
		if !targetNameRe.MatchString(targetName) {
			return ctx.Fail(errs.NewSyntax("", errs.MsgInvalidNameSyntax, targetName))
		}
		var ok bool
		tgt, ok = ctx.Query().FindTarget(targetName)
		if !ok {
			return ctx.Fail(errs.NewSemantic("", errs.MsgUnknownTarget, targetName))
		}
	}

	if propName == "" {
		return ctx.Fail(errs.NewSyntax("", errs.MsgEmptyPropertyName, "TARGET_PROPERTY"))
	}
	if !propertyNameRe.MatchString(propName) {
		return ctx.Fail(errs.NewSyntax("", errs.MsgInvalidPropertyName, propName))
	}

	if head := ctx.HeadTarget(); head != nil && head.Name() == tgt.Name() {
		ctx.MarkSeenTargetProperty(propName)
	}

	if propName == "ALIASED_TARGET" {
		alias, ok := tgt.AliasTarget()
		if !ok {
			return ""
		}
		return alias.Name()
	}

	if propName == "LINKER_LANGUAGE" {
		if tgt.Kind() == genhost.TargetStaticLibrary && call.Dag != nil &&
			(call.Dag.EvaluatingLinkLibraries() || call.Dag.EvaluatingSources()) {
			return ctx.Fail(errs.NewGraph("", errs.MsgLinkerLanguageCycle, targetName))
		}
		lang, ok := tgt.LinkerLanguage(ctx.Config())
		if !ok {
			return ""
		}
		return lang
	}

	var roles Role
	if ctx.collecting() {
		roles |= RoleTransitiveOnly
	}
	if call.Dag == nil {
		roles |= RoleTopTarget
	}

	frame, status := Push(call.Dag, tgt.Name(), propName, roles, ctx.collecting())
	switch status {
	case StatusSelfReference:
		return ctx.Fail(errs.NewGraph("", errs.MsgSelfReference, targetName, propName))
	case StatusCyclic:
		return ""
	case StatusAlreadySeen:
		if isTransitive(propName) {
			return ""
		}
		// fall through as if StatusOK: re-reading a non-transitive property
		// cannot recurse further, so the revisit is harmless.
	}

	if call.Dag != nil && call.Dag.EvaluatingLinkLibraries() && isTransitiveOrTwin(propName) {
		if _, hasRaw := tgt.Property(propName); !hasRaw {
			return ""
		}
		return ctx.Fail(errs.NewGraph("", errs.MsgRecursionOverLinkLibs, propName, targetName))
	}

	interfaceProp := ""
	if base, ok := transitiveBase(propName); ok {
		interfaceProp = "INTERFACE_" + base
	} else if strings.HasPrefix(propName, "COMPILE_DEFINITIONS_") {
		status := ctx.Query().PolicyStatus(legacyCompileDefinitionsPolicy)
		if status == genhost.PolicyWarn || status == genhost.PolicyOld {
			interfaceProp = "INTERFACE_COMPILE_DEFINITIONS"
		}
	}

	transitiveContent := collectTransitiveContent(call, frame, tgt, propName, interfaceProp)
	if ctx.HadError() {
		return ""
	}

	rawVal, hasRaw := tgt.Property(propName)
	if !hasRaw {
		if tgt.IsImported() || tgt.Kind() == genhost.TargetInterfaceLibrary {
			return transitiveContent
		}
		for _, kind := range []genhost.LinkDependentKind{
			genhost.LinkDependentBool,
			genhost.LinkDependentString,
			genhost.LinkDependentNumberMin,
			genhost.LinkDependentNumberMax,
		} {
			if val, ok := tgt.LinkDependentProperty(kind, propName, ctx.Config()); ok {
				ctx.MarkContextSensitive()
				return val
			}
		}
		return transitiveContent
	}

	if isTransitive(propName) {
		return joinNonEmpty(rawVal, transitiveContent)
	}
	return rawVal
}

// isTransitiveOrTwin reports whether prop (bare or already INTERFACE_-
// prefixed) names a whitelisted transitive property.
func isTransitiveOrTwin(prop string) bool {
	return isTransitive(prop)
}

// collectTransitiveContent gathers the set of targets reachable through
// tgt's transitive-property or link-implementation edges (depending on
// which form is whitelisted) and recursively evaluates interfaceProp on
// each, concatenating with ';' and dropping empty elements.
func collectTransitiveContent(call *Call, frame *Frame, tgt genhost.TargetHandle, propName, interfaceProp string) string {
	ctx := call.Ctx
	if interfaceProp == "" {
		return ""
	}

	var targets []genhost.TargetHandle
	head := ctx.HeadTarget()
	if head == nil {
		head = tgt
	}
	if isTransitive(propName) {
		targets = tgt.TransitivePropertyTargets(ctx.Config(), head)
	} else if isTransitive(interfaceProp) {
		targets = tgt.LinkImplementationLibraries(ctx.Config())
	}

	if len(targets) == 0 {
		return ""
	}

	parts := make([]string, 0, len(targets))
	ctx.beginTransitiveCollection()
	defer ctx.endTransitiveCollection()

	for _, t := range targets {
		if t == nil || t.Name() == tgt.Name() {
			continue
		}
		sub := genast.Simple("TARGET_PROPERTY", t.Name(), interfaceProp)
		restore := ctx.swapCurrentTarget(t)
		val := call.EvalNodes([]genast.Node{sub}, frame)
		restore()
		if ctx.HadError() {
			return ""
		}
		if val != "" {
			parts = append(parts, val)
		}
	}
	return strings.Join(parts, ";")
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + ";" + b
}
