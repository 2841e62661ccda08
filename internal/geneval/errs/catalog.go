// Package errs provides the error-message catalog and categorized error type
// used throughout the generator-expression evaluator.
//
// Error Message Format:
//   - Syntax/arity errors:   e.g. "unknown identifier: FOO"
//   - Semantic errors:       e.g. "C_COMPILER_ID may only be used while evaluating the usage requirements of a binary target"
//   - Graph errors:          e.g. "self-reference evaluating TARGET_PROPERTY \"lib\", \"FOO\""
//   - Policy warnings:       e.g. "CXX_COMPILER_ID matched \"gnu\" only case-insensitively; policy ID_CASE_FOLD_COMPAT is WARN" (never fatal)
//
// All messages start lowercase (except proper nouns/identifiers), use
// present tense, and include the relevant identifier names.
package errs

// Category classifies an Error.
type Category string

const (
	CategorySyntax   Category = "syntax"
	CategorySemantic Category = "semantic"
	CategoryGraph    Category = "graph"
	CategoryPolicy   Category = "policy"
	CategoryInternal Category = "internal"
)

// ============================================================================
// Syntax / arity error messages
// ============================================================================

const (
	MsgUnknownIdentifier      = "unknown identifier: %s"
	MsgWrongArgCount          = "wrong number of arguments for %s: expected %s, got %d"
	MsgNonLiteralParam        = "%s requires a literal parameter, got a nested expression"
	MsgInvalidNameSyntax      = "invalid name: %q"
	MsgInvalidPropertyName    = "invalid property name: %q"
	MsgMalformedInteger       = "malformed integer: %q"
	MsgMalformedVersion       = "malformed version: %q"
	MsgEmptyTargetName        = "empty target name in %s"
	MsgEmptyPropertyName      = "empty property name in %s"
	MsgBooleanParam           = "%s requires parameters equal to \"0\" or \"1\", got %q"
	MsgInvalidCompilerIDParam = "%s parameter must match [A-Za-z0-9_]*, got %q"
	MsgInvalidVersionParam    = "%s parameter must match [0-9.]*, got %q"
)

// ============================================================================
// Semantic error messages
// ============================================================================

const (
	MsgRequiresHeadTarget      = "%s may only be used while evaluating the usage requirements of a binary target"
	MsgRequiresBuildSystemOnly = "%s is only valid for internal buildsystem evaluation"
	MsgUnknownTarget           = "no target named %q"
	MsgNotLinkable             = "target %q is not linkable, so TARGET_LINKER_FILE may not be used"
	MsgNotSharedOrDLLPlatform  = "target %q is not a shared library, or the current platform uses an import library, so TARGET_SONAME_FILE may not be used"
	MsgNotObjectLibrary        = "target %q is not an object library"
	MsgUnknownFeature          = "unknown compile feature: %s"
	MsgUnknownPolicy           = "unknown policy %q; accepted policies: %s"
	MsgInstallPrefixContext    = "$<INSTALL_PREFIX> may only be used while generating an install export file"
	MsgTargetFileCycle         = "%s may not reference target %q while evaluating its link libraries or sources"
)

// ============================================================================
// Graph error messages
// ============================================================================

const (
	MsgSelfReference         = "self-reference evaluating TARGET_PROPERTY %q, %q"
	MsgRecursionOverLinkLibs = "recursive evaluation of transitive property %q while evaluating link libraries of %q"
	MsgLinkerLanguageCycle   = "LINKER_LANGUAGE may not be read while evaluating the link libraries or sources of static library %q"
)

// ============================================================================
// Policy messages
// ============================================================================

const (
	MsgPolicyCaseInsensitiveFallback = "%s matched %q only case-insensitively; policy %s is WARN"
)
