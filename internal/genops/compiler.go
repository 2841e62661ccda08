package genops

import (
	"fmt"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/internal/genident"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// policyIDCaseFold is the single policy consulted by the compiler-id and
// platform-id case-insensitive fallback; the same cascade applies uniformly
// to C_COMPILER_ID, CXX_COMPILER_ID, and PLATFORM_ID.
const policyIDCaseFold = "ID_CASE_FOLD_COMPAT"

// registerCompilerQueries installs the compiler/platform/config query
// operators.
func registerCompilerQueries(r *Registry) {
	registerIDQuery(r, "C_COMPILER_ID", "CMAKE_C_COMPILER_ID")
	registerIDQuery(r, "CXX_COMPILER_ID", "CMAKE_CXX_COMPILER_ID")
	registerIDQuery(r, "PLATFORM_ID", "CMAKE_SYSTEM_NAME")

	registerVersionQuery(r, "C_COMPILER_VERSION", "CMAKE_C_COMPILER_VERSION")
	registerVersionQuery(r, "CXX_COMPILER_VERSION", "CMAKE_CXX_COMPILER_VERSION")

	r.Register(&Descriptor{
		Name:             "CONFIG",
		Arity:            OneOrZero,
		GeneratesContent: true,
		Category:         CategoryConfig,
		Description:      "the active build configuration, or a case-insensitive match test against it",
		Eval: func(call *Call) string {
			ctx := call.Ctx
			ctx.MarkContextSensitive()
			if call.Count() == 0 {
				return ctx.Config()
			}
			name := call.Eval(0)
			if ctx.HadError() {
				return ""
			}
			if genident.Equal(name, ctx.Config()) {
				return "1"
			}
			if cur := ctx.CurrentTarget(); cur != nil && cur.IsImported() {
				for _, mapped := range cur.MappedConfigs(ctx.Config()) {
					if genident.Equal(name, mapped) {
						return "1"
					}
				}
			}
			return "0"
		},
	})
}

func registerIDQuery(r *Registry, name, defKey string) {
	r.Register(&Descriptor{
		Name:             name,
		Arity:            OneOrZero,
		GeneratesContent: true,
		Category:         CategoryCompilerQuery,
		Description:      "the active " + defKey + ", or a case-sensitive (policy-gated case-insensitive) match test",
		Eval: func(call *Call) string {
			return evalIDQuery(call, name, defKey)
		},
	})
}

func evalIDQuery(call *Call, name, defKey string) string {
	ctx := call.Ctx
	if ctx.HeadTarget() == nil {
		return ctx.Fail(errs.NewSemantic("", errs.MsgRequiresHeadTarget, name))
	}
	current := ctx.Query().GetSafeDefinition(defKey)
	if call.Count() == 0 {
		return current
	}
	param := call.Eval(0)
	if ctx.HadError() {
		return ""
	}
	if !identLikeRe.MatchString(param) {
		return ctx.Fail(errs.NewSyntax("", errs.MsgInvalidCompilerIDParam, name, param))
	}
	if param == current {
		return "1"
	}
	if !genident.Equal(param, current) {
		return "0"
	}
	switch ctx.Query().PolicyStatus(policyIDCaseFold) {
	case genhost.PolicyWarn:
		ctx.Warn(policyIDCaseFold, fmt.Sprintf(errs.MsgPolicyCaseInsensitiveFallback, name, param, policyIDCaseFold))
		return "1"
	case genhost.PolicyOld:
		return "1"
	default:
		return "0"
	}
}

func registerVersionQuery(r *Registry, name, defKey string) {
	r.Register(&Descriptor{
		Name:             name,
		Arity:            OneOrZero,
		GeneratesContent: true,
		Category:         CategoryCompilerQuery,
		Description:      "the active " + defKey + ", or a version-equality test against it",
		Eval: func(call *Call) string {
			ctx := call.Ctx
			if ctx.HeadTarget() == nil {
				return ctx.Fail(errs.NewSemantic("", errs.MsgRequiresHeadTarget, name))
			}
			current := ctx.Query().GetSafeDefinition(defKey)
			if call.Count() == 0 {
				return current
			}
			param := call.Eval(0)
			if ctx.HadError() {
				return ""
			}
			if !versionParamRe.MatchString(param) {
				return ctx.Fail(errs.NewSyntax("", errs.MsgInvalidVersionParam, name, param))
			}
			cmp, ok := compareVersions(param, current)
			if !ok {
				return ctx.Fail(errs.NewSemantic("", errs.MsgMalformedVersion, current))
			}
			if cmp == 0 {
				return "1"
			}
			return "0"
		},
	})
}
