package genops

import (
	"fmt"
	"strings"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/internal/genident"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// targetPolicies is the short whitelist of policy identifiers that
// TARGET_POLICY may query: behavior toggles that materially
// change how a target's usage requirements are assembled, loosely in the
// spirit of CMake's own CMP00xx policy numbering for target-affecting
// behavior (link-path de-duplication, INTERFACE_LINK_LIBRARIES handling,
// per-config include-directory propagation, export-of-non-PIC targets).
var targetPolicies = []string{"CMP0003", "CMP0022", "CMP0041", "CMP0065"}

// registerTargetPolicy installs TARGET_POLICY.
func registerTargetPolicy(r *Registry) {
	r.Register(&Descriptor{
		Name:             "TARGET_POLICY",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryPolicy,
		Description:      "\"1\" if the named target-affecting policy is NEW, \"0\" if OLD, with a warning dispatched for WARN",
		Eval: func(call *Call) string {
			ctx := call.Ctx
			head := ctx.HeadTarget()
			if head == nil {
				return ctx.Fail(errs.NewSemantic("", errs.MsgRequiresHeadTarget, "TARGET_POLICY"))
			}
			ctx.MarkContextSensitive()
			pol := call.Eval(0)
			if ctx.HadError() {
				return ""
			}
			if !genident.Contains(targetPolicies, pol) {
				return ctx.Fail(errs.NewSemantic("", errs.MsgUnknownPolicy, pol, strings.Join(targetPolicies, ", ")))
			}
			switch head.PolicyStatus(pol) {
			case genhost.PolicyNew:
				return "1"
			case genhost.PolicyWarn:
				ctx.Warn(pol, fmt.Sprintf("policy %s is not set for target %q; using OLD behavior", pol, head.Name()))
				return "0"
			default:
				return "0"
			}
		},
	})
}
