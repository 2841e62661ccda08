package genops

import (
	"strings"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
)

// registerCompare installs the comparison operators: STREQUAL, EQUAL,
// IN_LIST, and the five VERSION_* comparisons.
func registerCompare(r *Registry) {
	r.Register(&Descriptor{
		Name:             "STREQUAL",
		Arity:            Exact(2),
		GeneratesContent: true,
		Category:         CategoryCompare,
		Description:      "\"1\" iff the two parameters are byte-for-byte equal",
		Eval: func(call *Call) string {
			a, b := call.Eval(0), call.Eval(1)
			if call.Ctx.HadError() {
				return ""
			}
			if a == b {
				return "1"
			}
			return "0"
		},
	})

	r.Register(&Descriptor{
		Name:             "EQUAL",
		Arity:            Exact(2),
		GeneratesContent: true,
		Category:         CategoryCompare,
		Description:      "\"1\" iff the two parameters are equal as integers (decimal, hex, octal, or binary)",
		Eval: func(call *Call) string {
			a, b := call.Eval(0), call.Eval(1)
			if call.Ctx.HadError() {
				return ""
			}
			av, ok := parseInteger(a)
			if !ok {
				return call.Ctx.Fail(errs.NewSemantic("", errs.MsgMalformedInteger, a))
			}
			bv, ok := parseInteger(b)
			if !ok {
				return call.Ctx.Fail(errs.NewSemantic("", errs.MsgMalformedInteger, b))
			}
			if av == bv {
				return "1"
			}
			return "0"
		},
	})

	r.Register(&Descriptor{
		Name:             "IN_LIST",
		Arity:            Exact(2),
		GeneratesContent: true,
		Category:         CategoryCompare,
		Description:      "\"1\" iff the first parameter appears as a ;-separated element of the second",
		Eval: func(call *Call) string {
			needle, haystack := call.Eval(0), call.Eval(1)
			if call.Ctx.HadError() {
				return ""
			}
			for _, elem := range strings.Split(haystack, ";") {
				if elem == needle {
					return "1"
				}
			}
			return "0"
		},
	})

	registerVersionCompare(r, "VERSION_LESS", func(c int) bool { return c < 0 })
	registerVersionCompare(r, "VERSION_GREATER", func(c int) bool { return c > 0 })
	registerVersionCompare(r, "VERSION_EQUAL", func(c int) bool { return c == 0 })
	registerVersionCompare(r, "VERSION_LESS_EQUAL", func(c int) bool { return c <= 0 })
	registerVersionCompare(r, "VERSION_GREATER_EQUAL", func(c int) bool { return c >= 0 })
}

func registerVersionCompare(r *Registry, name string, satisfies func(cmp int) bool) {
	r.Register(&Descriptor{
		Name:             name,
		Arity:            Exact(2),
		GeneratesContent: true,
		Category:         CategoryCompare,
		Description:      "dot-separated non-negative integer component comparison, missing components read as 0",
		Eval: func(call *Call) string {
			a, b := call.Eval(0), call.Eval(1)
			if call.Ctx.HadError() {
				return ""
			}
			cmp, ok := compareVersions(a, b)
			if !ok {
				bad := a
				if _, okA := compareVersions(a, "0"); okA {
					bad = b
				}
				return call.Ctx.Fail(errs.NewSemantic("", errs.MsgMalformedVersion, bad))
			}
			if satisfies(cmp) {
				return "1"
			}
			return "0"
		},
	})
}
