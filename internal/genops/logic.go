package genops

import "github.com/buildgraph/genexpr/internal/geneval/errs"

// registerLogic installs the logical and conditional operators: the
// discard/identity pair 0 and 1, AND/OR/NOT/BOOL, and IF.
func registerLogic(r *Registry) {
	r.Register(&Descriptor{
		Name:                    "0",
		Arity:                   Exact(1),
		GeneratesContent:        false,
		AcceptsArbitraryContent: true,
		Category:                CategoryLogic,
		Description:             "discards its content unconditionally and never evaluates it",
		Eval: func(call *Call) string {
			return ""
		},
	})

	r.Register(&Descriptor{
		Name:                    "1",
		Arity:                   Exact(1),
		GeneratesContent:        true,
		AcceptsArbitraryContent: true,
		Category:                CategoryLogic,
		Description:             "the verbatim content of its single parameter",
		Eval: func(call *Call) string {
			return call.Eval(0)
		},
	})

	r.Register(&Descriptor{
		Name:             "AND",
		Arity:            OneOrMore,
		GeneratesContent: true,
		Category:         CategoryLogic,
		Description:      "\"0\" if any parameter is \"0\", else \"1\"; never short-circuits",
		Eval: func(call *Call) string {
			vals := call.EvalAll()
			if call.Ctx.HadError() {
				return ""
			}
			sawZero := false
			for _, v := range vals {
				if v != "0" && v != "1" {
					return call.Ctx.Fail(errs.NewSyntax("", errs.MsgBooleanParam, "AND", v))
				}
				if v == "0" {
					sawZero = true
				}
			}
			if sawZero {
				return "0"
			}
			return "1"
		},
	})

	r.Register(&Descriptor{
		Name:             "OR",
		Arity:            OneOrMore,
		GeneratesContent: true,
		Category:         CategoryLogic,
		Description:      "\"1\" if any parameter is \"1\", else \"0\"; never short-circuits",
		Eval: func(call *Call) string {
			vals := call.EvalAll()
			if call.Ctx.HadError() {
				return ""
			}
			sawOne := false
			for _, v := range vals {
				if v != "0" && v != "1" {
					return call.Ctx.Fail(errs.NewSyntax("", errs.MsgBooleanParam, "OR", v))
				}
				if v == "1" {
					sawOne = true
				}
			}
			if sawOne {
				return "1"
			}
			return "0"
		},
	})

	r.Register(&Descriptor{
		Name:             "NOT",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryLogic,
		Description:      "the logical complement of a \"0\"/\"1\" parameter",
		Eval: func(call *Call) string {
			v := call.Eval(0)
			if call.Ctx.HadError() {
				return ""
			}
			switch v {
			case "0":
				return "1"
			case "1":
				return "0"
			default:
				return call.Ctx.Fail(errs.NewSyntax("", errs.MsgBooleanParam, "NOT", v))
			}
		},
	})

	r.Register(&Descriptor{
		Name:             "BOOL",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryLogic,
		Description:      "\"0\" for CMake's off-equivalent strings, \"1\" otherwise",
		Eval: func(call *Call) string {
			v := call.Eval(0)
			if call.Ctx.HadError() {
				return ""
			}
			if isBoolOff(v) {
				return "0"
			}
			return "1"
		},
	})

	r.Register(&Descriptor{
		Name:             "IF",
		Arity:            Exact(3),
		GeneratesContent: true,
		Category:         CategoryLogic,
		Description:      "evaluates only the branch selected by its \"0\"/\"1\" condition",
		Eval: func(call *Call) string {
			cond := call.Eval(0)
			if call.Ctx.HadError() {
				return ""
			}
			switch cond {
			case "1":
				return call.Eval(1)
			case "0":
				return call.Eval(2)
			default:
				return call.Ctx.Fail(errs.NewSyntax("", errs.MsgBooleanParam, "IF", cond))
			}
		},
	})
}
