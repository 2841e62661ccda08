package genops

import "github.com/buildgraph/genexpr/internal/geneval/errs"

// registerCompileFeatures installs COMPILE_FEATURES.
func registerCompileFeatures(r *Registry) {
	r.Register(&Descriptor{
		Name:             "COMPILE_FEATURES",
		Arity:            OneOrMore,
		GeneratesContent: true,
		Category:         CategoryBuildFeature,
		Description:      "\"1\" iff every named compile feature is available to the head target, deferring to a language-standard bump while resolving link libraries",
		Eval: func(call *Call) string {
			ctx := call.Ctx
			head := ctx.HeadTarget()
			if head == nil {
				return ctx.Fail(errs.NewSemantic("", errs.MsgRequiresHeadTarget, "COMPILE_FEATURES"))
			}
			for i := 0; i < call.Count(); i++ {
				feature := call.Eval(i)
				if ctx.HadError() {
					return ""
				}
				lang, ok := ctx.Query().IsKnownCompileFeature(feature)
				if !ok {
					return ctx.Fail(errs.NewSemantic("", errs.MsgUnknownFeature, feature))
				}
				available, requiredStandard := ctx.Query().CompileFeatureAvailable(head, feature, ctx.Config())
				if available {
					continue
				}
				if call.Dag != nil && call.Dag.EvaluatingLinkLibraries() {
					ctx.RecordMaxLanguageStandard(head.Name(), lang, requiredStandard)
					continue
				}
				return "0"
			}
			return "1"
		},
	})
}
