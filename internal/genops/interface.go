package genops

import "github.com/buildgraph/genexpr/internal/geneval/errs"

// registerInterfaceMarkers installs BUILD_INTERFACE, INSTALL_INTERFACE,
// INSTALL_PREFIX, and LINK_ONLY.
func registerInterfaceMarkers(r *Registry) {
	r.Register(&Descriptor{
		Name:                    "BUILD_INTERFACE",
		Arity:                   Exact(1),
		GeneratesContent:        true,
		AcceptsArbitraryContent: true,
		Category:                CategoryInterfaceMarker,
		Description:             "its content when evaluating a build-time usage requirement, empty when exporting",
		Eval: func(call *Call) string {
			if call.Ctx.Exporting() {
				return ""
			}
			return call.Eval(0)
		},
	})

	r.Register(&Descriptor{
		Name:                    "INSTALL_INTERFACE",
		Arity:                   Exact(1),
		GeneratesContent:        true,
		AcceptsArbitraryContent: true,
		Category:                CategoryInterfaceMarker,
		Description:             "its content when exporting, empty when evaluating a build-time usage requirement",
		Eval: func(call *Call) string {
			if !call.Ctx.Exporting() {
				return ""
			}
			return call.Eval(0)
		},
	})

	r.Register(&Descriptor{
		Name:             "INSTALL_PREFIX",
		Arity:            Exact(0),
		GeneratesContent: true,
		Category:         CategoryInterfaceMarker,
		Description:      "the install prefix; valid only while generating an install export file",
		Eval: func(call *Call) string {
			ctx := call.Ctx
			if !ctx.Exporting() {
				return ctx.Fail(errs.NewSemantic("", errs.MsgInstallPrefixContext))
			}
			return ctx.Query().GetSafeDefinition("CMAKE_INSTALL_PREFIX")
		},
	})

	r.Register(&Descriptor{
		Name:                    "LINK_ONLY",
		Arity:                   Exact(1),
		GeneratesContent:        true,
		AcceptsArbitraryContent: true,
		Category:                CategoryInterfaceMarker,
		Description:             "its content, or empty while propagating usage requirements only (a private link dependency)",
		Eval: func(call *Call) string {
			if call.Dag != nil && call.Dag.TransitivePropertiesOnly() {
				return ""
			}
			return call.Eval(0)
		},
	})
}
