package genops

import (
	"strings"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// registerTargetObjects installs TARGET_OBJECTS. Computed object paths are
// also registered with the host's SourceStore as a side effect, since the
// owning build context needs them as external object sources.
func registerTargetObjects(r *Registry) {
	r.Register(&Descriptor{
		Name:             "TARGET_OBJECTS",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryTargetProperty,
		Description:      "the ;-joined object file paths of an object-library target, for internal buildsystem evaluation only",
		Eval: func(call *Call) string {
			ctx := call.Ctx
			if !ctx.EvaluateForBuildSystem() {
				return ctx.Fail(errs.NewSemantic("", errs.MsgRequiresBuildSystemOnly, "TARGET_OBJECTS"))
			}
			name := call.Eval(0)
			if ctx.HadError() {
				return ""
			}
			if name == "" {
				return ctx.Fail(errs.NewSyntax("", errs.MsgEmptyTargetName, "TARGET_OBJECTS"))
			}
			tgt, ok := ctx.Query().FindTarget(name)
			if !ok {
				return ctx.Fail(errs.NewSemantic("", errs.MsgUnknownTarget, name))
			}
			if tgt.Kind() != genhost.TargetObjectLibrary {
				return ctx.Fail(errs.NewSemantic("", errs.MsgNotObjectLibrary, name))
			}
			gen, ok := ctx.Query().GeneratorTargetFor(tgt)
			if !ok {
				return ""
			}
			sources := gen.ObjectSources(ctx.Config())
			objDir := gen.ObjectDirectory()
			store := ctx.Query().Sources()
			paths := make([]string, 0, len(sources))
			for _, src := range sources {
				objPath := objDir + "/" + gen.ObjectFileName(src)
				if store != nil {
					store.GetOrCreateSource(objPath, true)
					store.MarkExternalObject(objPath)
				}
				paths = append(paths, objPath)
			}
			ctx.RecordDependTarget(tgt)
			return strings.Join(paths, ";")
		},
	})
}
