package genops

import (
	"strings"

	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// ArtifactKind is the "result creator" axis of the target-file family:
// which build artifact of a target is being named.
type ArtifactKind int

const (
	ArtifactMain ArtifactKind = iota
	ArtifactLinker
	ArtifactSoname
)

// Qualifier is the "result getter" axis: how much of the artifact's path
// to return.
type Qualifier int

const (
	QualifierFull Qualifier = iota
	QualifierName
	QualifierDir
)

// registerTargetFile installs the nine target-file artifact nodes: the
// cross product of ArtifactKind and Qualifier, registered from one
// generating loop rather than one literal function per name.
func registerTargetFile(r *Registry) {
	type variant struct {
		name      string
		artifact  ArtifactKind
		qualifier Qualifier
	}
	variants := []variant{
		{"TARGET_FILE", ArtifactMain, QualifierFull},
		{"TARGET_FILE_NAME", ArtifactMain, QualifierName},
		{"TARGET_FILE_DIR", ArtifactMain, QualifierDir},
		{"TARGET_LINKER_FILE", ArtifactLinker, QualifierFull},
		{"TARGET_LINKER_FILE_NAME", ArtifactLinker, QualifierName},
		{"TARGET_LINKER_FILE_DIR", ArtifactLinker, QualifierDir},
		{"TARGET_SONAME_FILE", ArtifactSoname, QualifierFull},
		{"TARGET_SONAME_FILE_NAME", ArtifactSoname, QualifierName},
		{"TARGET_SONAME_FILE_DIR", ArtifactSoname, QualifierDir},
	}
	for _, v := range variants {
		v := v
		r.Register(&Descriptor{
			Name:             v.name,
			Arity:            Exact(1),
			GeneratesContent: true,
			Category:         CategoryTargetFile,
			Description:      "a build artifact path for a named target",
			Eval: func(call *Call) string {
				return evalTargetFile(call, v.name, v.artifact, v.qualifier)
			},
		})
	}
}

func evalTargetFile(call *Call, name string, artifact ArtifactKind, qualifier Qualifier) string {
	ctx := call.Ctx
	targetName := call.Eval(0)
	if ctx.HadError() {
		return ""
	}
	if targetName == "" {
		return ctx.Fail(errs.NewSyntax("", errs.MsgEmptyTargetName, name))
	}
	if !targetNameRe.MatchString(targetName) {
		return ctx.Fail(errs.NewSyntax("", errs.MsgInvalidNameSyntax, targetName))
	}
	tgt, ok := ctx.Query().FindTarget(targetName)
	if !ok {
		return ctx.Fail(errs.NewSemantic("", errs.MsgUnknownTarget, targetName))
	}
	if tgt.Kind() == genhost.TargetUnknown {
		return ctx.Fail(errs.NewSemantic("", errs.MsgUnknownTarget, targetName))
	}
	if call.Dag != nil && (call.Dag.EvaluatingLinkLibraries() || call.Dag.EvaluatingSources()) {
		return ctx.Fail(errs.NewGraph("", errs.MsgTargetFileCycle, name, targetName))
	}

	cfg := ctx.Config()
	var fullPath string
	switch artifact {
	case ArtifactLinker:
		if !tgt.IsLinkable() {
			return ctx.Fail(errs.NewSemantic("", errs.MsgNotLinkable, targetName))
		}
		fullPath, ok = tgt.ArtifactPath(cfg, true)
	case ArtifactSoname:
		if tgt.Kind() != genhost.TargetSharedLibrary || tgt.IsImportLibraryPlatform() {
			return ctx.Fail(errs.NewSemantic("", errs.MsgNotSharedOrDLLPlatform, targetName))
		}
		fullPath, ok = tgt.Soname(cfg)
	default:
		fullPath, ok = tgt.ArtifactPath(cfg, false)
	}
	if !ok {
		fullPath = ""
	}

	ctx.RecordDependTarget(tgt)

	switch qualifier {
	case QualifierName:
		_, base := splitPath(fullPath)
		return base
	case QualifierDir:
		if dir, ok := tgt.OutputDirectory(cfg, artifact == ArtifactLinker); ok {
			return dir
		}
		dir, _ := splitPath(fullPath)
		return dir
	default:
		return fullPath
	}
}

// splitPath separates a host-supplied artifact path into directory and base
// name components, accepting either slash convention since paths originate
// from the host's own filesystem layer rather than this module.
func splitPath(p string) (dir, name string) {
	idx := strings.LastIndexAny(p, `/\`)
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}
