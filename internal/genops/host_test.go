package genops

import (
	"github.com/buildgraph/genexpr/internal/geneval/errs"
	"github.com/buildgraph/genexpr/pkg/genast"
	"github.com/buildgraph/genexpr/pkg/genhost"
)

// testDriver implements the Driver interface for the operator tests (the
// evalSimple helper wraps it) so they can construct Call values and exercise
// recursive operators (TARGET_PROPERTY) without importing internal/geneval
// (which would import genops back, forming a cycle).
type testDriver struct{}

func (testDriver) Eval(nodes []genast.Node, ctx *EvalContext, dag *Frame) string {
	var out string
	for _, n := range nodes {
		if ctx.HadError() {
			return out
		}
		switch v := n.(type) {
		case *genast.Text:
			out += v.Value
		case *genast.Content:
			out += evalTestContent(v, ctx, dag)
		}
	}
	return out
}

// evalTestContent is a deliberately minimal re-implementation of
// internal/geneval's driver logic, scoped to what the operator test suite
// needs: identifier lookup only. It performs no arity check and no
// arbitrary-content folding, since no operator test passes an
// arbitrary-content operator more parameter groups than it declares.
func evalTestContent(c *genast.Content, ctx *EvalContext, dag *Frame) string {
	ident := testDriver{}.Eval(c.Identifier, ctx, dag)
	if ctx.HadError() {
		return ""
	}
	desc, ok := DefaultRegistry().Lookup(ident)
	if !ok {
		return ctx.Fail(errs.NewSyntax(c.String(), errs.MsgUnknownIdentifier, ident))
	}
	call := NewCall(ctx, dag, c.Params, testDriver{})
	return desc.Eval(call)
}

// mockBuild is a minimal genhost.BuildContext for operator unit tests.
type mockBuild struct {
	defs     map[string]string
	targets  map[string]*mockTarget
	policies map[string]genhost.PolicyStatus
	features map[string]string
	diag     *mockDiag
	store    *mockSourceStore
}

func newMockBuild() *mockBuild {
	return &mockBuild{
		defs:     make(map[string]string),
		targets:  make(map[string]*mockTarget),
		policies: make(map[string]genhost.PolicyStatus),
		features: make(map[string]string),
		diag:     &mockDiag{},
	}
}

func (b *mockBuild) addTarget(name string, kind genhost.TargetKind) *mockTarget {
	t := &mockTarget{name: name, kind: kind, props: make(map[string]string)}
	b.targets[name] = t
	return t
}

func (b *mockBuild) GetSafeDefinition(key string) string { return b.defs[key] }

func (b *mockBuild) FindTarget(name string) (genhost.TargetHandle, bool) {
	t, ok := b.targets[name]
	if !ok {
		return nil, false
	}
	return t, true
}

func (b *mockBuild) PolicyStatus(policy string) genhost.PolicyStatus {
	return b.policies[policy]
}

func (b *mockBuild) Diagnostics() genhost.DiagnosticSink { return b.diag }

func (b *mockBuild) IsKnownCompileFeature(name string) (string, bool) {
	lang, ok := b.features[name]
	return lang, ok
}

func (b *mockBuild) CompileFeatureAvailable(target genhost.TargetHandle, feature, config string) (bool, string) {
	mt, _ := target.(*mockTarget)
	if mt == nil {
		return false, ""
	}
	req, unavailable := mt.unavailableFeatures[feature]
	if !unavailable {
		return true, ""
	}
	return false, req
}

func (b *mockBuild) GeneratorTargetFor(target genhost.TargetHandle) (genhost.GeneratorTarget, bool) {
	mt, ok := target.(*mockTarget)
	if !ok || mt.generator == nil {
		return nil, false
	}
	return mt.generator, true
}

func (b *mockBuild) Sources() genhost.SourceStore { return b.sourcesStore() }

func (b *mockBuild) sourcesStore() genhost.SourceStore {
	if b.store == nil {
		b.store = &mockSourceStore{}
	}
	return b.store
}

// mockTarget is a minimal genhost.TargetHandle.
type mockTarget struct {
	name                string
	kind                genhost.TargetKind
	imported            bool
	importLibPlatform   bool
	hasImportLib        bool
	linkerLang          string
	artifactPath        string
	linkerPath          string
	sonamePath          string
	outputDir           string
	props               map[string]string
	mappedConfigs       map[string][]string
	links               []*mockTarget
	transitive          []*mockTarget
	linkDependent       map[genhost.LinkDependentKind]string
	alias               *mockTarget
	policies            map[string]genhost.PolicyStatus
	unavailableFeatures map[string]string
	generator           *mockGeneratorTarget
}

func (t *mockTarget) Name() string                  { return t.name }
func (t *mockTarget) Kind() genhost.TargetKind      { return t.kind }
func (t *mockTarget) IsImported() bool              { return t.imported }
func (t *mockTarget) IsImportLibraryPlatform() bool { return t.importLibPlatform }

func (t *mockTarget) IsLinkable() bool {
	switch t.kind {
	case genhost.TargetStaticLibrary, genhost.TargetSharedLibrary, genhost.TargetModuleLibrary:
		return true
	default:
		return false
	}
}

func (t *mockTarget) HasImportLibrary(config string) bool { return t.hasImportLib }

func (t *mockTarget) LinkerLanguage(config string) (string, bool) {
	if t.linkerLang == "" {
		return "", false
	}
	return t.linkerLang, true
}

func (t *mockTarget) ArtifactPath(config string, forLinking bool) (string, bool) {
	if forLinking && t.linkerPath != "" {
		return t.linkerPath, true
	}
	if t.artifactPath == "" {
		return "", false
	}
	return t.artifactPath, true
}

func (t *mockTarget) OutputDirectory(config string, forLinking bool) (string, bool) {
	if t.outputDir == "" {
		return "", false
	}
	return t.outputDir, true
}

func (t *mockTarget) Soname(config string) (string, bool) {
	if t.sonamePath == "" {
		return "", false
	}
	return t.sonamePath, true
}

func (t *mockTarget) Property(name string) (string, bool) {
	v, ok := t.props[name]
	return v, ok
}

func (t *mockTarget) MappedConfigs(activeConfig string) []string {
	return t.mappedConfigs[activeConfig]
}

func (t *mockTarget) TransitivePropertyTargets(config string, head genhost.TargetHandle) []genhost.TargetHandle {
	out := make([]genhost.TargetHandle, 0, len(t.transitive))
	for _, l := range t.transitive {
		out = append(out, l)
	}
	return out
}

func (t *mockTarget) LinkImplementationLibraries(config string) []genhost.TargetHandle {
	out := make([]genhost.TargetHandle, 0, len(t.links))
	for _, l := range t.links {
		out = append(out, l)
	}
	return out
}

func (t *mockTarget) LinkDependentProperty(kind genhost.LinkDependentKind, property, config string) (string, bool) {
	v, ok := t.linkDependent[kind]
	return v, ok
}

func (t *mockTarget) AliasTarget() (genhost.TargetHandle, bool) {
	if t.alias == nil {
		return nil, false
	}
	return t.alias, true
}

func (t *mockTarget) PolicyStatus(policy string) genhost.PolicyStatus {
	return t.policies[policy]
}

// mockGeneratorTarget is a minimal genhost.GeneratorTarget.
type mockGeneratorTarget struct {
	sources []string
	dir     string
}

func (g *mockGeneratorTarget) ObjectSources(config string) []string { return g.sources }
func (g *mockGeneratorTarget) ObjectDirectory() string              { return g.dir }
func (g *mockGeneratorTarget) ObjectFileName(sourcePath string) string {
	return sourcePath + ".o"
}

// mockSourceStore is a minimal genhost.SourceStore.
type mockSourceStore struct {
	created  []string
	external []string
}

func (s *mockSourceStore) GetOrCreateSource(path string, generated bool) {
	s.created = append(s.created, path)
}

func (s *mockSourceStore) MarkExternalObject(path string) {
	s.external = append(s.external, path)
}

// mockDiag records dispatched errors/warnings instead of printing them.
type mockDiag struct {
	errors   []string
	warnings []string
}

func (d *mockDiag) ReportError(message string, backtrace []string) {
	d.errors = append(d.errors, message)
}

func (d *mockDiag) ReportPolicyWarning(policy, message string, backtrace []string) {
	d.warnings = append(d.warnings, message)
}
