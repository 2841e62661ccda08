package geneval

import "github.com/buildgraph/genexpr/pkg/genhost"

// mockBuild/mockTarget mirror internal/genops's own test mock at the scope
// the driver-level tests need: definitions, target lookup, and a
// diagnostic sink that records rather than prints.
type mockBuild struct {
	defs    map[string]string
	targets map[string]*mockTarget
	diag    *mockDiag
}

func newMockBuild() *mockBuild {
	return &mockBuild{defs: map[string]string{}, targets: map[string]*mockTarget{}, diag: &mockDiag{}}
}

func (b *mockBuild) addTarget(name string, kind genhost.TargetKind) *mockTarget {
	t := &mockTarget{name: name, kind: kind, props: map[string]string{}}
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
func (b *mockBuild) PolicyStatus(policy string) genhost.PolicyStatus  { return genhost.PolicyNew }
func (b *mockBuild) Diagnostics() genhost.DiagnosticSink              { return b.diag }
func (b *mockBuild) IsKnownCompileFeature(name string) (string, bool) { return "", false }
func (b *mockBuild) CompileFeatureAvailable(target genhost.TargetHandle, feature, config string) (bool, string) {
	return false, ""
}
func (b *mockBuild) GeneratorTargetFor(target genhost.TargetHandle) (genhost.GeneratorTarget, bool) {
	return nil, false
}
func (b *mockBuild) Sources() genhost.SourceStore { return nil }

type mockTarget struct {
	name       string
	kind       genhost.TargetKind
	props      map[string]string
	transitive []*mockTarget
}

func (t *mockTarget) Name() string                                { return t.name }
func (t *mockTarget) Kind() genhost.TargetKind                    { return t.kind }
func (t *mockTarget) IsImported() bool                            { return false }
func (t *mockTarget) IsImportLibraryPlatform() bool               { return false }
func (t *mockTarget) IsLinkable() bool                            { return t.kind != genhost.TargetExecutable }
func (t *mockTarget) HasImportLibrary(string) bool                { return false }
func (t *mockTarget) LinkerLanguage(string) (string, bool)        { return "CXX", true }
func (t *mockTarget) ArtifactPath(string, bool) (string, bool)    { return "/build/" + t.name, true }
func (t *mockTarget) OutputDirectory(string, bool) (string, bool) { return "/build", true }
func (t *mockTarget) Soname(string) (string, bool)                { return "", false }
func (t *mockTarget) Property(name string) (string, bool)         { v, ok := t.props[name]; return v, ok }
func (t *mockTarget) MappedConfigs(string) []string               { return nil }
func (t *mockTarget) TransitivePropertyTargets(string, genhost.TargetHandle) []genhost.TargetHandle {
	out := make([]genhost.TargetHandle, 0, len(t.transitive))
	for _, l := range t.transitive {
		out = append(out, l)
	}
	return out
}
func (t *mockTarget) LinkImplementationLibraries(string) []genhost.TargetHandle {
	return t.TransitivePropertyTargets("", t)
}
func (t *mockTarget) LinkDependentProperty(genhost.LinkDependentKind, string, string) (string, bool) {
	return "", false
}
func (t *mockTarget) AliasTarget() (genhost.TargetHandle, bool) { return nil, false }
func (t *mockTarget) PolicyStatus(string) genhost.PolicyStatus  { return genhost.PolicyNew }

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
