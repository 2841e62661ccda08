// Package genhost defines the narrow interfaces this module consumes from
// its host buildsystem generator. The engine never constructs a
// TargetHandle or a BuildContext itself; it only queries them.
package genhost

// TargetKind enumerates the kinds of buildsystem targets a TargetHandle may
// describe.
type TargetKind int

const (
	TargetUnknown TargetKind = iota
	TargetExecutable
	TargetStaticLibrary
	TargetSharedLibrary
	TargetModuleLibrary
	TargetObjectLibrary
	TargetInterfaceLibrary
)

// LinkDependentKind enumerates the categories of link-interface-dependent
// property consistency checks TARGET_PROPERTY consults when a property has
// no raw value of its own.
type LinkDependentKind int

const (
	LinkDependentBool LinkDependentKind = iota
	LinkDependentString
	LinkDependentNumberMin
	LinkDependentNumberMax
)

// TargetHandle is the read-only view of a single buildsystem target that the
// evaluator needs in order to resolve target-file artifacts, properties, and
// transitive link-interface propagation.
type TargetHandle interface {
	// Name returns the target's canonical name.
	Name() string

	// Kind returns the target's type.
	Kind() TargetKind

	// IsImported reports whether the target was imported from another
	// export rather than built by this project.
	IsImported() bool

	// IsImportLibraryPlatform reports whether the current platform uses a
	// separate import library for shared libraries (e.g. a DLL platform).
	IsImportLibraryPlatform() bool

	// IsLinkable reports whether the target produces something that can be
	// linked against (library, or an executable that exports symbols).
	IsLinkable() bool

	// HasImportLibrary reports whether this specific target has a
	// generated import library for the given config.
	HasImportLibrary(config string) bool

	// LinkerLanguage returns the computed linker language for the given
	// config (e.g. "CXX").
	LinkerLanguage(config string) (string, bool)

	// ArtifactPath returns the full path to the target's main build
	// artifact for the given config. If forLinking is true and the target
	// uses an import library, the import library path is returned instead.
	ArtifactPath(config string, forLinking bool) (string, bool)

	// OutputDirectory returns the directory component of ArtifactPath.
	OutputDirectory(config string, forLinking bool) (string, bool)

	// Soname returns the shared-object name (directory + soname file) for
	// the given config. Only valid for shared libraries.
	Soname(config string) (string, bool)

	// Property looks up a property's raw (non-transitive) value. ok is
	// false if the property has never been set on this target.
	Property(name string) (string, bool)

	// MappedConfigs returns the alternative configuration names an
	// imported target maps the given active configuration to, via
	// MAP_IMPORTED_CONFIG_<ACTIVE>. Empty if the target is not imported or
	// has no mapping.
	MappedConfigs(activeConfig string) []string

	// TransitivePropertyTargets returns the set of targets reachable
	// through this target's transitive-property (link-interface) edges for
	// the given config, as seen from the given head target.
	TransitivePropertyTargets(config string, head TargetHandle) []TargetHandle

	// LinkImplementationLibraries returns the link-implementation library
	// targets for the given config (the targets actually linked, as
	// opposed to the interface-only set).
	LinkImplementationLibraries(config string) []TargetHandle

	// LinkDependentProperty consults a link-interface-dependent property
	// kind (bool/string/number-min/number-max consistency check across the
	// link interface) and returns its computed value.
	LinkDependentProperty(kind LinkDependentKind, property, config string) (string, bool)

	// AliasTarget returns the canonical target this one aliases, if any.
	AliasTarget() (TargetHandle, bool)

	// PolicyStatus returns the status of a named policy as it applies to
	// this target.
	PolicyStatus(policy string) PolicyStatus
}

// PolicyStatus is the resolved status of a CMake-style behavior policy.
type PolicyStatus int

const (
	PolicyOld PolicyStatus = iota
	PolicyNew
	PolicyWarn
)

// BuildContext is the host's whole-build query surface: definitions,
// target lookup, policy defaults, diagnostics, and compile-feature
// knowledge.
type BuildContext interface {
	// GetSafeDefinition returns the value of a global definition (e.g.
	// CMAKE_CXX_COMPILER_ID), or "" if unset.
	GetSafeDefinition(key string) string

	// FindTarget resolves a target by name, following alias resolution.
	// ok is false if no such target exists.
	FindTarget(name string) (TargetHandle, bool)

	// PolicyStatus returns the project-wide default status of a named
	// policy.
	PolicyStatus(policy string) PolicyStatus

	// Diagnostics returns the sink fatal errors and policy warnings are
	// routed through.
	Diagnostics() DiagnosticSink

	// IsKnownCompileFeature reports whether name is a recognized compile
	// feature and, if so, which language it belongs to.
	IsKnownCompileFeature(name string) (language string, ok bool)

	// CompileFeatureAvailable reports whether a feature is available for
	// the given target and config, and the minimum language standard it
	// requires if not.
	CompileFeatureAvailable(target TargetHandle, feature, config string) (available bool, requiredStandard string)

	// GeneratorTargetFor returns the code-generator view of a target, used
	// only by TARGET_OBJECTS.
	GeneratorTargetFor(target TargetHandle) (GeneratorTarget, bool)

	// Sources returns the source-file store used to register externally
	// computed object files.
	Sources() SourceStore
}

// GeneratorTarget is the local-generator view of a target needed to resolve
// $<TARGET_OBJECTS:...>.
type GeneratorTarget interface {
	// ObjectSources returns the target's object-library source files for
	// the given config.
	ObjectSources(config string) []string

	// ObjectDirectory returns the directory object files are written to.
	ObjectDirectory() string

	// ObjectFileName computes the generated object file name for a given
	// source path, using this target's local code generator.
	ObjectFileName(sourcePath string) string
}

// SourceStore lets the TARGET_OBJECTS operator register computed object
// paths as external object sources.
type SourceStore interface {
	// GetOrCreateSource returns (creating if necessary) the source-file
	// record for path. generated marks it as a build-time-generated file.
	GetOrCreateSource(path string, generated bool)

	// MarkExternalObject flags path as belonging to an object library and
	// sets its EXTERNAL_OBJECT property.
	MarkExternalObject(path string)
}

// DiagnosticSink is where fatal errors and policy warnings are dispatched,
// together with the evaluation backtrace that produced them.
type DiagnosticSink interface {
	// ReportError dispatches a fatal evaluation error.
	ReportError(message string, backtrace []string)

	// ReportPolicyWarning dispatches a non-fatal policy warning.
	ReportPolicyWarning(policy, message string, backtrace []string)
}
