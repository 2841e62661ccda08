package genops

import "sync"

// RegisterAll populates r with every built-in operator, one registerX call
// per operator family.
func RegisterAll(r *Registry) {
	registerLogic(r)
	registerCompare(r)
	registerLiterals(r)
	registerCompilerQueries(r)
	registerTargetFile(r)
	registerTargetProperty(r)
	registerTargetObjects(r)
	registerCompileFeatures(r)
	registerTargetPolicy(r)
	registerInterfaceMarkers(r)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry of every built-in
// operator, built lazily on first use and immutable afterwards.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterAll(defaultRegistry)
	})
	return defaultRegistry
}
