// Package registry maps a primitive's type name to the constructor that
// builds a fresh instance of it, the way plugin_manager.go maps a storage
// backend's name to its factory.
package registry

import (
	"fmt"
	"sort"

	"github.com/jrife/statemux/statemachine/service"
)

// Registry is a name -> constructor table for primitive service types. A
// manager consults it every time a request references a type it does not
// already have an instance of.
type Registry struct {
	types map[string]service.Type
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{types: map[string]service.Type{}}
}

// Register adds typeName to the registry. It panics if typeName is already
// registered, the same fail-fast-at-startup contract plugin_manager.go
// uses for duplicate plugin names.
func (r *Registry) Register(typeName string, ctor service.Type) {
	if _, ok := r.types[typeName]; ok {
		panic(fmt.Sprintf("registry: type %q registered more than once", typeName))
	}

	r.types[typeName] = ctor
}

// New builds a fresh instance of typeName. It returns false if no such
// type is registered; the manager maps that onto
// statemachine.ErrUnknownType.
func (r *Registry) New(typeName string) (service.PrimitiveService, bool) {
	ctor, ok := r.types[typeName]

	if !ok {
		return nil, false
	}

	return ctor(), true
}

// Types returns the registered type names in ascending order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))

	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
