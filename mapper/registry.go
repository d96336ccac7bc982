package mapper

import (
	"fmt"
	"reflect"
)

// Registry stores mapping definitions keyed by their composite
// "<source>=><destination>" key, preserving insertion order. Insertion order
// drives validation order, so the first failure reported is deterministic.
//
// A Registry is a configuration-time object and is not safe for concurrent
// mutation.
type Registry struct {
	order []string
	defs  map[string]*MappingDefinition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]*MappingDefinition),
	}
}

// CreateMap registers a new mapping definition for the given key pair and
// returns it for fluent configuration. Re-creating an existing pair replaces
// the definition in place without changing its order slot.
func (r *Registry) CreateMap(sourceKey, destinationKey string) *MappingDefinition {
	def := &MappingDefinition{
		SourceKey:      sourceKey,
		DestinationKey: destinationKey,
	}

	r.Add(def)

	return def
}

// Add registers an already-built definition, replacing any existing entry
// for the same key pair.
func (r *Registry) Add(def *MappingDefinition) {
	key := def.Key()

	if _, exists := r.defs[key]; !exists {
		r.order = append(r.order, key)
	}

	r.defs[key] = def
}

// Lookup returns the definition for a key pair, or nil if none is registered.
func (r *Registry) Lookup(sourceKey, destinationKey string) *MappingDefinition {
	return r.defs[sourceKey+"=>"+destinationKey]
}

// Definitions returns all registered definitions in insertion order.
func (r *Registry) Definitions() []*MappingDefinition {
	result := make([]*MappingDefinition, len(r.order))
	for i, key := range r.order {
		result[i] = r.defs[key]
	}

	return result
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.order)
}

// BindTypes attaches runtime type references to a registered definition.
// Used with definitions materialized from YAML profiles, which carry keys
// and rules but no types.
func (r *Registry) BindTypes(sourceKey, destinationKey string, src, dst reflect.Type) error {
	def := r.Lookup(sourceKey, destinationKey)
	if def == nil {
		return fmt.Errorf("no mapping registered for '%s=>%s'", sourceKey, destinationKey)
	}

	def.SourceType = src
	def.DestinationType = dst

	return nil
}
