package mapper

import "fmt"

// AssertConfigurationIsValid performs a dry run over every registered
// mapping in insertion order and returns an error describing the first
// invalid one, or nil when the whole configuration is valid. No data is
// mapped.
//
// strict governs mappings whose type references are unbound: they fail in
// strict mode and are silently skipped otherwise.
func AssertConfigurationIsValid(reg *Registry, strict bool) error {
	if reg == nil {
		return nil
	}

	for _, def := range reg.Definitions() {
		if err := validateMapping(def, strict); err != nil {
			return err
		}
	}

	return nil
}

// validateMapping reconciles the member sets of one mapping definition.
//
// Pass order is semantic: explicit configuration shadows implicit name
// matching, and the source sweep runs before the destination sweep so that
// an implicitly matched source member also satisfies the destination check.
func validateMapping(def *MappingDefinition, strict bool) error {
	if def.SourceType == nil || def.DestinationType == nil {
		if !strict {
			return nil
		}

		return fmt.Errorf("mapping '%s' cannot be validated, source or destination type reference unspecified", def.Key())
	}

	src := memberSet(def.SourceType)
	dst := memberSet(def.DestinationType)

	// Names reconciled so far. Local to this call; guarantees each name is
	// validated exactly once per mapping.
	validated := make(map[string]struct{})

	// Pass a: explicitly configured properties.
	for i := range def.Properties {
		if fault := checkPropertyRule(&def.Properties[i], src, dst, validated); fault != nil {
			return invalidMappingError(def, fault.message)
		}
	}

	// Pass b: remaining source members must exist on the destination.
	for _, name := range src.names {
		if _, done := validated[name]; done {
			continue
		}

		validated[name] = struct{}{}

		if fault := checkImplicitSource(name, dst); fault != nil {
			return invalidMappingError(def, fault.message)
		}
	}

	// Pass c: remaining destination members have no counterpart at all.
	for _, name := range dst.names {
		if _, done := validated[name]; done {
			continue
		}

		validated[name] = struct{}{}

		return invalidMappingError(def, unmappedDestination(name).message)
	}

	return nil
}

// invalidMappingError wraps a condition message with the mapping key and
// both type display names.
func invalidMappingError(def *MappingDefinition, condition string) error {
	return fmt.Errorf("mapping '%s' is invalid: %s (source: '%s', destination: '%s')",
		def.Key(), condition, TypeName(def.SourceType), TypeName(def.DestinationType))
}
