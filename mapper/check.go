package mapper

import (
	"mapcheck/diagnostic"
	"mapcheck/internal/match"
)

// Diagnostic codes for configuration-validity failures.
const (
	CodeUnresolvedTypeReference   = "unresolved_type_reference"
	CodeMissingSourceMember       = "missing_source_member"
	CodeMissingDestinationMember  = "missing_destination_member"
	CodeIgnoredMemberStillPresent = "ignored_member_still_present"
	CodeUnmappedDestinationMember = "unmapped_destination_member"
)

// CheckConfiguration runs the same dry-run checks as
// AssertConfigurationIsValid but collects every violation across all
// mappings instead of stopping at the first. Missing-member errors carry a
// closest-member suggestion when one of the shape's members is a plausible
// typo fix.
//
// The fail-fast AssertConfigurationIsValid remains the baseline contract;
// this is the reporting mode for tooling that wants the full picture.
func CheckConfiguration(reg *Registry, strict bool) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if reg == nil {
		return res
	}

	for _, def := range reg.Definitions() {
		checkMapping(res, def, strict)
	}

	return res
}

func checkMapping(res *diagnostic.Diagnostics, def *MappingDefinition, strict bool) {
	key := def.Key()

	if def.SourceType == nil || def.DestinationType == nil {
		if strict {
			res.AddError(CodeUnresolvedTypeReference,
				"cannot be validated, source or destination type reference unspecified", key, "")
		}

		return
	}

	src := memberSet(def.SourceType)
	dst := memberSet(def.DestinationType)

	validated := make(map[string]struct{})

	for i := range def.Properties {
		if fault := checkPropertyRule(&def.Properties[i], src, dst, validated); fault != nil {
			addFault(res, key, fault, src, dst)
		}
	}

	for _, name := range src.names {
		if _, done := validated[name]; done {
			continue
		}

		validated[name] = struct{}{}

		if fault := checkImplicitSource(name, dst); fault != nil {
			addFault(res, key, fault, src, dst)
		}
	}

	for _, name := range dst.names {
		if _, done := validated[name]; done {
			continue
		}

		validated[name] = struct{}{}

		addFault(res, key, unmappedDestination(name), src, dst)
	}
}

// addFault records one violation, attaching a suggestion drawn from the
// shape the member was expected on.
func addFault(res *diagnostic.Diagnostics, key string, fault *memberFault, src, dst *memberIndex) {
	var candidates []string

	switch fault.code {
	case CodeMissingSourceMember:
		// The configured name was expected on the source shape.
		candidates = src.names
	case CodeMissingDestinationMember:
		// The configured or implicitly matched name was expected on the
		// destination shape.
		candidates = dst.names
	case CodeUnmappedDestinationMember:
		// A near-miss source member is the likely fix for an orphaned
		// destination member.
		candidates = src.names
	}

	if suggestion, ok := match.Closest(fault.member, candidates); ok {
		res.AddErrorWithSuggestions(fault.code, fault.message, key, fault.member, []string{suggestion})
		return
	}

	res.AddError(fault.code, fault.message, key, fault.member)
}
