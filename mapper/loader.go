package mapper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mapcheck/diagnostic"
	"mapcheck/internal/common"
)

// Profile represents the root of a YAML mapping profile file: a declarative
// set of mapping definitions without type references. Types are bound later
// via Registry.BindTypes.
type Profile struct {
	// Version of the profile schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Mappings is the ordered list of mapping definitions.
	Mappings []MappingDefinition `yaml:"mappings"`
}

// LoadFile loads and parses a YAML mapping profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile and applies defaults.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse mapping profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields: schema version,
// rule names inherited from their destination, and display names inherited
// from the destination name.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = "1"
	}

	for i := range p.Mappings {
		for j := range p.Mappings[i].Properties {
			defaultRule(&p.Mappings[i].Properties[j])
		}
	}
}

func defaultRule(rule *SourcePropertyRule) {
	if dest := rule.Destination; dest != nil {
		if dest.Name == "" {
			dest.Name = rule.Name
		}

		if dest.DisplayName == "" {
			dest.DisplayName = dest.Name
		}
	}

	for i := range rule.Children {
		defaultRule(&rule.Children[i])
	}
}

// Lint performs type-free structural checks on a profile: mappings must
// carry both keys and be unique, property rules must be named, and a rule
// may hold a destination or children but not both. These are the defects a
// profile can exhibit before any type reference is bound.
func (p *Profile) Lint() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if common.IsEmpty(p.Mappings) {
		res.AddWarning("empty_profile", "profile defines no mappings", "", "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range p.Mappings {
		def := &p.Mappings[i]
		key := def.Key()

		if def.SourceKey == "" || def.DestinationKey == "" {
			res.AddError("missing_mapping_keys", "mapping must specify source and target", key, "")
			continue
		}

		if _, dup := seen[key]; dup {
			res.AddError("duplicate_mapping", fmt.Sprintf("duplicate mapping '%s'", key), key, "")
			continue
		}

		seen[key] = struct{}{}

		names := map[string]struct{}{}

		for j := range def.Properties {
			lintRule(res, key, &def.Properties[j], names)
		}
	}

	return res
}

func lintRule(res *diagnostic.Diagnostics, key string, rule *SourcePropertyRule, names map[string]struct{}) {
	if rule.Name == "" {
		res.AddError("empty_property_name", "property rule has empty name", key, "")
		return
	}

	if rule.Destination != nil && len(rule.Children) > 0 {
		res.AddError("ambiguous_rule",
			fmt.Sprintf("property rule '%s' specifies both destination and children", rule.Name), key, rule.Name)
	}

	// Only rules with a direct destination participate in duplicate
	// detection: fan-out rules repeat their root name once per nested path
	// because destination resolution is first-match-wins.
	if rule.Destination != nil {
		if _, dup := names[rule.Name]; dup {
			res.AddError("duplicate_property", fmt.Sprintf("duplicate property rule '%s'", rule.Name), key, rule.Name)
		}

		names[rule.Name] = struct{}{}
	}

	// Children share the parent's rule-name scope: a nested name colliding
	// with a configured rule would be reconciled twice.
	for i := range rule.Children {
		lintRule(res, key, &rule.Children[i], names)
	}
}

// Apply materializes the profile's mappings into a registry. Existing
// entries for the same key pair are replaced, matching Registry.Add.
func (p *Profile) Apply(reg *Registry) {
	for i := range p.Mappings {
		def := p.Mappings[i]
		reg.Add(&def)
	}
}
