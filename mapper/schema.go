package mapper

import (
	"reflect"
	"strings"
)

// MappingDefinition defines how to map one source shape to one destination
// shape. It is the unit of registration and of validation.
type MappingDefinition struct {
	// SourceKey identifies the source shape (e.g., "store.Customer").
	SourceKey string `yaml:"source"`

	// DestinationKey identifies the destination shape (e.g., "warehouse.Contact").
	DestinationKey string `yaml:"target"`

	// SourceType is the runtime type reference of the source shape.
	// Optional; a mapping without it can only be validated in non-strict mode.
	SourceType reflect.Type `yaml:"-"`

	// DestinationType is the runtime type reference of the destination shape.
	DestinationType reflect.Type `yaml:"-"`

	// Properties lists the explicitly configured source-side property rules,
	// in configuration order.
	Properties []SourcePropertyRule `yaml:"properties,omitempty"`
}

// Key returns the composite registry key for this definition.
func (d *MappingDefinition) Key() string {
	return d.SourceKey + "=>" + d.DestinationKey
}

// SourcePropertyRule describes one explicitly configured source-side
// property. A rule carries either a direct Destination, or a Children tree
// when one source property fans out into nested destination targets (the
// flattening pattern), or neither.
type SourcePropertyRule struct {
	// Name is the property identifier on the source shape.
	Name string `yaml:"name"`

	// Destination is the directly resolved target, if any.
	Destination *DestinationPropertyRule `yaml:"destination,omitempty"`

	// Children holds nested rules. They form a strict finite tree, never a
	// graph, so destination resolution always terminates.
	Children []SourcePropertyRule `yaml:"children,omitempty"`
}

// DestinationPropertyRule describes the resolved target of a property rule.
type DestinationPropertyRule struct {
	// Name is the property identifier on the destination shape.
	Name string `yaml:"name"`

	// DisplayName is the name used in failure messages. Defaults to Name.
	DisplayName string `yaml:"displayName,omitempty"`

	// Ignore marks the property as intentionally excluded from the mapping.
	Ignore bool `yaml:"ignore,omitempty"`

	// SourceMapping discriminates the validation branch: true means the rule
	// originates from walking source properties outward, false means it
	// originates from walking destination properties inward.
	SourceMapping bool `yaml:"sourceMapping,omitempty"`
}

// displayName returns the name to use in failure messages.
func (p *DestinationPropertyRule) displayName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}

	return p.Name
}

// Types binds the runtime type references of both shapes. Pointer types are
// accepted; member enumeration dereferences them.
func (d *MappingDefinition) Types(src, dst reflect.Type) *MappingDefinition {
	d.SourceType = src
	d.DestinationType = dst

	return d
}

// TypesOf binds type references from sample values, typically zero-value
// struct literals.
func (d *MappingDefinition) TypesOf(src, dst any) *MappingDefinition {
	return d.Types(reflect.TypeOf(src), reflect.TypeOf(dst))
}

// MapMember configures a source-originated rule mapping sourceName to
// destinationName.
func (d *MappingDefinition) MapMember(sourceName, destinationName string) *MappingDefinition {
	d.Properties = append(d.Properties, SourcePropertyRule{
		Name: sourceName,
		Destination: &DestinationPropertyRule{
			Name:          destinationName,
			DisplayName:   destinationName,
			SourceMapping: true,
		},
	})

	return d
}

// IgnoreSourceMember configures a source-originated rule excluding the named
// source member from the mapping. Validation then requires the destination
// shape NOT to own the name.
func (d *MappingDefinition) IgnoreSourceMember(name string) *MappingDefinition {
	d.Properties = append(d.Properties, SourcePropertyRule{
		Name: name,
		Destination: &DestinationPropertyRule{
			Name:          name,
			DisplayName:   name,
			Ignore:        true,
			SourceMapping: true,
		},
	})

	return d
}

// ForMember configures a destination-originated rule: destinationName is
// populated from sourceName.
func (d *MappingDefinition) ForMember(destinationName, sourceName string) *MappingDefinition {
	d.Properties = append(d.Properties, SourcePropertyRule{
		Name: sourceName,
		Destination: &DestinationPropertyRule{
			Name:        destinationName,
			DisplayName: destinationName,
		},
	})

	return d
}

// IgnoreMember configures a destination-originated rule excluding the named
// destination member. Validation then requires the source shape NOT to own
// the name.
func (d *MappingDefinition) IgnoreMember(name string) *MappingDefinition {
	d.Properties = append(d.Properties, SourcePropertyRule{
		Name: name,
		Destination: &DestinationPropertyRule{
			Name:        name,
			DisplayName: name,
			Ignore:      true,
		},
	})

	return d
}

// MapPath configures a source-originated rule whose source side is a
// dot-separated path (e.g., "Address.City"). The path becomes a chain of
// child rules rooted at the first segment, with the destination attached to
// the leaf. Used for the flattening pattern.
func (d *MappingDefinition) MapPath(sourcePath, destinationName string) *MappingDefinition {
	segments := strings.Split(sourcePath, ".")

	leaf := SourcePropertyRule{
		Name: segments[len(segments)-1],
		Destination: &DestinationPropertyRule{
			Name:          destinationName,
			DisplayName:   destinationName,
			SourceMapping: true,
		},
	}

	for i := len(segments) - 2; i >= 0; i-- {
		leaf = SourcePropertyRule{
			Name:     segments[i],
			Children: []SourcePropertyRule{leaf},
		}
	}

	d.Properties = append(d.Properties, leaf)

	return d
}
