package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDestination_Terminal(t *testing.T) {
	rule := SourcePropertyRule{
		Name:        "Name",
		Destination: &DestinationPropertyRule{Name: "FullName"},
	}

	dest := resolveDestination(&rule)
	require.NotNil(t, dest)
	assert.Equal(t, "FullName", dest.Name)
}

func TestResolveDestination_Absent(t *testing.T) {
	rule := SourcePropertyRule{Name: "Name"}

	assert.Nil(t, resolveDestination(&rule))
}

func TestResolveDestination_SecondChildWins(t *testing.T) {
	// The first child resolves nothing, so depth-first search moves on and
	// the second child's destination is the first match.
	rule := SourcePropertyRule{
		Name: "Address",
		Children: []SourcePropertyRule{
			{Name: "Zip"},
			{Name: "City", Destination: &DestinationPropertyRule{Name: "City"}},
		},
	}

	dest := resolveDestination(&rule)
	require.NotNil(t, dest)
	assert.Equal(t, "City", dest.Name)
}

func TestResolveDestination_DepthFirst(t *testing.T) {
	rule := SourcePropertyRule{
		Name: "Address",
		Children: []SourcePropertyRule{
			{
				Name: "Geo",
				Children: []SourcePropertyRule{
					{Name: "Lat", Destination: &DestinationPropertyRule{Name: "Latitude"}},
				},
			},
			{Name: "City", Destination: &DestinationPropertyRule{Name: "City"}},
		},
	}

	// The nested grandchild is reached before the second child.
	dest := resolveDestination(&rule)
	require.NotNil(t, dest)
	assert.Equal(t, "Latitude", dest.Name)
}

func TestResolveDestination_DestinationShadowsChildren(t *testing.T) {
	rule := SourcePropertyRule{
		Name:        "Name",
		Destination: &DestinationPropertyRule{Name: "Direct"},
		Children: []SourcePropertyRule{
			{Name: "Nested", Destination: &DestinationPropertyRule{Name: "Nested"}},
		},
	}

	dest := resolveDestination(&rule)
	require.NotNil(t, dest)
	assert.Equal(t, "Direct", dest.Name)
}
