package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfiguration_Valid(t *testing.T) {
	reg := NewRegistry()
	reg.CreateMap("person", "personDTO").TypesOf(person{}, personDTO{})

	res := CheckConfiguration(reg, true)
	assert.True(t, res.IsValid())
}

type ledgerDTO struct {
	ID    int64
	Total int64
	Extra string
}

func TestCheckConfiguration_CollectsAllViolations(t *testing.T) {
	reg := NewRegistry()
	reg.CreateMap("account", "ledgerDTO").
		TypesOf(account{}, ledgerDTO{}).
		MapMember("Secre", "Total")

	// Three independent violations in one mapping: a misspelled source
	// member, a source member with no destination counterpart, and an
	// orphaned destination member.
	res := CheckConfiguration(reg, true)
	require.Len(t, res.Errors, 3)

	codes := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		codes = append(codes, e.Code)
	}

	assert.Contains(t, codes, CodeMissingSourceMember)
	assert.Contains(t, codes, CodeMissingDestinationMember)
	assert.Contains(t, codes, CodeUnmappedDestinationMember)
}

func TestCheckConfiguration_SuggestsClosestMember(t *testing.T) {
	reg := NewRegistry()
	reg.CreateMap("account", "accountFull").
		TypesOf(account{}, accountFull{}).
		MapMember("Secre", "Secret")

	res := CheckConfiguration(reg, true)
	require.False(t, res.IsValid())

	var found bool

	for _, e := range res.Errors {
		if e.Code == CodeMissingSourceMember {
			found = true

			assert.Equal(t, "Secre", e.Member)
			assert.Equal(t, []string{"Secret"}, e.Suggestions)
		}
	}

	assert.True(t, found, "expected a missing_source_member error, got: %v", res.Errors)
}

func TestCheckConfiguration_StrictUnresolvedTypes(t *testing.T) {
	reg := NewRegistry()
	reg.CreateMap("person", "personDTO")

	res := CheckConfiguration(reg, true)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeUnresolvedTypeReference, res.Errors[0].Code)
	assert.Equal(t, "person=>personDTO", res.Errors[0].MappingKey)

	res = CheckConfiguration(reg, false)
	assert.True(t, res.IsValid())
}

func TestCheckConfiguration_SpansMappings(t *testing.T) {
	reg := NewRegistry()
	reg.CreateMap("accountView", "account").TypesOf(accountView{}, account{})
	reg.CreateMap("account", "accountView").TypesOf(account{}, accountView{})

	res := CheckConfiguration(reg, true)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "accountView=>account", res.Errors[0].MappingKey)
	assert.Equal(t, "account=>accountView", res.Errors[1].MappingKey)
}

func TestCheckConfiguration_AgreesWithFailFast(t *testing.T) {
	reg := NewRegistry()
	reg.CreateMap("account", "accountFull").
		TypesOf(account{}, accountFull{}).
		IgnoreSourceMember("Secret")

	res := CheckConfiguration(reg, true)
	err := AssertConfigurationIsValid(reg, true)

	require.Error(t, err)
	require.False(t, res.IsValid())
	assert.Contains(t, err.Error(), res.Errors[0].Message)
}
