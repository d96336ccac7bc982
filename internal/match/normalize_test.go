package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OrderID", "orderid"},
		{"customer_name", "customername"},
		{"full-name", "fullname"},
		{"XMLParser", "xmlparser"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.in))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"snake_case_name", []string{"snake", "case", "name"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizeCamelCase(tt.in))
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"ID", "FullName", "SignedUpAt"}

	got, ok := Closest("Fullname", candidates)
	assert.True(t, ok)
	assert.Equal(t, "FullName", got)

	_, ok = Closest("Quantity", candidates)
	assert.False(t, ok)

	_, ok = Closest("anything", nil)
	assert.False(t, ok)
}
