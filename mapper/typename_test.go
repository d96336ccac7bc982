package mapper

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"nil reference", nil, "undefined"},
		{"named struct", reflect.TypeOf(person{}), "mapper.person"},
		{"pointer deref", reflect.TypeOf(&person{}), "mapper.person"},
		{"builtin", reflect.TypeOf(""), "string"},
		{"unnamed slice", reflect.TypeOf([]int{}), "[]int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.typ))
		})
	}
}
