package mapper

import "reflect"

// memberIndex is an ordered set of member names of one shape.
type memberIndex struct {
	names []string
	index map[string]struct{}
}

func (m *memberIndex) has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Members returns the member names of a shape in declaration order: the
// exported visible fields of the (dereferenced) struct type, including
// fields promoted from embedded structs. Embedded struct entries themselves,
// unexported fields, and non-struct kinds contribute nothing.
//
// This is the Go analog of enumerating the own members of a freshly
// constructed instance.
func Members(t reflect.Type) []string {
	return memberSet(t).names
}

func memberSet(t reflect.Type) *memberIndex {
	m := &memberIndex{index: make(map[string]struct{})}

	if t == nil {
		return m
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return m
	}

	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || f.PkgPath != "" {
			continue
		}

		if _, seen := m.index[f.Name]; seen {
			continue
		}

		m.names = append(m.names, f.Name)
		m.index[f.Name] = struct{}{}
	}

	return m
}
