package mapper

import (
	"path"
	"reflect"
)

// undefinedName is displayed when a type reference cannot be resolved.
const undefinedName = "undefined"

// TypeName returns a human-readable display name for a type reference,
// used only in failure messages. Pointer types are dereferenced; named
// types are qualified with their package alias (e.g., "store.Customer").
// A nil reference yields "undefined" rather than an error.
func TypeName(t reflect.Type) string {
	if t == nil {
		return undefinedName
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" {
		// Unnamed type (slice, map, anonymous struct): fall back to the
		// reflect representation.
		return t.String()
	}

	if pkgPath := t.PkgPath(); pkgPath != "" {
		return path.Base(pkgPath) + "." + name
	}

	return name
}
