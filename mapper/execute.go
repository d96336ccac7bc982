package mapper

import (
	"fmt"
	"reflect"
)

// Map executes the registered mapping for the given key pair, copying
// members from src into the struct dst points to. Explicit rules run first
// (honoring rename and ignore); remaining source members are copied to
// same-named destination members. Values are copied when assignable or
// convertible and silently skipped otherwise: structural compatibility is
// the validator's job, not the engine's.
func Map(reg *Registry, sourceKey, destinationKey string, src, dst any) error {
	def := reg.Lookup(sourceKey, destinationKey)
	if def == nil {
		return fmt.Errorf("no mapping registered for '%s=>%s'", sourceKey, destinationKey)
	}

	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("mapping '%s': destination must be a non-nil pointer", def.Key())
	}

	dv = dv.Elem()
	if dv.Kind() != reflect.Struct {
		return fmt.Errorf("mapping '%s': destination must point to a struct", def.Key())
	}

	sv := reflect.ValueOf(src)
	for sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return fmt.Errorf("mapping '%s': source is nil", def.Key())
		}

		sv = sv.Elem()
	}

	if sv.Kind() != reflect.Struct {
		return fmt.Errorf("mapping '%s': source must be a struct", def.Key())
	}

	handled := make(map[string]struct{}, len(def.Properties))

	for i := range def.Properties {
		rule := &def.Properties[i]
		handled[rule.Name] = struct{}{}

		dest := resolveDestination(rule)
		if dest == nil || dest.Ignore {
			continue
		}

		copyMember(sv, dv, rule.Name, dest.Name)
	}

	for _, name := range Members(sv.Type()) {
		if _, done := handled[name]; done {
			continue
		}

		copyMember(sv, dv, name, name)
	}

	return nil
}

// copyMember transfers one member by name when both sides exist and the
// value fits. Missing or incompatible members are left untouched.
func copyMember(sv, dv reflect.Value, sourceName, destinationName string) {
	sf := sv.FieldByName(sourceName)
	df := dv.FieldByName(destinationName)

	if !sf.IsValid() || !df.IsValid() || !df.CanSet() {
		return
	}

	switch {
	case sf.Type().AssignableTo(df.Type()):
		df.Set(sf)
	case sf.Type().ConvertibleTo(df.Type()):
		df.Set(sf.Convert(df.Type()))
	}
}
