// Package mapper provides a registry of declarative object-to-object
// mapping definitions and a dry-run validator that checks their structural
// compatibility before any value transfer runs.
//
// A mapping definition describes how members of a source shape transform
// into members of a destination shape. The validator never moves data; it
// reconciles three member sets per mapping and reports the first mismatch:
//
//   - explicitly configured property rules
//   - remaining members of the source shape
//   - remaining members of the destination shape
//
// # Key capabilities
//
//   - Fluent registration (CreateMap, MapMember, IgnoreSourceMember, MapPath)
//   - Fail-fast validation (AssertConfigurationIsValid) in registration order
//   - Collect-all validation (CheckConfiguration) with closest-member
//     suggestions for typos
//   - Declarative YAML profiles with a type-free structural lint
//   - A thin reflect-based execution engine honoring rename and ignore rules
//
// # Validation policy
//
// Only member existence and presence policy are checked. Value-level type
// compatibility (a string source feeding an int destination) is out of
// scope: the execution engine copies assignable or convertible values and
// silently leaves the rest untouched.
//
// # Strict mode
//
// A mapping whose source or destination type reference is unbound cannot be
// inspected. Strict mode turns that into a failure; non-strict mode skips
// just that mapping and keeps checking the rest.
package mapper
