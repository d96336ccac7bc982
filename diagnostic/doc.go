// Package diagnostic provides structured accumulation of configuration
// errors and warnings for the mapping validator and the profile lint.
//
// Key capabilities:
//   - Stable snake_case codes per violation kind
//   - Mapping key and member attribution on every entry
//   - Closest-member suggestions for misspelled names
//   - Collapsing all errors into a single error value
package diagnostic
