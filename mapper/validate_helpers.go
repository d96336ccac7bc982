package mapper

import "fmt"

// memberFault describes one detected presence-policy violation.
type memberFault struct {
	code    string
	member  string
	message string
}

// checkPropertyRule validates one configured property rule and marks the
// involved names as validated regardless of the outcome, so the implicit
// sweeps never double-check them.
func checkPropertyRule(rule *SourcePropertyRule, src, dst *memberIndex, validated map[string]struct{}) *memberFault {
	validated[rule.Name] = struct{}{}

	dest := resolveDestination(rule)
	if dest == nil {
		// No destination anywhere in the rule tree: nothing to reconcile.
		return nil
	}

	if dest.Name != "" {
		validated[dest.Name] = struct{}{}
	}

	if dest.SourceMapping {
		return checkSourceRule(rule.Name, dest, src, dst)
	}

	return checkDestinationRule(rule.Name, dest, src, dst)
}

// resolveDestination finds the applicable destination rule for a property
// rule. A direct destination is terminal; otherwise children are searched
// depth-first in sequence order and the first match wins. Nil means absence,
// not an error. Children form a finite tree, so the search terminates.
func resolveDestination(rule *SourcePropertyRule) *DestinationPropertyRule {
	if rule.Destination != nil {
		return rule.Destination
	}

	for i := range rule.Children {
		if dest := resolveDestination(&rule.Children[i]); dest != nil {
			return dest
		}
	}

	return nil
}

// checkSourceRule validates a source-originated rule: the source shape must
// own the member; an ignored member must be absent from the destination
// shape; a mapped member's resolved target must be present on it. The
// destination side is checked under the resolved rule name so that renames
// and fan-out rules (whose target differs from the source member) validate.
func checkSourceRule(member string, dest *DestinationPropertyRule, src, dst *memberIndex) *memberFault {
	if !src.has(member) {
		return &memberFault{
			code:    CodeMissingSourceMember,
			member:  member,
			message: fmt.Sprintf("Source member '%s' is configured, but does not exist on source type", member),
		}
	}

	target := dest.Name
	if target == "" {
		target = member
	}

	if dest.Ignore {
		if dst.has(target) {
			return &memberFault{
				code:    CodeIgnoredMemberStillPresent,
				member:  member,
				message: fmt.Sprintf("Source member '%s' is ignored, but does exist on destination type", member),
			}
		}

		return nil
	}

	if !dst.has(target) {
		return &memberFault{
			code:    CodeMissingDestinationMember,
			member:  target,
			message: fmt.Sprintf("Source member '%s' is configured to be mapped, but does not exist on destination type", member),
		}
	}

	return nil
}

// checkImplicitSource validates a source member that no rule configured:
// the destination shape must own the same name.
func checkImplicitSource(name string, dst *memberIndex) *memberFault {
	if dst.has(name) {
		return nil
	}

	return &memberFault{
		code:    CodeMissingDestinationMember,
		member:  name,
		message: fmt.Sprintf("Source member '%s' does not exist on destination type", name),
	}
}

// unmappedDestination reports a destination member with no counterpart and
// no explicit rule.
func unmappedDestination(name string) *memberFault {
	return &memberFault{
		code:    CodeUnmappedDestinationMember,
		member:  name,
		message: fmt.Sprintf("Destination member '%s' does not exist on source type", name),
	}
}

// checkDestinationRule is the mirror image of checkSourceRule for
// destination-originated rules.
func checkDestinationRule(member string, dest *DestinationPropertyRule, src, dst *memberIndex) *memberFault {
	name := dest.displayName()

	if !dst.has(dest.Name) {
		return &memberFault{
			code:    CodeMissingDestinationMember,
			member:  dest.Name,
			message: fmt.Sprintf("Destination member '%s' is configured, but does not exist on destination type", name),
		}
	}

	if dest.Ignore {
		if src.has(member) {
			return &memberFault{
				code:    CodeIgnoredMemberStillPresent,
				member:  member,
				message: fmt.Sprintf("Destination member '%s' is ignored, but does exist on source type", name),
			}
		}

		return nil
	}

	if !src.has(member) {
		return &memberFault{
			code:    CodeMissingSourceMember,
			member:  member,
			message: fmt.Sprintf("Destination member '%s' is configured to be mapped, but does not exist on source type", name),
		}
	}

	return nil
}
