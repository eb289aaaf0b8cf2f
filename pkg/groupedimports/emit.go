package groupedimports

import (
	"fmt"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
)

const (
	FirstPartyImportFirstMessage = "First party imports should be placed before third party imports"
	ThirdPartyImportFirstMessage = "Third party imports should be placed before first party imports"

	groupModuleRootMessage   = "Module imports for the same root (%s) should be grouped"
	groupScopedModuleMessage = "Module imports for the same scope (%s) should be grouped"
)

// GroupModuleRootMessage is reported when imports of a module root are split
func GroupModuleRootMessage(root string) string {
	return fmt.Sprintf(groupModuleRootMessage, root)
}

// GroupScopedModuleMessage is reported when imports of a module scope are split
func GroupScopedModuleMessage(scope string) string {
	return fmt.Sprintf(groupScopedModuleMessage, scope)
}

// Message returns the human-readable text of the violation
func (v Violation) Message() string {
	switch v.Kind {
	case FirstPartyShouldPrecedeThirdParty:
		return FirstPartyImportFirstMessage
	case ThirdPartyShouldPrecedeFirstParty:
		return ThirdPartyImportFirstMessage
	case RootShouldBeGrouped:
		return GroupModuleRootMessage(v.Name)
	case ScopeShouldBeGrouped:
		return GroupScopedModuleMessage(v.Name)
	default:
		return ""
	}
}

// Emit converts a violation into a finding positioned at its statement
func Emit(v Violation) rule.Finding {
	span := v.Statement.Span()
	return rule.Finding{
		RuleName: RuleName,
		Message:  v.Message(),
		Start:    span.Start,
		Width:    span.Width(),
	}
}
