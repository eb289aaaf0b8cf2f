// Package groupedimports implements the grouped-imports rule: it checks that
// imports from the same module root or scope are kept together and,
// optionally, that third party imports are placed before or after first
// party imports.
package groupedimports

import (
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
)

const RuleName = "grouped-imports"

// New returns the grouped-imports rule ready to be registered
func New() rule.Rule {
	return rule.Rule{
		Metadata: Metadata(),
		Analyze:  Analyze,
	}
}

// Analyze checks the import statements of one file. It reports nothing when
// rawOptions are malformed.
func Analyze(_ string, statements []rule.Statement, rawOptions []any) []rule.Finding {
	opts, ok := ResolveOptions(rawOptions)
	if !ok {
		return []rule.Finding{}
	}

	violations := Walk(statements, opts)
	findings := make([]rule.Finding, 0, len(violations))
	for _, v := range violations {
		findings = append(findings, Emit(v))
	}
	return findings
}

// Metadata describes the rule for documentation and configuration
func Metadata() rule.Metadata {
	return rule.Metadata{
		Name:        RuleName,
		Type:        "style",
		Description: "Checks whether imports are logically grouped.",
		DescriptionDetails: "When this rule is enabled it will check if import statements are grouped together with respect to the module root\n" +
			"(e.g. `@angular/core` or `rxjs`) and, as a fallback, the module scope (e.g. `@angular`).\n" +
			"\n" +
			"The rule can also be configured to check that all third party (libraries) are placed before or after first party (your own code)\n" +
			"imports.",
		Rationale: "Grouping imports makes it easier to find related imports.",
		OptionsDescription: "An optional argument can be specified to control the value of the following settings:\n" +
			"\n" +
			"* `groupThirdPartyModules` - Checks whether imports from the same module root or scope are grouped together. _Defaults to `true`._\n" +
			"* `firstVsThirdPartyOrder` - Checks whether third party modules are placed before or after first party modules.\n" +
			"  Valid options are either `third-party-modules-first` or `third-party-modules-last`. _Disabled by default._",
		Options: map[string]any{
			"type": "object",
			"properties": map[string]any{
				optionGroupThirdPartyModules: map[string]any{
					"type": "boolean",
				},
				optionFirstVsThirdPartyOrder: map[string]any{
					"type": "string",
					"enum": []string{string(ThirdPartyModulesFirst), string(ThirdPartyModulesLast)},
				},
			},
			"additionalProperties": false,
		},
		OptionExamples: [][]any{
			{true},
			{true, map[string]any{optionFirstVsThirdPartyOrder: string(ThirdPartyModulesFirst)}},
			{true, map[string]any{
				optionGroupThirdPartyModules: false,
				optionFirstVsThirdPartyOrder: string(ThirdPartyModulesLast),
			}},
		},
		TypeScriptOnly: false,
	}
}
