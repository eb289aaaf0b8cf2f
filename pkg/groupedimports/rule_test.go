package groupedimports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
)

// lineStatement treats one source line as a top-level statement. The last
// double-quoted string of an import line is its specifier.
type lineStatement struct {
	text  string
	start int
}

func (s lineStatement) ImportSpecifier() (string, bool) {
	if !strings.HasPrefix(s.text, "import ") {
		return "", false
	}
	end := strings.LastIndex(s.text, `"`)
	if end <= 0 {
		return "", false
	}
	begin := strings.LastIndex(s.text[:end], `"`)
	if begin < 0 {
		return "", false
	}
	return s.text[begin+1 : end], true
}

func (s lineStatement) Span() rule.Span {
	return rule.Span{Start: s.start, End: s.start + len(s.text)}
}

// source joins lines with newlines and returns one statement per line
func source(lines ...string) (string, []rule.Statement) {
	var statements []rule.Statement
	offset := 0
	for _, line := range lines {
		statements = append(statements, lineStatement{text: line, start: offset})
		offset += len(line) + 1
	}
	return strings.Join(lines, "\n"), statements
}

func finding(message string, start, width int) rule.Finding {
	return rule.Finding{RuleName: RuleName, Message: message, Start: start, Width: width}
}

var mixedPartyLines = []string{
	`import { foo, bar, baz } from "example-module"`,
	`import { chef } from "../services/producer"`,
	`import { apple, banana, coco } from "@edible/fruits"`,
	`import * as vegetables from "@edible/vegetables"`,
	`import { fork } from "@utensils/table-stuff"`,
	`import "@edible/preservatives/salt"`,
	`import { consumer } from "../models/consumer"`,
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		options []any
		lines   []string
		want    []rule.Finding
	}{
		{
			name:    "third party imports placed before first party imports",
			options: []any{map[string]any{"firstVsThirdPartyOrder": "third-party-modules-first"}},
			lines: []string{
				`import { bla } from "./lorem/ipsum"`,
				`import { foo, bar, baz } from "example-module"`,
				`import * as something from "@scoped/module"`,
				`import { consumer } from "../models/consumer"`,
			},
			want: []rule.Finding{
				finding(ThirdPartyImportFirstMessage, 36, 46),
				finding(ThirdPartyImportFirstMessage, 83, 43),
			},
		},
		{
			name:    "first party imports placed before third party imports",
			options: []any{map[string]any{"firstVsThirdPartyOrder": "third-party-modules-last"}},
			lines: []string{
				`import { bla } from "./lorem/ipsum"`,
				`import { foo, bar, baz } from "example-module"`,
				`import { consumer } from "../models/consumer"`,
				`import { producer } from "../models/producer"`,
			},
			want: []rule.Finding{
				finding(FirstPartyImportFirstMessage, 83, 45),
				finding(FirstPartyImportFirstMessage, 129, 45),
			},
		},
		{
			name:    "third party imports grouped by module root",
			options: []any{map[string]any{"groupThirdPartyModules": true}},
			lines: []string{
				`import { Component } from "@angular/core"`,
				`import { Observable } from "rxjs/Observable"`,
				`import { async } from "@angular/core/testing"`,
				`import "rxjs/add/operator/map"`,
				`import { HttpClient } from "@angular/common/http"`,
				`import { foo } from "example"`,
				`import { bar } from "example"`,
				`import { banana } from "../../examples/fruits"`,
				`import { baz } from "example"`,
			},
			want: []rule.Finding{
				finding(GroupModuleRootMessage("@angular/core"), 87, 45),
				finding(GroupModuleRootMessage("rxjs"), 133, 30),
				finding(GroupScopedModuleMessage("@angular"), 164, 49),
				finding(GroupModuleRootMessage("example"), 321, 29),
			},
		},
		{
			name:    "grouped module roots produce no findings",
			options: []any{map[string]any{"groupThirdPartyModules": true}},
			lines: []string{
				`import { Component } from "@angular/core"`,
				`import { async } from "@angular/core/testing"`,
				`import { HttpClient } from "@angular/common/http"`,
				`import { Observable } from "rxjs/Observable"`,
				`import "rxjs/add/operator/map"`,
				`import { foo } from "example"`,
				`import { bar } from "example"`,
				`import { baz } from "example"`,
				`import { banana } from "../../examples/fruits"`,
			},
			want: []rule.Finding{},
		},
		{
			name: "both options",
			options: []any{map[string]any{
				"groupThirdPartyModules": true,
				"firstVsThirdPartyOrder": "third-party-modules-first",
			}},
			lines: mixedPartyLines,
			want: []rule.Finding{
				finding(ThirdPartyImportFirstMessage, 91, 52),
				finding(ThirdPartyImportFirstMessage, 144, 48),
				finding(ThirdPartyImportFirstMessage, 193, 44),
				finding(ThirdPartyImportFirstMessage, 238, 35),
				finding(GroupScopedModuleMessage("@edible"), 238, 35),
			},
		},
		{
			name:    "both options disabled",
			options: []any{map[string]any{"groupThirdPartyModules": false}},
			lines:   mixedPartyLines,
			want:    []rule.Finding{},
		},
		{
			name:  "defaults only check grouping",
			lines: mixedPartyLines,
			want: []rule.Finding{
				finding(GroupScopedModuleMessage("@edible"), 238, 35),
			},
		},
		{
			name: "non literal specifier is skipped",
			lines: []string{
				`import { apple, banana, coco } from "@edible/fruits";`,
				`import { bla } from oopsThisIsNotACorrectImportStatement;`,
				`import * as vegetables from "@edible/vegetables";`,
			},
			want: []rule.Finding{},
		},
		{
			name: "non literal specifier does not break a run",
			lines: []string{
				`import { a } from "example"`,
				`import { b } from other`,
				`import { c } from "example"`,
				`import { d } from "lorem"`,
				`import { e } from "example"`,
			},
			want: []rule.Finding{
				finding(GroupModuleRootMessage("example"), 106, 27),
			},
		},
		{
			name: "non import statements are ignored",
			lines: []string{
				`import { a } from "example"`,
				`const x = "lorem"`,
				`import { c } from "example"`,
			},
			want: []rule.Finding{},
		},
		{
			name:    "malformed options disable the rule",
			options: []any{"third-party-modules-first"},
			lines:   mixedPartyLines,
			want:    []rule.Finding{},
		},
		{
			name:    "single statement",
			options: []any{map[string]any{"firstVsThirdPartyOrder": "third-party-modules-last"}},
			lines:   []string{`import { a } from "example"`},
			want:    []rule.Finding{},
		},
		{
			name:  "empty file",
			lines: nil,
			want:  []rule.Finding{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			src, statements := source(tt.lines...)
			got := Analyze(src, statements, tt.options)
			req.Equal(tt.want, got)
		})
	}
}

func TestAnalyze_angularScenario(t *testing.T) {
	req := require.New(t)
	src, statements := source(
		`import { Component } from "@angular/core"`,
		`import { async } from "@angular/core/testing"`,
		`import { HttpClient } from "@angular/common/http"`,
		`import { Observable } from "rxjs/Observable"`,
		`import "rxjs/add/operator/map"`,
		`import { foo } from "example"`,
		`import { bar } from "example"`,
		`import { banana } from "../../examples/fruits"`,
		`import { baz } from "example"`,
	)

	got := Analyze(src, statements, nil)
	req.Len(got, 1)
	req.Equal(GroupModuleRootMessage("example"), got[0].Message)
	req.Equal(statements[8].Span().Start, got[0].Start)
}

func TestAnalyze_idempotent(t *testing.T) {
	req := require.New(t)
	src, statements := source(mixedPartyLines...)
	options := []any{map[string]any{"firstVsThirdPartyOrder": "third-party-modules-last"}}

	first := Analyze(src, statements, options)
	second := Analyze(src, statements, options)
	req.NotEmpty(first)
	req.Equal(first, second)
}

func TestAnalyze_policiesAreIndependent(t *testing.T) {
	inputs := [][]string{
		mixedPartyLines,
		{
			`import { a } from "./a"`,
			`import { b } from "b"`,
			`import { c } from "../c"`,
			`import { d } from "@s/d"`,
			`import { b2 } from "b/two"`,
			`import { e } from "@s/e"`,
		},
	}

	for i, lines := range inputs {
		src, statements := source(lines...)

		grouping := Analyze(src, statements, []any{map[string]any{"groupThirdPartyModules": true}})
		for _, f := range grouping {
			require.NotEqual(t, FirstPartyImportFirstMessage, f.Message, "input %d", i)
			require.NotEqual(t, ThirdPartyImportFirstMessage, f.Message, "input %d", i)
		}

		for _, order := range []string{"third-party-modules-first", "third-party-modules-last"} {
			ordering := Analyze(src, statements, []any{map[string]any{
				"groupThirdPartyModules": false,
				"firstVsThirdPartyOrder": order,
			}})
			for _, f := range ordering {
				require.Contains(t, []string{FirstPartyImportFirstMessage, ThirdPartyImportFirstMessage}, f.Message, "input %d", i)
			}
		}
	}
}

func TestNew(t *testing.T) {
	req := require.New(t)
	r := New()

	req.Equal(RuleName, r.Name())
	req.Equal("style", r.Metadata.Type)
	req.NotEmpty(r.Metadata.Description)
	req.Len(r.Metadata.OptionExamples, 3)
	req.Equal(false, r.Metadata.Options["additionalProperties"])

	src, statements := source(`import "b"`, `import "a"`, `import "b/c"`)
	got := r.Analyze(src, statements, nil)
	req.Equal([]rule.Finding{finding(GroupModuleRootMessage("b"), 22, 12)}, got)
}
