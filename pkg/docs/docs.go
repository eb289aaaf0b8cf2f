// Package docs renders rule metadata as Markdown
package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/errors"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
)

const (
	DefaultDirectory = "docs"
	DefaultFileName  = "rules.md"
)

type section struct {
	title string
	body  string
}

// Render returns the documentation of all rules, one section per rule
func Render(metas ...rule.Metadata) (string, error) {
	parts := make([]string, 0, len(metas))
	for _, meta := range metas {
		part, err := RenderRule(meta)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

// RenderRule returns the documentation of a single rule. Sections without
// content are left out.
func RenderRule(meta rule.Metadata) (string, error) {
	examples := make([]string, 0, len(meta.OptionExamples))
	for _, example := range meta.OptionExamples {
		block, err := jsonBlock(map[string]any{meta.Name: example})
		if err != nil {
			return "", err
		}
		examples = append(examples, block)
	}

	var schema string
	if meta.Options != nil {
		block, err := jsonBlock(meta.Options)
		if err != nil {
			return "", err
		}
		schema = block
	}

	sections := []section{
		{title: "Description", body: meta.Description},
		{title: "Details", body: meta.DescriptionDetails},
		{title: "Rationale", body: meta.Rationale},
		{title: "Options", body: meta.OptionsDescription},
		{title: "Option examples", body: strings.Join(examples, "\n\n")},
		{title: "Options schema", body: schema},
	}

	out := []string{fmt.Sprintf("# `%s`", meta.Name)}
	for _, s := range sections {
		body := strings.TrimSpace(s.body)
		if body == "" {
			continue
		}
		out = append(out, fmt.Sprintf("**%s:**\n\n%s", s.title, body))
	}
	return strings.Join(out, "\n\n"), nil
}

func jsonBlock(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return "```json\n" + strings.TrimRight(buf.String(), "\n") + "\n```", nil
}

// WriteFile writes content to dir/name, creating dir when needed, and
// returns the written path
func WriteFile(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateDocsDir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteDocs, err)
	}
	return path, nil
}
