// Package tsparse turns TypeScript and JavaScript source into the top-level
// statement list consumed by the lint rules.
package tsparse

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/errors"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
)

const (
	nodeImportStatement = "import_statement"
	nodeString          = "string"
	fieldSource         = "source"
)

// Language is a grammar supported by the parser
type Language string

const (
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	JavaScript Language = "javascript"
)

var extensions = map[string]Language{
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
}

// LanguageForFile picks the grammar from the file extension
func LanguageForFile(path string) (Language, bool) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

func (l Language) grammar() *sitter.Language {
	switch l {
	case TSX:
		return tsx.GetLanguage()
	case JavaScript:
		return javascript.GetLanguage()
	default:
		return typescript.GetLanguage()
	}
}

// Statement is one top-level node of a parsed file
type Statement struct {
	Kind         string
	Specifier    string
	HasSpecifier bool
	Start        int
	End          int
}

// ImportSpecifier implements rule.Statement
func (s Statement) ImportSpecifier() (string, bool) {
	return s.Specifier, s.HasSpecifier
}

// Span implements rule.Statement
func (s Statement) Span() rule.Span {
	return rule.Span{Start: s.Start, End: s.End}
}

// File is the parse result of one source file
type File struct {
	Path       string
	Language   Language
	Source     []byte
	Statements []Statement
	HasErrors  bool
}

// RuleStatements returns the statements as the rule interface type
func (f *File) RuleStatements() []rule.Statement {
	statements := make([]rule.Statement, len(f.Statements))
	for i, s := range f.Statements {
		statements[i] = s
	}
	return statements
}

// Parser wraps a tree-sitter parser. It is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a parser
func NewParser() *Parser {
	return &Parser{parser: sitter.NewParser()}
}

// Close releases the underlying tree-sitter parser
func (p *Parser) Close() {
	p.parser.Close()
}

// ParseFile parses source using the grammar chosen by the path's extension
func (p *Parser) ParseFile(ctx context.Context, path string, source []byte) (*File, error) {
	lang, ok := LanguageForFile(path)
	if !ok {
		return nil, fmt.Errorf("%s: %s", errors.ErrMsgUnsupportedLanguage, path)
	}
	file, err := p.Parse(ctx, lang, source)
	if err != nil {
		return nil, err
	}
	file.Path = path
	return file, nil
}

// Parse parses source with the given grammar. Syntax errors do not fail the
// parse; the affected statements just carry no import specifier.
func (p *Parser) Parse(ctx context.Context, lang Language, source []byte) (*File, error) {
	p.parser.SetLanguage(lang.grammar())

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &File{
		Language:  lang,
		Source:    source,
		HasErrors: root.HasError(),
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		file.Statements = append(file.Statements, newStatement(root.NamedChild(i), source))
	}

	return file, nil
}

func newStatement(node *sitter.Node, source []byte) Statement {
	stmt := Statement{
		Kind:  node.Type(),
		Start: int(node.StartByte()),
		End:   int(node.EndByte()),
	}

	if node.Type() != nodeImportStatement {
		return stmt
	}

	src := node.ChildByFieldName(fieldSource)
	if src == nil || src.Type() != nodeString || src.IsMissing() || src.HasError() {
		return stmt
	}

	stmt.Specifier, stmt.HasSpecifier = unquote(src.Content(source))
	return stmt
}

// unquote strips the quotes of a string literal. Escape sequences are kept
// as written.
func unquote(literal string) (string, bool) {
	if len(literal) < 2 {
		return "", false
	}
	quote := literal[0]
	if (quote != '"' && quote != '\'') || literal[len(literal)-1] != quote {
		return "", false
	}
	return literal[1 : len(literal)-1], true
}
