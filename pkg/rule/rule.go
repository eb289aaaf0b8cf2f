package rule

// Span is a half-open range of byte offsets into a file's source text
type Span struct {
	Start int
	End   int
}

// Width returns the length of the span
func (s Span) Width() int {
	return s.End - s.Start
}

// Statement is a top-level statement supplied by the syntax-tree provider
type Statement interface {
	// ImportSpecifier returns the module specifier of an import statement.
	// ok is false for non-import statements and for imports whose specifier
	// is not a string literal.
	ImportSpecifier() (specifier string, ok bool)
	Span() Span
}

// Finding is a positioned, rule-attributed diagnostic
type Finding struct {
	RuleName string `json:"ruleName"`
	Message  string `json:"message"`
	Start    int    `json:"startPosition"`
	Width    int    `json:"width"`
}

// Metadata describes a rule for documentation and configuration validation
type Metadata struct {
	Name               string
	Type               string
	Description        string
	DescriptionDetails string
	Rationale          string
	OptionsDescription string
	Options            map[string]any // JSON schema of the rule arguments
	OptionExamples     [][]any
	TypeScriptOnly     bool
}

// AnalyzeFunc runs a rule over one file's statements. rawOptions are the
// rule arguments from configuration, untyped.
type AnalyzeFunc func(source string, statements []Statement, rawOptions []any) []Finding

// Rule pairs a descriptor with its analyzer
type Rule struct {
	Metadata Metadata
	Analyze  AnalyzeFunc
}

// Name returns the rule name from its metadata
func (r Rule) Name() string {
	return r.Metadata.Name
}
