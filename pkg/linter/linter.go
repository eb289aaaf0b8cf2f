package linter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/config"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/errors"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/tsparse"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/utils"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	configCacheSize = 256
)

type LinterConfig struct {
	ConfigPath string    // config file to use for every file, searched per directory when empty
	Format     string    // output format, "text" or "json"
	Jobs       int       // number of files processed concurrently
	Out        io.Writer // destination of findings and progress messages
}

// Finding is a rule finding located in a file
type Finding struct {
	rule.Finding
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Result is the outcome of linting one file
type Result struct {
	Path     string
	Findings []Finding
	Err      error
}

// linter runs the registered rules over source files
type linter struct {
	config   LinterConfig
	registry *rule.Registry
	configs  *lru.Cache[string, *config.Config]
}

type enabledRule struct {
	rule      rule.Rule
	arguments []any
}

// New creates a linter running the rules of registry
func New(cfg LinterConfig, registry *rule.Registry) (*linter, error) {
	switch cfg.Format {
	case "", FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("%s: %q", errors.ErrMsgUnknownOutputFormat, cfg.Format)
	}

	configs, err := lru.New[string, *config.Config](configCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateLruCache, err)
	}
	return &linter{
		config:   cfg,
		registry: registry,
		configs:  configs,
	}, nil
}

func (l *linter) getFormat() string {
	if l.config.Format == "" {
		return FormatText
	}
	return l.config.Format
}

func (l *linter) getJobs() int {
	if l.config.Jobs <= 0 {
		return 1
	}
	return l.config.Jobs
}

func (l *linter) getOut() io.Writer {
	if l.config.Out == nil {
		return os.Stdout
	}
	return l.config.Out
}

// configFor returns the configuration that applies to a source file. A nil
// config means no config file was found.
func (l *linter) configFor(path string) (*config.Config, error) {
	key := l.config.ConfigPath
	if key == "" {
		dir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToResolveConfigDir, err)
		}
		key = dir
	}

	if cfg, ok := l.configs.Get(key); ok {
		return cfg, nil
	}

	configPath := l.config.ConfigPath
	if configPath == "" {
		configPath = config.Find(key)
	}

	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	l.configs.Add(key, cfg)
	return cfg, nil
}

// rulesFor returns the rules to run under cfg. Without a config file every
// registered rule runs with its default options.
func (l *linter) rulesFor(cfg *config.Config) []enabledRule {
	var rules []enabledRule
	for _, r := range l.registry.All() {
		if cfg == nil {
			rules = append(rules, enabledRule{rule: r})
			continue
		}
		rc, ok := cfg.Rule(r.Name())
		if !ok || !rc.Enabled {
			continue
		}
		rules = append(rules, enabledRule{rule: r, arguments: rc.Arguments})
	}
	return rules
}

// LintSource runs the rules enabled by cfg over one file's content
func (l *linter) LintSource(ctx context.Context, path string, src []byte, cfg *config.Config) ([]Finding, error) {
	parser := tsparse.NewParser()
	defer parser.Close()

	file, err := parser.ParseFile(ctx, path, src)
	if err != nil {
		return nil, err
	}

	source := string(src)
	statements := file.RuleStatements()

	var findings []Finding
	for _, r := range l.rulesFor(cfg) {
		for _, f := range r.rule.Analyze(source, statements, r.arguments) {
			line, column := position(src, f.Start)
			findings = append(findings, Finding{
				Finding: f,
				Path:    path,
				Line:    line,
				Column:  column,
			})
		}
	}
	return findings, nil
}

// ProcessFile lints a single source file
func (l *linter) ProcessFile(ctx context.Context, path string) Result {
	result := Result{Path: path}

	cfg, err := l.configFor(path)
	if err != nil {
		result.Err = err
		return result
	}

	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return result
	}

	result.Findings, result.Err = l.LintSource(ctx, path, src, cfg)
	return result
}

// LintFiles lints files concurrently and returns the results in input order
func (l *linter) LintFiles(ctx context.Context, filePaths []string) ([]Result, error) {
	results := make([]Result, len(filePaths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.getJobs())
	for i, filePath := range filePaths {
		i, filePath := i, filePath
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = l.ProcessFile(ctx, filePath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessFiles lints multiple files and reports their findings
func (l *linter) ProcessFiles(ctx context.Context, filePaths []string, verbose bool) error {
	results, err := l.LintFiles(ctx, filePaths)
	if err != nil {
		return err
	}

	var (
		findings   []Finding
		errorCount int
	)
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(l.getOut(), errors.InfoMsgErrorProcessing+"\n", result.Path, result.Err)
			errorCount++
			continue
		}
		findings = append(findings, result.Findings...)
	}

	if err := l.writeFindings(findings); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(l.getOut(), errors.InfoMsgCheckedCount, len(results))
		fmt.Fprintf(l.getOut(), errors.InfoMsgFindingCount, len(findings))
		if errorCount > 0 {
			fmt.Fprintf(l.getOut(), errors.InfoMsgErrorCount, errorCount)
		}
		fmt.Fprintln(l.getOut())
	}

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	if len(findings) > 0 {
		return fmt.Errorf(errors.ErrMsgFindingsReported, len(findings))
	}
	return nil
}

// ProcessPath lints a file or every source file below a directory
func (l *linter) ProcessPath(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return l.ProcessFiles(ctx, []string{path}, false)
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}

	// Progress messages are only written with text output
	verbose := l.getFormat() == FormatText

	if len(files) == 0 {
		if verbose {
			fmt.Fprintf(l.getOut(), errors.InfoMsgNoSourceFilesFound+"\n", path)
		}
		return nil
	}

	if verbose {
		fmt.Fprintf(l.getOut(), errors.InfoMsgFoundSourceFiles+"\n", len(files), path)
		if l.config.ConfigPath != "" {
			fmt.Fprintf(l.getOut(), errors.InfoMsgUsingConfig+"\n", l.config.ConfigPath)
		}
		fmt.Fprintln(l.getOut())
	}

	return l.ProcessFiles(ctx, files, verbose)
}

func (l *linter) writeFindings(findings []Finding) error {
	switch l.getFormat() {
	case FormatJSON:
		if findings == nil {
			findings = []Finding{}
		}
		enc := json.NewEncoder(l.getOut())
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFindings, err)
		}
	case FormatText:
		for _, f := range findings {
			fmt.Fprintln(l.getOut(), FormatFinding(f))
		}
	default:
		return fmt.Errorf("%s: %q", errors.ErrMsgUnknownOutputFormat, l.getFormat())
	}
	return nil
}

// FormatFinding renders a finding as "path:line:column: rule: message"
func FormatFinding(f Finding) string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", f.Path, f.Line, f.Column, f.RuleName, f.Message)
}

// position converts a byte offset into 1-based line and column numbers
func position(src []byte, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	before := string(src[:offset])
	line := strings.Count(before, "\n") + 1
	column := offset - (strings.LastIndex(before, "\n") + 1) + 1
	return line, column
}
