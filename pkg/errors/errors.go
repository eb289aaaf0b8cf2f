package errors

// Error message constants for the ts-layout-lint application
const (
	// File processing errors
	ErrMsgFailedToReadFile      = "failed to read file"
	ErrMsgFailedToParseFile     = "failed to parse file"
	ErrMsgUnsupportedLanguage   = "unsupported source file"
	ErrMsgFailedToLoadConfig    = "failed to load config"
	ErrMsgFailedToParseConfig   = "failed to parse config"
	ErrMsgInvalidRuleConfig     = "invalid configuration for rule"
	ErrMsgFailedToWriteFindings = "failed to write findings"
	ErrMsgUnknownOutputFormat   = "unknown output format"

	// Directory processing errors
	ErrMsgFailedToCheckPath        = "failed to check path"
	ErrMsgFailedToFindSourceFiles  = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess     = "%d files failed to process"
	ErrMsgFindingsReported         = "%d findings reported"
	ErrMsgFailedToCreateDocsDir    = "failed to create documentation directory"
	ErrMsgFailedToWriteDocs        = "failed to write documentation"
	ErrMsgFailedToCreateLruCache   = "failed to create config cache"
	ErrMsgFailedToResolveConfigDir = "failed to resolve config directory"

	// Info/warning messages
	InfoMsgNoSourceFilesFound = "No source files found in directory: %s"
	InfoMsgFoundSourceFiles   = "Found %d source files in directory: %s"
	InfoMsgUsingConfig        = "Using config: %s"
	InfoMsgErrorProcessing    = "Error processing %s: %v"
	InfoMsgCheckedCount       = "\nChecked %d files"
	InfoMsgFindingCount       = ", %d findings"
	InfoMsgErrorCount         = ", %d files had errors"
	InfoMsgDocsWritten        = "Documentation has been successfully written to %s"
)
