package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/groupedimports"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/linter"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/rule"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/version"
)

const (
	UseDescription   = "tll [flags] PATH"
	ShortDescription = "TypeScript layout lint - checks how imports are grouped and ordered"
	LongDescription  = `tll is a command-line tool that checks the layout of TypeScript and JavaScript imports.

It reports:
1. Imports of the same module root (e.g. @angular/core, rxjs) that are not kept together
2. Imports of the same module scope (e.g. @angular) that are not kept together
3. Third party imports placed on the wrong side of first party imports (when configured)

Rules are configured with a layoutlint.yaml, layoutlint.yml, tslint.yaml or tslint.json
file, looked up from the directory of each checked file upwards. Without a config file
every rule runs with its default options.

PATH can be either a single source file or a directory. When a directory is specified,
all source files in the directory and subdirectories will be checked recursively,
skipping node_modules, dist and hidden directories.`
)

var (
	configPath  string
	format      string
	jobs        int
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to use for all files instead of searching for one")
	rootCmd.Flags().StringVar(&format, "format", linter.FormatText, "Output format: text or json")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Number of files checked concurrently")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(docsCmd)
}

// Registry returns the rules known to the command line tool
func Registry() *rule.Registry {
	registry := rule.NewRegistry()
	registry.Register(groupedimports.New())
	return registry
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need path arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), versionInfo().String())
		return nil
	}

	l, err := linter.New(linter.LinterConfig{
		ConfigPath: configPath,
		Format:     format,
		Jobs:       jobs,
		Out:        cmd.OutOrStdout(),
	}, Registry())
	if err != nil {
		return err
	}
	return l.ProcessPath(cmd.Context(), args[0])
}

func versionInfo() version.Info {
	info := version.Get()
	if versionStr != "" && versionStr != "(devel)" {
		info.Version = versionStr
	}
	return info
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
