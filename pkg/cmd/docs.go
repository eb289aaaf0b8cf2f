package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/ts-layout-lint/pkg/docs"
	"github.com/siyuan-infoblox/ts-layout-lint/pkg/errors"
)

var docsOut string

var docsCmd = &cobra.Command{
	Use:          "docs",
	Short:        "Generate Markdown documentation for all rules",
	Args:         cobra.NoArgs,
	RunE:         runDocs,
	SilenceUsage: true,
}

func init() {
	docsCmd.Flags().StringVar(&docsOut, "out", filepath.Join(docs.DefaultDirectory, docs.DefaultFileName), "File the documentation is written to")
}

func runDocs(cmd *cobra.Command, _ []string) error {
	content, err := docs.Render(Registry().Metadata()...)
	if err != nil {
		return err
	}

	path, err := docs.WriteFile(filepath.Dir(docsOut), filepath.Base(docsOut), content)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), errors.InfoMsgDocsWritten+"\n", path)
	return nil
}
