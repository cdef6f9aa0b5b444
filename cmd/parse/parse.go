// Package parse implements the parse command.
package parse

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IqbalNugrahaa/HappiestStore/cmd/common"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/root"
	"github.com/IqbalNugrahaa/HappiestStore/internal/container"
	"github.com/IqbalNugrahaa/HappiestStore/internal/export"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a transaction CSV into validated rows",
	Long: `Parse a transaction CSV exported from a spreadsheet and print the rows that
passed validation together with one message per rejected row.

Example:
  happiest-ingest parse -i transactions.csv
  happiest-ingest parse -i transactions.csv -f csv -o rows.csv`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	c := root.GetContainer()
	if c == nil {
		logger.Fatal("Container not initialized")
	}

	if err := Run(c, root.SharedFlags.Input, root.SharedFlags.Output, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error parsing file: %v", err)
	}
}

// Run parses input and writes the result to output, or to stdout.
func Run(c *container.Container, input, output string, stdin io.Reader, stdout io.Writer) error {
	opts, err := common.ExportOptions(c.GetConfig())
	if err != nil {
		return err
	}
	result, err := common.ParseFile(c, input, stdin)
	if err != nil {
		return err
	}

	logger := c.GetLogger()
	common.ReportRowErrors(logger, input, result.Errors)

	if err := common.WriteOutput(output, stdout, func(w io.Writer) error {
		return export.WriteIngestResult(w, result, opts)
	}); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if output != "" {
		logger.Info("Rows written",
			logging.F(logging.FieldOutputFile, output),
			logging.F(logging.FieldCount, len(result.Rows)))
	}
	return nil
}
