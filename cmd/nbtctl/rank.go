package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/cmd/nbtctl/logger"
	"github.com/joshuapare/nbtkit/pkg/nbt"
)

var rankTarget string

func init() {
	cmd := newRankCmd()
	cmd.Flags().StringVar(&rankTarget, "target", "", "Slash path of the list to rank (default from config: //Inventory)")
	rootCmd.AddCommand(cmd)
}

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <file>",
		Short: "Rank list elements by encoded size",
		Long: `The rank command prints the total size of the target list followed by its
elements, largest first. Elements of equal size keep their list order.

Example:
  nbtctl rank playerdata/069a79f4.dat
  nbtctl rank level.dat --target /Data/Player/Inventory
  nbtctl rank playerdata/069a79f4.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(args)
		},
	}
	return cmd
}

func runRank(args []string) error {
	path := args[0]

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if rankTarget != "" {
		opts.Target = nbt.ParsePath(rankTarget)
	}

	printVerbose("Opening file: %s\n", path)
	report, err := nbt.Inspect(path, opts)
	if err != nil {
		return err
	}
	logger.Info("ranked", "file", path, "target", report.Target,
		"format", report.Format, "entries", len(report.Entries), "list_size", report.ListSize)

	if jsonOut {
		return printJSON(report)
	}

	printVerbose("Container: %s\n", report.Format)
	printInfo("Total inventory size is %s bytes\n", bytesCount(report.ListSize))
	for _, e := range report.Entries {
		printInfo("%s\n", entryLine(e))
	}
	return nil
}

// entryLine renders one ranked element. Verbose mode adds the item id and the
// element's byte span.
func entryLine(e nbt.Entry) string {
	line := fmt.Sprintf("Slot %d: %s bytes", e.Index, color.YellowString(bytesCount(e.Size)))
	if !verbose {
		return line
	}
	if e.ID != "" {
		line += "  " + color.CyanString(e.ID)
	}
	return line + fmt.Sprintf("  [%d,%d)", e.Start, e.End)
}
