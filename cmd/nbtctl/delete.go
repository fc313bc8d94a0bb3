package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/cmd/nbtctl/logger"
	"github.com/joshuapare/nbtkit/pkg/nbt"
)

var (
	deleteForce  bool
	deleteBackup bool
	deleteLevel  int
	deleteTarget string
)

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Don't prompt for confirmation")
	cmd.Flags().BoolVar(&deleteBackup, "backup", true, "Create <file>.bak before rewriting")
	cmd.Flags().IntVar(&deleteLevel, "level", 9, "Compression level for the rewritten file (-2..9)")
	cmd.Flags().StringVar(&deleteTarget, "target", "", "Slash path of the list to edit (default from config: //Inventory)")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> [index]",
		Short: "Cut one list element out of a file",
		Long: `The delete command removes one element of the target list by cutting its
bytes out of the decompressed file and writing the file back in the same
container format.

Without an index the ranking is shown and the index is read from the
terminal. The list's stored element count is NOT updated: the producer is
expected to repair it on load.

Example:
  nbtctl delete playerdata/069a79f4.dat
  nbtctl delete playerdata/069a79f4.dat 3 --force
  nbtctl delete playerdata/069a79f4.dat 3 --backup=false --level 6`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args)
		},
	}
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if deleteTarget != "" {
		opts.Target = nbt.ParsePath(deleteTarget)
	}
	if cmd == nil || cmd.Flags().Changed("backup") {
		opts.CreateBackup = deleteBackup
	}
	if cmd == nil || cmd.Flags().Changed("level") {
		opts.Level = deleteLevel
	}

	printVerbose("Opening file: %s\n", path)
	doc, err := nbt.Load(path, opts)
	if err != nil {
		return err
	}
	report, err := doc.Report(opts.Target)
	if err != nil {
		return err
	}

	in := bufio.NewReader(stdin)
	var idx int
	if len(args) == 2 {
		idx, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
	} else {
		if deleteForce || !interactive() {
			return errors.New("no index given and stdin is not a terminal; pass the index as an argument")
		}
		printInfo("Total inventory size is %s bytes\n", bytesCount(report.ListSize))
		for _, e := range report.Entries {
			printInfo("%s\n", entryLine(e))
		}
		idx, err = promptIndex(in)
		if err != nil {
			return err
		}
	}

	entry, err := report.Find(idx)
	if err != nil {
		return err
	}

	if !deleteForce && !quiet {
		printInfo("\nDeleting slot %d (%s bytes) from %s\n", entry.Index, bytesCount(entry.Size), path)
		if entry.ID != "" {
			printInfo("  Item: %s\n", entry.ID)
		}
		printInfo("\n⚠ The list count is not updated.\n")
		printInfo("Proceed? [y/N]: ")
		response, _ := in.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			printInfo("Aborted.\n")
			return nil
		}
	}

	res, err := nbt.DeleteFromReport(path, doc, report, idx, opts)
	if err != nil {
		return fmt.Errorf("failed to delete slot %d: %w", idx, err)
	}
	logger.Info("deleted", "file", path, "index", idx, "size", entry.Size,
		"start", entry.Start, "end", entry.End, "backup", res.BackupPath, "written", res.BytesWritten)
	printVerbose("Removed %s\n", res.Patch)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s Deleted slot %d (%s bytes)\n", color.GreenString("✓"), idx, bytesCount(entry.Size))
	printInfo("New inventory size is %s bytes\n", bytesCount(res.ListSizeAfter))
	if res.BackupPath != "" {
		printInfo("Backup created: %s\n", res.BackupPath)
		printVerbose("Backup BLAKE3: %s\n", res.BackupDigest)
	}
	return nil
}

// promptIndex asks for a list index until a number is entered.
func promptIndex(in *bufio.Reader) (int, error) {
	for {
		printInfo("Which slot would you like to delete? ")
		line, err := in.ReadString('\n')
		idx, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return idx, nil
		}
		if err != nil {
			return 0, fmt.Errorf("no slot entered: %w", err)
		}
		printInfo("%q is not a slot number.\n", strings.TrimSpace(line))
	}
}
