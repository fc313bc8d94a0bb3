package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nbtkit/pkg/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

var (
	dumpPath  string
	dumpDepth int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpPath, "path", "", "Dump only the subtree at this slash path")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of the tree with byte spans",
		Long: `The dump command prints every node of the file as an indented tree with its
kind, name, value and payload span.

Example:
  nbtctl dump playerdata/069a79f4.dat
  nbtctl dump playerdata/069a79f4.dat --path //Inventory --depth 2
  nbtctl dump playerdata/069a79f4.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// dumpNode is the JSON form of one node.
type dumpNode struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value,omitempty"`
}

func runDump(args []string) error {
	file := args[0]

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	printVerbose("Opening file: %s\n", file)
	doc, err := nbt.Load(file, opts)
	if err != nil {
		return err
	}
	prefix := nbt.ParsePath(dumpPath)
	start, err := doc.Lookup(prefix)
	if err != nil {
		return err
	}

	var nodes []dumpNode
	err = nbt.Walk(start, func(path []string, n *types.Node) error {
		full := append(append([]string{}, prefix...), path...)
		if jsonOut {
			nodes = append(nodes, dumpNode{
				Path:  nbt.FormatPath(full),
				Kind:  n.Kind.String(),
				Start: n.Start,
				End:   n.End,
				Value: summary(n),
			})
		} else {
			printInfo("%s%s %s %s%s\n",
				strings.Repeat("  ", len(path)),
				color.CyanString(n.Kind.String()),
				nodeName(full),
				color.HiBlackString("[%d,%d)", n.Start, n.End),
				valueSuffix(n))
		}
		if dumpDepth > 0 && len(path) >= dumpDepth {
			return nbt.SkipChildren
		}
		return nil
	})
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(nodes)
	}
	return nil
}

func nodeName(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return fmt.Sprintf("%q", path[len(path)-1])
}

func valueSuffix(n *types.Node) string {
	s := summary(n)
	if s == "" {
		return ""
	}
	return " = " + s
}

// summary renders scalar values in full and composites by size.
func summary(n *types.Node) string {
	switch v := n.Value.(type) {
	case types.Byte, types.Short, types.Int, types.Long, types.Float, types.Double:
		return fmt.Sprint(v)
	case types.String:
		return fmt.Sprintf("%q", string(v))
	case types.ByteArray:
		return fmt.Sprintf("%d bytes", len(v))
	case types.IntArray:
		return fmt.Sprintf("%d ints", len(v))
	case types.LongArray:
		return fmt.Sprintf("%d longs", len(v))
	case types.List:
		return fmt.Sprintf("%d × %s", len(v.Items), v.Elem)
	case types.Compound:
		return fmt.Sprintf("%d fields", len(v))
	default:
		return ""
	}
}
