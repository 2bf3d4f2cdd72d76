package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Erick01081/BSTArep/Trees"
	"github.com/Erick01081/BSTArep/Trees/pyramid"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [values...]",
	Short: "Insert values, optionally remove some, and describe the tree",
	Example: `  bstree show 50 30 70 20 40 60 80
  bstree show --remove 30 50 30 70 20 40 60 80
  bstree show --strings banana apple cherry
  bstree show --max-height 12 $(seq 1 12)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asStrings, err := cmd.Flags().GetBool("strings")
		if err != nil {
			return err
		}
		removes, err := cmd.Flags().GetStringSlice("remove")
		if err != nil {
			return err
		}
		mode, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		maxHeight, err := cmd.Flags().GetInt("max-height")
		if err != nil {
			return err
		}
		paint, err := valueColor(mode, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if asStrings {
			return show(cmd.OutOrStdout(), args, removes, paint, maxHeight, func(s string) (string, error) { return s, nil })
		}
		return show(cmd.OutOrStdout(), args, removes, paint, maxHeight, strconv.Atoi)
	},
}

func init() {
	showCmd.Flags().Bool("strings", false, "order values as strings instead of integers")
	showCmd.Flags().StringSlice("remove", nil, "values to remove after inserting")
	showCmd.Flags().String("color", "auto", "colour values in the drawing: auto, always or never")
	showCmd.Flags().Int("max-height", pyramid.DefaultMaxHeight, "don't draw trees taller than this")
}

// valueColor returns the function colouring values in the pyramid.
func valueColor(mode string, w io.Writer) (func(string, ...any) string, error) {
	c := color.New(color.FgCyan, color.Bold)
	switch mode {
	case "always":
		c.EnableColor()
	case "never":
		c.DisableColor()
	case "auto":
		if f, ok := w.(*os.File); !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			c.DisableColor()
		}
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
	return c.SprintfFunc(), nil
}

func show[T cmp.Ordered](w io.Writer, args, removes []string, paint func(string, ...any) string, maxHeight int, parse func(string) (T, error)) error {
	tree := Trees.New[T]()
	for _, a := range args {
		v, err := parse(a)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", a, err)
		}
		if tree.Insert(v) {
			theLog.Debug("inserted", "value", v, "height", tree.Height())
		} else {
			theLog.Debug("duplicate ignored", "value", v)
		}
	}
	for _, a := range removes {
		v, err := parse(a)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", a, err)
		}
		if tree.Remove(v) {
			theLog.Debug("removed", "value", v, "height", tree.Height())
		} else {
			theLog.Warn("not in tree", "value", v)
		}
	}
	return describe(w, tree, paint, maxHeight)
}

func describe[T cmp.Ordered](w io.Writer, tree *Trees.BSTree[T], paint func(string, ...any) string, maxHeight int) error {
	minV, _ := tree.Minimum()
	maxV, _ := tree.Maximum()
	_, err := fmt.Fprintf(w, "in-order:    %v\npre-order:   %v\npost-order:  %v\nlevel-order: %v\n"+
		"size: %d  height: %d  min: %v  max: %v  balanced: %t\n\n",
		tree.InOrder(nil), tree.PreOrder(nil), tree.PostOrder(nil), tree.LevelOrder(nil),
		tree.Size(), tree.Height(), minV, maxV, tree.Balanced())
	if err != nil {
		return err
	}
	return pyramid.Fprint(w, tree.Root(), pyramid.WithColor[T](paint), pyramid.WithMaxHeight[T](maxHeight))
}
