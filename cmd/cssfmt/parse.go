package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cssfmt/internal/diagfmt"
	"cssfmt/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file>",
		Short: "Parse a stylesheet and print its syntax tree or diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json); json prints diagnostics only")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0], e.maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	result.Bag.Sort()

	switch format {
	case "tree":
		e.printDiagnostics(cmd, result.Bag, result.FileSet)
		if err := diagfmt.FormatASTTree(cmd.OutOrStdout(), result.Stylesheet, result.FileSet); err != nil {
			return err
		}
	case "json":
		err := diagfmt.JSON(cmd.OutOrStdout(), result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         e.pathMode,
			IncludeNotes:     true,
		})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return errors.New("parse: syntax errors present")
	}
	return nil
}
