package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cssfmt/internal/doc"
	"cssfmt/internal/driver"
	"cssfmt/internal/format"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc [flags] <file>",
		Short: "Print the layout document built for a stylesheet",
		Long:  `Doc shows the document tree (groups, nests and line breaks) that fmt would render, which helps debugging line-break decisions`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDoc,
	}
	cmd.Flags().String("config", "", "config file to use instead of discovery")
	cmd.Flags().Bool("render", false, "also print the rendered output")
	return cmd
}

func runDoc(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	render, err := cmd.Flags().GetBool("render")
	if err != nil {
		return err
	}

	opt, _, err := driver.ResolveOptions(args[0], configPath, nil)
	if err != nil {
		return err
	}
	res, err := driver.Parse(args[0], e.maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if res.Bag.HasErrors() {
		e.printDiagnostics(cmd, res.Bag, res.FileSet)
		return errors.New("doc: parse errors present")
	}

	d, err := format.Stylesheet(res.Stylesheet, res.File, opt)
	if err != nil {
		var ferr *format.Error
		if errors.As(err, &ferr) {
			res.Bag.Add(ferr.Diagnostic())
			e.printDiagnostics(cmd, res.Bag, res.FileSet)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, doc.Debug(d))
	if render {
		fmt.Fprintln(out, "---")
		fmt.Fprint(out, doc.Render(d, format.PrintOptions(opt)))
	}
	return nil
}
