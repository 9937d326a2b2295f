package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"cssfmt/internal/diag"
	"cssfmt/internal/diagfmt"
	"cssfmt/internal/observ"
	"cssfmt/internal/prof"
	"cssfmt/internal/source"
	"cssfmt/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cssfmt",
		Short:         "Formatter for CSS, SCSS and Less stylesheets",
		Long:          `cssfmt rewrites stylesheets into a canonical layout: at-rule preludes, selector lists, blocks and declarations`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFmtCmd())
	root.AddCommand(newDocCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	root.PersistentFlags().String("min-severity", "info", "lowest severity to print (info|warning|error)")
	root.PersistentFlags().String("log-level", "none", "log level (none|debug|info|warn|error)")
	root.PersistentFlags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	root.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")
	return root
}

// main builds the command tree and executes it. Any error exits with status 1.
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cssfmt: %v\n", err)
		os.Exit(1)
	}
}

// env собирает значения глобальных флагов, общие для всех команд.
type env struct {
	log      *zap.Logger
	color    bool
	quiet    bool
	timings  bool
	maxDiag  int
	minSev   diag.Severity
	pathMode diagfmt.PathMode
	prof     *prof.Session
}

func newEnv(cmd *cobra.Command) (*env, error) {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, err
	}
	var useColor bool
	switch colorFlag {
	case "on":
		useColor = true
	case "off":
	case "auto":
		useColor = isTerminal(os.Stderr)
	default:
		return nil, fmt.Errorf("unsupported --color value %q (must be auto, on or off)", colorFlag)
	}
	color.NoColor = !useColor

	e := &env{color: useColor}
	if e.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if e.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}
	if e.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, err
	}

	sev, err := flags.GetString("min-severity")
	if err != nil {
		return nil, err
	}
	if e.minSev, err = diag.ParseSeverity(sev); err != nil {
		return nil, fmt.Errorf("unsupported --min-severity value: %w", err)
	}

	mode, err := flags.GetString("path-mode")
	if err != nil {
		return nil, err
	}
	var ok bool
	if e.pathMode, ok = diagfmt.ParsePathMode(mode); !ok {
		return nil, fmt.Errorf("unsupported --path-mode value %q", mode)
	}

	level, err := flags.GetString("log-level")
	if err != nil {
		return nil, err
	}
	if e.log, err = observ.NewLogger(level); err != nil {
		return nil, err
	}

	var po prof.Options
	if po.CPUProfile, err = flags.GetString("cpu-profile"); err != nil {
		return nil, err
	}
	if po.MemProfile, err = flags.GetString("mem-profile"); err != nil {
		return nil, err
	}
	if po.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if e.prof, err = prof.Start(po); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *env) close() {
	if err := e.prof.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "cssfmt: profiling: %v\n", err)
	}
	_ = e.log.Sync()
}

// printDiagnostics пишет в stderr команды диагностики не ниже --min-severity.
func (e *env) printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil {
		return
	}
	if bag = bag.Filter(e.minSev); bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     e.color,
		Context:   1,
		PathMode:  e.pathMode,
		ShowNotes: true,
	})
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
