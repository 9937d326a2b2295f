package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"cssfmt/internal/config"
	"cssfmt/internal/driver"
	"cssfmt/internal/observ"
)

var (
	errFormatFailed   = errors.New("fmt: failed to format some files")
	errChangesPending = errors.New("fmt: formatting changes required")
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format stylesheets in place",
		Long:  `Format rewrites .css, .scss and .less files; directories are walked recursively`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFmt,
	}
	f := cmd.Flags()
	f.Bool("check", false, "check if files are properly formatted")
	f.Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	f.Bool("verify", false, "reparse the output and fail when formatting is not stable")
	f.String("format", "text", "output format (text|json)")
	f.String("config", "", "config file to use instead of .cssfmt.toml/.cssfmt.yaml discovery")
	f.Int("print-width", 0, "preferred maximum line width")
	f.Int("indent-width", 0, "spaces per indentation level")
	f.Bool("use-tabs", false, "indent with tabs")
	f.String("line-break", "", "line terminator (lf|crlf)")
	f.String("block-selector-linebreak", "", "line breaks in selector lists (always|consistent|wrap)")
	f.Int("jobs", 0, "max parallel workers (0=auto)")
	f.Bool("no-cache", false, "do not read or write the formatting cache")
	f.String("ui", "auto", "progress UI mode (auto|on|off)")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()
	flags := cmd.Flags()

	check, err := flags.GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := flags.GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := flags.GetString("format")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return errors.New("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return errors.New("fmt: --stdout is only supported with text output")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	override, err := overridesFromFlags(flags)
	if err != nil {
		return err
	}
	configPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return err
	}
	verify, err := flags.GetBool("verify")
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if noCache, _ := flags.GetBool("no-cache"); !noCache {
		if cache, err = driver.OpenDiskCache("cssfmt"); err != nil {
			e.log.Warn("cache disabled", zap.Error(err))
			cache = nil
		}
	}

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	opts := driver.FormatOptions{
		Check:          check,
		Stdout:         writeToStdout,
		Verify:         verify,
		MaxDiagnostics: e.maxDiag,
		Jobs:           jobs,
		ConfigPath:     configPath,
		Override:       override,
		Cache:          cache,
		Logger:         e.log,
		Timer:          timer,
	}
	var results []driver.FormatResult
	if shouldUseTUI(mode, writeToStdout, outputFormat) {
		title := "formatting"
		if check {
			title = "checking"
		}
		results, err = formatWithUI(cmd.Context(), cmd.OutOrStdout(), title, args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}
	timer.Log(e.log)
	if e.timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	for _, res := range results {
		if res.Bag != nil {
			e.printDiagnostics(cmd, res.Bag, res.FileSet)
		}
	}

	var hasChanges bool
	switch {
	case outputFormat == "json":
		if err := renderFmtJSON(cmd.OutOrStdout(), results, check); err != nil {
			return err
		}
		hasChanges = driver.Summarize(results).Changed > 0
	case writeToStdout:
		renderFmtStdout(cmd.OutOrStdout(), results)
	default:
		hasChanges = renderFmtText(cmd.OutOrStdout(), results, check, e.quiet)
	}

	if joined := driver.JoinErrors(results); joined != nil {
		e.log.Debug("formatting failed", zap.Error(joined))
		return fmt.Errorf("%w:\n%w", errFormatFailed, joined)
	}
	if check && hasChanges {
		return errChangesPending
	}
	return nil
}

// overridesFromFlags переносит явно заданные флаги поверх конфиг-файла.
func overridesFromFlags(flags *pflag.FlagSet) (func(*config.Options), error) {
	var setters []func(*config.Options)

	if flags.Changed("print-width") {
		v, err := flags.GetInt("print-width")
		if err != nil {
			return nil, err
		}
		setters = append(setters, func(o *config.Options) { o.PrintWidth = v })
	}
	if flags.Changed("indent-width") {
		v, err := flags.GetInt("indent-width")
		if err != nil {
			return nil, err
		}
		setters = append(setters, func(o *config.Options) { o.IndentWidth = v })
	}
	if flags.Changed("use-tabs") {
		v, err := flags.GetBool("use-tabs")
		if err != nil {
			return nil, err
		}
		setters = append(setters, func(o *config.Options) { o.UseTabs = v })
	}
	if flags.Changed("line-break") {
		s, err := flags.GetString("line-break")
		if err != nil {
			return nil, err
		}
		var lb config.LineBreak
		if err := lb.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("--line-break: %w", err)
		}
		setters = append(setters, func(o *config.Options) { o.LineBreak = lb })
	}
	if flags.Changed("block-selector-linebreak") {
		s, err := flags.GetString("block-selector-linebreak")
		if err != nil {
			return nil, err
		}
		p, err := config.ParseLineBreakPolicy(s)
		if err != nil {
			return nil, fmt.Errorf("--block-selector-linebreak: %w", err)
		}
		setters = append(setters, func(o *config.Options) { o.BlockSelectorLineBreak = p })
	}

	if len(setters) == 0 {
		return nil, nil
	}
	return func(o *config.Options) {
		for _, set := range setters {
			set(o)
		}
	}, nil
}

func renderFmtStdout(w io.Writer, results []driver.FormatResult) {
	for _, res := range results {
		if res.Err == nil {
			_, _ = w.Write(res.Formatted)
		}
	}
}

// renderFmtText reports whether some file needs (or got) changes.
func renderFmtText(w io.Writer, results []driver.FormatResult, check, quiet bool) bool {
	var hasChanges bool
	for _, res := range results {
		if res.Err != nil || !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(w, res.Path)
		} else {
			fmt.Fprintf(w, "reformatted %s\n", res.Path)
		}
	}
	return hasChanges
}

func renderFmtJSON(w io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Cached   bool   `json:"cached,omitempty"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
