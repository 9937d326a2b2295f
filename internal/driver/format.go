package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	"fortio.org/safecast"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cssfmt/internal/ast"
	"cssfmt/internal/config"
	"cssfmt/internal/diag"
	"cssfmt/internal/format"
	"cssfmt/internal/lexer"
	"cssfmt/internal/observ"
	"cssfmt/internal/parser"
	"cssfmt/internal/source"
	"cssfmt/internal/version"
)

var (
	// ErrNoSourceFiles is returned when the given paths hold no stylesheets.
	ErrNoSourceFiles = errors.New("format: no source files found")
	// ErrParse marks files that were left untouched because of syntax errors.
	ErrParse = errors.New("parse errors present")
	// ErrUnstable marks files whose output does not survive a reparse.
	ErrUnstable = errors.New("formatting is not stable")
)

// Extensions lists the file extensions picked up when walking directories.
var Extensions = []string{".css", ".scss", ".less"}

// FormatOptions configures a formatting run.
type FormatOptions struct {
	Check          bool
	Stdout         bool
	Verify         bool // перепарсить результат и проверить идемпотентность
	MaxDiagnostics int
	Jobs           int                   // 0 = GOMAXPROCS
	ConfigPath     string                // явный конфиг, поиск вверх по дереву не выполняется
	Override       func(*config.Options) // флаги CLI поверх файла
	Cache          *DiskCache            // nil отключает кэш
	Logger         *zap.Logger
	Timer          *observ.Timer
	Progress       ProgressSink
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool   // файл уже был известен как отформатированный
	Config    string // путь к применённому конфигу, пусто для значений по умолчанию
	Err       error
	Formatted []byte // только при Stdout
	FileSet   *source.FileSet
	Bag       *diag.Bag
}

// FormatPaths formats provided files or directories (recursively collecting
// stylesheets). When opts.Check is true, files are not modified; Changed
// indicates whether formatting would update the file contents. When
// opts.Stdout is true, formatted content is returned in the results without
// touching files on disk. A failing file never stops the others; see
// JoinErrors.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := observ.OrNop(opts.Logger).Named("driver")

	discover := opts.Timer.Begin("discover")
	files, err := collectSourceFiles(ctx, paths, log)
	opts.Timer.End(discover, len(files))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	resolver := newOptionsResolver(opts.ConfigPath, opts.Override)
	configs := make([]resolved, len(files))
	for i, path := range files {
		configs[i] = resolver.resolve(path)
		emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	phase := opts.Timer.Begin("format")
	defer func() { opts.Timer.End(phase, len(files)) }()

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})
			if cfg := configs[i]; cfg.err != nil {
				results[i] = FormatResult{Path: path, Err: cfg.err}
			} else {
				results[i] = formatOne(path, cfg, opts, log)
			}
			done := Event{File: path, Stage: StageFormat, Status: StatusDone, Changed: results[i].Changed, Elapsed: time.Since(start)}
			if results[i].Err != nil {
				done.Status, done.Err = StatusError, results[i].Err
			}
			emit(opts.Progress, done)
			log.Debug("file done",
				zap.String("path", path),
				zap.Bool("changed", results[i].Changed),
				zap.Bool("cached", results[i].Cached),
				zap.Duration("took", time.Since(start)),
				zap.Error(results[i].Err),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, cfg resolved, opts FormatOptions, log *zap.Logger) FormatResult {
	res := FormatResult{Path: path, Config: cfg.path, FileSet: source.NewFileSet()}

	// #nosec G304 -- path comes from the command line or a directory walk
	raw, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		return res
	}

	dialect := lexer.DialectFor(path)
	key := cacheKey(raw, cfg.opt, dialect)
	var hit DiskPayload
	if ok, cerr := opts.Cache.Get(key, &hit); cerr != nil {
		log.Debug("cache read failed", zap.String("path", path), zap.Error(cerr))
	} else if ok {
		res.Cached = true
		if opts.Stdout {
			res.Formatted = raw
		}
		return res
	}

	formatted, bag, err := FormatBytes(res.FileSet, path, raw, cfg.opt, opts.MaxDiagnostics)
	res.Bag = bag
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	res.Changed = !bytes.Equal(raw, formatted)

	sf := latest(res.FileSet, path)
	if opts.Verify && sf != nil {
		if ok, msg := format.CheckRoundTrip(sf, cfg.opt, int(bag.Cap())); !ok {
			bag.Add(diag.NewError(diag.FmtRoundTripMismatch, source.Span{File: sf.ID}, msg))
			res.Err = fmt.Errorf("%s: %w", path, ErrUnstable)
			return res
		}
	}

	switch {
	case opts.Check:
	case opts.Stdout:
		res.Formatted = formatted
	case res.Changed:
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			if sf != nil {
				bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: sf.ID}, err.Error()))
			}
			res.Err = fmt.Errorf("write %s: %w", path, err)
			return res
		}
		key = cacheKey(formatted, cfg.opt, dialect)
	}

	if !res.Changed || (!opts.Check && !opts.Stdout) {
		payload := &DiskPayload{Path: path, Size: len(formatted), Options: cfg.opt.Fingerprint(), Version: version.Version, CheckedAt: time.Now().UTC()}
		if err := opts.Cache.Put(key, payload); err != nil {
			log.Debug("cache write failed", zap.String("path", path), zap.Error(err))
		}
	}
	return res
}

// FormatBytes parses and formats raw stylesheet bytes. The content is added
// to fileSet (BOM stripped, CRLF folded) so diagnostics can be rendered
// against it. Syntax errors yield ErrParse; formatter failures are returned
// as *format.Error and also recorded in the bag.
func FormatBytes(fileSet *source.FileSet, path string, raw []byte, opt config.Options, maxDiagnostics int) ([]byte, *diag.Bag, error) {
	sf := fileSet.Get(fileSet.AddNormalized(path, raw))
	sheet, bag := parse(sf, maxDiagnostics)
	if bag.HasErrors() {
		return nil, bag, ErrParse
	}

	out, err := format.FormatFile(sf, sheet, opt)
	if err != nil {
		var ferr *format.Error
		if errors.As(err, &ferr) {
			bag.Add(ferr.Diagnostic())
		}
		return nil, bag, err
	}
	return out, bag, nil
}

func latest(fileSet *source.FileSet, path string) *source.File {
	id, ok := fileSet.GetLatest(path)
	if !ok {
		return nil
	}
	return fileSet.Get(id)
}

func parse(sf *source.File, maxDiagnostics int) (*ast.Stylesheet, *diag.Bag) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	bag := diag.NewBag(maxDiagnostics)
	maxErrors, convErr := safecast.Conv[uint](bag.Cap())
	if convErr != nil {
		maxErrors = 0
	}
	res := parser.ParseFile(sf, parser.Options{Reporter: &diag.BagReporter{Bag: bag}, MaxErrors: maxErrors})
	return res.Stylesheet, bag
}

func collectSourceFiles(ctx context.Context, paths []string, log *zap.Logger) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if isStylesheet(p) {
				addFile(p)
			} else {
				log.Debug("skipping file with unknown extension", zap.String("path", p))
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				// скрытые каталоги и node_modules не форматируем
				if path != p && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
					return filepath.SkipDir
				}
				return nil
			}
			if isStylesheet(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func isStylesheet(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}
