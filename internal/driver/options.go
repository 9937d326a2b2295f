package driver

import (
	"fmt"
	"path/filepath"

	"cssfmt/internal/config"
)

type resolved struct {
	opt  config.Options
	path string // применённый конфиг-файл
	err  error
}

// optionsResolver loads the config governing each file once per directory.
// Not safe for concurrent use: FormatPaths resolves everything up front.
type optionsResolver struct {
	explicit string
	override func(*config.Options)
	byDir    map[string]resolved
	fixed    *resolved
}

func newOptionsResolver(explicit string, override func(*config.Options)) *optionsResolver {
	return &optionsResolver{explicit: explicit, override: override, byDir: make(map[string]resolved)}
}

func (r *optionsResolver) resolve(file string) resolved {
	if r.explicit != "" {
		if r.fixed == nil {
			opt, err := config.Load(r.explicit)
			res := r.finish(opt, r.explicit, err)
			r.fixed = &res
		}
		return *r.fixed
	}

	dir := filepath.Dir(file)
	if res, ok := r.byDir[dir]; ok {
		return res
	}
	opt, path, err := config.Resolve(dir)
	res := r.finish(opt, path, err)
	r.byDir[dir] = res
	return res
}

func (r *optionsResolver) finish(opt config.Options, path string, err error) resolved {
	if err != nil {
		return resolved{path: path, err: fmt.Errorf("config: %w", err)}
	}
	if r.override != nil {
		r.override(&opt)
		if err := opt.Validate(); err != nil {
			return resolved{path: path, err: fmt.Errorf("config: %w", err)}
		}
	}
	return resolved{opt: opt, path: path}
}

// ResolveOptions returns the options that FormatPaths would apply to file.
func ResolveOptions(file, explicit string, override func(*config.Options)) (config.Options, string, error) {
	res := newOptionsResolver(explicit, override).resolve(file)
	return res.opt, res.path, res.err
}
