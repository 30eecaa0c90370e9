// Package startup loads environment files at process start.
//
// Values from the files are installed as envutil context overrides rather
// than written into the process environment, so nothing leaks between tests
// and the process environment stays the single source of truth for what the
// operator actually set.
package startup

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amp-labs/stepsort/envutil"
	"github.com/amp-labs/stepsort/logger"
	"github.com/amp-labs/stepsort/xform"
)

// EnvFileKey names the variable holding a semicolon-separated list of
// environment files (.env, .json or .yaml).
const EnvFileKey = "SORT_ENV_FILE"

type options struct {
	allowOverride bool
}

// Option configures environment loading.
type Option func(*options)

// WithAllowOverride lets values from files win over variables that are
// already set in the process environment. Off by default.
func WithAllowOverride(allowOverride bool) Option {
	return func(o *options) {
		o.allowOverride = allowOverride
	}
}

// ConfigureEnvironment loads the files listed in SORT_ENV_FILE and returns a
// context carrying their values. With SORT_ENV_FILE unset it returns ctx
// unchanged.
func ConfigureEnvironment(ctx context.Context, opts ...Option) (context.Context, error) {
	files, err := envutil.Map(
		envutil.String(ctx, EnvFileKey, envutil.Default(""), envutil.Transform(xform.TrimString)),
		splitFileList).Value()
	if err != nil {
		return ctx, err
	}

	return ConfigureEnvironmentFromFiles(ctx, files, opts...)
}

// ConfigureEnvironmentFromFiles is ConfigureEnvironment with an explicit file
// list. Later files win over earlier ones.
func ConfigureEnvironmentFromFiles(ctx context.Context, files []string, opts ...Option) (context.Context, error) {
	cfg := &options{}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if len(files) == 0 {
		return ctx, nil
	}

	merged := make(map[string]string)

	for _, file := range files {
		vars, err := envutil.LoadEnvFile(file)
		if err != nil {
			return ctx, fmt.Errorf("loading environment variables from file %q: %w", file, err)
		}

		for k, v := range vars {
			merged[k] = v
		}
	}

	for k := range merged {
		if _, exists := os.LookupEnv(k); exists && !cfg.allowOverride {
			delete(merged, k)
		}
	}

	logger.Get(ctx).Debug("loaded environment files", "files", files, "variables", len(merged))

	return envutil.WithEnvOverrides(ctx, merged), nil
}

// splitFileList splits on semicolons and drops blank entries.
func splitFileList(in string) ([]string, error) {
	var out []string

	for _, s := range strings.Split(in, ";") {
		if s = strings.TrimSpace(s); len(s) > 0 {
			out = append(out, s)
		}
	}

	return out, nil
}
