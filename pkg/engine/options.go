package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-brandkit/pkg/cache"
	"github.com/goliatone/go-brandkit/pkg/render"
	"github.com/goliatone/go-brandkit/pkg/render/template"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithRegistry injects a template registry. Defaults to catalog.Default().
// A registry without its default template is replaced by catalog.Default().
func WithRegistry(registry *render.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithLogger sets the logger used for fallbacks, corrections and cache
// failures. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCache enables memoisation of rendered markup.
func WithCache(c cache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithShell replaces the production document shell. The renderer must
// provide a template named "page". name identifies the shell in cache keys,
// so engines sharing a cache only share production documents built by the
// same shell.
func WithShell(name string, shell template.TemplateRenderer) Option {
	return func(e *Engine) {
		e.shell = shell
		e.shellName = strings.TrimSpace(name)
		e.shellSpecified = true
	}
}
