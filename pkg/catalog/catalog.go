// Package catalog wires the built-in templates into a sealed registry.
package catalog

import (
	"sync"

	"github.com/goliatone/go-brandkit/pkg/render"
	"github.com/goliatone/go-brandkit/pkg/renderers/letterhead"
	"github.com/goliatone/go-brandkit/pkg/renderers/signature"
)

// DefaultTemplateID is the template used when a lookup misses.
const DefaultTemplateID = letterhead.ModernHeaderID

var (
	defaultOnce     sync.Once
	defaultRegistry *render.Registry
)

// Default returns the shared, sealed registry holding every built-in
// template. It is built on first use and safe for concurrent reads.
func Default() *render.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
		if err := defaultRegistry.Seal(); err != nil {
			panic(err)
		}
	})
	return defaultRegistry
}

// New returns an unsealed registry pre-populated with the built-in templates,
// for callers that register additional variants before sealing.
func New() *render.Registry {
	reg := render.NewRegistry(DefaultTemplateID)
	reg.MustRegister(letterhead.Descriptors()...)
	reg.MustRegister(signature.Descriptors()...)
	return reg
}
