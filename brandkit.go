// Package brandkit renders brand collateral (letterheads and email
// signatures) from a brand identity and a per-document customization. It
// re-exports the engine facade for callers that want a single import.
package brandkit

import (
	"context"
	"sync"

	"github.com/goliatone/go-brandkit/pkg/catalog"
	"github.com/goliatone/go-brandkit/pkg/engine"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/render"
)

// BrandIdentity aliases model.BrandIdentity.
type BrandIdentity = model.BrandIdentity

// CustomizationConfig aliases model.CustomizationConfig.
type CustomizationConfig = model.CustomizationConfig

// RenderMode aliases model.RenderMode.
type RenderMode = model.RenderMode

// Correction aliases model.Correction.
type Correction = model.Correction

// Result aliases engine.Result.
type Result = engine.Result

// Request aliases engine.Request.
type Request = engine.Request

var (
	defaultOnce   sync.Once
	defaultEngine *engine.Engine
)

func sharedEngine() *engine.Engine {
	defaultOnce.Do(func() {
		defaultEngine = engine.New()
	})
	return defaultEngine
}

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...engine.Option) *engine.Engine {
	return engine.New(options...)
}

// RenderDocument renders templateID for brand and custom in the named mode
// using the built-in catalog. It never fails: unknown templates and values
// fall back to defaults and are reported in the result.
func RenderDocument(templateID string, brand BrandIdentity, custom CustomizationConfig, mode string) Result {
	return sharedEngine().RenderDocument(context.Background(), engine.Request{
		TemplateID: templateID,
		Brand:      brand,
		Custom:     custom,
		Mode:       mode,
	})
}

// Templates lists the built-in templates grouped by category.
func Templates() []render.Group {
	return catalog.Default().List()
}
