package engine

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-brandkit/pkg/cache"
	"github.com/goliatone/go-brandkit/pkg/catalog"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/render"
	"github.com/goliatone/go-brandkit/pkg/render/template"
	"github.com/goliatone/go-brandkit/pkg/render/template/gotemplate"
)

//go:embed shell/*.tpl
var shellFiles embed.FS

// ShellTemplate is the template name rendered around production output.
const ShellTemplate = "page"

// FieldTemplateID is the correction field reported for unknown templates.
const FieldTemplateID = "templateId"

// Request describes one render. Mode is the raw requested mode so that
// invalid values can be reported rather than rejected.
type Request struct {
	TemplateID string                    `json:"templateId"`
	Brand      model.BrandIdentity       `json:"brand"`
	Custom     model.CustomizationConfig `json:"customization"`
	Mode       string                    `json:"mode"`
}

// Result is the output of a render.
type Result struct {
	Markup              string             `json:"markup"`
	UsedTemplateID      string             `json:"usedTemplateId"`
	RequestedTemplateID string             `json:"requestedTemplateId"`
	TemplateFallback    bool               `json:"templateFallback"`
	Mode                model.RenderMode   `json:"mode"`
	Corrections         []model.Correction `json:"corrections,omitempty"`
}

// Engine renders brand documents. It holds no per-request state and is safe
// for concurrent use.
type Engine struct {
	registry       *render.Registry
	logger         *zap.Logger
	cache          cache.Cache
	shell          template.TemplateRenderer
	shellName      string
	shellSpecified bool
	group          singleflight.Group
}

// New constructs an Engine applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Engine {
	e := &Engine{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Engine) applyDefaults() {
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.registry == nil {
		e.registry = catalog.Default()
	}
	if !e.registry.Has(e.registry.DefaultID()) {
		e.logger.Warn("registry has no default template, using built-in catalog",
			zap.String("default", e.registry.DefaultID()),
		)
		e.registry = catalog.Default()
	}
	if e.shell == nil && !e.shellSpecified {
		shell, err := defaultShell()
		if err != nil {
			e.logger.Warn("production shell unavailable, production renders will be fragments", zap.Error(err))
		} else {
			e.shell = shell
			e.shellName = DefaultShellName
		}
	}
	switch {
	case e.shell == nil:
		e.shellName = ""
	case e.shellName == "":
		e.shellName = fmt.Sprintf("%T", e.shell)
	}
}

// DefaultShellName identifies the embedded page shell in cache keys.
const DefaultShellName = "brandkit/page"

func defaultShell() (template.TemplateRenderer, error) {
	files, err := fs.Sub(shellFiles, "shell")
	if err != nil {
		return nil, err
	}
	return gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithGlobalData(map[string]any{
			"lang":       "en",
			"background": "#ffffff",
		}),
	)
}

// Registry exposes the registry used for lookups.
func (e *Engine) Registry() *render.Registry {
	return e.registry
}

// RenderDocument renders req. It always returns usable markup.
func (e *Engine) RenderDocument(ctx context.Context, req Request) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	mode, modeCorrection := model.ParseRenderMode(req.Mode)
	brand, corrections := req.Brand.Normalize()
	custom, customCorrections := req.Custom.Normalize()
	corrections = append(corrections, customCorrections...)
	if modeCorrection != nil {
		corrections = append(corrections, *modeCorrection)
	}

	requested := strings.TrimSpace(req.TemplateID)
	descriptor, found := e.registry.Resolve(requested)
	if descriptor.Render == nil {
		descriptor, found = catalog.Default().Resolve(requested)
	}
	if !found {
		if requested != "" {
			corrections = append(corrections, model.Correction{
				Field:    FieldTemplateID,
				Value:    req.TemplateID,
				Fallback: descriptor.ID,
				Reason:   model.ReasonUnknownTemplate,
			})
		}
		e.logger.Info("template fallback",
			zap.String("requested", requested),
			zap.String("used", descriptor.ID),
		)
	}
	for _, correction := range corrections {
		e.logger.Info("input corrected",
			zap.String("field", correction.Field),
			zap.String("value", correction.Value),
			zap.String("fallback", correction.Fallback),
			zap.String("reason", correction.Reason),
		)
	}

	return Result{
		Markup:              e.markup(ctx, descriptor, brand, custom, mode),
		UsedTemplateID:      descriptor.ID,
		RequestedTemplateID: req.TemplateID,
		TemplateFallback:    !found,
		Mode:                mode,
		Corrections:         corrections,
	}
}

func (e *Engine) markup(ctx context.Context, descriptor render.Descriptor, brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) string {
	// Only production output passes through the shell.
	shell := ""
	if mode == model.ModeProduction {
		shell = e.shellName
	}
	key, err := cache.Key(descriptor.ID, brand, custom, mode, shell)
	if err != nil {
		e.logger.Warn("cache key unavailable", zap.Error(err))
		return e.render(descriptor, brand, custom, mode)
	}

	if e.cache != nil {
		value, ok, err := e.cache.Get(ctx, key)
		switch {
		case err != nil:
			e.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		case ok:
			return string(value)
		}
	}

	out, _, _ := e.group.Do(key, func() (any, error) {
		rendered := e.render(descriptor, brand, custom, mode)
		if e.cache != nil {
			if err := e.cache.Set(ctx, key, []byte(rendered)); err != nil {
				e.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
		return rendered, nil
	})
	return out.(string)
}

func (e *Engine) render(descriptor render.Descriptor, brand model.BrandIdentity, custom model.CustomizationConfig, mode model.RenderMode) string {
	root := descriptor.Render(brand, custom, mode)

	if mode == model.ModeEmail {
		if issues := markup.CheckEmailSafe(root); len(issues) > 0 {
			e.logger.Warn("markup is not email safe",
				zap.String("template", descriptor.ID),
				zap.Strings("issues", issueStrings(issues)),
			)
		}
	}

	fragment := root.String()
	if mode != model.ModeProduction || e.shell == nil {
		return fragment
	}

	doc, err := e.shell.RenderTemplate(ShellTemplate, map[string]any{
		"title":       brand.Name + " - " + descriptor.DisplayName,
		"template_id": descriptor.ID,
		"body":        fragment,
	})
	if err != nil {
		e.logger.Warn("production shell failed, returning fragment",
			zap.String("template", descriptor.ID),
			zap.Error(err),
		)
		return fragment
	}
	return doc
}

func issueStrings(issues []markup.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.String())
	}
	return out
}
