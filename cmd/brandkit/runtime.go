package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-brandkit/pkg/cache"
	"github.com/goliatone/go-brandkit/pkg/engine"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/profile"
	"github.com/goliatone/go-brandkit/pkg/store"
)

// runtime holds the infrastructure built from the config for one command.
type runtime struct {
	engine  *engine.Engine
	presets *profile.PresetSelector
	closers []func()
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func newRuntime(ctx context.Context, cfg Config, log *zap.Logger) (*runtime, error) {
	rt := &runtime{}

	options := []engine.Option{engine.WithLogger(log)}
	switch {
	case cfg.Cache.RedisAddr != "":
		var redisOpts []cache.RedisOption
		if cfg.Cache.TTL > 0 {
			redisOpts = append(redisOpts, cache.WithTTL(cfg.Cache.TTL))
		}
		c, client, err := cache.DialRedis(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, redisOpts...)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, func() { _ = client.Close() })
		options = append(options, engine.WithCache(c))
		log.Debug("using redis markup cache", zap.String("addr", cfg.Cache.RedisAddr))
	case cfg.Cache.MemoryEntries > 0:
		options = append(options, engine.WithCache(cache.NewMemory(cfg.Cache.MemoryEntries)))
	}
	rt.engine = engine.New(options...)

	presets, err := loadPresets(cfg.Presets)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.presets = presets
	return rt, nil
}

func loadPresets(path string) (*profile.PresetSelector, error) {
	if path == "" {
		return profile.DefaultPresets()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	manifests, err := profile.ParsePresets(data)
	if err != nil {
		return nil, err
	}
	return profile.NewPresetSelector(manifests...), nil
}

// openStore returns the configured profile store and a release func.
func openStore(ctx context.Context, cfg StoreConfig) (store.Store, func(), error) {
	if cfg.PostgresDSN != "" {
		pool, err := store.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgres(pool, store.WithTable(cfg.Table))
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pool.Close, nil
	}
	return store.NewFileStore(cfg.Dir, profile.Format(strings.ToLower(cfg.Format))), func() {}, nil
}

// loadProfile reads a profile from a file path or, failing that, from the
// store by id. Schema issues are logged and decoding continues.
func loadProfile(ctx context.Context, cfg Config, file, id string, log *zap.Logger) (profile.Profile, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("read profile: %w", err)
		}
		format, err := profile.FormatFromPath(file)
		if err != nil {
			return profile.Profile{}, err
		}
		p, issues, err := profile.Decode(data, format)
		if err != nil {
			return profile.Profile{}, err
		}
		for _, issue := range issues {
			log.Warn("profile schema issue", zap.String("file", file), zap.String("issue", issue.String()))
		}
		return p, nil
	case id != "":
		s, release, err := openStore(ctx, cfg.Store)
		if err != nil {
			return profile.Profile{}, err
		}
		defer release()
		return s.Get(ctx, id)
	default:
		return profile.Profile{}, nil
	}
}

// requestOverrides are the render flags that replace profile values.
type requestOverrides struct {
	Template  string
	Mode      string
	Name      string
	Primary   string
	Watermark *bool
	Date      string
}

// buildRequest layers config defaults, the profile and flag overrides.
// Later layers win when they carry a value.
func buildRequest(cfg Config, p profile.Profile, o requestOverrides) engine.Request {
	req := engine.Request{
		TemplateID: cfg.Template,
		Mode:       cfg.Mode,
		Custom:     cfg.Customization,
	}
	if p.TemplateID != "" {
		req.TemplateID = p.TemplateID
	}
	if p.Mode != "" {
		req.Mode = p.Mode
	}
	req.Brand = p.Brand
	req.Custom = mergeCustomization(req.Custom, p.Customization)

	if o.Template != "" {
		req.TemplateID = o.Template
	}
	if o.Mode != "" {
		req.Mode = o.Mode
	}
	if o.Name != "" {
		req.Brand.Name = o.Name
	}
	if o.Primary != "" {
		req.Brand.Colors.Primary = o.Primary
	}
	if o.Watermark != nil {
		req.Custom.IncludeWatermark = *o.Watermark
	}
	if o.Date != "" {
		req.Custom.DocumentDate = o.Date
	}
	return req
}

func mergeCustomization(base, over model.CustomizationConfig) model.CustomizationConfig {
	out := base
	if over.HeaderHeight != "" {
		out.HeaderHeight = over.HeaderHeight
	}
	if over.FooterStyle != "" {
		out.FooterStyle = over.FooterStyle
	}
	if over.LogoPosition != "" {
		out.LogoPosition = over.LogoPosition
	}
	if over.FontSize != "" {
		out.FontSize = over.FontSize
	}
	if over.Margins != "" {
		out.Margins = over.Margins
	}
	if over.LetterSpacing != "" {
		out.LetterSpacing = over.LetterSpacing
	}
	if over.IncludeWatermark {
		out.IncludeWatermark = true
	}
	if over.DocumentDate != "" {
		out.DocumentDate = over.DocumentDate
	}
	return out
}
