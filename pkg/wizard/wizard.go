// Package wizard collects a render request interactively. It walks the user
// through brand basics, template choice and every customization axis, using
// the values of a seed request as defaults.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-brandkit/pkg/catalog"
	"github.com/goliatone/go-brandkit/pkg/engine"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/render"
	"github.com/goliatone/go-brandkit/pkg/style"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("wizard: aborted")
	// ErrInvalidChoice is returned when a driver answers outside the options.
	ErrInvalidChoice = errors.New("wizard: invalid choice")
)

// Option customises a Wizard.
type Option func(*Wizard)

// WithDriver injects the prompt driver. Defaults to the survey driver.
func WithDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		w.driver = driver
	}
}

// WithRegistry selects the templates offered. Defaults to catalog.Default().
func WithRegistry(registry *render.Registry) Option {
	return func(w *Wizard) {
		w.registry = registry
	}
}

// Wizard runs the interactive flow.
type Wizard struct {
	driver   PromptDriver
	registry *render.Registry
}

// New constructs a Wizard applying any provided options.
func New(options ...Option) *Wizard {
	w := &Wizard{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver()
	}
	if w.registry == nil {
		w.registry = catalog.Default()
	}
	return w
}

// Run prompts for every field and returns the completed request. Seed values
// are normalised first and offered as defaults.
func (w *Wizard) Run(ctx context.Context, seed engine.Request) (engine.Request, error) {
	if ctx == nil {
		return engine.Request{}, errors.New("wizard: context is required")
	}

	brand, _ := seed.Brand.Normalize()
	custom, _ := seed.Custom.Normalize()
	mode, _ := model.ParseRenderMode(seed.Mode)
	out := engine.Request{Brand: brand, Custom: custom}

	if err := w.driver.Info(ctx, "Brand kit: answer each prompt or press enter to keep the default."); err != nil {
		return engine.Request{}, err
	}

	var err error
	if out.Brand.Name, err = w.input(ctx, "Brand name", brand.Name, nil); err != nil {
		return engine.Request{}, err
	}
	if out.Brand.Colors.Primary, err = w.input(ctx, "Primary colour", brand.Colors.Primary, validateColor); err != nil {
		return engine.Request{}, err
	}
	if out.TemplateID, err = w.template(ctx, seed.TemplateID); err != nil {
		return engine.Request{}, err
	}

	modeChoice, err := choose(ctx, w.driver, "Render mode", model.RenderModes(), mode)
	if err != nil {
		return engine.Request{}, err
	}
	out.Mode = string(modeChoice)

	if out.Custom.HeaderHeight, err = choose(ctx, w.driver, "Header height", model.HeaderHeights(), custom.HeaderHeight); err != nil {
		return engine.Request{}, err
	}
	if out.Custom.FooterStyle, err = choose(ctx, w.driver, "Footer style", model.FooterStyles(), custom.FooterStyle); err != nil {
		return engine.Request{}, err
	}
	if out.Custom.LogoPosition, err = choose(ctx, w.driver, "Logo position", model.LogoPositions(), custom.LogoPosition); err != nil {
		return engine.Request{}, err
	}
	if out.Custom.FontSize, err = choose(ctx, w.driver, "Font size", model.FontSizes(), custom.FontSize); err != nil {
		return engine.Request{}, err
	}
	if out.Custom.Margins, err = choose(ctx, w.driver, "Margins", model.MarginOptions(), custom.Margins); err != nil {
		return engine.Request{}, err
	}
	if out.Custom.LetterSpacing, err = choose(ctx, w.driver, "Letter spacing", model.LetterSpacings(), custom.LetterSpacing); err != nil {
		return engine.Request{}, err
	}

	if out.Custom.IncludeWatermark, err = w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Include watermark?",
		Default: custom.IncludeWatermark,
	}); err != nil {
		return engine.Request{}, err
	}
	if out.Custom.DocumentDate, err = w.input(ctx, "Document date (blank for none)", custom.DocumentDate, nil); err != nil {
		return engine.Request{}, err
	}

	return out, nil
}

func (w *Wizard) input(ctx context.Context, message, def string, validator func(string) error) (string, error) {
	value, err := w.driver.Input(ctx, InputConfig{Message: message, Default: def, Validator: validator})
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	return value, nil
}

func (w *Wizard) template(ctx context.Context, current string) (string, error) {
	var (
		options []string
		ids     []string
	)
	for _, group := range w.registry.List() {
		for _, descriptor := range group.Templates {
			options = append(options, fmt.Sprintf("%s: %s", group.Label, descriptor.DisplayName))
			ids = append(ids, descriptor.ID)
		}
	}

	def := w.registry.Lookup(current).ID
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Template",
		Options:      options,
		DefaultIndex: indexOf(ids, def),
		PageSize:     len(options),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(ids) {
		return "", fmt.Errorf("template: %w", ErrInvalidChoice)
	}
	return ids[idx], nil
}

func choose[T ~string](ctx context.Context, driver PromptDriver, message string, values []T, current T) (T, error) {
	options := make([]string, len(values))
	def := 0
	for i, value := range values {
		options[i] = string(value)
		if value == current {
			def = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: def})
	if err != nil {
		return current, err
	}
	if idx < 0 || idx >= len(values) {
		return current, fmt.Errorf("%s: %w", strings.ToLower(message), ErrInvalidChoice)
	}
	return values[idx], nil
}

func validateColor(value string) error {
	value = strings.TrimSpace(value)
	if value == "" || style.ValidColor(value) {
		return nil
	}
	return fmt.Errorf("%q is not a CSS colour", value)
}
