// Package pricing is the public entry point to the café pricing engine.
package pricing

import (
	"context"

	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure"
	"github.com/Victor-armando18/cafe-pricing/internal/interfaces"
	"github.com/Victor-armando18/cafe-pricing/internal/usecase"
	"go.uber.org/zap"
)

const DefaultRulesVersion = "v1"

type Engine = interfaces.PricingFacade

type options struct {
	version   string
	rulesDir  string
	rulesFile string
	logger    *zap.Logger
}

type Option func(*options)

func WithRulesVersion(v string) Option {
	return func(o *options) { o.version = v }
}

// WithRulesDir reads guard packs from dir instead of the embedded ones.
func WithRulesDir(dir string) Option {
	return func(o *options) { o.rulesDir = dir }
}

// WithRulesFile reads the guard pack from a single YAML file. It takes
// precedence over WithRulesDir.
func WithRulesFile(path string) Option {
	return func(o *options) { o.rulesFile = path }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func New(ctx context.Context, opts ...Option) (Engine, error) {
	o := options{version: DefaultRulesVersion}
	for _, opt := range opts {
		opt(&o)
	}

	loader := infrastructure.NewEmbeddedRuleLoader()
	switch {
	case o.rulesFile != "":
		loader = infrastructure.NewSingleFileRuleLoader(o.rulesFile)
	case o.rulesDir != "":
		loader = infrastructure.NewFileRuleLoader(o.rulesDir)
	}
	return usecase.NewPricingService(ctx, loader, infrastructure.NewJsonLogicEvaluator(), o.version, o.logger)
}
