package main

import (
	"context"
	"log"

	"github.com/Victor-armando18/cafe-pricing/internal/config"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure"
	"github.com/Victor-armando18/cafe-pricing/internal/interfaces/httpapi"
	"github.com/Victor-armando18/cafe-pricing/pkg/pricing"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := infrastructure.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	engine, err := pricing.New(context.Background(),
		pricing.WithRulesVersion(cfg.RulesVersion),
		pricing.WithRulesDir(cfg.RulesDir),
		pricing.WithRulesFile(cfg.RulesFile),
		pricing.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("failed to load pricing rules", zap.String("version", cfg.RulesVersion), zap.Error(err))
	}

	e := httpapi.NewRouter(engine)
	logger.Info("pricing server listening", zap.String("addr", cfg.HTTPAddr), zap.String("rules", engine.RulesVersion()))
	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
