package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "github.com/pistalo01/japanese-car-vin-decoder/internal/http"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/http/router"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/pricing"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/search"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Layer
	// ========================================================================

	knowledgeModule, err := knowledge.NewModule(log)
	if err != nil {
		log.Error("failed to load knowledge base", "error", err)
		panic("failed to load knowledge base: " + err.Error())
	}

	vindecodeModule := vindecode.NewModule(cfg, knowledgeModule.Service(), log)
	pricingModule := pricing.NewModule(cfg, log)
	searchModule := search.NewModule(
		knowledgeModule.Service(),
		vindecodeModule.Service(),
		pricingModule.Service(),
		val,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: knowledgeModule,
		Modules: []apphttp.Module{
			searchModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
