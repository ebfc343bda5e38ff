package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ridwanfathin/shelf-price-monitor/docs"
	"github.com/ridwanfathin/shelf-price-monitor/internal/config"
	"github.com/ridwanfathin/shelf-price-monitor/internal/imageutil"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
	"github.com/ridwanfathin/shelf-price-monitor/internal/metrics"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
	"github.com/ridwanfathin/shelf-price-monitor/internal/server"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// @title Shelf Price Monitor Console API
// @version 1.0
// @description Operator console for shelf-tag price extraction: store browsing, photo batches, review and listings.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(logger.Options{
		ServiceName: "shelf-console",
		Level:       logger.ParseLevel(cfg.Server.LogLevel),
		Format:      cfg.Server.LogFormat,
		Output:      os.Stdout,
	})
	ctx := context.Background()
	if cfg.EnvFile != "" {
		appLog.Info(ctx, "loaded environment from "+cfg.EnvFile)
	}
	for _, w := range cfg.Warnings {
		appLog.Warn(ctx, w)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)

	client := priceapi.NewClient(&priceapi.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: "shelf-console/1.0",
	})

	var resize *imageutil.ResizeConfig
	if cfg.Upload.MaxDimension > 0 {
		resize = imageutil.DefaultConfig()
		resize.MaxDimension = cfg.Upload.MaxDimension
	}

	m := metrics.New()
	sess := session.New(client, session.Config{
		Limits: upload.Limits{
			MaxFiles:     cfg.Upload.MaxFiles,
			MaxFileBytes: cfg.Upload.MaxFileBytes,
		},
		ReviewPageSize:   cfg.Views.ReviewPageSize,
		ProductsPageSize: cfg.Views.ProductsPageSize,
		Resize:           resize,
	}, session.Options{Logger: appLog, Metrics: m})

	if _, err := sess.LoadStores(ctx); err != nil {
		appLog.Warn(ctx, "initial store list load failed: "+err.Error())
	}

	appServer := server.NewServer(cfg, server.Deps{
		Session: sess,
		Backend: client,
		Logger:  appLog,
		Metrics: m,
	})

	appLog.Info(ctx, fmt.Sprintf("price backend at %s", client.BaseURL()))
	if err := appServer.Start(); err != nil {
		appLog.Error(ctx, "server error", err)
		os.Exit(1)
	}
}
