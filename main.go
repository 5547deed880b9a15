package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/status-im/minerstat-proxy/api"
	"github.com/status-im/minerstat-proxy/config"
	"github.com/status-im/minerstat-proxy/logger"
	"github.com/status-im/minerstat-proxy/metrics"
	"github.com/status-im/minerstat-proxy/minerstat_coins"
	mc "github.com/status-im/minerstat-proxy/minerstat_common"
)

const serviceName = "minerstat-proxy"

var confFile = flag.String("config", "config.yaml", "Config file path")

func main() {
	flag.Parse()

	// Load configuration, falling back to the public endpoint defaults
	cfg, err := config.LoadConfig(*confFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal("Error loading config:", err)
		}
		cfg = config.Default()
		if port := os.Getenv("PORT"); port != "" {
			cfg.Port = port
		}
	}

	appLog := logger.New(serviceName, cfg.LogLevel, cfg.LogFormat)
	appLog.WithField("config", *confFile).Info("Starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	metricsWriter := metrics.NewMetricsWriter(serviceName)

	transportOpts := mc.DefaultTransportOptions()
	transportOpts.ConnectTimeout = cfg.Minerstat.ConnectTimeout
	transportOpts.ReadTimeout = cfg.Minerstat.ReadTimeout

	httpClient := mc.NewHTTPClient(transportOpts, metricsWriter, appLog)
	coinsRepo := minerstat_coins.NewRepository(httpClient, &cfg.Minerstat, metricsWriter, appLog)

	server := api.New(cfg.Port, coinsRepo, appLog)
	if err := server.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Server failed")
	}
	defer server.Stop()

	<-sigChan
	appLog.Info("Received shutdown signal, stopping services...")
}
