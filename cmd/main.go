package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Devdiop221/deenquest/internal/client"
	"github.com/Devdiop221/deenquest/internal/config"
	"github.com/Devdiop221/deenquest/internal/network"
	"github.com/Devdiop221/deenquest/internal/service"
	"github.com/Devdiop221/deenquest/internal/storage/queue"
	"github.com/Devdiop221/deenquest/internal/storage/store"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	st, err := store.Open(cfg.Store)
	if err != nil {
		logger.Fatal("failed init store", zap.Error(err))
	}
	defer st.Close()

	q := queue.New(st)

	clients := client.InitClients(cfg.Remote)

	prober := network.NewHTTPProber(cfg.Sync.ProbeURL, cfg.Sync.ProbeTimeout)
	monitor := network.NewMonitor(prober, cfg.Sync.PollInterval, logger)

	services := service.InitServices(clients, st, q, monitor, cfg.Sync, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor.Start(ctx)

	status := services.Status()
	logger.Info("ready", zap.Bool("online", status.IsOnline))

	<-ctx.Done()
	logger.Info("shutting down")
}
