package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chunponglai/tricks-planner/config"
	"github.com/chunponglai/tricks-planner/routes"
	"github.com/chunponglai/tricks-planner/utils"
)

func main() {
	cfg := config.Load()

	log := utils.NewLogger(cfg.LogLevel)
	defer log.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	r := routes.SetupRouter(cfg, db, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("app", cfg.AppName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
