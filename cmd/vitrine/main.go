package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/camionrouge/vitrine/config"
	"github.com/camionrouge/vitrine/internal/app"
	"github.com/camionrouge/vitrine/internal/webserver"
)

func main() {
	configFile := flag.String("c", "vitrine.yml", "config file path")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	server := webserver.NewServer(application)

	go func() {
		if err := server.Start(); err != nil {
			zap.L().Fatal("web server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Echo().Shutdown(ctx); err != nil {
		zap.L().Warn("shutdown error", zap.Error(err))
	}
	zap.L().Info("server stopped")
}
