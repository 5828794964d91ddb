package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xw1nchester/storefront-backend/internal/app"
	"github.com/xw1nchester/storefront-backend/internal/config"
	"github.com/xw1nchester/storefront-backend/internal/logging"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

//	@title						Storefront API
//	@version					1.0
//	@BasePath					/api
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg := config.MustLoad()

	log := logging.NewLogger(cfg.Env)
	defer log.Sync()

	log.Info("starting application", zap.String("env", cfg.Env))

	application := app.NewApp(log, *cfg)

	go application.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sign := <-stop

	log.Info("stopping application", zap.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown gracefully", zap.Error(err))
	}

	log.Info("application stopped")
}
