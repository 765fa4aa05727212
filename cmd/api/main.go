// @title           TaskFlex API
// @version         1.0
// @description     Task-management API: users, login, per-user tasks.
// @host            localhost:8080
// @BasePath        /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gustavokauee/TaskFlex/internal/app"
	"github.com/gustavokauee/TaskFlex/internal/config"

	"github.com/sirupsen/logrus"

	_ "github.com/gustavokauee/TaskFlex/docs"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	// `api init-db` creates the schema and exits. The server itself never
	// migrates; the schema must be initialized explicitly.
	if len(os.Args) > 1 && os.Args[1] == "init-db" {
		if err := app.InitSchema(cfg.PG.DSN, "./migrations"); err != nil {
			logger.Fatalf("init-db: %v", err)
		}
		logger.Info("database initialized")
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		logger.Fatalf("app init: %v", err)
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		logger.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("shutdown: %v", err)
	}

	if err := application.Close(ctx); err != nil {
		logger.Fatalf("close: %v", err)
	}
}
