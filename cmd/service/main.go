package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/posturelab/posturecheck/internal"
	"github.com/posturelab/posturecheck/internal/config"
	"github.com/posturelab/posturecheck/internal/logging"

	log "github.com/sirupsen/logrus"
)

// set at build time via -ldflags
var version = "dev"

func main() {
	env := flag.String("env", "development", "environment to run in: development or production")
	configPath := flag.String("config", "./config.toml", "path to the config file")
	logToStdout := flag.Bool("o", false, "additionally log to stdout")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Printf("failed to load config: %s\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.LogFileName, cfg.LogLevel, cfg.LogToStdout || *logToStdout); err != nil {
		fmt.Printf("failed to set up logging: %s\n", err)
		os.Exit(1)
	}

	if cfg.SentryDSN != "" {
		sentryHook, err := logging.NewSentryHook(cfg.SentryDSN, cfg.SentryEnv)
		if err != nil {
			log.Errorf("failed to set up sentry hook: %s", err)
		} else {
			log.AddHook(sentryHook)
			defer sentryHook.Flush(2 * time.Second)
		}
	}

	adminUsername := os.Getenv("PSTR_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("PSTR_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Fatalf("admin credentials not set, aborting")
	}
	redisPassword := os.Getenv("PSTR_REDIS_PASSWORD")

	log.Infof("starting posturecheck %s [env: %s]", version, *env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:            cfg,
		AdminUsername:     adminUsername,
		AdminPasswordHash: adminPasswordHash,
		RedisPassword:     redisPassword,
		VersionInfo:       version,
	})
	if err != nil {
		log.Fatalf("failed to create server: %s", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		log.Warnf("received signal %s, shutting down ...", sig)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.GracefulShutdown(shutdownCtx); err != nil {
			log.Errorf("graceful shutdown: %s", err)
		}
	}()

	server.Serve(ctx)
}
