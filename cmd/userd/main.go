package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/siddharthpandey07/UserManage/internal/logging"
	"github.com/siddharthpandey07/UserManage/internal/server"
)

func main() {
	cfg := server.Config{
		Addr:   envOr("USERD_ADDR", ":8080"),
		DBPath: envOr("USERD_DB", "userd.db"),
	}
	flag.BoolVar(&cfg.Seed, "seed", false, "load fixture users into an empty database")
	flag.Parse()

	log := logging.NewDefault(slog.LevelInfo)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		log.Error(context.Background(), "server failed", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
