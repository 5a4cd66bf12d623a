package main

import (
	"context"
	"log/slog"

	"github.com/siddharthpandey07/UserManage/internal/client/cli"
	"github.com/siddharthpandey07/UserManage/internal/client/config"
	"github.com/siddharthpandey07/UserManage/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewDefault(slog.LevelWarn)

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
