package main

import (
	"context"
	"log"

	"github.com/cppla/quoramock/config"
	"github.com/cppla/quoramock/routes"
	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Initialize logger early
	if err := utils.InitLogger(cfg.Log); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	gw, err := store.Open(cfg.Database)
	if err != nil {
		utils.Sugar.Fatalf("open database: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := gw.Migrate(); err != nil {
			utils.Sugar.Fatalf("bootstrap schema: %v", err)
		}
	}

	r := routes.SetupRouter(cfg, gw)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.App.Port)
	err = utils.GraceServer(cfg.App, r, func(context.Context) error {
		utils.Sugar.Info("closing database pool")
		return gw.Close()
	})
	if err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
