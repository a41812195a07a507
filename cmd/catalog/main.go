package main

import (
	"log"
	"os"

	"bookcatalog/internal/authclient"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/cli"
	"bookcatalog/internal/config"
	"bookcatalog/internal/inventoryclient"
	"bookcatalog/internal/kvstore"
	"bookcatalog/internal/session"
	"bookcatalog/internal/util"
)

func main() {
	cfg, err := config.Load(os.Getenv("CATALOG_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	util.InitLogger(cfg.LogLevel)

	kv, err := kvstore.NewFileStore(cfg.StatePath)
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}

	sessions := session.New(authclient.NewClient(cfg.AuthServiceURL), kv)
	cache := catalog.New(inventoryclient.NewClient(cfg.InventoryServiceURL), sessions)

	os.Exit(cli.Execute(&cli.App{
		Config:   cfg,
		Sessions: sessions,
		Routes:   session.DefaultRoutes(),
		Cache:    cache,
	}))
}
