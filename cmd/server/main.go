package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/SimilarityRate/pkg/api"
	"github.com/TFMV/SimilarityRate/pkg/config"
	"github.com/TFMV/SimilarityRate/pkg/db"
	"github.com/TFMV/SimilarityRate/pkg/utils"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		utils.NewLogger("server").FatalErr(err, "server stopped")
	}
}

// run serves the API until the listener fails. Every failure is returned so
// deferred cleanup runs before main exits.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	utils.SetEnvironment(cfg.Environment)
	log := utils.NewLogger("server")
	log.Info("config loaded", "path", configPath, "method", cfg.Matcher.Method)

	// Without a database the API still serves requests that carry candidates.
	var store api.ReferenceStore
	if cfg.DBCreds.Configured() {
		pool, err := db.NewConnection(ctx, cfg.DBCreds)
		if err != nil {
			return fmt.Errorf("failed to create database connection pool: %w", err)
		}
		defer pool.Close()

		s := db.NewStore(pool, cfg.DBCreds.ReferenceTable)
		if err := s.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare schema: %w", err)
		}
		store = s
		log.Info("database connection pool created", "table", cfg.DBCreds.ReferenceTable)
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, cfg, store)

	log.Info("starting server", "port", cfg.Server.Port)
	return router.Run(":" + cfg.Server.Port)
}
