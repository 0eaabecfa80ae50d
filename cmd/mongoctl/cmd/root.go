package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mongobject/mongobject"
	"github.com/mongobject/mongobject/internal/config"
	"github.com/mongobject/mongobject/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "mongoctl",
	Short: "MongoDB facade toolbox",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func buildFacade(ctx context.Context) (*mongobject.Facade, error) {
	cfg := config.Config()
	f, err := mongobject.New(ctx, mongobject.Config{
		URI:        cfg.MongoDBConfig.Uri,
		Host:       cfg.MongoDBConfig.Host,
		Port:       cfg.MongoDBConfig.Port,
		Database:   cfg.MongoDBConfig.DBName,
		Collection: cfg.MongoDBConfig.Collection,
	})
	if err != nil {
		return nil, fmt.Errorf("can not build facade: %w", err)
	}
	return f, nil
}

func setupLogger() {
	cfg := config.Config()
	log.Setup(cfg.LogLevel)
}
