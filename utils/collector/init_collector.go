// Command init_collector creates one collector account from the environment.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/config"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/db"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/logger"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/sirupsen/logrus"
)

// collectorEnv describes the account to create.
type collectorEnv struct {
	Email    string `env:"COLLECTOR_EMAIL,required"`
	Name     string `env:"COLLECTOR_NAME" envDefault:"Collector"`
	Password string `env:"COLLECTOR_PASSWORD,required"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	var account collectorEnv
	if err := config.ParseEnv(&account); err != nil {
		logrus.Fatalf("collector account: %v", err)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}

	service := services.NewCollectorService(database, middleware.NewSessionManager(cfg.JWTSecret, cfg.TokenTTL))
	collector, err := service.Register(context.Background(), dtos.RegisterRequest{
		Name:     account.Name,
		Email:    account.Email,
		Password: account.Password,
	})
	if err != nil {
		logrus.Fatalf("failed to create collector '%s': %v", account.Email, err)
	}
	logrus.WithField("collector_id", collector.CollectorID).Infof("collector '%s' created", collector.Email)
}
