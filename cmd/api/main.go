package main

import (
	"fmt"

	"github.com/enaszrekat/reuse-market-app/internal/app"
	"github.com/enaszrekat/reuse-market-app/pkg/config"
	"github.com/enaszrekat/reuse-market-app/pkg/database"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"
	"github.com/enaszrekat/reuse-market-app/pkg/queue"
)

// @title        Reuse Market API
// @version      1.0
// @description  Marketplace backend: product listings, user lookup, messaging and admin dashboard.
// @BasePath     /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var queueClient *queue.Client
	if cfg.RabbitMQEnabled {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			// Notifications are best effort; the API still serves without them
			log.Warn("Failed to connect to RabbitMQ, notifications disabled: %v", err)
			queueClient = nil
		}
	}

	app.Run(cfg, log, db, queueClient)
}
