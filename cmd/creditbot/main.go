package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sskmsk/creditbot/internal/api"
	"github.com/sskmsk/creditbot/internal/bot"
	"github.com/sskmsk/creditbot/internal/config"
	"github.com/sskmsk/creditbot/internal/credit"
	"github.com/sskmsk/creditbot/internal/db"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load the signal rule table (startup only, never mutated after)
	rules, err := credit.LoadRules(cfg.SignalRulesFile)
	if err != nil {
		log.Fatalf("Failed to load signal rules: %v", err)
	}
	log.Printf("Loaded %d signal rules", rules.Len())

	// Connect to database (retries until reachable)
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ledger := credit.NewService(database)
	guard := credit.NewGuard(cfg.ExcludedSenderIDs)

	// Initialize Discord bot
	discordBot, err := bot.New(cfg.DiscordToken, ledger, rules, guard)
	if err != nil {
		log.Fatalf("Failed to create discord bot: %v", err)
	}

	// Initialize API server
	apiServer := api.New(cfg, database)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start discord bot: %v", err)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
