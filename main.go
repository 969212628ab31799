package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/anborhan/blog-backend/api"
	"github.com/anborhan/blog-backend/config"
	"github.com/anborhan/blog-backend/database"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	c := config.New()
	mongoURI := config.GetString(c, "MONGO_URI", "mongodb://localhost:27017")
	mongoDB := config.GetString(c, "MONGO_DB", "blog")

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(connectCtx, mongoURI, mongoDB)
	cancel()
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}
	log.Info().Str("database", mongoDB).Msg("Connected to database")

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db.BlogPostRepo())
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Close(disconnectCtx); err != nil {
		log.Error().Err(err).Msg("Error disconnecting from database")
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
