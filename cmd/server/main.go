package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/robherley/game-of-life/internal/server"
	"github.com/robherley/game-of-life/internal/store"
	"github.com/robherley/game-of-life/internal/version"
	"github.com/robherley/game-of-life/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var dbPath string
	flag.StringVar(&dbPath, "db", "", "Path to the sqlite database (overrides DB_PATH)")
	flag.Parse()

	logger.Log.Info("Starting Game of Life...")
	logger.Log.Info(version.String())

	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		logger.Log.Warn("DB_PATH not set, using in-memory database")
		dbPath = ":memory:"
	}
	logger.Log.Infof("database: %s", dbPath)

	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		logger.Log.Fatal("Failed to open store:", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		logger.Log.Fatal("Failed to migrate store:", err)
	}

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(st, host+":"+port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	if err := st.Close(); err != nil {
		logger.Log.WithError(err).Warn("failed to close store")
	}

	logger.Log.Info("Done.")
}
