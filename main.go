package main

import (
	"os"

	"github.com/rs/zerolog"

	"admin-server/confs"
	"admin-server/db"
	"admin-server/server"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config")
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to DB")
	}

	// run server
	srv := server.NewServer(database, cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
