// Package main seeds the Postgres-backed bank directory from a CSV file.
// Run it once before starting the server with DIRECTORY_SOURCE=postgres.
package main

import (
	"context"
	"flag"

	"veriban/internal/config"
	"veriban/internal/repositories"
	"veriban/internal/services/bank"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	csvPath := flag.String("csv", config.GetEnv("DIRECTORY_CSV", "data/bank_directory.csv"),
		"path to the bank directory CSV")
	flag.Parse()

	if err := repositories.InitDB(); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					logrus.WithError(err).Warn("failed to close database connection")
				}
			}
		}
	}()

	ctx := context.Background()
	loader := &bank.CSVLoader{Path: *csvPath}
	records, err := loader.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load directory file")
	}

	store := repositories.NewBankDirectoryStore(repositories.DB)
	if err := store.ReplaceAll(ctx, records); err != nil {
		logrus.WithError(err).Fatal("failed to write directory records")
	}

	logrus.WithFields(logrus.Fields{
		"file":    *csvPath,
		"records": len(records),
	}).Info("bank directory seeded")
}
