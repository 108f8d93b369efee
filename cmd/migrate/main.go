package main

import (
	"os"

	"summit/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}
