package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"txnconsumer/internal/cli"
	"txnconsumer/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := logger.InitLogger("txnconsumer.log"); err != nil {
		log.Printf("File logging disabled: %v", err)
	}
	defer logger.Close()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
