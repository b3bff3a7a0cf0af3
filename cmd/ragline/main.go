package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ragline/ragline/internal/adapters/driving/cli"
)

func main() {
	// .env is optional; real environment variables win when both set.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
