package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
