package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pagepurl",
		Short:        "Identify the package a registry web page describes",
		Long:         `Maps package registry page URLs (and optionally their HTML) to Package URLs.`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", os.Getenv("PAGEPURL_CONFIG"), "Path to config file")
	flags.String("output", "", "Output format: text | json")
	flags.String("log-level", "", "Log level: debug | info | warn | error")
	flags.String("log-format", "", "Log format: text | json")
	flags.String("user-agent", os.Getenv("PAGEPURL_USER_AGENT"), "User-Agent for page fetches")
	flags.Duration("timeout", 0, "Per-request timeout for page fetches")
	flags.Int("max-retries", 0, "Retries for rate-limited or failing page fetches")

	rootCmd.AddCommand(newIdentifyCmd(), newRegistriesCmd(), newPURLCmd())
	return rootCmd
}
