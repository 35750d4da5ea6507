// Package main provides the entry point for the PortfolioAI CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "portfolioai",
	Short: "PortfolioAI resume-to-portfolio assistant",
	Long:  "PortfolioAI turns resumes into validated structured profiles, ATS-ready documents, cover letters, mock interviews and job alerts via REST API or one-shot CLI runs.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (environment variables override it)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
