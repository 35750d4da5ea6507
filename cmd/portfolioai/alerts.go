package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/alerts"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/config"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/db"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
)

var alertsOnce bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Run the job alert engine",
	Long:  `Match stored alert subscriptions against recently discovered job postings and email each subscriber a digest of their top-scoring openings.`,
	RunE:  runAlerts,
}

func init() {
	alertsCmd.Flags().BoolVar(&alertsOnce, "once", false, "Run one sweep and exit instead of looping")
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.DatabaseEnabled() {
		return fmt.Errorf("DATABASE_URL is required for the alert engine")
	}

	interval, err := time.ParseDuration(cfg.AlertInterval)
	if err != nil {
		return fmt.Errorf("invalid alert interval %q: %w", cfg.AlertInterval, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	var mailer alerts.Mailer = alerts.DisabledMailer{}
	if cfg.EmailEnabled() {
		mailer = alerts.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		fmt.Fprintln(os.Stderr, "No email provider configured; digests will not be delivered")
	}

	engine := alerts.New(database, client, mailer)
	if alertsOnce {
		return engine.RunOnce(ctx)
	}
	if err := engine.Run(ctx, interval); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
