package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/config"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/db"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/ingestion"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

var (
	jobTitle       string
	jobCompany     string
	jobDescription string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the job posting pool",
}

var jobsAddCmd = &cobra.Command{
	Use:   "add <posting-url>",
	Short: "Add a job posting to the alert pool",
	Long:  `Fetch a job posting URL, extract its description, and store it for the alert engine to match against subscriptions. Pass --description to skip the fetch.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsAdd,
}

func init() {
	jobsAddCmd.Flags().StringVar(&jobTitle, "title", "", "Posting title")
	jobsAddCmd.Flags().StringVar(&jobCompany, "company", "", "Company name")
	jobsAddCmd.Flags().StringVar(&jobDescription, "description", "", "Inline description (skips fetching the URL)")
	_ = jobsAddCmd.MarkFlagRequired("title")
	_ = jobsAddCmd.MarkFlagRequired("company")
	jobsCmd.AddCommand(jobsAddCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cfg.DatabaseEnabled() {
		return fmt.Errorf("DATABASE_URL is required to store job postings")
	}

	ctx := context.Background()
	description, err := ingestion.ResolveJobDescription(ctx, jobDescription, args[0])
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	posting := &types.JobPosting{
		Title:       jobTitle,
		Company:     jobCompany,
		SourceURL:   args[0],
		Description: description,
	}
	if !database.SaveJobPosting(ctx, posting) {
		return fmt.Errorf("posting was not stored")
	}
	fmt.Printf("Stored %q at %s\n", jobTitle, args[0])
	return nil
}
