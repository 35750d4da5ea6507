package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/config"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/extraction"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/ingestion"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/llm"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/rendering"
)

var (
	parseExportFormat string
	parseOutputDir    string
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume into a structured profile",
	Long:  `Parse a resume document (.pdf, .docx or .txt) into a validated structured profile, print it as JSON, and optionally export an ATS-ready document.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseExportFormat, "export", "", "Also export the profile (pdf, docx or txt)")
	parseCmd.Flags().StringVar(&parseOutputDir, "out", ".", "Directory for exported documents")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	text, err := ingestion.DocumentText(filepath.Base(args[0]), data)
	if err != nil {
		return err
	}

	profile, err := extraction.New(client).ExtractProfile(ctx, text)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	if parseExportFormat == "" {
		return nil
	}

	format, err := rendering.ParseFormat(parseExportFormat)
	if err != nil {
		return err
	}
	rendered, err := rendering.Render(format, profile)
	if err != nil {
		return err
	}

	outPath := filepath.Join(parseOutputDir, format.Filename())
	if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Exported %s\n", outPath)
	return nil
}
