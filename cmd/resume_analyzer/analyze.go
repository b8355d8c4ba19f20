package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	analyzeResume   string
	analyzeJob      string
	analyzeJobURL   string
	analyzeConfig   string
	analyzeMaxK     int
	analyzeKeywords []string
	analyzeVerbose  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Run the full pipeline once: parse the resume, extract the job's
technical keywords, and print the match result as JSON.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to the resume document (pdf, docx, or txt)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().IntVar(&analyzeMaxK, "max-keywords", 0, "Maximum keywords to extract (default 10)")
	analyzeCmd.Flags().StringArrayVar(&analyzeKeywords, "keyword", nil, "Custom keyword to always include (repeatable)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print human-readable summaries instead of JSON")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJob == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if analyzeJob != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	opts, err := analyzeOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(analyzeResume))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	profile, err := parsing.ParseResume(data, filepath.Base(analyzeResume), contentType)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(cmd)
	if err != nil {
		return err
	}

	kws := keywords.Extract(jobText, opts.MaxKeywords, opts.CustomKeywords)
	result := matching.ClassifyAndScore(kws, profile.Skills, profile.Text)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResumeProfile(profile)
		printer.PrintKeywords(kws)
		printer.PrintMatchResult(&result)
		return nil
	}

	resp := types.AnalyzeResponse{
		AnalysisID:  uuid.New().String(),
		Contact:     profile.Contact,
		Keywords:    kws,
		MatchResult: result,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// analyzeOptions merges config-file values and flags over the defaults.
func analyzeOptions() (types.AnalyzeOptions, error) {
	opts := types.DefaultAnalyzeOptions()

	if analyzeConfig != "" {
		cfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return opts, err
		}
		if err := cfg.Validate(); err != nil {
			return opts, err
		}
		if cfg.MaxKeywords != 0 {
			opts.MaxKeywords = cfg.MaxKeywords
		}
		opts.CustomKeywords = append(opts.CustomKeywords, cfg.CustomKeywords...)
	}

	if analyzeMaxK != 0 {
		opts.MaxKeywords = analyzeMaxK
	}
	opts.CustomKeywords = append(opts.CustomKeywords, analyzeKeywords...)

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid analysis options: %w", err)
	}
	return opts, nil
}

func loadJobText(cmd *cobra.Command) (string, error) {
	if analyzeJob != "" {
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}
	return fetch.JobText(cmd.Context(), analyzeJobURL, nil)
}
