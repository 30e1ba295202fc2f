package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/jobmate/internal/analysis"
)

const (
	PromptSummary          = "Show summary"
	PromptSuggestions      = "Show suggestions"
	PromptReportByCategory = "Report by category"
	PromptReportToFile     = "Dump report to file"
	PromptExit             = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSummary, PromptSuggestions, PromptReportByCategory, PromptReportToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate against a job and suggest improvements",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	inputFlags(matchCmd, "job", "the job posting")
	inputFlags(matchCmd, "candidate", "the candidate profile")
	matchCmd.Flags().BoolP("auto-approve", "y", false, "print the report as json and exit without asking")
}

func match(cmd *cobra.Command) error {
	ctx := context.Background()

	job, err := readInput(cmd, "job")
	if err != nil {
		return err
	}
	candidate, err := readInput(cmd, "candidate")
	if err != nil {
		return err
	}

	d := setup(ctx)
	defer d.logger.Sync()

	analyzer := analysis.New(d.extractor, d.localizer, d.logger)
	report, err := analyzer.Analyze(ctx, job, candidate)
	if err != nil {
		return err
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		return printJSON(report)
	}

	if err := handleAction(PromptSummary, d.logger, report); err != nil {
		return err
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(action, d.logger, report); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

func handleAction(action string, logger *zap.Logger, report *analysis.Report) error {
	switch action {
	case PromptSummary:
		logger.Info("match",
			zap.Float64("score", report.Match.Score),
			zap.String("tier", string(report.Interpretation.Tier)),
			zap.String("message", report.Interpretation.Message),
		)
		return nil
	case PromptSuggestions:
		return printJSON(report.Suggestions)
	case PromptReportByCategory:
		return printJSON(report.ReportByCategory())
	case PromptReportToFile:
		filename, err := report.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
