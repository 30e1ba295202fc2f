package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spigell/jobmate/internal/documents"
	"github.com/spigell/jobmate/internal/extraction"
	"github.com/spigell/jobmate/internal/logger"
	"github.com/spigell/jobmate/internal/skills"
)

type extractOutput struct {
	Skills    skills.SkillSet      `json:"skills"`
	Structure *documents.Structure `json:"structure,omitempty"`
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the skills of a single document or text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return extract(cmd)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("text", "", "plain text to extract skills from")
	extractCmd.Flags().String("file", "", "document to extract skills from (.pdf, .docx, .txt, .md)")
	extractCmd.Flags().Bool("structure", false, "also report which resume sections the text has")
	extractCmd.MarkFlagsMutuallyExclusive("text", "file")
	extractCmd.MarkFlagsOneRequired("text", "file")
}

func extract(cmd *cobra.Command) error {
	ctx := context.Background()

	text, _ := cmd.Flags().GetString("text")
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		content, err := documents.ReadFile(file)
		if err != nil {
			return err
		}
		text = content
	}

	d := setup(ctx)
	defer d.logger.Sync()

	set, err := extraction.Resolve(ctx, skills.RawText(text), d.extractor)
	if err != nil {
		return err
	}
	d.logger.Info("extracted skills", logger.SkillSetFields("", set)...)

	out := extractOutput{Skills: set}
	if withStructure, _ := cmd.Flags().GetBool("structure"); withStructure {
		st := documents.Analyze(text)
		out.Structure = &st
	}

	return printJSON(out)
}
