package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spigell/jobmate/internal/skills"
)

type vocabularyEntry struct {
	Name    string `json:"name"`
	Rule    string `json:"rule"`
	Special bool   `json:"special"`
}

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "Print the effective vocabulary and its matching rules",
	RunE: func(_ *cobra.Command, _ []string) error {
		d := setup(context.Background())
		defer d.logger.Sync()

		special := d.vocabulary.Special()
		out := make(map[skills.Category][]vocabularyEntry)
		for _, c := range d.vocabulary.Categories() {
			for _, name := range d.vocabulary.Names(c) {
				_, isSpecial := special[name]
				out[c] = append(out[c], vocabularyEntry{
					Name:    name,
					Rule:    d.patterns.Source(name),
					Special: isSpecial,
				})
			}
		}

		return printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(vocabularyCmd)
}
