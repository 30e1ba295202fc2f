package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/jobmate/internal/documents"
	"github.com/spigell/jobmate/internal/skills"
)

// inputFlags registers --<side>-text, --<side>-file and --<side>-skills.
func inputFlags(cmd *cobra.Command, side, what string) {
	cmd.Flags().String(side+"-text", "", what+" as plain text")
	cmd.Flags().String(side+"-file", "", what+" document (.pdf, .docx, .txt, .md)")
	cmd.Flags().String(side+"-skills", "", what+" skills already extracted (json or yaml with skills, technologies, soft_skills)")
	cmd.MarkFlagsMutuallyExclusive(side+"-text", side+"-file", side+"-skills")
}

// readInput builds the tagged input of one side from whichever flag is set.
func readInput(cmd *cobra.Command, side string) (skills.Input, error) {
	text, _ := cmd.Flags().GetString(side + "-text")
	file, _ := cmd.Flags().GetString(side + "-file")
	structured, _ := cmd.Flags().GetString(side + "-skills")

	switch {
	case strings.TrimSpace(text) != "":
		return skills.RawText(text), nil
	case strings.TrimSpace(file) != "":
		content, err := documents.ReadFile(file)
		if err != nil {
			return skills.Input{}, err
		}
		return skills.RawText(content), nil
	case strings.TrimSpace(structured) != "":
		set, err := readSkillFile(structured)
		if err != nil {
			return skills.Input{}, err
		}
		return skills.Structured(set), nil
	default:
		return skills.Input{}, fmt.Errorf("%s: %w (use --%s-text, --%s-file or --%s-skills)", side, skills.ErrMissingInput, side, side, side)
	}
}

func readSkillFile(path string) (skills.SkillSet, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return skills.SkillSet{}, fmt.Errorf("read skills file %q: %w", path, err)
	}

	data := v.AllSettings()
	if len(data) == 0 {
		return skills.SkillSet{}, errors.New("skills file is empty")
	}
	return skills.FromMap(data), nil
}

// keyDelimiter keeps dotted names intact when viper reads skill files.
const keyDelimiter = "::"
