package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <target>",
	Short: "Generate a bullet point and append it to a rich-text field",
	Long: "Asks the language model for one bullet line and appends it to the field. " +
		"Targets are summary, experience:<index> and education:<index>. Requires GEMINI_API_KEY.",
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

var suggestContext string

func init() {
	suggestCmd.Flags().StringVarP(&suggestContext, "context", "c", "", "What the bullet should be about")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, args []string) error {
	target, err := editor.ParseTarget(args[0])
	if err != nil {
		return err
	}

	return withSuggestions(func(ctx context.Context, _ config.Config, s *editor.Session) error {
		sug, err := s.Suggest(ctx, target, suggestContext)
		if err != nil {
			return fmt.Errorf("failed to generate suggestion: %w", err)
		}
		printer().PrintSuggestion(target.String(), sug)

		field, err := s.Field(target)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "\nUpdated %s:\n%s\n", target, field)
		return nil
	})
}
