package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <target> <command>",
	Short: "Apply a formatting command to a rich-text field",
	Long: "Targets are summary, experience:<index> and education:<index>.\n" +
		"Commands are bold, italic, underline, link, unorderedList and orderedList.\n" +
		"The range selects visible characters, --end exclusive. Links need --value.",
	Args: cobra.ExactArgs(2),
	RunE: runFormat,
}

var (
	formatStart int
	formatEnd   int
	formatValue string
)

func init() {
	formatCmd.Flags().IntVar(&formatStart, "start", 0, "First selected character")
	formatCmd.Flags().IntVar(&formatEnd, "end", -1, "End of the selection (default: end of the field)")
	formatCmd.Flags().StringVar(&formatValue, "value", "", "URL for the link command")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(_ *cobra.Command, args []string) error {
	target, err := editor.ParseTarget(args[0])
	if err != nil {
		return err
	}
	command, err := richtext.ParseCommand(args[1])
	if err != nil {
		return err
	}

	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		current, err := s.Field(target)
		if err != nil {
			return err
		}

		rng := richtext.Range{Start: formatStart, End: formatEnd}
		if rng.End < 0 {
			rng.End = len([]rune(richtext.PlainText(current)))
		}
		if err := s.Format(target, command, rng, formatValue); err != nil {
			return err
		}

		updated, err := s.Field(target)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(os.Stdout, string(updated))
		return nil
	})
}
