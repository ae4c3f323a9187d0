package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current resume document",
	Long:  "Prints a summary of the stored document and its style, or the exported JSON with --json.",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the document as exported JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		if showJSON {
			data, err := s.Export()
			if err != nil {
				return fmt.Errorf("failed to export document: %w", err)
			}
			_, _ = os.Stdout.Write(data)
			return nil
		}

		doc := s.Snapshot()
		p := printer()
		p.PrintDocument(doc)
		p.PrintStyle(doc.DocumentStyle)
		return nil
	})
}
