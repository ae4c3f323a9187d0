package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/export"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/spf13/cobra"
)

var paginateCmd = &cobra.Command{
	Use:   "paginate",
	Short: "Show how the sections are split across pages",
	Args:  cobra.NoArgs,
	RunE:  runPaginate,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the paginated HTML preview",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

var (
	paginateJSON    bool
	paginateHeights string

	previewOut         string
	previewPageNumbers bool
	previewNameOnPage2 bool
)

func init() {
	paginateCmd.Flags().BoolVar(&paginateJSON, "json", false, "Print the pagination state as JSON")
	paginateCmd.Flags().StringVar(&paginateHeights, "heights", "", "Comma-separated section heights in px, in section order, instead of measuring")

	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Write the HTML to this file instead of stdout")
	previewCmd.Flags().BoolVar(&previewPageNumbers, "page-numbers", false, "Print page numbers")
	previewCmd.Flags().BoolVar(&previewNameOnPage2, "name-on-page2", false, "Repeat the name at the top of page 2")

	rootCmd.AddCommand(paginateCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPaginate(_ *cobra.Command, _ []string) error {
	heights, err := parseHeights(paginateHeights)
	if err != nil {
		return err
	}

	return withSession(func(ctx context.Context, cfg config.Config, s *editor.Session) error {
		st := s.Pagination()
		if len(heights) > 0 {
			doc := s.Snapshot()
			if len(heights) != len(doc.SectionOrder) {
				return fmt.Errorf("expected %d heights, got %d", len(doc.SectionOrder), len(heights))
			}
			engine := pagination.NewEngine(pagination.StaticMeasurer{Heights: heights})
			engine.SafetyFactor = cfg.SafetyFactor
			st = engine.Paginate(ctx, doc)
		}
		if paginateJSON {
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal pagination state: %w", err)
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		}
		printer().PrintPagination(st)
		return nil
	})
}

// parseHeights parses a comma-separated list of non-negative heights.
func parseHeights(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	heights := make([]float64, 0, len(parts))
	for _, part := range parts {
		h, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || h < 0 {
			return nil, fmt.Errorf("invalid height %q", part)
		}
		heights = append(heights, h)
	}
	return heights, nil
}

func runPreview(_ *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, cfg config.Config, s *editor.Session) error {
		opts := displayOptions(cfg, previewPageNumbers, previewNameOnPage2)
		out, err := rendering.RenderPreview(s.Snapshot(), s.Pages(), opts)
		if err != nil {
			return err
		}

		if previewOut == "" {
			_, _ = fmt.Fprint(os.Stdout, out)
			return nil
		}
		if err := export.WriteFile(previewOut, []byte(out)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Preview written to: %s\n", previewOut)
		return nil
	})
}
