package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Show or change the document style",
	Long: "Without flags, prints the current style. Numeric values outside their range are " +
		"clamped to the nearest limit and reported.",
	Args: cobra.NoArgs,
	RunE: runStyle,
}

var (
	styleFont        string
	styleFontSize    float64
	styleLineSpacing float64
	styleMargins     float64
	stylePageSize    string
)

func init() {
	styleCmd.Flags().StringVar(&styleFont, "font", "", "Font family (e.g. MERRIWEATHER, ARIAL, \"Times New Roman\")")
	styleCmd.Flags().Float64Var(&styleFontSize, "font-size", 0, "Font size in points (8-16)")
	styleCmd.Flags().Float64Var(&styleLineSpacing, "line-spacing", 0, "Line spacing multiplier (1.0-2.0)")
	styleCmd.Flags().Float64Var(&styleMargins, "margins", 0, "Page margins in millimetres (10-30)")
	styleCmd.Flags().StringVar(&stylePageSize, "page-size", "", "Page size: A4, LETTER or LEGAL")

	rootCmd.AddCommand(styleCmd)
}

func runStyle(cmd *cobra.Command, _ []string) error {
	patch, err := stylePatch(cmd)
	if err != nil {
		return err
	}

	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		p := printer()
		if !patch.IsEmpty() {
			p.PrintStyleAdjustments(s.Store().UpdateDocumentStyle(patch))
		}
		p.PrintStyle(s.Snapshot().DocumentStyle)
		return nil
	})
}

// stylePatch builds a patch from the flags that were set on cmd.
func stylePatch(cmd *cobra.Command) (style.Patch, error) {
	var patch style.Patch
	flags := cmd.Flags()

	if flags.Changed("font") {
		f, ok := types.ParseFont(styleFont)
		if !ok {
			return patch, fmt.Errorf("unknown font %q", styleFont)
		}
		patch.Font = &f
	}
	if flags.Changed("page-size") {
		ps, ok := types.ParsePageSize(stylePageSize)
		if !ok {
			return patch, fmt.Errorf("unknown page size %q", stylePageSize)
		}
		patch.PageSize = &ps
	}
	if flags.Changed("font-size") {
		patch.FontSize = &styleFontSize
	}
	if flags.Changed("line-spacing") {
		patch.LineSpacing = &styleLineSpacing
	}
	if flags.Changed("margins") {
		patch.Margins = &styleMargins
	}
	return patch, nil
}

