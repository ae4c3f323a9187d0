package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/ordering"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
)

var moveSectionCmd = &cobra.Command{
	Use:   "move-section <section> [target-section]",
	Short: "Move a section to the position of another section",
	Long: "Reorders the resume sections. Section names are summary, experience, education, " +
		"skills and courses. With --by, the section moves that many places (negative moves up).",
	Args: cobra.RangeArgs(1, 2),
	RunE: runMoveSection,
}

var moveSectionBy int

func init() {
	moveSectionCmd.Flags().IntVar(&moveSectionBy, "by", 0, "Move the section by this many places instead of onto a target")

	rootCmd.AddCommand(moveSectionCmd)
}

func runMoveSection(cmd *cobra.Command, args []string) error {
	byChanged := cmd.Flags().Changed("by")
	if byChanged == (len(args) == 2) {
		return fmt.Errorf("give either a target section or --by")
	}

	from, err := parseSection(args[0])
	if err != nil {
		return err
	}
	var to types.SectionID
	if !byChanged {
		if to, err = parseSection(args[1]); err != nil {
			return err
		}
	}

	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		if byChanged {
			to = shiftTarget(s.Snapshot().SectionOrder, from, moveSectionBy)
		}
		if !s.Store().MoveSection(from, to) {
			_, _ = fmt.Fprintln(os.Stdout, "Section order unchanged")
			return nil
		}
		order := s.Snapshot().SectionOrder
		names := make([]string, len(order))
		for i, id := range order {
			names[i] = string(id)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Section order: %s\n", strings.Join(names, ", "))
		return nil
	})
}

// shiftTarget returns the section currently at the position id lands on
// when shifted by delta, so the move can go through the store's Move.
func shiftTarget(order []types.SectionID, id types.SectionID, delta int) types.SectionID {
	shifted, moved := ordering.Shift(order, id, delta)
	if !moved {
		return id
	}
	return order[slices.Index(shifted, id)]
}

func parseSection(name string) (types.SectionID, error) {
	id := types.SectionID(strings.ToLower(strings.TrimSpace(name)))
	if !id.IsKnown() {
		return "", fmt.Errorf("unknown section %q", name)
	}
	return id, nil
}
