package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
)

var addExperienceCmd = &cobra.Command{
	Use:   "add-experience",
	Short: "Append an experience entry",
	Args:  cobra.NoArgs,
	RunE:  runAddExperience,
}

var removeExperienceCmd = &cobra.Command{
	Use:   "remove-experience <index>",
	Short: "Remove an experience entry by index",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveExperience,
}

var addEducationCmd = &cobra.Command{
	Use:   "add-education",
	Short: "Append an education entry",
	Args:  cobra.NoArgs,
	RunE:  runAddEducation,
}

var removeEducationCmd = &cobra.Command{
	Use:   "remove-education <index>",
	Short: "Remove an education entry by index",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveEducation,
}

var (
	experienceCompany     string
	experiencePosition    string
	experienceStart       string
	experienceEnd         string
	experienceDescription string

	educationSchool      string
	educationDegree      string
	educationField       string
	educationStart       string
	educationEnd         string
	educationDescription string
)

func init() {
	addExperienceCmd.Flags().StringVar(&experienceCompany, "company", "", "Company name (required)")
	addExperienceCmd.Flags().StringVar(&experiencePosition, "position", "", "Position held (required)")
	addExperienceCmd.Flags().StringVar(&experienceStart, "start", "", "Start date")
	addExperienceCmd.Flags().StringVar(&experienceEnd, "end", "", "End date")
	addExperienceCmd.Flags().StringVar(&experienceDescription, "description", "", "Description as an HTML fragment")
	_ = addExperienceCmd.MarkFlagRequired("company")
	_ = addExperienceCmd.MarkFlagRequired("position")

	addEducationCmd.Flags().StringVar(&educationSchool, "school", "", "School name (required)")
	addEducationCmd.Flags().StringVar(&educationDegree, "degree", "", "Degree")
	addEducationCmd.Flags().StringVar(&educationField, "field", "", "Field of study")
	addEducationCmd.Flags().StringVar(&educationStart, "start", "", "Start date")
	addEducationCmd.Flags().StringVar(&educationEnd, "end", "", "End date")
	addEducationCmd.Flags().StringVar(&educationDescription, "description", "", "Description as an HTML fragment")
	_ = addEducationCmd.MarkFlagRequired("school")

	rootCmd.AddCommand(addExperienceCmd)
	rootCmd.AddCommand(removeExperienceCmd)
	rootCmd.AddCommand(addEducationCmd)
	rootCmd.AddCommand(removeEducationCmd)
}

func runAddExperience(_ *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		list := s.Snapshot().Experiences
		list = append(list, types.Experience{
			Company:     strings.TrimSpace(experienceCompany),
			Position:    strings.TrimSpace(experiencePosition),
			StartDate:   strings.TrimSpace(experienceStart),
			EndDate:     strings.TrimSpace(experienceEnd),
			Description: experienceDescription,
		})
		s.Store().UpdateExperiences(list)
		_, _ = fmt.Fprintf(os.Stdout, "Added experience #%d\n", len(list)-1)
		return nil
	})
}

func runRemoveExperience(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		list := s.Snapshot().Experiences
		i, err := parseIndex(args[0], types.SectionExperience, len(list))
		if err != nil {
			return err
		}
		s.Store().UpdateExperiences(append(list[:i], list[i+1:]...))
		_, _ = fmt.Fprintf(os.Stdout, "Removed experience #%d\n", i)
		return nil
	})
}

func runAddEducation(_ *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		list := s.Snapshot().Education
		list = append(list, types.Education{
			School:      strings.TrimSpace(educationSchool),
			Degree:      strings.TrimSpace(educationDegree),
			Field:       strings.TrimSpace(educationField),
			StartDate:   strings.TrimSpace(educationStart),
			EndDate:     strings.TrimSpace(educationEnd),
			Description: educationDescription,
		})
		s.Store().UpdateEducation(list)
		_, _ = fmt.Fprintf(os.Stdout, "Added education #%d\n", len(list)-1)
		return nil
	})
}

func runRemoveEducation(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		list := s.Snapshot().Education
		i, err := parseIndex(args[0], types.SectionEducation, len(list))
		if err != nil {
			return err
		}
		s.Store().UpdateEducation(append(list[:i], list[i+1:]...))
		_, _ = fmt.Fprintf(os.Stdout, "Removed education #%d\n", i)
		return nil
	})
}

// parseIndex parses an entry index and checks it against the list length.
func parseIndex(arg string, section types.SectionID, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	if i < 0 || i >= n {
		return 0, &document.IndexError{Section: section, Index: i, Len: n}
	}
	return i, nil
}
