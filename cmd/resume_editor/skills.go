package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/spf13/cobra"
)

var addSkillCmd = &cobra.Command{
	Use:   "add-skill <skill>",
	Short: "Add a skill",
	Long:  "Adds a skill to the end of the list. Blank and duplicate skills are ignored.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddSkill,
}

var removeSkillCmd = &cobra.Command{
	Use:   "remove-skill <skill>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveSkill,
}

var moveSkillCmd = &cobra.Command{
	Use:   "move-skill <skill> <target-skill>",
	Short: "Move a skill to the position of another skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runMoveSkill,
}

var setSkillsCmd = &cobra.Command{
	Use:   "set-skills [skill...]",
	Short: "Replace the skill list",
	Long:  "Replaces all skills. Blank entries and repeated skills are dropped.",
	RunE:  runSetSkills,
}

func init() {
	rootCmd.AddCommand(setSkillsCmd)
	rootCmd.AddCommand(addSkillCmd)
	rootCmd.AddCommand(removeSkillCmd)
	rootCmd.AddCommand(moveSkillCmd)
}

func runAddSkill(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		skill := strings.TrimSpace(args[0])
		if !s.Store().AddSkill(skill) {
			_, _ = fmt.Fprintf(os.Stdout, "Skill %q not added (blank or already present)\n", skill)
			return nil
		}
		_, _ = fmt.Fprintf(os.Stdout, "Added skill %q\n", skill)
		return nil
	})
}

func runRemoveSkill(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		if !s.Store().RemoveSkill(args[0]) {
			return fmt.Errorf("skill %q not found", args[0])
		}
		_, _ = fmt.Fprintf(os.Stdout, "Removed skill %q\n", args[0])
		return nil
	})
}

func runMoveSkill(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		if s.Store().MoveSkill(args[0], args[1]) {
			_, _ = fmt.Fprintf(os.Stdout, "Skills: %s\n", strings.Join(s.Snapshot().Skills, ", "))
		} else {
			_, _ = fmt.Fprintln(os.Stdout, "Skill order unchanged")
		}
		return nil
	})
}

func runSetSkills(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		s.Store().UpdateSkills(args)
		skills := s.Snapshot().Skills
		_, _ = fmt.Fprintf(os.Stdout, "%d skill(s) set: %s\n", len(skills), strings.Join(skills, ", "))
		return nil
	})
}
