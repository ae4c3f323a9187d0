package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the document with an empty one",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var renameCmd = &cobra.Command{
	Use:   "rename <cv-name>",
	Short: "Set the CV name",
	Args:  cobra.ExactArgs(1),
	RunE:  runRename,
}

var setContactCmd = &cobra.Command{
	Use:   "set-contact",
	Short: "Update contact fields",
	Long:  "Updates the contact fields given as flags. Fields without a flag keep their value.",
	Args:  cobra.NoArgs,
	RunE:  runSetContact,
}

var setSummaryCmd = &cobra.Command{
	Use:   "set-summary <html>",
	Short: "Replace the summary with an HTML fragment",
	Args:  cobra.ExactArgs(1),
	RunE:  runSetSummary,
}

var setCoursesCmd = &cobra.Command{
	Use:   "set-courses [course...]",
	Short: "Replace the course list",
	RunE:  runSetCourses,
}

var (
	contactName        string
	contactEmail       string
	contactPhone       string
	contactLinkedIn    string
	contactWebsite     string
	contactCountry     string
	contactState       string
	contactShowCountry bool
	contactShowState   bool
)

func init() {
	setContactCmd.Flags().StringVar(&contactName, "name", "", "Full name")
	setContactCmd.Flags().StringVar(&contactEmail, "email", "", "Email address")
	setContactCmd.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
	setContactCmd.Flags().StringVar(&contactLinkedIn, "linkedin", "", "LinkedIn profile")
	setContactCmd.Flags().StringVar(&contactWebsite, "website", "", "Personal website")
	setContactCmd.Flags().StringVar(&contactCountry, "country", "", "Country")
	setContactCmd.Flags().StringVar(&contactState, "state", "", "State or region")
	setContactCmd.Flags().BoolVar(&contactShowCountry, "show-country", false, "Show the country in the header")
	setContactCmd.Flags().BoolVar(&contactShowState, "show-state", false, "Show the state in the header")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(setContactCmd)
	rootCmd.AddCommand(setSummaryCmd)
	rootCmd.AddCommand(setCoursesCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		s.Reset()
		_, _ = fmt.Fprintln(os.Stdout, "Document reset")
		return nil
	})
}

func runRename(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		s.Store().UpdateCvName(strings.TrimSpace(args[0]))
		_, _ = fmt.Fprintf(os.Stdout, "CV name set to %q\n", s.Snapshot().CvName)
		return nil
	})
}

func runSetContact(cmd *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, cfg config.Config, s *editor.Session) error {
		contact := s.Snapshot().Contact
		flags := cmd.Flags()

		setString := func(name string, dst *string, value string) {
			if flags.Changed(name) {
				*dst = strings.TrimSpace(value)
			}
		}
		setString("name", &contact.FullName, contactName)
		setString("email", &contact.Email, contactEmail)
		setString("phone", &contact.Phone, contactPhone)
		setString("linkedin", &contact.LinkedIn, contactLinkedIn)
		setString("website", &contact.Website, contactWebsite)
		setString("country", &contact.Country, contactCountry)
		setString("state", &contact.State, contactState)
		if flags.Changed("show-country") {
			contact.ShowCountry = contactShowCountry
		}
		if flags.Changed("show-state") {
			contact.ShowState = contactShowState
		}

		s.Store().UpdateContact(contact)
		_, _ = fmt.Fprintln(os.Stdout, "Contact updated")
		if cfg.Verbose {
			printer().PrintDocument(s.Snapshot())
		}
		return nil
	})
}

func runSetSummary(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		s.Store().UpdateSummary(richtext.Fragment(args[0]))
		if s.Snapshot().Summary == "" {
			_, _ = fmt.Fprintln(os.Stdout, "Summary cleared")
		} else {
			_, _ = fmt.Fprintln(os.Stdout, "Summary updated")
		}
		return nil
	})
}

func runSetCourses(_ *cobra.Command, args []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		s.Store().UpdateCourses(args)
		_, _ = fmt.Fprintf(os.Stdout, "%d course(s) set\n", len(s.Snapshot().Courses))
		return nil
	})
}
