package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a resume JSON file without importing it",
	Long: "Checks the file the same way import does. With --schema, the file is only " +
		"validated against the given JSON Schema.",
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file (default: embedded document schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	if validateSchema != "" {
		if err := schemas.ValidateJSON(validateSchema, path); err != nil {
			return reportValidation(path, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s is valid against %s\n", path, validateSchema)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := document.Decode(data)
	if err != nil {
		return reportValidation(path, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s is valid (%d experience, %d education, %d skills)\n",
		path, len(doc.Experiences), len(doc.Education), len(doc.Skills))
	return nil
}

// reportValidation prints schema field errors one per line.
func reportValidation(path string, err error) error {
	var ve *schemas.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s is invalid:\n", path)
	for i, fe := range ve.Errors {
		_, _ = fmt.Fprintf(os.Stdout, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return fmt.Errorf("%d validation error(s)", len(ve.Errors))
}
