// Package main provides the entry point for the resume editor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_editor",
	Short: "Structured resume editor",
	Long: "Resume editor keeps one resume document, edits it field by field, fits it onto " +
		"at most two pages and exports it to JSON or PDF.",
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootStore      string
	rootDataDir    string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootStore, "store", "", "Document store: file, postgres or minio")
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Directory of the file store")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
