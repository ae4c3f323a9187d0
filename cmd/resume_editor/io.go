package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/export"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the document with a JSON file",
	Long:  "Imports a resume-data.json file. An invalid file leaves the stored document untouched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Write the document as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExportJSON,
}

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Write the document as a PDF",
	Args:  cobra.NoArgs,
	RunE:  runExportPDF,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the JSON and PDF files into a directory",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportJSONOut string

	exportPDFOut         string
	exportPDFRenderer    string
	exportPDFPageNumbers bool
	exportPDFNameOnPage2 bool

	exportDir         string
	exportRenderer    string
	exportPageNumbers bool
	exportNameOnPage2 bool
	exportSkipPDF     bool
)

func init() {
	exportJSONCmd.Flags().StringVarP(&exportJSONOut, "out", "o", export.JSONFileName, "Output file")

	exportPDFCmd.Flags().StringVarP(&exportPDFOut, "out", "o", "", "Output file (default: derived from the CV name)")
	exportPDFCmd.Flags().StringVar(&exportPDFRenderer, "renderer", "", "PDF renderer: chrome or native")
	exportPDFCmd.Flags().BoolVar(&exportPDFPageNumbers, "page-numbers", false, "Print page numbers")
	exportPDFCmd.Flags().BoolVar(&exportPDFNameOnPage2, "name-on-page2", false, "Repeat the name at the top of page 2")

	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportRenderer, "renderer", "", "PDF renderer: chrome or native")
	exportCmd.Flags().BoolVar(&exportPageNumbers, "page-numbers", false, "Print page numbers")
	exportCmd.Flags().BoolVar(&exportNameOnPage2, "name-on-page2", false, "Repeat the name at the top of page 2")
	exportCmd.Flags().BoolVar(&exportSkipPDF, "skip-pdf", false, "Only write the JSON file")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportJSONCmd)
	rootCmd.AddCommand(exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		if err := s.Import(data); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Imported %s\n", args[0])
		return nil
	})
}

func runExportJSON(_ *cobra.Command, _ []string) error {
	return withSession(func(_ context.Context, _ config.Config, s *editor.Session) error {
		data, err := s.Export()
		if err != nil {
			return fmt.Errorf("failed to export document: %w", err)
		}
		if err := export.WriteFile(exportJSONOut, data); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Document written to: %s\n", exportJSONOut)
		return nil
	})
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	return withSession(func(ctx context.Context, cfg config.Config, s *editor.Session) error {
		renderer, err := newPDFRenderer(cfg, exportPDFRenderer)
		if err != nil {
			return err
		}

		doc := s.Snapshot()
		out := exportPDFOut
		if out == "" {
			out = export.PDFFileName(doc)
		}
		opts := displayOptions(cfg, exportPDFPageNumbers, exportPDFNameOnPage2)
		if err := export.RenderPDFFile(ctx, renderer, out, doc, s.Pagination(), opts); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "PDF written to: %s\n", out)
		return nil
	})
}

func runExport(_ *cobra.Command, _ []string) error {
	return withSession(func(ctx context.Context, cfg config.Config, s *editor.Session) error {
		data, err := s.Export()
		if err != nil {
			return fmt.Errorf("failed to export document: %w", err)
		}

		bundle := &export.Bundle{
			JSON:     data,
			Document: s.Snapshot(),
			State:    s.Pagination(),
			Options:  displayOptions(cfg, exportPageNumbers, exportNameOnPage2),
		}
		if !exportSkipPDF {
			bundle.Renderer, err = newPDFRenderer(cfg, exportRenderer)
			if err != nil {
				return err
			}
		}

		paths, err := bundle.Write(ctx, exportDir)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Document written to: %s\n", paths.JSON)
		if paths.PDF != "" {
			_, _ = fmt.Fprintf(os.Stdout, "PDF written to: %s\n", paths.PDF)
		}
		return nil
	})
}
