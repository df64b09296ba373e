package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/jonathan/resumepdf/internal/config"
	"github.com/jonathan/resumepdf/internal/parsing"
	"github.com/jonathan/resumepdf/internal/pdf"
	"github.com/jonathan/resumepdf/internal/websites"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a resume file as a PDF",
	Long:  "Parse a resume source file (JSON, YAML, Markdown or plain text), normalize its dates, and render it as a paginated PDF.",
	RunE:  runExport,
}

var (
	exportInput   string
	exportOutput  string
	exportFormat  string
	exportConfig  string
	exportVerbose bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to resume source file (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output PDF file (defaults to the input name with .pdf)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Source format: json, yaml, markdown or plaintext (defaults to the input extension)")
	exportCmd.Flags().StringVarP(&exportConfig, "config", "c", "", "Path to JSON config file")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := exportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

// exportOptions is the fully resolved input to an export run, after
// config file values and flag defaults have been merged.
type exportOptions struct {
	Input    string `validate:"required"`
	Output   string `validate:"required"`
	Format   string `validate:"required,oneof=json yaml markdown plaintext"`
	Geometry pdf.Geometry
	Verbose  bool
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if exportConfig != "" {
		loaded, err := config.LoadConfig(exportConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	flags := config.Config{Input: exportInput, Output: exportOutput, Format: exportFormat}
	merged := flags.MergeWithDefaults(*cfg)
	// Bools are not merged: either the flag or the config turns it on.
	merged.Verbose = exportVerbose || cfg.Verbose

	opts, err := resolveExportOptions(merged)
	if err != nil {
		return err
	}
	return exportResume(opts)
}

// resolveExportOptions fills the derivable fields: the format from the
// input extension and the output path from the input path.
func resolveExportOptions(cfg config.Config) (exportOptions, error) {
	opts := exportOptions{
		Input:    cfg.Input,
		Output:   cfg.Output,
		Format:   cfg.Format,
		Geometry: cfg.Geometry(),
		Verbose:  cfg.Verbose,
	}

	if opts.Format == "" {
		opts.Format = formatFromExtension(opts.Input)
	}
	if opts.Output == "" && opts.Input != "" {
		ext := filepath.Ext(opts.Input)
		opts.Output = strings.TrimSuffix(opts.Input, ext) + ".pdf"
	}

	if err := validator.New().Struct(opts); err != nil {
		return exportOptions{}, fmt.Errorf("invalid export options: %w", err)
	}
	return opts, nil
}

// formatFromExtension maps a file extension onto a parser format tag.
// Unknown extensions return an empty string and fail option validation.
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".md", ".markdown":
		return "markdown"
	case ".txt", ".text":
		return "plaintext"
	default:
		return ""
	}
}

func exportResume(opts exportOptions) error {
	content, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Parsing %s as %s\n", opts.Input, opts.Format)
	}

	doc, err := parsing.Parse(string(content), parsing.Format(opts.Format))
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	doc = parsing.NormalizeDates(doc)
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Parsed %q with %d section(s)\n", doc.Name, len(doc.Sections))
	}

	gen := pdf.NewGeneratorWithGeometry(websites.DefaultRegistry(), opts.Geometry)
	out, err := gen.Generate(doc)
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}

	if err := os.WriteFile(opts.Output, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", opts.Output, len(out))
	}
	return nil
}
