// Package main provides the entry point for the resume PDF generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumepdf",
	Short: "Resume PDF Generator",
	Long:  "resumepdf parses resumes written in JSON, YAML, Markdown or plain text into a single document model and renders them as paginated PDFs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
