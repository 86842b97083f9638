// Package main provides the entry point for the ATS scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scorer",
	Short: "ATS resume scoring and recommendation engine",
	Long:  "ats_scorer scores a resume against a job description using hybrid lexical/semantic similarity and generates prioritized improvement recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
