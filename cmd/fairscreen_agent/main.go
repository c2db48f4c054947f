// Package main provides the entry point for the fairscreen analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fairscreen_agent",
	Short: "Fairness & Rescue Analysis Engine",
	Long:  "fairscreen_agent screens a candidate batch against job criteria, rescues keyword-rejected candidates with semantic evidence, and runs bias detection over the results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
