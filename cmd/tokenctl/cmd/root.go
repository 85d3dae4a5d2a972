// Package cmd contains all CLI commands for tokenctl.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tokenctl",
	Short: "Mint and inspect bookstore bearer tokens",
	Long: `tokenctl produces and examines the bearer tokens the bookstore
services accept.

Examples:
  # Mint a token for starlord valid for one hour
  tokenctl mint --sub starlord --ttl 1h

  # Decode and validate an existing token
  tokenctl inspect eyJhbGciOi...`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
