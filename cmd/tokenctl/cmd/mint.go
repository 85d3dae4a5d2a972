package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/galaxybooks/bookstore-backend/pkg/token"
)

var (
	mintSub    string
	mintTTL    time.Duration
	mintSecret string
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a bearer token",
	Long: `Mint an HS256 token for one of the accepted subjects. The services
only inspect the payload, so the signing secret matters only if some other
party wants to verify the token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := token.Sign(mintSecret, mintSub, time.Now().Add(mintTTL))
		if err != nil {
			return fmt.Errorf("failed to mint token: %w", err)
		}

		fmt.Println(tok)
		return nil
	},
}

func init() {
	mintCmd.Flags().StringVar(&mintSub, "sub", "starlord", "Token subject")
	mintCmd.Flags().DurationVar(&mintTTL, "ttl", time.Hour, "Token lifetime")
	mintCmd.Flags().StringVar(&mintSecret, "secret", "dev-secret", "HMAC signing secret")
	rootCmd.AddCommand(mintCmd)
}
