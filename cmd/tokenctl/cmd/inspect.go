package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/galaxybooks/bookstore-backend/pkg/token"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <token>",
	Short: "Decode and validate a bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claims, err := token.Decode(args[0])
		if err != nil {
			return fmt.Errorf("cannot decode token: %w", err)
		}

		pretty, err := json.MarshalIndent(claims, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))

		ok, reason := token.Validate(claims, time.Now())
		if !ok {
			fmt.Printf("invalid: %s\n", reason)
			return nil
		}

		fmt.Println("valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
