// Package main provides the tokenctl CLI for minting and inspecting the
// bearer tokens the bookstore services accept.
package main

import (
	"os"

	"github.com/galaxybooks/bookstore-backend/cmd/tokenctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
