// Author loading command for the shici CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadAuthorsCmd = &cobra.Command{
	Use:   "load-authors",
	Short: "Load the author biography files",
	Long: `Load all three author biography files (authors.tang.json,
authors.song.json, author.song.json) into the author table. Re-running
refreshes biographies without duplicating rows. Run this before loading
works so author references resolve.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := orch.LoadAuthors(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d authors\n", n)
		return nil
	},
}
