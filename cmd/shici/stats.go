// Stats command for the shici CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print row counts for the loaded database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		authors, err := st.CountAuthors(cmd.Context())
		if err != nil {
			return err
		}
		works, err := st.CountWorks(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("authors: %d\n", authors)
		fmt.Printf("works:   %d\n", works)
		return nil
	},
}
