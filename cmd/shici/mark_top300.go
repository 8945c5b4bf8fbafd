// Anthology marking command for the shici CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digua-cn/shici/internal/top300"
)

var (
	flagListFile  string
	flagMarkBatch int
)

var markTop300Cmd = &cobra.Command{
	Use:   "mark-top-300",
	Short: "Flag the Tang-300 anthology works and authors",
	Long: `Flag every loaded work and author appearing in the Tang-300 anthology
list. The built-in list can be replaced with --list. The pass only ever
sets flags, so it is safe to repeat after incremental loads.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := top300.Canonical()
		if flagListFile != "" {
			list, err = top300.FromFile(flagListFile)
		}
		if err != nil {
			return err
		}

		width := flagMarkBatch
		if width <= 0 {
			width = cfg.MarkBatch
		}

		works, authors, err := orch.MarkTop300(cmd.Context(), list.Works, list.Authors, width)
		if err != nil {
			return err
		}
		fmt.Printf("Marked %d works and %d authors\n", works, authors)
		return nil
	},
}

func init() {
	markTop300Cmd.Flags().StringVar(&flagListFile, "list", "", "JSON file overriding the built-in anthology list")
	markTop300Cmd.Flags().IntVar(&flagMarkBatch, "batch", 0, "concurrent updates per batch (default from config)")
}
