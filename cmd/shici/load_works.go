// Work loading commands for the shici CLI: one per corpus.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digua-cn/shici/pkg/types"
)

var loadTangCmd = &cobra.Command{
	Use:   "load-tang",
	Short: "Load the Tang poem partitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd, types.TangPoems.Name)
	},
}

var loadSongPoemsCmd = &cobra.Command{
	Use:   "load-song-poems",
	Short: "Load the Song poem partitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd, types.SongPoems.Name)
	},
}

var loadSongLyricsCmd = &cobra.Command{
	Use:   "load-song-lyrics",
	Short: "Load the Song lyric partitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd, types.SongLyrics.Name)
	},
}

// runLoad drives one corpus load and prints the partition tally. Failed
// partitions do not stop the run, but they do fail the command so the exit
// code reflects an incomplete load.
func runLoad(cmd *cobra.Command, corpusName string) error {
	c, err := types.CorpusByName(corpusName)
	if err != nil {
		return err
	}

	report, err := orch.LoadWorks(cmd.Context(), c)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d works from %d partitions (%d skipped, %d unresolved)\n",
		report.Loaded(), len(report.Partitions), report.Skipped(), report.Unresolved())
	if report.Failed() > 0 {
		return fmt.Errorf("%d of %d partitions rolled back", report.Failed(), len(report.Partitions))
	}
	return nil
}
