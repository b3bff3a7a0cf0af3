package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent questions and answers",
	Long:  `Lists recent answers, newest first. History is bounded and per process.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (0 = all retained)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := ensurePipeline(); err != nil {
		return err
	}

	entries := pipeline.History(historyLimit)

	if historyJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for i, e := range entries {
		cmd.Printf("  [%d] %s\n", i+1, e.Question)
		cmd.Printf("      %s\n", e.Text)
		if !e.AskedAt.IsZero() {
			cmd.Printf("      asked at %s\n", e.AskedAt.Format("2006-01-02 15:04:05 MST"))
		}
		cmd.Println()
	}
	return nil
}
