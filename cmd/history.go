package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"btcforge/config"
	"btcforge/store"
)

var (
	historyLimit int
	historyPath  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded build/sign/broadcast history",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := store.OpenHistoryStore(historyPath)
		if err != nil {
			return err
		}
		defer history.MustClose()

		entries, err := history.List(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no history recorded")
			return nil
		}
		return printJSON(entries)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum entries to show, newest first")
	historyCmd.Flags().StringVar(&historyPath, "history-path", config.DefaultConfig().HistoryPath, "history database file")
}
