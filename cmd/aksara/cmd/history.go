package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanacaraka/aksara/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past translations",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().String("search", "", "filter entries by text")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")

	store := openHistory()
	if store == nil {
		return fmt.Errorf("history is not available")
	}
	defer store.Close()

	var entries []history.Entry
	var err error
	if search != "" {
		entries, err = store.Search(search, limit)
	} else {
		entries, err = store.Recent(limit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No translations yet")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-24s %s — %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Javanese, e.Latin, e.English)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store := openHistory()
	if store == nil {
		return fmt.Errorf("history is not available")
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("History cleared")
	return nil
}
