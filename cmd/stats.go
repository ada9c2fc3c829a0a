package cmd

import (
	"fmt"

	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-game records",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.AllStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No games played yet.")
			return nil
		}

		fmt.Printf("%-20s %10s %8s %12s %12s\n", "GAME", "BEST", "PLAYS", "DAY STREAK", "LAST PLAYED")
		for _, g := range catalog.Games() {
			gs, ok := stats[g.ID]
			if !ok {
				continue
			}
			fmt.Printf("%-20s %10d %8d %12d %12s\n",
				g.Title, gs.PersonalBest, gs.TotalSessions, gs.DayStreak, gs.LastPlayed)
		}
		return nil
	},
}
