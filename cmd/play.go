package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/matharcade/internal/app"
	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/screens/play"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Launch straight into a game",
	Long:  "Launch straight into a game, skipping the lobby. Run without arguments to list game IDs.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, g := range catalog.Games() {
				fmt.Printf("  %-18s %s\n", g.ID, g.Tagline)
			}
			return nil
		}

		g, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown game %q, run 'matharcade play' to list games", args[0])
		}

		profile := g.DefaultProfile
		if d, _ := cmd.Flags().GetString("difficulty"); d != "" {
			profile = challenge.ProfileID(strings.ToLower(d))
			if !validProfile(profile) {
				return fmt.Errorf("unknown difficulty %q", d)
			}
		}

		return runApp(cmd, func(opts app.Options) screen.Screen {
			return play.New(g, profile, nil, opts.Store, opts.Config)
		})
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "", "Difficulty profile (extra_easy, easy, medium, hard)")
}

func validProfile(id challenge.ProfileID) bool {
	for _, p := range challenge.ProfileIDs() {
		if p == id {
			return true
		}
	}
	return false
}
