package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/matharcade/internal/app"
	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/screens/play"
	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play today's challenge",
	Long:  "Play the daily challenge. Questions are seeded from the date, so everyone gets the same run today.",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, ok := catalog.ByID(catalog.DailyChallengeID)
		if !ok {
			return fmt.Errorf("daily challenge missing from catalog")
		}

		gen := play.GenFactory(func() *challenge.Generator {
			return challenge.NewSeeded(challenge.SeedForDate(time.Now()))
		})

		return runApp(cmd, func(opts app.Options) screen.Screen {
			return play.New(g, g.DefaultProfile, gen, opts.Store, opts.Config)
		})
	},
}
