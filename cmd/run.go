package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/matharcade/internal/app"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads config, and launches the TUI. initial
// overrides the home screen for direct-launch subcommands.
func runApp(cmd *cobra.Command, initial func(opts app.Options) screen.Screen) error {
	cfg := loadConfig(cmd)

	opts := app.Options{Config: cfg}

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err := store.Open(dbPath)
		if err == nil {
			defer st.Close()
			opts.Store = st
		} else {
			fmt.Fprintln(os.Stderr, "Cannot open database, playing without history:", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Cannot resolve database path, playing without history:", err)
	}

	if initial != nil {
		opts.Initial = initial(opts)
	}

	return app.Run(opts)
}
