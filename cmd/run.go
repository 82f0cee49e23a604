package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/classpulse/classpulse/internal/agent"
	"github.com/classpulse/classpulse/internal/app"
	"github.com/classpulse/classpulse/internal/simulate"
	"github.com/classpulse/classpulse/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	v := viperForCmd(cmd)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	roster := simulate.DemoRoster()
	if path := v.GetString("roster"); path != "" {
		roster, err = simulate.LoadRoster(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Could not load roster:", err)
			fmt.Fprintln(os.Stderr, "Falling back to the demo class.")
			roster = simulate.DemoRoster()
		}
	}

	svc := agent.WithLogging(agent.NewClient(agentConfig(v)), eventRepo)

	return app.Run(app.Options{
		Service:      svc,
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		Roster:       roster,
	})
}
