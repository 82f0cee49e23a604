package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classpulse/classpulse/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.EventRepo().SessionHistory(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		var started, completed, stopped int
		var questions, interventions int
		var masterySum float64
		var masteryCount int
		for _, r := range records {
			switch r.Action {
			case "start":
				started++
			case "complete":
				completed++
			case "stop":
				stopped++
			}
			if r.Action != "start" {
				questions += r.QuestionsAsked
				interventions += r.InterventionCount
				if r.MasteryPercentage > 0 {
					masterySum += r.MasteryPercentage
					masteryCount++
				}
			}
		}

		fmt.Printf("Sessions started:    %d\n", started)
		fmt.Printf("Sessions completed:  %d\n", completed)
		fmt.Printf("Sessions stopped:    %d\n", stopped)
		fmt.Printf("Questions asked:     %d\n", questions)
		fmt.Printf("Interventions:       %d\n", interventions)
		if masteryCount > 0 {
			fmt.Printf("Average mastery:     %.1f%%\n", masterySum/float64(masteryCount))
		}
		return nil
	},
}
