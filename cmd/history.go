package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classpulse/classpulse/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions from the local journal",
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

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := st.EventRepo().SessionHistory(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		for _, r := range records {
			line := fmt.Sprintf("%s  %-8s  %s", r.Timestamp.Format("2006-01-02 15:04"), r.Action, r.SessionID)
			if r.Subject != "" {
				line += fmt.Sprintf("  %s / %s", r.Subject, r.Topic)
			}
			if r.Action != "start" {
				line += fmt.Sprintf("  %d questions, %.0f%% mastery", r.QuestionsAsked, r.MasteryPercentage)
			}
			if r.StopReason != "" {
				line += "  (" + r.StopReason + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 50, "Maximum number of journal entries to show")
}
