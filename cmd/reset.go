package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local session journal and saved preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Delete %s and all recorded sessions? [y/N] ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", dbPath+suffix, err)
			}
		}
		fmt.Println("Local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
