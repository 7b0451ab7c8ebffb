package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe saved progress (the play history is kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		w := cmd.OutOrStdout()

		if !yes {
			fmt.Fprint(w, "This erases coins, unlocks, badges and shelf items. Type 'reset' to confirm: ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
				fmt.Fprintln(w, "Cancelled.")
				return nil
			}
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.SaveRepo().DeleteAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("reset saves: %w", err)
		}
		logger.Info("saves reset", zap.Int64("deleted", n))
		fmt.Fprintf(w, "Removed %d saved records.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
