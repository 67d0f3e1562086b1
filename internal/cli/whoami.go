package cli

import (
	"github.com/spf13/cobra"

	"github.com/bagabo/client-go/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := newPrinter()
		ctx := cmd.Context()

		session, err := openSession(ctx, printer)
		if err != nil {
			return err
		}

		snapshot := session.Snapshot()
		if !snapshot.Authenticated {
			printer.Info("not signed in")
			return nil
		}

		role := string(snapshot.Identity.Role)
		if snapshot.Identity.IsAdmin() {
			role = printer.Bold(role)
		}

		table := output.NewTable([]string{"NAME", "EMAIL", "ROLE"})
		table.AddRow([]string{snapshot.Identity.Name, snapshot.Identity.Email, role})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
