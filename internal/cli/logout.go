package cli

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := newPrinter()
		ctx := cmd.Context()

		session, err := openSession(ctx, printer)
		if err != nil {
			return err
		}

		session.Logout(ctx)
		printer.Success("signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
