package cli

import (
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new customer account",
	Long: `Create a customer account on the booking service.

New accounts always get the customer role; administrators are provisioned
on the service side.

Example:
  bagabo register --name "Jane Doe" --email jane@example.com --password secret`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	if err := client.Register(ctx, name, email, password); err != nil {
		printer.Error("registration failed: %v", err)
		return err
	}

	printer.Success("account created for %s", email)
	printer.Info("run `bagabo login --email %s` to sign in", email)
	return nil
}
