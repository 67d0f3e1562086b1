package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	bagabo "github.com/bagabo/client-go"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the booking service",
	Long: `Sign in with email and password and store the session credential.

The credential is only persisted after it decodes to a valid identity, so
a broken token can never wedge the stored session.

Examples:
  bagabo login --email jane@example.com --password secret
  bagabo login --email jane@example.com      # password read from stdin`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if password == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	session, err := openSession(ctx, printer)
	if err != nil {
		return err
	}

	client, err := newAPIClient(session)
	if err != nil {
		return err
	}

	resp, err := client.Login(ctx, email, password)
	if err != nil {
		printer.Error("sign-in failed: %v", err)
		return err
	}

	if err := session.Login(ctx, resp.Token); err != nil {
		if bagabo.IsTokenExpiredError(err) {
			printer.Error("the service issued an already-expired credential")
		}
		return err
	}

	identity, _ := session.Identity()
	printer.Success("signed in as %s (%s)", identity.Name, identity.Email)
	if identity.IsAdmin() {
		printer.Info("administrator commands are available")
	}
	return nil
}
