package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var registerLogin string

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		login, err := promptLogin(registerLogin)
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		if err := app.Register(cmd.Context(), login, password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("Identity %q registered. Run 'artreg login' to obtain a token.", login)
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerLogin, "login", "l", "", "login to register")
}
