package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var loginLogin string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		login, err := promptLogin(loginLogin)
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), login, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		color.Green("Logged in as %q.", login)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginLogin, "login", "l", "", "login to authenticate as")
}
