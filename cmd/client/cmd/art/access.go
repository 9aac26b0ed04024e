package art

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var accessCmd = &cobra.Command{
	Use:   "access [id] [principal]",
	Short: "Check whether a user may access a piece",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		principal := args[1]

		granted, err := app.HasAccess(cmd.Context(), id, principal)
		if err != nil {
			return fmt.Errorf("access check failed: %w", err)
		}

		if granted {
			color.Green("%q has access to piece %d.", principal, id)
		} else {
			color.Yellow("%q has no access to piece %d.", principal, id)
		}
		return nil
	},
}
