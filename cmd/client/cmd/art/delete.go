package art

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an art piece",
	Long: `Delete an owned art piece from the registry.

The id of a deleted piece is never reused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := app.DeleteArt(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}

		color.Green("Piece %d deleted.", id)
		return nil
	},
}
