package art

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var transferNewOwner string

var transferCmd = &cobra.Command{
	Use:   "transfer [id]",
	Short: "Transfer an art piece to another user",
	Long: `Transfer ownership of an owned art piece.

After the transfer the previous owner loses all rights on the piece.`,
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

		if err := app.TransferArt(cmd.Context(), id, transferNewOwner); err != nil {
			return fmt.Errorf("transfer failed: %w", err)
		}

		color.Green("Piece %d transferred to %q.", id, transferNewOwner)
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&transferNewOwner, "to", "", "login of the new owner")

	_ = transferCmd.MarkFlagRequired("to")
}
