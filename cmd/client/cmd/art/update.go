package art

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var (
	updateTitle       string
	updateSize        int64
	updateDescription string
	updateTags        []string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an art piece",
	Long: `Replace the mutable fields of an owned art piece.

All fields are replaced at once; id, owner and creation time never
change.`,
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

		if err := app.UpdateArt(cmd.Context(), id, updateTitle, updateSize, updateDescription, updateTags); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		color.Green("Piece %d updated.", id)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "piece title (1-64 characters)")
	updateCmd.Flags().Int64VarP(&updateSize, "size", "s", 0, "piece size, positive and below 1e9")
	updateCmd.Flags().StringVar(&updateDescription, "desc", "", "piece description (1-128 characters)")
	updateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "piece tag, may be repeated (1-10 tags)")

	_ = updateCmd.MarkFlagRequired("title")
	_ = updateCmd.MarkFlagRequired("size")
	_ = updateCmd.MarkFlagRequired("desc")
	_ = updateCmd.MarkFlagRequired("tag")
}
