package art

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var (
	createTitle       string
	createSize        int64
	createDescription string
	createTags        []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new art piece",
	Long: `Register a new art piece owned by the authenticated user.

The piece receives the next sequential id and a default access entry
for the owner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := app.CreateArt(cmd.Context(), createTitle, createSize, createDescription, createTags)
		if err != nil {
			return fmt.Errorf("create failed: %w", err)
		}

		color.Green("Piece %q registered with id %d.", createTitle, id)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "piece title (1-64 characters)")
	createCmd.Flags().Int64VarP(&createSize, "size", "s", 0, "piece size, positive and below 1e9")
	createCmd.Flags().StringVar(&createDescription, "desc", "", "piece description (1-128 characters)")
	createCmd.Flags().StringSliceVar(&createTags, "tag", nil, "piece tag, may be repeated (1-10 tags)")

	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("size")
	_ = createCmd.MarkFlagRequired("desc")
	_ = createCmd.MarkFlagRequired("tag")
}
