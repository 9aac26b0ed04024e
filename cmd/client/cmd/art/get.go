package art

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
)

var getFormat string

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an art piece",
	Long: `Show an art piece by id.

When the server is unreachable the locally cached copy is shown
instead.`,
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

		piece, err := app.GetArt(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get failed: %w", err)
		}

		if getFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(piece)
		}

		fmt.Printf("ID:          %d\n", piece.ID)
		fmt.Printf("Title:       %s\n", piece.Title)
		fmt.Printf("Owner:       %s\n", piece.Owner)
		fmt.Printf("Size:        %d\n", piece.Size)
		fmt.Printf("Description: %s\n", piece.Description)
		fmt.Printf("Tags:        %s\n", strings.Join(piece.Tags, ", "))
		fmt.Printf("Created:     %s\n", piece.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getFormat, "output", "o", "text", "output format (text, json)")
}
