package art

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"artregistry/internal/app/client"
	artdomain "artregistry/internal/domain/art"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List owned art pieces",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		pieces, err := app.ListArts(cmd.Context())
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}

		switch listFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(pieces)
		default:
			return printPiecesTable(pieces)
		}
	},
}

func printPiecesTable(pieces []artdomain.Piece) error {
	if len(pieces) == 0 {
		fmt.Println("No pieces registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTitle\tSize\tTags\tCreated\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, p := range pieces {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t\n",
			p.ID,
			truncate(p.Title, 30),
			p.Size,
			truncate(strings.Join(p.Tags, ","), 40),
			p.CreatedAt.Format("2006-01-02"),
		)
	}

	w.Flush()
	fmt.Printf("\nTotal pieces: %d\n", len(pieces))
	return nil
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
}
