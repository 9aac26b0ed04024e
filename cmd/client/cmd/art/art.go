package art

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Cmd is the parent command for all art piece operations.
var Cmd = &cobra.Command{
	Use:   "art",
	Short: "Manage art pieces",
	Long:  `Create, inspect, update, transfer and delete registered art pieces.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(transferCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(accessCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid piece id %q: %w", arg, err)
	}
	return id, nil
}
