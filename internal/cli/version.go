package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pic32/Priority-Queue/priority"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pqueue and queue library versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pqueue %s\n%s\n", version, priority.Version)
			return nil
		},
	}
}
