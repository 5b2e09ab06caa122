package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // set at build time with -ldflags "-X .../cmd.version=..."

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of marketplace-cli",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out(cmd), "marketplace-cli v%s\n", version)
		},
	}
}
