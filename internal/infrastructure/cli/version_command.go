package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("intentdesk %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
