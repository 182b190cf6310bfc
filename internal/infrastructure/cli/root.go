// Package cli wires the cobra command tree over the application container.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/intentdesk/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	generateCmd := newGenerateCommand(container)

	root := &cobra.Command{
		Use:   "intentdesk [intent]",
		Short: "intentdesk - intent-to-workspace generator",
		Long:  "intentdesk turns free-text intent into a rendered workspace: a templated layout filled by a planning pipeline, or a fully generated HTML document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			generateCmd.SetArgs(args)
			return generateCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(generateCmd)
	root.AddCommand(newWorkspaceCommand(container))
	root.AddCommand(newCacheCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
