package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/intentdesk/internal/app"
)

func newGenerateCommand(container *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate [intent]",
		Short: "Run the layout pipeline for an intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intent := strings.Join(args, " ")
			result := container.Pipeline.Process(cmd.Context(), intent)
			if asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			RenderPipelineResult(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw pipeline result as JSON")
	return cmd
}
