package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/doeshing/intentdesk/internal/app"
	"github.com/doeshing/intentdesk/internal/domain"
)

func newWorkspaceCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Generate and inspect dynamic workspaces",
	}
	cmd.AddCommand(newWorkspaceGenerateCommand(container))
	cmd.AddCommand(newWorkspaceListCommand(container))
	cmd.AddCommand(newWorkspaceInteractCommand(container))
	return cmd
}

func newWorkspaceGenerateCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [intent]",
		Short: "Generate a full workspace document for an intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := container.Generator.GenerateWorkspace(cmd.Context(), strings.Join(args, " "))
			RenderGenerationResult(result)
			return nil
		},
	}
}

func newWorkspaceListCommand(container *app.Container) *cobra.Command {
	var limit int
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []domain.CachedWorkspace
			if tag != "" {
				entries = container.Workspaces.ByTag(tag)
			} else {
				entries = container.Workspaces.Recent(limit)
			}
			if len(entries) == 0 {
				fmt.Println("No cached workspaces.")
				return nil
			}
			for _, entry := range entries {
				fmt.Printf("%s %s  %s\n", entry.Preview.Icon, entry.Preview.Title, entry.ID)
				fmt.Printf("   intent: %s\n", entry.Intent)
				fmt.Printf("   tags: %s  accessed: %d times, last %s\n",
					strings.Join(entry.Metadata.Tags, ", "),
					entry.Metadata.AccessCount,
					entry.Metadata.LastAccessedAt.Format(time.RFC3339),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum entries to list")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Filter by tag")
	return cmd
}

// newWorkspaceInteractCommand replays a workspace-change click, exercising
// the regeneration loop from the terminal.
func newWorkspaceInteractCommand(container *app.Container) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "interact [element text]",
		Short: "Simulate a workspace-change interaction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			interaction := domain.InteractionData{
				ID:              uuid.NewString(),
				Type:            "click",
				Value:           value,
				ElementType:     "button",
				ElementText:     text,
				WorkspaceIntent: text,
				Timestamp:       time.Now(),
			}
			if interaction.Classify() != domain.WorkspaceChange {
				fmt.Println("Interaction classified as local action; nothing to regenerate.")
				return nil
			}
			result := container.Generator.HandleInteraction(cmd.Context(), interaction)
			RenderGenerationResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Optional value carried by the interaction")
	return cmd
}
