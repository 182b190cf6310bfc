package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/intentdesk/internal/app"
)

func newCacheCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the caches",
	}
	cmd.AddCommand(newCacheStatsCommand(container))
	cmd.AddCommand(newCacheClearCommand(container))
	cmd.AddCommand(newCacheCleanupCommand(container))
	return cmd
}

func newCacheStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			layoutStats := container.LayoutCache.Stats()
			fmt.Println("Layout cache:")
			fmt.Printf("  entries: %d  hits: %d  misses: %d  hit rate: %.0f%%\n",
				layoutStats.TotalEntries, layoutStats.Hits, layoutStats.Misses, layoutStats.HitRate*100)
			if layoutStats.OldestEntry != nil {
				fmt.Printf("  oldest: %s\n", layoutStats.OldestEntry.Format(time.RFC3339))
			}
			if layoutStats.NewestEntry != nil {
				fmt.Printf("  newest: %s\n", layoutStats.NewestEntry.Format(time.RFC3339))
			}

			wsStats := container.Workspaces.Stats()
			fmt.Println("Workspace cache:")
			fmt.Printf("  entries: %d  static: %d  dynamic: %d\n",
				wsStats.TotalEntries, wsStats.StaticCount, wsStats.DynamicCount)
			for tag, count := range wsStats.TagCounts {
				fmt.Printf("  tag %q: %d\n", tag, count)
			}
			return nil
		},
	}
}

func newCacheClearCommand(container *app.Container) *cobra.Command {
	var workspaces bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the layout cache (and optionally workspaces)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.LayoutCache.Clear(); err != nil {
				return err
			}
			fmt.Println("Layout cache cleared.")
			if workspaces {
				container.Workspaces.Clear()
				container.Generator.ClearCache()
				fmt.Println("Workspace cache cleared.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&workspaces, "workspaces", false, "Also clear the workspace cache")
	return cmd
}

func newCacheCleanupCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired layout cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := container.LayoutCache.Cleanup()
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d expired entries.\n", removed)
			return nil
		},
	}
}
