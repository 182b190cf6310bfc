// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/infrastructure/ai"
	"github.com/doeshing/intentdesk/internal/infrastructure/cache"
	"github.com/doeshing/intentdesk/internal/infrastructure/config"
	"github.com/doeshing/intentdesk/internal/infrastructure/layout"
	"github.com/doeshing/intentdesk/internal/infrastructure/security"
	"github.com/doeshing/intentdesk/internal/infrastructure/workspace"
	"github.com/doeshing/intentdesk/internal/pkg/logger"
	"github.com/doeshing/intentdesk/internal/ports"
	"github.com/doeshing/intentdesk/internal/services"
)

// Container holds the explicit dependency graph. Caches are constructed once
// here and passed by reference; there is no hidden global mutable state.
type Container struct {
	Pipeline       *services.Pipeline
	Generator      *services.Generator
	ConfigProvider ports.ConfigProvider
	Registry       ports.LayoutRegistry
	LayoutCache    ports.LayoutCache
	Workspaces     ports.WorkspaceRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewZap(verbose || cfg.Preferences.Verbose)

	sanitizer, err := security.NewSanitizer(cfg.Security.RulesFile, cfg.Security.AllowedImports)
	if err != nil {
		return nil, fmt.Errorf("load sanitizer rules: %w", err)
	}
	urls := security.NewURLChecker(cfg.Security.KnownDomains)
	registry := layout.NewRegistry()

	model := pickModel(cfg)
	generator, err := ai.NewFactory().ForModel(model)
	if err != nil {
		return nil, fmt.Errorf("init generator: %w", err)
	}

	layoutCache := cache.NewSQLiteLayoutCache(
		"",
		time.Duration(cfg.Cache.LayoutTTLHours)*time.Hour,
		cfg.Cache.LayoutCapacity,
		sanitizer,
		log,
	)
	workspaces := workspace.NewStore("", cfg.Cache.WorkspaceCapacity, log)

	pipeline := &services.Pipeline{
		Selector:  ai.NewSelector(generator, registry),
		Planner:   ai.NewPlanner(generator),
		Widgets:   ai.NewWidgetWriter(generator),
		Registry:  registry,
		Cache:     layoutCache,
		Sanitizer: sanitizer,
		URLs:      urls,
		Logger:    log,
	}

	return &Container{
		Pipeline:       pipeline,
		Generator:      services.NewGenerator(generator, workspaces, log),
		ConfigProvider: cfgLoader,
		Registry:       registry,
		LayoutCache:    layoutCache,
		Workspaces:     workspaces,
		Logger:         log,
	}, nil
}

func pickModel(cfg domain.Config) domain.ModelDefinition {
	for _, model := range cfg.Models {
		if model.Name == cfg.Preferences.DefaultModel {
			return model
		}
	}
	if len(cfg.Models) > 0 {
		return cfg.Models[0]
	}
	return domain.ModelDefinition{Name: "heuristic", ModelID: "heuristic"}
}
