// Package config loads the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/intentdesk/assets"
	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/pkg/filesystem"
	"github.com/doeshing/intentdesk/internal/ports"
)

// FileLoader loads YAML configuration from ~/.intentdesk/config.yaml
// (overridable via INTENTDESK_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("INTENTDESK_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".intentdesk", "config.yaml")
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []domain.ModelDefinition{{Name: "heuristic", ModelID: "heuristic"}}
	}
	if cfg.Preferences.DefaultModel == "" {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	if cfg.Cache.LayoutTTLHours <= 0 {
		cfg.Cache.LayoutTTLHours = int(domain.DefaultLayoutCacheTTL.Hours())
	}
	if cfg.Cache.LayoutCapacity <= 0 {
		cfg.Cache.LayoutCapacity = domain.DefaultLayoutCacheCapacity
	}
	if cfg.Cache.WorkspaceCapacity <= 0 {
		cfg.Cache.WorkspaceCapacity = domain.DefaultWorkspaceCacheCapacity
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
