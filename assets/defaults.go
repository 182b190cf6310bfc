package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultSanitizerYAML contains the embedded default sanitization rules.
//
//go:embed defaults/sanitizer.yaml
var DefaultSanitizerYAML []byte
