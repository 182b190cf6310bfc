package domain

// Config mirrors ~/.intentdesk/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	Models              []ModelDefinition `yaml:"models"`
	Cache               CacheSettings     `yaml:"cache"`
	Security            SecuritySettings  `yaml:"security"`
}

// Preferences captures user-level toggles.
type Preferences struct {
	DefaultModel string `yaml:"default_model"`
	Verbose      bool   `yaml:"verbose"`
}

// CacheSettings sizes the caching subsystem.
type CacheSettings struct {
	LayoutTTLHours    int `yaml:"layout_ttl_hours"`
	LayoutCapacity    int `yaml:"layout_capacity"`
	WorkspaceCapacity int `yaml:"workspace_capacity"`
}

// SecuritySettings defines sanitizer behavior.
type SecuritySettings struct {
	Enabled        bool     `yaml:"enabled"`
	RulesFile      string   `yaml:"rules_file"`
	KnownDomains   []string `yaml:"known_domains,omitempty"`
	AllowedImports []string `yaml:"allowed_imports,omitempty"`
}

// ModelDefinition describes a text-generation endpoint declared in the config
// file. An empty Endpoint selects the offline heuristic generator.
type ModelDefinition struct {
	Name       string    `yaml:"name"`
	Endpoint   string    `yaml:"endpoint"`
	AuthEnvVar string    `yaml:"auth_env_var"`
	ModelID    string    `yaml:"model_id"`
	MaxTokens  int       `yaml:"max_tokens"`
	APIFormat  APIFormat `yaml:"api_format,omitempty"`
}

// APIFormat defines how to construct requests and parse responses for
// different provider APIs. All fields default to the OpenAI-compatible shape.
type APIFormat struct {
	// AuthHeaderName specifies the HTTP header carrying the API key.
	// Default: "Authorization".
	AuthHeaderName string `yaml:"auth_header_name,omitempty"`
	// AuthHeaderPrefix is prepended to the API key value. Default: "Bearer ".
	// Set empty for providers that send the bare key (e.g. "x-api-key").
	AuthHeaderPrefix string `yaml:"auth_header_prefix,omitempty"`
	// ResponseContentPath selects the response field holding generated text.
	// Values: "openai" (choices[0].message.content, default) or
	// "anthropic" (content[0].text).
	ResponseContentPath string `yaml:"response_content_path,omitempty"`
	// ExtraHeaders are sent verbatim on every request.
	ExtraHeaders map[string]string `yaml:"extra_headers,omitempty"`
}
