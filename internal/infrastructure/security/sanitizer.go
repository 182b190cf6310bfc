// Package security filters AI-returned markup and code. It is a best-effort
// denylist, not a hardened sandbox: unsafe constructs are rewritten in place,
// and only the import allow-list produces hard failures.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/intentdesk/assets"
	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Sanitizer implements the CodeSanitizer port via regex rewrite rules.
type Sanitizer struct {
	rules          []compiledRule
	allowedImports map[string]bool
	allowedTags    map[string]bool
}

type compiledRule struct {
	re   *regexp.Regexp
	rule RewriteRule
}

// RewriteRule describes one regex-based sanitization rule.
type RewriteRule struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
	Message string `yaml:"message"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules struct {
		RewritePatterns []RewriteRule `yaml:"rewrite_patterns"`
		AllowedImports  []string      `yaml:"allowed_imports"`
		AllowedTags     []string      `yaml:"allowed_tags"`
	} `yaml:"rules"`
}

// NewSanitizer loads sanitization rules from disk (or embedded defaults when
// the file is missing). Extra allowed imports from config are merged in.
func NewSanitizer(path string, extraImports []string) (*Sanitizer, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}

	var compiled []compiledRule
	for _, rule := range rules.Rules.RewritePatterns {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, rule: rule})
	}

	allowedImports := make(map[string]bool)
	for _, name := range rules.Rules.AllowedImports {
		allowedImports[strings.ToLower(name)] = true
	}
	for _, name := range extraImports {
		allowedImports[strings.ToLower(name)] = true
	}

	allowedTags := make(map[string]bool)
	for _, name := range rules.Rules.AllowedTags {
		allowedTags[name] = true
	}

	return &Sanitizer{
		rules:          compiled,
		allowedImports: allowedImports,
		allowedTags:    allowedTags,
	}, nil
}

// Sanitize rewrites unsafe constructs out of the given markup or code. It
// never fails; unmatched input passes through unchanged. Rules are applied
// repeatedly until the output is stable, so nested payloads
// (e.g. "<scr<script>ipt>") cannot reassemble a forbidden construct.
func (s *Sanitizer) Sanitize(code string) string {
	if s == nil || code == "" {
		return code
	}
	for i := 0; i < 10; i++ {
		before := code
		for _, rule := range s.rules {
			code = rule.re.ReplaceAllString(code, rule.rule.Replace)
		}
		if code == before {
			break
		}
	}
	return code
}

// importPattern matches ES-style imports and CommonJS requires.
var (
	importPattern  = regexp.MustCompile(`(?m)import\s+(?:[\w{}\s,*]+\s+from\s+)?['"]([^'"]+)['"]`)
	requirePattern = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	tagPattern     = regexp.MustCompile(`<([A-Z][A-Za-z0-9]*)\b`)
)

// CheckImports vets generated code against the module and component
// allow-lists. Any reference outside them is a hard per-widget failure.
// The check is textual; obfuscated references can evade it.
func (s *Sanitizer) CheckImports(code string) error {
	for _, m := range importPattern.FindAllStringSubmatch(code, -1) {
		if !s.importAllowed(m[1]) {
			return fmt.Errorf("%w: module %q", domain.ErrDisallowedImport, m[1])
		}
	}
	for _, m := range requirePattern.FindAllStringSubmatch(code, -1) {
		if !s.importAllowed(m[1]) {
			return fmt.Errorf("%w: module %q", domain.ErrDisallowedImport, m[1])
		}
	}
	for _, m := range tagPattern.FindAllStringSubmatch(code, -1) {
		if !s.allowedTags[m[1]] {
			return fmt.Errorf("%w: component <%s>", domain.ErrDisallowedImport, m[1])
		}
	}
	return nil
}

func (s *Sanitizer) importAllowed(module string) bool {
	return s.allowedImports[strings.ToLower(strings.TrimSpace(module))]
}

func loadRules(path string) (RulesFile, error) {
	var rules RulesFile
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if !os.IsNotExist(err) {
			return rules, err
		}
		data = assets.DefaultSanitizerYAML
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, err
	}
	if len(rules.Rules.RewritePatterns) == 0 {
		rules.Rules.RewritePatterns = defaultRewritePatterns()
	}
	if len(rules.Rules.AllowedImports) == 0 {
		rules.Rules.AllowedImports = defaultAllowedImports()
	}
	if len(rules.Rules.AllowedTags) == 0 {
		rules.Rules.AllowedTags = defaultAllowedTags()
	}
	return rules, nil
}

func expandPath(path string) string {
	if path == "" {
		return filepath.Join(userHomeDir(), ".intentdesk", "sanitizer.yaml")
	}
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Join(userHomeDir(), path)
}

func defaultRewritePatterns() []RewriteRule {
	return []RewriteRule{
		{Pattern: `(?is)<script\b[^>]*>.*?</script\s*>`, Replace: "", Message: "Script tag with body"},
		{Pattern: `(?is)<script\b[^>]*/?>`, Replace: "", Message: "Orphan script tag"},
		{Pattern: `(?is)</script\s*>`, Replace: "", Message: "Orphan closing script tag"},
		{Pattern: `(?i)\son\w+\s*=\s*"[^"]*"`, Replace: "", Message: "Inline event handler (double-quoted)"},
		{Pattern: `(?i)\son\w+\s*=\s*'[^']*'`, Replace: "", Message: "Inline event handler (single-quoted)"},
		{Pattern: `(?i)\son\w+\s*=\s*[^\s>'"]+`, Replace: "", Message: "Inline event handler (unquoted)"},
		{Pattern: `(?i)javascript\s*:`, Replace: "blocked:", Message: "javascript: URL"},
		{Pattern: `(?i)vbscript\s*:`, Replace: "blocked:", Message: "vbscript: URL"},
		{Pattern: `(?i)\beval\s*\(`, Replace: "void(", Message: "eval call"},
		{Pattern: `(?i)\bnew\s+Function\s*\(`, Replace: "void(", Message: "Function constructor"},
		{Pattern: `(?i)\bdocument\.cookie\b`, Replace: "undefined", Message: "Cookie access"},
	}
}

func defaultAllowedImports() []string {
	return []string{"react"}
}

func defaultAllowedTags() []string {
	return []string{
		"Card", "Button", "Input", "Select", "List", "ListItem",
		"Text", "Heading", "Grid", "Row", "Column", "Icon",
		"Chart", "Table", "Badge", "Progress", "Timer",
	}
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.CodeSanitizer = (*Sanitizer)(nil)
