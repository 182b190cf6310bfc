package ai

import (
	"net/http"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Factory creates text-generator instances from model definitions. It keeps a
// single HTTP client shared across all providers.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a new generator factory with a configured HTTP client.
func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// ForModel returns a generator for the model definition. Models without an
// endpoint resolve to the offline heuristic generator.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.TextGenerator, error) {
	if model.Endpoint == "" {
		return newHeuristicGenerator(), nil
	}
	return newHTTPProvider(model, f.httpClient), nil
}

var _ ports.GeneratorFactory = (*Factory)(nil)
