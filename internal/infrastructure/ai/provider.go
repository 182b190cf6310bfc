// Package ai provides the text-generation adapters and the structured
// pipeline capabilities (layout selection, content planning, widget
// generation) built on top of them.
//
// All provider-specific behavior is controlled through the model's APIFormat
// configuration, so one generic HTTP provider serves any chat-completions
// style API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// httpProvider is a configuration-driven HTTP-based text generator.
type httpProvider struct {
	model      domain.ModelDefinition
	httpClient *http.Client
}

func newHTTPProvider(model domain.ModelDefinition, client *http.Client) ports.TextGenerator {
	return &httpProvider{model: model, httpClient: client}
}

func (p *httpProvider) Name() string {
	return "http"
}

// Generate sends the prompt as a single user message and returns the model's
// text. No retry; the caller owns fallback policy.
func (p *httpProvider) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody, err := p.buildRequestBody(prompt)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.model.Endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if err := p.setAuthHeaders(httpReq); err != nil {
		return "", fmt.Errorf("set auth headers: %w", err)
	}
	for key, value := range p.model.APIFormat.ExtraHeaders {
		httpReq.Header.Set(key, value)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	content, err := p.parseResponse(responseBody.Bytes())
	if err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	return content, nil
}

func (p *httpProvider) buildRequestBody(prompt string) ([]byte, error) {
	maxTokens := p.model.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxTokens
	}
	request := map[string]interface{}{
		"model":      p.model.ModelID,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	return json.Marshal(request)
}

func (p *httpProvider) setAuthHeaders(req *http.Request) error {
	apiKey := ""
	if p.model.AuthEnvVar != "" {
		apiKey = os.Getenv(p.model.AuthEnvVar)
	}
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s environment variable", p.model.AuthEnvVar)
	}

	headerName := p.model.APIFormat.AuthHeaderName
	if headerName == "" {
		headerName = "Authorization"
	}
	headerPrefix := p.model.APIFormat.AuthHeaderPrefix
	if headerPrefix == "" && headerName == "Authorization" {
		headerPrefix = "Bearer "
	}
	req.Header.Set(headerName, headerPrefix+apiKey)
	return nil
}

// parseResponse extracts generated text from the provider response according
// to the configured content path.
func (p *httpProvider) parseResponse(body []byte) (string, error) {
	switch p.model.APIFormat.ResponseContentPath {
	case "", "openai":
		var response struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		}
		if err := json.Unmarshal(body, &response); err != nil {
			return "", fmt.Errorf("unmarshal JSON: %w", err)
		}
		if len(response.Choices) == 0 {
			return "", fmt.Errorf("%w: empty choices", domain.ErrMalformedResponse)
		}
		return strings.TrimSpace(response.Choices[0].Message.Content), nil
	case "anthropic":
		var response struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		}
		if err := json.Unmarshal(body, &response); err != nil {
			return "", fmt.Errorf("unmarshal JSON: %w", err)
		}
		if len(response.Content) == 0 {
			return "", fmt.Errorf("%w: empty content", domain.ErrMalformedResponse)
		}
		return strings.TrimSpace(response.Content[0].Text), nil
	default:
		return "", fmt.Errorf("unknown response_content_path %q", p.model.APIFormat.ResponseContentPath)
	}
}
