package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/ports"
	"github.com/SscSPs/healthcare_assistant_app/internal/platform/config"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// maxResponseBytes bounds how much of a reply body is read.
const maxResponseBytes = 1 << 20

// Client calls a hosted text-generation model over HTTP.
type Client struct {
	httpClient *http.Client
	url        string
	model      string
}

var _ ports.TextGenerator = (*Client)(nil)

// NewClient builds a Client for cfg.AssistantURL, authenticating the way
// cfg.AssistantAuthMode asks.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	httpClient, err := newHTTPClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AssistantTimeout > 0 {
		httpClient.Timeout = cfg.AssistantTimeout
	}
	return &Client{httpClient: httpClient, url: cfg.AssistantURL, model: cfg.AssistantModel}, nil
}

// NewClientWithHTTP is used by tests to point the client at a fake server.
func NewClientWithHTTP(httpClient *http.Client, url, model string) *Client {
	return &Client{httpClient: httpClient, url: url, model: model}
}

func newHTTPClient(ctx context.Context, cfg *config.Config) (*http.Client, error) {
	switch cfg.AssistantAuthMode {
	case config.AssistantAuthBearer:
		if cfg.AssistantAPIToken == "" {
			return nil, fmt.Errorf("ASSISTANT_API_TOKEN is required for %s auth", config.AssistantAuthBearer)
		}
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AssistantAPIToken, TokenType: "Bearer"})
		return oauth2.NewClient(ctx, src), nil
	case config.AssistantAuthGoogleIDToken:
		audience := cfg.AssistantAudience
		if audience == "" {
			audience = cfg.AssistantURL
		}
		client, err := idtoken.NewClient(ctx, audience)
		if err != nil {
			return nil, fmt.Errorf("failed to create ID token client: %w", err)
		}
		return client, nil
	default:
		return &http.Client{}, nil
	}
}

// Generate posts prompt to the model and returns the first candidate's text.
// Every failure wraps apperrors.ErrGateway.
func (c *Client) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	body, err := json.Marshal(GenerateRequest{
		Model:  c.model,
		Inputs: prompt,
		Parameters: Parameters{
			MaxLength:   params.MaxLength,
			Temperature: params.Temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %w", apperrors.ErrGateway, err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return "", fmt.Errorf("%w: %s (status %d)", apperrors.ErrGateway, e.Error, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: unexpected status %d", apperrors.ErrGateway, resp.StatusCode)
	}

	var out GenerateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", apperrors.ErrGateway, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%w: empty response", apperrors.ErrGateway)
	}
	return out[0].GeneratedText, nil
}
