package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/utils"
)

const DefaultCompletionModel = "anthropic/claude-3-haiku"

// OpenRouterClient proxies chat-completion requests to the OpenRouter API.
// The upstream response body is returned verbatim; upstream failures come
// back as *UpstreamError so handlers can forward status and body untouched.
type OpenRouterClient interface {
	Analyze(ctx context.Context, systemPrompt, userPrompt, model string) (json.RawMessage, error)
}

// UpstreamError carries a non-2xx OpenRouter response.
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openrouter http %d: %s", e.StatusCode, string(e.Body))
}

type openRouterClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenRouterClient(log *logger.Logger) (OpenRouterClient, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENROUTER_API_KEY")
	}

	baseURL := os.Getenv("OPENROUTER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai"
	}

	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = DefaultCompletionModel
	}

	timeoutSec := utils.GetEnvAsInt("OPENROUTER_TIMEOUT_SECONDS", 60, log)
	if timeoutSec <= 0 {
		timeoutSec = 60
	}

	return &openRouterClient{
		log:        log.With("service", "OpenRouterClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

func (oc *openRouterClient) Analyze(ctx context.Context, systemPrompt, userPrompt, model string) (json.RawMessage, error) {
	if model == "" {
		model = oc.model
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	url := oc.baseURL + "/api/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+oc.apiKey)
	req.Header.Set("HTTP-Referer", "https://replit.com")
	req.Header.Set("X-Title", "GaiaDex Soil Salinity Analysis")

	resp, err := oc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call openrouter: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openrouter response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		oc.log.Warn("OpenRouter returned non-success status", "status", resp.StatusCode, "model", model)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
