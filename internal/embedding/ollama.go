package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

const defaultTimeout = 60 * time.Second

type OllamaConfig func(client *OllamaClient)

// OllamaClient calls a local Ollama server. Single texts go to /api/embeddings,
// batches to /api/embed.
type OllamaClient struct {
	base      url.URL
	http      *http.Client
	keepAlive string
	truncate  *bool
}

func NewOllamaClient(baseUrl string, opts ...OllamaConfig) (*OllamaClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse ollama url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("ollama url %q must be absolute", baseUrl)
	}

	client := &OllamaClient{
		base: *base,
		http: &http.Client{Timeout: defaultTimeout},
	}
	for _, cfg := range opts {
		cfg(client)
	}
	return client, nil
}

func WithHttpClient(httpClient *http.Client) OllamaConfig {
	return func(client *OllamaClient) {
		client.http = httpClient
	}
}

// WithKeepAlive sets how long the model stays loaded after a request, e.g. "5m".
func WithKeepAlive(d string) OllamaConfig {
	return func(client *OllamaClient) {
		client.keepAlive = d
	}
}

// WithTruncate controls whether batch inputs longer than the context are cut
// (true) or rejected (false).
func WithTruncate(truncate bool) OllamaConfig {
	return func(client *OllamaClient) {
		client.truncate = &truncate
	}
}

type OllamaRequest struct {
	Model     string         `json:"model"`
	Prompt    string         `json:"prompt"`
	KeepAlive string         `json:"keep_alive,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

type OllamaBatchRequest struct {
	Model     string         `json:"model"`
	Input     []string       `json:"input"`
	Truncate  *bool          `json:"truncate,omitempty"`
	KeepAlive string         `json:"keep_alive,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

type ollamaError struct {
	Error string `json:"error"`
}

func (oc *OllamaClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, apperr.NewValidation("missing text to embed")
	}
	if req.Model == "" {
		return nil, apperr.NewValidation("missing model name")
	}

	var resp Response
	err := oc.post(ctx, "/api/embeddings", OllamaRequest{
		Model:     req.Model,
		Prompt:    req.Prompt,
		KeepAlive: oc.keepAlive,
		Options:   req.Options,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("ollama returned an empty embedding for model %s", req.Model)
	}
	return &resp, nil
}

func (oc *OllamaClient) GenerateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	if len(req.Prompts) == 0 {
		return nil, apperr.NewValidation("missing prompts to embed")
	}
	if req.Model == "" {
		return nil, apperr.NewValidation("missing model name")
	}

	var resp BatchResponse
	err := oc.post(ctx, "/api/embed", OllamaBatchRequest{
		Model:     req.Model,
		Input:     req.Prompts,
		Truncate:  oc.truncate,
		KeepAlive: oc.keepAlive,
		Options:   req.Options,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (oc *OllamaClient) post(ctx context.Context, path string, reqData, respData any) error {
	body, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := oc.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := oc.http.Do(request)
	if err != nil {
		return apperr.NewUnavailable("ollama", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.NewUnavailable("ollama", err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// statusError maps an Ollama error reply. Client mistakes become validation
// errors and server failures mark the provider unavailable.
func statusError(status int, body []byte) error {
	msg := string(body)
	var oe ollamaError
	if json.Unmarshal(body, &oe) == nil && oe.Error != "" {
		msg = oe.Error
	}

	err := fmt.Errorf("unexpected status code: %d, body: %s", status, msg)
	switch {
	case status >= http.StatusInternalServerError:
		return apperr.NewUnavailable("ollama", err)
	case status >= http.StatusBadRequest:
		return apperr.NewValidationWrap("ollama rejected the request: "+msg, err)
	default:
		return err
	}
}
