// Package inference calls the external text-generation endpoint.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Status is the observable client state the presentation surface reads.
type Status string

const (
	StatusReady      Status = "Ready"
	StatusProcessing Status = "Processing…"
	StatusError      Status = "Error"
)

// Failure is the typed error for every way an inference call can fail:
// transport errors, non-2xx statuses, and application-level errors
// flagged in the response body. The client never panics past its
// boundary and never returns any other error type.
type Failure struct {
	Reason string
}

func (f *Failure) Error() string { return f.Reason }

// generateRequest is the wire shape of one generation call.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the wire shape of the endpoint's reply.
type generateResponse struct {
	Response string `json:"response"`
	Error    bool   `json:"error"`
	Message  string `json:"message"`
}

// Client talks to an Ollama-style generation endpoint. It is constructed
// once with a fixed base URL and model identifier.
type Client struct {
	hc      *http.Client
	baseURL string
	model   string

	mu     sync.Mutex
	status Status
	cache  *lru.Cache[string, string]
}

// NewClient builds a client for the given endpoint base URL (for example
// http://localhost:11434) and model identifier.
func NewClient(endpoint, model string) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 60 * time.Second},
		baseURL: strings.TrimRight(endpoint, "/"),
		model:   model,
		status:  StatusReady,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// Status returns the client's last observed state.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Client) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// EnableCache turns on an LRU cache of responses keyed by prompt. Off by
// default; with it on, a repeated prompt is answered locally without a
// second call to the endpoint.
func (c *Client) EnableCache(size int) error {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return fmt.Errorf("failed to create response cache: %w", err)
	}
	c.mu.Lock()
	c.cache = cache
	c.mu.Unlock()
	return nil
}

func (c *Client) cachedResponse(prompt string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache == nil {
		return "", false
	}
	return c.cache.Get(prompt)
}

func (c *Client) storeResponse(prompt, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cache != nil {
		c.cache.Add(prompt, answer)
	}
}

// Infer sends one prompt to the endpoint and returns the generated text.
// Every failure comes back as a *Failure.
func (c *Client) Infer(ctx context.Context, prompt string) (string, error) {
	if answer, ok := c.cachedResponse(prompt); ok {
		c.setStatus(StatusReady)
		return answer, nil
	}

	c.setStatus(StatusProcessing)

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		c.setStatus(StatusError)
		return "", &Failure{Reason: fmt.Sprintf("failed to encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		c.setStatus(StatusError)
		return "", &Failure{Reason: fmt.Sprintf("failed to build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.setStatus(StatusError)
		return "", &Failure{Reason: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.setStatus(StatusError)
		return "", &Failure{Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.setStatus(StatusError)
		return "", &Failure{Reason: fmt.Sprintf("failed to read response: %v", err)}
	}

	var generated generateResponse
	if err := json.Unmarshal(respBody, &generated); err != nil {
		c.setStatus(StatusError)
		return "", &Failure{Reason: fmt.Sprintf("failed to decode response: %v", err)}
	}

	if generated.Error {
		message := generated.Message
		if message == "" {
			message = "AI error"
		}
		c.setStatus(StatusError)
		return "", &Failure{Reason: message}
	}

	c.storeResponse(prompt, generated.Response)
	c.setStatus(StatusReady)
	return generated.Response, nil
}

// tagsResponse is the endpoint's model listing reply.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Models lists the model names the endpoint has available.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, &Failure{Reason: fmt.Sprintf("failed to build request: %v", err)}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &Failure{Reason: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Failure{Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, &Failure{Reason: fmt.Sprintf("failed to decode response: %v", err)}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}
