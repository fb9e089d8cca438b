// Package serve hosts the presentation surface: a local HTTP server that
// hands the widget bookmarklet to the browser, proxies generation calls
// to the inference endpoint, and accepts page captures from the widget.
package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trainingcopilot/models"
	"trainingcopilot/pkg/inference"
)

// Corpus is the slice of the store the server writes captures into.
type Corpus interface {
	Append(models.TrainingPage) error
	Count() (int, error)
}

// LangDetector guesses the language of captured content.
type LangDetector interface {
	Language(text string) string
}

type Server struct {
	opts     models.Options
	store    Corpus
	client   *inference.Client
	detector LangDetector
	logger   *slog.Logger
	hc       *http.Client
}

func New(opts models.Options, store Corpus, client *inference.Client, det LangDetector, logger *slog.Logger) *Server {
	return &Server{
		opts:     opts,
		store:    store,
		client:   client,
		detector: det,
		logger:   logger,
		hc:       &http.Client{Timeout: 120 * time.Second},
	}
}

// Handler builds the route table with CORS applied everywhere; the
// widget runs inside arbitrary third-party pages and always cross-origin.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/bookmarklet", s.handleBookmarklet)
	mux.HandleFunc("/api/models", s.handleModels)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/capture", s.handleCapture)
	return cors(mux)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, code, map[string]any{
		"error":   true,
		"code":    code,
		"message": message,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("not found: %s", r.URL.Path))
		return
	}
	count, err := s.store.Count()
	if err != nil {
		s.logger.Warn("failed to count corpus", "error", err)
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, dashboardHTML, count, s.opts.Model, s.opts.Endpoint)
}

// handleHealth probes the inference endpoint and always answers 200; the
// body says whether the endpoint is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names, err := s.client.Models(ctx)
	if err != nil {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"status": "degraded",
			"ollama": "disconnected",
			"error":  err.Error(),
			"tip":    "Run 'ollama serve' in another terminal",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"ollama": "connected",
		"models": names,
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	names, err := s.client.Models(r.Context())
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"models": names})
}

// handleGenerate forwards the request body verbatim to the inference
// endpoint. The widget speaks the endpoint's own wire format; the proxy
// exists only to get around the page's cross-origin restrictions.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "use POST for /api/generate")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		s.writeError(w, http.StatusBadRequest, "empty request body")
		return
	}

	upstream := strings.TrimRight(s.opts.Endpoint, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, upstream, bytes.NewReader(body))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, fmt.Sprintf("inference endpoint unreachable: %v", err))
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.logger.Error("failed to relay response", "error", err)
	}
}

// captureRequest is what the widget posts when the user records a page.
type captureRequest struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "use POST for /api/capture")
		return
	}

	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.URL == "" {
		s.writeError(w, http.StatusBadRequest, "missing url")
		return
	}

	content := models.ClampContent(req.Content)
	page := models.TrainingPage{
		URL:        req.URL,
		Title:      req.Title,
		Content:    content,
		Lang:       s.detector.Language(content),
		CapturedAt: time.Now().UTC(),
	}
	if err := s.store.Append(page); err != nil {
		s.logger.Error("failed to append capture", "url", req.URL, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to store page")
		return
	}

	count, err := s.store.Count()
	if err != nil {
		s.logger.Warn("failed to count corpus", "error", err)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"recorded": true, "count": count})
}

func (s *Server) handleBookmarklet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript")
	fmt.Fprint(w, widgetScript(s.opts))
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>Training Copilot</title></head>
<body>
	<h1>Training Copilot</h1>
	<p>Server is running. Pages recorded: %d</p>
	<p>Model: <code>%s</code> via <code>%s</code></p>
	<ul>
		<li><strong>POST</strong> /api/generate — forward a prompt to the model</li>
		<li><strong>POST</strong> /api/capture — record the current page</li>
		<li><strong>GET</strong> /api/models — list available models</li>
		<li><strong>GET</strong> /health — endpoint status</li>
		<li><strong>GET</strong> /bookmarklet — the widget script</li>
	</ul>
</body>
</html>
`
