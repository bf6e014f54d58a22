package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/goromian/tweetsnap"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server is the ingress surface: it accepts captured post batches from the
// capture agent and serves stored snapshots back to operator tooling.
type Server struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string

	Store     tweetsnap.SnapshotStore
	Collector tweetsnap.Collector

	// Fetcher and Extractor back the one-shot fetch-and-summarize
	// endpoint; the Extractor should carry the direct-path content cap.
	Fetcher   tweetsnap.Fetcher
	Extractor tweetsnap.Extractor

	Logger *slog.Logger

	ln     net.Listener
	server *http.Server
}

// Handler builds the route table. Exposed so tests can drive the server
// through httptest without opening a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/tweets/save", s.handleSave)
	mux.HandleFunc("POST /api/fetch-url", s.handleFetchURL)
	mux.HandleFunc("GET /api/tweets/list", s.handleList)
	mux.HandleFunc("GET /api/tweets/{filename}", s.handleGet)
	mux.HandleFunc("GET /health", s.handleHealth)
	return s.logRequests(mux)
}

// Open starts listening. It returns once the listener is bound; request
// serving continues in the background until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.server = &http.Server{Handler: s.Handler()}

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger().Error("server stopped", "error", err)
		}
	}()

	s.logger().Info("ingress listening", "addr", ln.Addr().String())
	return nil
}

// Close shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// saveRequest is the submit-batch payload. Tweets stays raw so a payload
// where it is present but not an array can be rejected as a client error.
type saveRequest struct {
	Tweets   json.RawMessage `json:"tweets"`
	Username string          `json:"username"`
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.error(w, tweetsnap.Errorf(tweetsnap.EINVALID, "invalid request body"))
		return
	}

	// A literal null unmarshals into a nil slice without error, so it has
	// to be rejected up front along with an absent field.
	if len(req.Tweets) == 0 || string(req.Tweets) == "null" {
		s.error(w, tweetsnap.Errorf(tweetsnap.EINVALID, "Invalid tweets data"))
		return
	}
	var posts []tweetsnap.Post
	if err := json.Unmarshal(req.Tweets, &posts); err != nil {
		s.error(w, tweetsnap.Errorf(tweetsnap.EINVALID, "Invalid tweets data"))
		return
	}

	snapshot := s.Collector.Collect(r.Context(), posts, req.Username)

	result, err := s.Store.Save(r.Context(), snapshot)
	if err != nil {
		s.error(w, err)
		return
	}

	s.logger().Info("snapshot saved", "filename", result.Filename, "tweets", result.TweetCount)

	s.respond(w, http.StatusOK, map[string]any{
		"success":    true,
		"filename":   result.Filename,
		"filepath":   result.Path,
		"tweetCount": result.TweetCount,
	})
}

type fetchURLRequest struct {
	URL string `json:"url"`
}

// urlContent is the fetch-and-summarize response body.
type urlContent struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func (s *Server) handleFetchURL(w http.ResponseWriter, r *http.Request) {
	var req fetchURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		s.error(w, tweetsnap.Errorf(tweetsnap.EINVALID, "URL is required"))
		return
	}

	// This endpoint never hard-fails past this point: fetch and extract
	// errors come back as a flagged payload with the reason embedded.
	result, err := s.summarize(r.Context(), req.URL)
	if err != nil {
		s.logger().Warn("fetch-url failed", "url", req.URL, "error", err)
		s.respond(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   err.Error(),
			"data": urlContent{
				URL:     req.URL,
				Title:   tweetsnap.FetchErrorTitle,
				Content: err.Error(),
			},
		})
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"data": urlContent{
			URL:         req.URL,
			Title:       result.Title,
			Description: result.Description,
			Content:     result.Content,
		},
	})
}

func (s *Server) summarize(ctx context.Context, url string) (*tweetsnap.ExtractResult, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.Extractor.Extract(html)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	infos, err := s.Store.List(r.Context())
	if err != nil {
		s.error(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"files":   infos,
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Store.Get(r.Context(), r.PathValue("filename"))
	if err != nil {
		s.error(w, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    snapshot,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger().Error("encoding response", "error", err)
	}
}

// error writes an application error as JSON with the matching status code.
func (s *Server) error(w http.ResponseWriter, err error) {
	code := tweetsnap.ErrorCode(err)
	if code == tweetsnap.EINTERNAL {
		s.logger().Error("request failed", "error", err)
	}
	s.respond(w, statusCode(code), map[string]any{
		"error": tweetsnap.ErrorMessage(err),
	})
}

// statusCode maps application error codes to HTTP status codes.
func statusCode(code string) int {
	switch code {
	case tweetsnap.EINVALID:
		return http.StatusBadRequest
	case tweetsnap.ENOTFOUND:
		return http.StatusNotFound
	case tweetsnap.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger().Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
		)
	})
}
