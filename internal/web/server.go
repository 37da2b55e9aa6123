package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/artifacts"
	"github.com/creai-labs/creai/internal/client"
	"github.com/creai-labs/creai/internal/component"
	"github.com/creai-labs/creai/internal/export"
	"github.com/creai-labs/creai/internal/templates"
)

// Server is the presentation shell: it serves the embedded generator UI
// and a JSON API that fronts the backend generation service through the
// normalization pipeline.
type Server struct {
	logger  *zap.Logger
	client  *client.Client
	library *templates.Library
	store   artifacts.Store
	server  *http.Server
	router  *mux.Router
	port    int
}

// NewServer creates the shell server.
func NewServer(logger *zap.Logger, c *client.Client, library *templates.Library, store artifacts.Store, port int) *Server {
	s := &Server{
		logger:  logger,
		client:  c,
		library: library,
		store:   store,
		router:  mux.NewRouter(),
		port:    port,
	}
	s.routes()
	return s
}

// Start starts the shell server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	s.logger.Info("Starting shell server", zap.Int("port", s.port))
	return s.server.ListenAndServe()
}

// Handler returns the routed handler without binding a listener.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleShell).Methods("GET")

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/generate", s.handleGenerate).Methods("POST")
	api.HandleFunc("/modify", s.handleModify).Methods("POST")
	api.HandleFunc("/templates", s.handleTemplates).Methods("GET")
	api.HandleFunc("/languages", s.handleLanguages).Methods("GET")
	api.HandleFunc("/artifacts", s.handleSaveArtifact).Methods("POST")
	api.HandleFunc("/artifacts", s.handleListArtifacts).Methods("GET")
	api.HandleFunc("/artifacts/{id}/export", s.handleExportArtifact).Methods("GET")

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

type generatePayload struct {
	Prompt   string `json:"prompt"`
	Platform string `json:"platform"`
}

// handleGenerate fronts the generate operation. The request context is
// threaded through so a browser navigating away cancels the backend call.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.logger.Error("Failed to decode generate payload", zap.Error(err))
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	rec, err := s.client.Generate(r.Context(), payload.Prompt, payload.Platform)
	if err != nil {
		s.writeClientError(w, "generate", err)
		return
	}

	writeJSON(w, rec)
}

type modifyPayload struct {
	Prompt string `json:"prompt"`
	Code   string `json:"code"`
}

func (s *Server) handleModify(w http.ResponseWriter, r *http.Request) {
	var payload modifyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.logger.Error("Failed to decode modify payload", zap.Error(err))
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Code) == "" {
		http.Error(w, "No component to modify", http.StatusBadRequest)
		return
	}

	rec, err := s.client.Modify(r.Context(), payload.Prompt, payload.Code)
	if err != nil {
		s.writeClientError(w, "modify", err)
		return
	}

	writeJSON(w, rec)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"shortcuts": s.library.Shortcuts(),
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"languages": export.Options(),
	})
}

type savePayload struct {
	Name     string           `json:"name"`
	Prompt   string           `json:"prompt"`
	Platform string           `json:"platform"`
	Record   component.Record `json:"record"`
}

func (s *Server) handleSaveArtifact(w http.ResponseWriter, r *http.Request) {
	var payload savePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Record.IsEmpty() {
		http.Error(w, "Nothing to save", http.StatusBadRequest)
		return
	}

	artifact := artifacts.NewArtifact(payload.Name, payload.Prompt, payload.Platform, payload.Record)
	if err := s.store.Save(artifact); err != nil {
		s.logger.Error("Failed to save artifact", zap.Error(err))
		http.Error(w, "Failed to save component", http.StatusInternalServerError)
		return
	}

	s.logger.Info("Saved artifact",
		zap.String("id", artifact.ID),
		zap.String("name", artifact.Name))

	writeJSON(w, artifact)
}

func (s *Server) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List()
	if err != nil {
		s.logger.Error("Failed to list artifacts", zap.Error(err))
		http.Error(w, "Failed to list components", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"artifacts": list})
}

func (s *Server) handleExportArtifact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	artifact, err := s.store.Get(vars["id"])
	if err != nil {
		http.Error(w, "Component not found", http.StatusNotFound)
		return
	}

	lang, ok := export.Lookup(r.URL.Query().Get("lang"))
	if !ok {
		http.Error(w, "Unknown export language", http.StatusBadRequest)
		return
	}

	converted := export.Convert(artifact.Record.SourceCode, lang.ID)
	filename := export.FileName(artifact.Name, lang)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(converted))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// writeClientError maps the client error taxonomy to HTTP statuses and an
// inline-renderable error body. All of these are retryable from the UI.
func (s *Server) writeClientError(w http.ResponseWriter, op string, err error) {
	var (
		transportErr *client.TransportError
		serviceErr   *client.ServiceError
		timeoutErr   *client.TimeoutError
		invalidErr   *client.InvalidResponseError
	)

	var status int
	switch {
	case errors.As(err, &timeoutErr):
		status = http.StatusGatewayTimeout
	case errors.As(err, &transportErr), errors.As(err, &serviceErr), errors.As(err, &invalidErr):
		status = http.StatusBadGateway
	case errors.Is(err, context.Canceled):
		// Browser went away; nobody is reading this response.
		status = 499
	default:
		// Input validation failures from the client itself.
		status = http.StatusBadRequest
	}

	s.logger.Warn("request failed",
		zap.String("op", op),
		zap.Error(err))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
