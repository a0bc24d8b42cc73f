// Package server exposes the chat and dataset API over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"agridata/internal/chat"
	"agridata/internal/dataset"
	"agridata/internal/normalize"
)

// Handler routes API requests. Sessions are created lazily on first
// use and kept in memory for the life of the process; transcripts
// additionally land in the store.
type Handler struct {
	store *dataset.Store
	gw    chat.Asker
	log   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*chat.Session
}

// New creates the API handler.
func New(store *dataset.Store, gw chat.Asker, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store:    store,
		gw:       gw,
		log:      log,
		sessions: make(map[string]*chat.Session),
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch {
	case r.URL.Path == "/api/query":
		h.handleQuery(w, r)
	case r.URL.Path == "/api/datasets":
		h.handleDatasets(w, r)
	case r.URL.Path == "/api/messages":
		h.handleMessages(w, r)
	case r.URL.Path == "/api/seed":
		h.handleSeed(w, r)
	case r.URL.Path == "/api/examples":
		h.handleExamples(w, r)
	case r.URL.Path == "/healthz":
		h.handleHealth(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

type queryRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

type queryResponse struct {
	SessionID      string               `json:"session_id"`
	Answer         string               `json:"answer"`
	Citations      []normalize.Citation `json:"citations"`
	Visualizations any                  `json:"visualizations"`
}

func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	sess := h.session(req.SessionID)
	msg, err := sess.Send(r.Context(), req.Question)
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion):
		writeError(w, http.StatusBadRequest, "question is required")
		return
	case errors.Is(err, chat.ErrBusy):
		writeError(w, http.StatusConflict, "a question is already being processed for this session")
		return
	case err != nil:
		h.log.Error("query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		SessionID:      sess.ID,
		Answer:         msg.Content,
		Citations:      msg.Citations,
		Visualizations: msg.Visualizations,
	})
}

func (h *Handler) handleDatasets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	datasets, err := h.store.List()
	if err != nil {
		h.log.Error("failed to list datasets", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list datasets")
		return
	}
	if datasets == nil {
		datasets = []dataset.Dataset{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"datasets": datasets})
}

func (h *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	msgs, err := h.store.Messages(sessionID)
	if err != nil {
		h.log.Error("failed to load messages", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load messages")
		return
	}
	if msgs == nil {
		msgs = []dataset.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

func (h *Handler) handleSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	n, err := dataset.Seed(h.store)
	if err != nil {
		h.log.Error("seeding failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "seeding failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": n})
}

func (h *Handler) handleExamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"examples": chat.ExampleQuestions})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// session returns the session for id, creating one when id is empty
// or unknown. An unknown non-empty id resumes under that id so
// clients can reconnect to stored transcripts.
func (h *Handler) session(id string) *chat.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	if id != "" {
		if s, ok := h.sessions[id]; ok {
			return s
		}
	}

	var s *chat.Session
	if id == "" {
		s = chat.NewSession(h.store, h.gw, h.log)
	} else {
		s = chat.NewSessionWithID(id, h.store, h.gw, h.log)
	}
	h.sessions[s.ID] = s
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
