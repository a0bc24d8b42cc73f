// Package chat runs question-answer sessions over the loaded
// datasets. A session serializes sends, persists both sides of each
// turn best-effort, and degrades to canned offline answers when no
// model can be reached.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agridata/internal/dataset"
	"agridata/internal/llm"
	"agridata/internal/normalize"
	"agridata/internal/prompt"
)

var (
	// ErrBusy reports a send while a previous send on the same
	// session is still in flight.
	ErrBusy = errors.New("chat: a question is already being processed")

	// ErrEmptyQuestion reports a blank question.
	ErrEmptyQuestion = errors.New("chat: question is empty")
)

// Answer shown when the store has no datasets yet.
const noDatasetsAnswer = "I don't have any datasets loaded yet. Please wait while the system initializes with sample agricultural and climate data."

// Asker is the slice of the model gateway a session needs.
type Asker interface {
	Ask(ctx context.Context, prompt string) (llm.Result, error)
}

// Session is one conversation. Methods are safe for concurrent use;
// at most one Send runs at a time and overlapping sends fail fast
// with ErrBusy rather than queueing.
type Session struct {
	ID string

	store *dataset.Store
	gw    Asker
	log   *zap.Logger

	sendMu  sync.Mutex // held for the duration of one Send
	histMu  sync.Mutex
	history []dataset.Message
}

// NewSession creates a session with a fresh random ID. store may be
// nil for ephemeral sessions without persistence.
func NewSession(store *dataset.Store, gw Asker, log *zap.Logger) *Session {
	return NewSessionWithID(uuid.NewString(), store, gw, log)
}

// NewSessionWithID creates a session resuming an existing ID.
func NewSessionWithID(id string, store *dataset.Store, gw Asker, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		ID:    id,
		store: store,
		gw:    gw,
		log:   log.With(zap.String("session", id)),
	}
}

// History returns a copy of the in-memory transcript.
func (s *Session) History() []dataset.Message {
	s.histMu.Lock()
	defer s.histMu.Unlock()
	out := make([]dataset.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Send asks one question and returns the assistant's turn. The
// question is trimmed first; a blank question is rejected without
// touching the session. A second Send while one is in flight returns
// ErrBusy immediately.
//
// Send never fails past the input checks: gateway exhaustion falls
// back to a canned offline answer, and persistence failures are
// logged and swallowed.
func (s *Session) Send(ctx context.Context, question string) (dataset.Message, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return dataset.Message{}, ErrEmptyQuestion
	}

	if !s.sendMu.TryLock() {
		return dataset.Message{}, ErrBusy
	}
	defer s.sendMu.Unlock()

	s.record(dataset.Message{
		SessionID: s.ID,
		Role:      dataset.RoleUser,
		Content:   question,
	})

	resp := s.answer(ctx, question)

	reply := dataset.Message{
		SessionID:      s.ID,
		Role:           dataset.RoleAssistant,
		Content:        resp.Answer,
		Citations:      resp.Citations,
		Visualizations: resp.Visualizations,
	}
	s.record(reply)
	return reply, nil
}

// answer produces the normalized response for a question. It is total
// past this point: every failure path maps to some usable Response.
func (s *Session) answer(ctx context.Context, question string) normalize.Response {
	datasets := s.loadDatasets()
	if len(datasets) == 0 {
		return normalize.Response{
			Answer:    noDatasetsAnswer,
			Citations: []normalize.Citation{},
		}
	}

	p := prompt.Build(question, datasets)
	res, err := s.gw.Ask(ctx, p)
	if err != nil {
		s.log.Warn("model gateway failed, using offline answer", zap.Error(err))
		return offlineAnswer(question)
	}

	s.log.Debug("answer generated", zap.String("model", res.Model))
	return normalize.Normalize(res.Text)
}

func (s *Session) loadDatasets() []dataset.Dataset {
	if s.store == nil {
		return nil
	}
	datasets, err := s.store.List()
	if err != nil {
		s.log.Warn("failed to load datasets", zap.Error(err))
		return nil
	}
	return datasets
}

// record appends a turn to the in-memory transcript and persists it.
// Persistence is best-effort: a failed write is logged and the
// conversation continues.
func (s *Session) record(m dataset.Message) {
	s.histMu.Lock()
	s.history = append(s.history, m)
	s.histMu.Unlock()

	if s.store == nil {
		return
	}
	if err := s.store.SaveMessage(m); err != nil {
		s.log.Warn("failed to persist message",
			zap.String("role", m.Role),
			zap.Error(err))
	}
}
