package chat

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agridata/internal/dataset"
	"agridata/internal/llm"
)

type scriptedGateway struct {
	text string
	err  error

	mu      sync.Mutex
	asks    int
	release chan struct{} // when set, Ask blocks until closed
}

func (g *scriptedGateway) Ask(ctx context.Context, prompt string) (llm.Result, error) {
	g.mu.Lock()
	g.asks++
	release := g.release
	g.mu.Unlock()

	if release != nil {
		<-release
	}
	if g.err != nil {
		return llm.Result{}, g.err
	}
	return llm.Result{Text: g.text, Model: "test-model"}, nil
}

func seededStore(t *testing.T) *dataset.Store {
	t.Helper()
	s, err := dataset.Open(filepath.Join(t.TempDir(), "chat.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	_, err = dataset.Seed(s)
	require.NoError(t, err)
	return s
}

func TestSendReturnsNormalizedAnswer(t *testing.T) {
	gw := &scriptedGateway{text: "```json\n{\"answer\": \"Ludhiana leads\", \"citations\": [{\"dataset\": \"Rainfall Data\", \"source\": \"2022 rows\"}]}\n```"}
	sess := NewSession(seededStore(t), gw, zap.NewNop())

	msg, err := sess.Send(context.Background(), "Which district had the most rain?")
	require.NoError(t, err)

	assert.Equal(t, dataset.RoleAssistant, msg.Role)
	assert.Equal(t, "Ludhiana leads", msg.Content)
	require.Len(t, msg.Citations, 1)
	assert.Equal(t, "Rainfall Data", msg.Citations[0].Dataset)
}

func TestSendRejectsEmptyQuestion(t *testing.T) {
	gw := &scriptedGateway{text: "unused"}
	sess := NewSession(seededStore(t), gw, zap.NewNop())

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := sess.Send(context.Background(), q)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	}
	assert.Equal(t, 0, gw.asks)
	assert.Empty(t, sess.History())
}

func TestSendBusyWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	gw := &scriptedGateway{text: `{"answer": "done"}`, release: release}
	sess := NewSession(seededStore(t), gw, zap.NewNop())

	firstDone := make(chan error, 1)
	go func() {
		_, err := sess.Send(context.Background(), "slow question")
		firstDone <- err
	}()

	// Wait until the first send is inside the gateway.
	require.Eventually(t, func() bool {
		gw.mu.Lock()
		defer gw.mu.Unlock()
		return gw.asks == 1
	}, time.Second, time.Millisecond)

	_, err := sess.Send(context.Background(), "second question")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-firstDone)

	// The session is usable again after the first send completes.
	gw.release = nil
	_, err = sess.Send(context.Background(), "third question")
	assert.NoError(t, err)
}

func TestSendFallsBackWhenGatewayExhausted(t *testing.T) {
	gw := &scriptedGateway{err: llm.ErrExhausted}
	sess := NewSession(seededStore(t), gw, zap.NewNop())

	msg, err := sess.Send(context.Background(), "Compare wheat production across districts in Uttar Pradesh")
	require.NoError(t, err)

	assert.Contains(t, msg.Content, "Lucknow")
	require.NotEmpty(t, msg.Citations)
	assert.Equal(t, offlineSource, msg.Citations[0].Source)
}

func TestSendFallbackDefaultAnswer(t *testing.T) {
	gw := &scriptedGateway{err: errors.New("network down")}
	sess := NewSession(seededStore(t), gw, zap.NewNop())

	msg, err := sess.Send(context.Background(), "what is the meaning of life")
	require.NoError(t, err)
	assert.Equal(t, defaultOfflineResponse.Answer, msg.Content)
	assert.Empty(t, msg.Citations)
}

func TestSendWithoutDatasets(t *testing.T) {
	s, err := dataset.Open(filepath.Join(t.TempDir(), "empty.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	gw := &scriptedGateway{text: "unused"}
	sess := NewSession(s, gw, zap.NewNop())

	msg, err := sess.Send(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, noDatasetsAnswer, msg.Content)
	assert.Equal(t, 0, gw.asks, "gateway must not be called with an empty store")
}

func TestSendPersistsBothTurns(t *testing.T) {
	store := seededStore(t)
	gw := &scriptedGateway{text: `{"answer": "persisted"}`}
	sess := NewSession(store, gw, zap.NewNop())

	_, err := sess.Send(context.Background(), "a question")
	require.NoError(t, err)

	msgs, err := store.Messages(sess.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, dataset.RoleUser, msgs[0].Role)
	assert.Equal(t, "a question", msgs[0].Content)
	assert.Equal(t, dataset.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "persisted", msgs[1].Content)
}

func TestSendSurvivesNilStore(t *testing.T) {
	gw := &scriptedGateway{text: "unused"}
	sess := NewSession(nil, gw, zap.NewNop())

	msg, err := sess.Send(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, noDatasetsAnswer, msg.Content)
	assert.Len(t, sess.History(), 2)
}

func TestOfflineAnswerKeywordRouting(t *testing.T) {
	cases := []struct {
		question string
		contains string
	}{
		{"Which district in Punjab had the highest rainfall in 2022?", "Ludhiana"},
		{"Compare wheat production across districts in Uttar Pradesh", "5,250 tonnes"},
		{"Show me the rice production trend in Ludhiana", "6,125 tonnes in 2018"},
		{"Which crops are grown in the driest districts of Rajasthan?", "Jodhpur"},
		{"tell me about quantum physics", "unable to reach"},
	}
	for _, tc := range cases {
		got := offlineAnswer(tc.question)
		if !strings.Contains(got.Answer, tc.contains) {
			t.Errorf("offlineAnswer(%q) = %q, want containing %q", tc.question, got.Answer, tc.contains)
		}
		if got.Citations == nil {
			t.Errorf("offlineAnswer(%q) returned nil citations", tc.question)
		}
	}
}
