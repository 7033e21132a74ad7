package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/astraldesk/astral/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (m *mockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.prompts = append(m.prompts, req.Prompt)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test-model"}, nil
}

func (m *mockClient) Available(_ context.Context) bool { return m.err == nil }

func TestHandleMessageLocalLookupSkipsClient(t *testing.T) {
	client := &mockClient{err: llm.ErrUnavailable}
	o := NewOrchestrator(testProfile(), testDataset(t), client, nil)
	sess := NewSession()

	reply := o.HandleMessage(context.Background(), sess, "tell me about aries")

	assert.Equal(t, SourceLocal, reply.Source)
	assert.Equal(t, "zodiac_signs", reply.Category)
	assert.Contains(t, reply.Text, "Aries")
	assert.Zero(t, client.calls, "local lookups must not touch the completion service")
}

func TestHandleMessageAppendsTurnsInOrder(t *testing.T) {
	o := NewOrchestrator(testProfile(), testDataset(t), &mockClient{response: "hi"}, nil)
	sess := NewSession()

	reply := o.HandleMessage(context.Background(), sess, "horoscope for leo")

	require.Len(t, sess.Turns, 2)
	assert.Equal(t, RoleUser, sess.Turns[0].Role)
	assert.Equal(t, "horoscope for leo", sess.Turns[0].Content)
	assert.Equal(t, RoleAssistant, sess.Turns[1].Role)
	assert.Equal(t, reply.Text, sess.Turns[1].Content)
}

func TestHandleMessageLocalIsIdempotent(t *testing.T) {
	o := NewOrchestrator(testProfile(), testDataset(t), nil, nil)

	first := o.HandleMessage(context.Background(), NewSession(), "tell me about aries")
	second := o.HandleMessage(context.Background(), NewSession(), "tell me about aries")

	assert.Equal(t, first.Text, second.Text)
}

func TestHandleMessageExternalFallback(t *testing.T) {
	client := &mockClient{response: "The capital of France is Paris."}
	o := NewOrchestrator(testProfile(), testDataset(t), client, nil)
	sess := NewSession()

	reply := o.HandleMessage(context.Background(), sess, "what is the capital of France?")

	assert.Equal(t, SourceLLM, reply.Source)
	assert.Equal(t, "The capital of France is Paris.", reply.Text)
	assert.Equal(t, 1, client.calls)
	require.Len(t, sess.Turns, 2)
	assert.Equal(t, RoleAssistant, sess.Turns[1].Role)
}

func TestHandleMessagePromptCarriesPersonaAndHistory(t *testing.T) {
	client := &mockClient{response: "ok"}
	o := NewOrchestrator(testProfile(), testDataset(t), client, nil)
	sess := NewSession()

	o.HandleMessage(context.Background(), sess, "what's for lunch?")
	o.HandleMessage(context.Background(), sess, "and for dinner?")

	require.Len(t, client.prompts, 2)
	second := client.prompts[1]
	assert.True(t, strings.HasPrefix(second, "You are a test assistant."))
	assert.Contains(t, second, "user: what's for lunch?")
	assert.Contains(t, second, "assistant: ok")
	assert.Contains(t, second, "Now respond to this:\nand for dinner?")
}

func TestHandleMessageExternalFailureReturnsApology(t *testing.T) {
	client := &mockClient{err: errors.New("boom")}
	o := NewOrchestrator(testProfile(), testDataset(t), client, nil)
	sess := NewSession()

	reply := o.HandleMessage(context.Background(), sess, "what is the capital of France?")

	assert.Equal(t, SourceFallback, reply.Source)
	assert.Equal(t, "⚠️ Sorry, something went wrong.", reply.Text)

	// The failed turn is displayed but not recorded as assistant history.
	require.Len(t, sess.Turns, 1)
	assert.Equal(t, RoleUser, sess.Turns[0].Role)
}

func TestHandleMessageNilClientDegrades(t *testing.T) {
	p := testProfile()
	p.DefaultReply = "Ask me about zodiac signs, horoscopes or festivals."
	o := NewOrchestrator(p, testDataset(t), nil, nil)
	sess := NewSession()

	reply := o.HandleMessage(context.Background(), sess, "what is the capital of France?")

	assert.Equal(t, SourceFallback, reply.Source)
	assert.Equal(t, p.DefaultReply, reply.Text)
}

func TestHandleMessageEmptyInputGreets(t *testing.T) {
	p := testProfile()
	p.Greeting = "Hello!"
	o := NewOrchestrator(p, testDataset(t), nil, nil)
	sess := NewSession()

	reply := o.HandleMessage(context.Background(), sess, "   ")

	assert.Equal(t, "Hello!", reply.Text)
	assert.Empty(t, sess.Turns)
}

func TestSessionHistoryIsACopy(t *testing.T) {
	o := NewOrchestrator(testProfile(), testDataset(t), nil, nil)
	sess := NewSession()
	o.HandleMessage(context.Background(), sess, "tell me about aries")

	hist := sess.History()
	require.Len(t, hist, 2)
	hist[0].Content = "mutated"
	assert.Equal(t, "tell me about aries", sess.Turns[0].Content)
}
