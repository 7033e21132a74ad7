package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/astraldesk/astral/internal/dataset"
	"github.com/astraldesk/astral/internal/llm"
	"github.com/astraldesk/astral/internal/profile"
	"github.com/google/uuid"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role    string
	Content string
}

// Session holds one conversation. It is owned by the caller and passed
// into HandleMessage; the engine keeps no per-conversation state of its
// own. Turns are append-only and live only as long as the session.
type Session struct {
	ID    string
	Turns []Turn
}

// NewSession creates an empty conversation session.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// History returns a copy of the turns so far, for context display.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.Turns))
	copy(out, s.Turns)
	return out
}

// Source tells the UI where a reply came from.
type Source string

const (
	SourceLocal    Source = "local"    // answered from the reference dataset
	SourceLLM      Source = "llm"      // answered by the completion service
	SourceFallback Source = "fallback" // fixed apology/guidance after a failure
)

// Reply is the engine's answer to one message.
type Reply struct {
	Text     string
	Source   Source
	Category string
}

// Orchestrator routes each incoming message either through the local
// classifier/resolver pipeline or out to the completion service.
type Orchestrator struct {
	profile    *profile.Profile
	classifier *Classifier
	resolver   *Resolver
	client     llm.Client
	logger     *slog.Logger
}

// NewOrchestrator wires the engine for one profile and dataset. client may
// be nil; the external path then degrades to fixed guidance text.
func NewOrchestrator(p *profile.Profile, d *dataset.Dataset, client llm.Client, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		profile:    p,
		classifier: NewClassifier(p),
		resolver:   NewResolver(p, d),
		client:     client,
		logger:     logger,
	}
}

// Profile returns the active profile, for UI collaborators.
func (o *Orchestrator) Profile() *profile.Profile { return o.profile }

// HandleMessage processes one user message and returns the text to
// display. Local lookups are synchronous; otherwise a single completion
// call is made, with no retry. The user turn is always recorded; the
// assistant turn is recorded only for successful replies, so a failed
// external call leaves the history exactly as it was sent.
func (o *Orchestrator) HandleMessage(ctx context.Context, sess *Session, text string) *Reply {
	text = strings.TrimSpace(text)
	if text == "" {
		return &Reply{Text: o.profile.Greeting, Source: SourceLocal}
	}

	sess.Turns = append(sess.Turns, Turn{Role: RoleUser, Content: text})

	var reply *Reply
	if o.classifier.InDomain(text) {
		reply = o.resolveLocal(text)
	} else {
		reply = o.complete(ctx, sess, text)
	}

	if reply.Source != SourceFallback {
		sess.Turns = append(sess.Turns, Turn{Role: RoleAssistant, Content: reply.Text})
	}
	return reply
}

func (o *Orchestrator) resolveLocal(text string) *Reply {
	if category, ok := o.classifier.Route(text); ok {
		answer := o.resolver.Resolve(category, text)
		o.logger.Debug("local lookup", "category", category)
		return &Reply{Text: answer, Source: SourceLocal, Category: category}
	}

	if o.profile.FulltextFallback {
		if answer, ok := o.resolver.SearchAll(text); ok {
			o.logger.Debug("full-text fallback hit")
			return &Reply{Text: answer, Source: SourceLocal}
		}
	}

	return &Reply{Text: o.defaultReply(), Source: SourceLocal}
}

func (o *Orchestrator) complete(ctx context.Context, sess *Session, text string) *Reply {
	if o.client == nil {
		return &Reply{Text: o.defaultReply(), Source: SourceFallback}
	}

	prompt := buildPrompt(o.profile.Persona, sess.Turns, text)
	resp, err := o.client.Generate(ctx, llm.GenerateRequest{Prompt: prompt})
	if err != nil {
		o.logger.Warn("completion call failed", "error", err)
		return &Reply{Text: o.apology(), Source: SourceFallback}
	}

	return &Reply{Text: strings.TrimSpace(resp.Text), Source: SourceLLM}
}

func (o *Orchestrator) apology() string {
	if o.profile.Apology != "" {
		return o.profile.Apology
	}
	return "⚠️ Sorry, I encountered an error. Please try again."
}

func (o *Orchestrator) defaultReply() string {
	if o.profile.DefaultReply != "" {
		return o.profile.DefaultReply
	}
	return o.apology()
}

// buildPrompt serializes the persona preamble, the conversation so far and
// the new message into the single prompt string the completion service
// expects. The current user turn is already in turns at this point, so the
// history section ends with it before the explicit instruction.
func buildPrompt(persona string, turns []Turn, text string) string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\nCurrent conversation context:\n")
	for _, turn := range turns {
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nNow respond to this:\n")
	b.WriteString(text)
	return b.String()
}
