package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/inference"
	"github.com/kinecta/kinecta/pkg/profile"
	"github.com/kinecta/kinecta/pkg/prompt"
	"github.com/kinecta/kinecta/pkg/session"
)

// ErrTurnInFlight reports a submit while a generation request is already
// running. Only one request may be in flight per session.
var ErrTurnInFlight = errors.New("a generation request is already in flight")

// Orchestrator drives one request/response cycle at a time. It owns the live
// message buffer, builds the persona context, calls the generation backend
// and hands completed exchanges to the session controller for persistence.
type Orchestrator struct {
	mu         sync.Mutex
	buffer     conversation.Conversation
	generating bool

	controller    *session.Controller
	engine        inference.Engine
	profiles      *profile.Store
	greetingDelay time.Duration
}

type OrchestratorOption func(*Orchestrator)

// WithGreetingDelay sets the artificial pause before the opening greeting. A
// zero delay is allowed.
func WithGreetingDelay(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.greetingDelay = d
	}
}

// WithProfileStore lets the orchestrator enrich prompts with the descendant's
// profile.
func WithProfileStore(store *profile.Store) OrchestratorOption {
	return func(o *Orchestrator) {
		o.profiles = store
	}
}

func NewOrchestrator(controller *session.Controller, engine inference.Engine, options ...OrchestratorOption) *Orchestrator {
	ret := &Orchestrator{
		controller:    controller,
		engine:        engine,
		greetingDelay: time.Second,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Messages returns a copy of the live buffer.
func (o *Orchestrator) Messages() conversation.Conversation {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(conversation.Conversation, len(o.buffer))
	copy(out, o.buffer)
	return out
}

// Generating reports whether a request is in flight. The input affordance
// must stay disabled while this is true.
func (o *Orchestrator) Generating() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generating
}

// Start seeds the live buffer for a session: a resumed conversation's
// messages are picked up from the hand-off mailbox, a fresh session gets the
// ancestor's greeting after a short pause that emulates the ancestor
// beginning to speak.
func (o *Orchestrator) Start(ctx context.Context) error {
	persona, ok := o.controller.Persona()
	if !ok {
		return session.ErrNoActivePersona
	}

	if o.controller.State() == session.StateResuming {
		if messages, ok := o.controller.ConsumeHandoff(); ok {
			o.mu.Lock()
			o.buffer = messages
			o.mu.Unlock()
			log.Debug().Int("messages", len(messages)).Msg("live buffer seeded from hand-off")
			return nil
		}
	}

	o.mu.Lock()
	empty := len(o.buffer) == 0
	o.mu.Unlock()
	if !empty {
		return nil
	}

	if o.greetingDelay > 0 {
		select {
		case <-time.After(o.greetingDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	greeting := conversation.NewMessage(conversation.SenderAncestor, Greeting(persona.Ethnicity))
	o.mu.Lock()
	o.buffer = append(o.buffer, greeting)
	o.mu.Unlock()
	return nil
}

// Submit runs one full turn: optimistic user append, context construction,
// backend call, ancestor append, persistence. Backend failures degrade to a
// locally synthesized persona-flavored reply so the conversation never
// stalls; the degraded exchange is persisted like any other.
//
// Empty or whitespace-only input is ignored with no observable effect.
func (o *Orchestrator) Submit(ctx context.Context, userText string) error {
	trimmed := strings.TrimSpace(userText)
	if trimmed == "" {
		return nil
	}

	sel, ok := o.controller.Selection()
	if !ok {
		return session.ErrNoActivePersona
	}
	persona, _ := o.controller.Persona()

	o.mu.Lock()
	if o.generating {
		o.mu.Unlock()
		return ErrTurnInFlight
	}
	o.generating = true
	priorMessages := make(conversation.Conversation, len(o.buffer))
	copy(priorMessages, o.buffer)
	o.buffer = append(o.buffer, conversation.NewMessage(conversation.SenderUser, trimmed))
	o.mu.Unlock()

	var userProfile *profile.Profile
	if o.profiles != nil {
		if p, ok := o.profiles.Load(); ok {
			userProfile = &p
		}
	}

	reply := ""
	_, turns, err := prompt.Build(sel, persona, userProfile, priorMessages, trimmed)
	if err != nil {
		log.Warn().Err(err).Msg("failed to build persona context, using fallback response")
		reply = FallbackResponse(sel.Ethnicity)
	} else {
		reply, err = o.engine.Generate(ctx, turns)
		if err != nil {
			log.Warn().Err(err).Msg("generation backend failed, using fallback response")
			reply = FallbackResponse(sel.Ethnicity)
		}
	}

	o.mu.Lock()
	o.buffer = append(o.buffer, conversation.NewMessage(conversation.SenderAncestor, reply))
	snapshot := make(conversation.Conversation, len(o.buffer))
	copy(snapshot, o.buffer)
	o.generating = false
	o.mu.Unlock()

	if _, err := o.controller.CompleteTurn(snapshot); err != nil {
		return err
	}
	return nil
}

// Reset clears the live buffer and returns the session to idle.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.buffer = nil
	o.mu.Unlock()
	o.controller.Reset()
}
