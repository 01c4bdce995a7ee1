package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/events"
	"github.com/kinecta/kinecta/pkg/heritage"
	"github.com/kinecta/kinecta/pkg/history"
)

var (
	// ErrResumeUnsupported reports a resume attempt on a legacy record that
	// lacks the persona/heritage snapshot. The session state is unchanged.
	ErrResumeUnsupported = errors.New("conversation cannot be resumed: missing persona or heritage snapshot")
	// ErrNoActivePersona reports a turn completion without a prior selection.
	ErrNoActivePersona = errors.New("no active persona selected")
)

// State describes where the session currently is in its lifecycle.
type State string

const (
	// StateIdle: no heritage selection.
	StateIdle State = "idle"
	// StateFresh: persona selected, no durable record yet.
	StateFresh State = "fresh"
	// StateActive: a current record exists and turns are being exchanged.
	StateActive State = "active"
	// StateResuming: a hand-off payload has been written but the live chat
	// surface has not consumed it yet.
	StateResuming State = "resuming"
)

// Controller owns which conversation is active right now. It mediates between
// the live message buffer (owned by the chat surface) and the durable record
// store, and implements the resume and end-of-turn semantics.
//
// Construct one Controller per running application and inject it where
// needed; observers subscribe through the publisher manager instead of
// sharing mutable state.
type Controller struct {
	mu        sync.Mutex
	store     *history.Store
	mailbox   *Mailbox
	publisher *events.PublisherManager

	selection *heritage.Selection
	persona   *heritage.Persona
	currentID string
	resuming  bool
}

type ControllerOption func(*Controller)

func WithPublisherManager(pm *events.PublisherManager) ControllerOption {
	return func(c *Controller) {
		c.publisher = pm
	}
}

func NewController(store *history.Store, mailbox *Mailbox, options ...ControllerOption) *Controller {
	ret := &Controller{
		store:     store,
		mailbox:   mailbox,
		publisher: events.NewPublisherManager(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// PublisherManager exposes the event fan-out so UIs can subscribe.
func (c *Controller) PublisherManager() *events.PublisherManager {
	return c.publisher
}

// Store exposes the underlying record store for read-only views such as the
// conversation history listing.
func (c *Controller) Store() *history.Store {
	return c.store
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.persona == nil:
		return StateIdle
	case c.resuming:
		return StateResuming
	case c.currentID == "":
		return StateFresh
	default:
		return StateActive
	}
}

// Selection returns the active heritage selection, if any.
func (c *Controller) Selection() (heritage.Selection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection == nil {
		return heritage.Selection{}, false
	}
	return *c.selection, true
}

// Persona returns the active ancestor persona, if any.
func (c *Controller) Persona() (heritage.Persona, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.persona == nil {
		return heritage.Persona{}, false
	}
	return *c.persona, true
}

// CurrentID returns the identifier of the current durable record, or "" when
// no turn has been persisted yet.
func (c *Controller) CurrentID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentID
}

// SelectHeritage validates the selection, derives a fresh persona from it and
// moves the session to the fresh state. Any current record pointer is
// cleared; the previous conversation stays persisted.
func (c *Controller) SelectHeritage(sel heritage.Selection) error {
	if err := heritage.Validate(sel); err != nil {
		return err
	}

	persona := heritage.NewPersona(sel)

	c.mu.Lock()
	c.selection = &sel
	c.persona = &persona
	c.currentID = ""
	c.resuming = false
	c.mu.Unlock()

	log.Debug().Str("ethnicity", sel.Ethnicity).Str("persona", persona.Name).Msg("heritage selected")
	c.publisher.PublishBlind(&events.SessionEvent{
		Type:         events.EventTypeHeritageSelected,
		AncestorName: persona.Name,
		Ethnicity:    sel.Ethnicity,
		Time:         time.Now(),
	})
	return nil
}

// CompleteTurn persists the live buffer at the end of an exchange. The first
// completed turn of a session creates the durable record and makes it
// current; later turns update that record in place. The bookmark flag of an
// existing record survives updates.
func (c *Controller) CompleteTurn(messages conversation.Conversation) (history.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.persona == nil || c.selection == nil {
		return history.Record{}, ErrNoActivePersona
	}

	record := history.Record{
		AncestorName: c.persona.Name,
		Heritage:     c.selection.Ethnicity,
		Date:         time.Now().UTC().Format(time.RFC3339),
		MessageCount: len(messages),
		Preview:      conversation.DerivePreview(messages),
		Messages:     messages,
		Persona:      c.persona,
		Selection:    c.selection,
	}

	if c.currentID == "" {
		record.ID = uuid.NewString()
		if err := c.store.Create(record); err != nil {
			return history.Record{}, err
		}
		c.currentID = record.ID
	} else {
		record.ID = c.currentID
		if existing, ok := c.store.Get(c.currentID); ok {
			record.Bookmarked = existing.Bookmarked
		}
		if err := c.store.Update(record); err != nil {
			return history.Record{}, err
		}
	}

	c.publisher.PublishBlind(&events.SessionEvent{
		Type:           events.EventTypeTurnCompleted,
		ConversationID: record.ID,
		AncestorName:   record.AncestorName,
		Ethnicity:      record.Heritage,
		MessageCount:   record.MessageCount,
		Time:           time.Now(),
	})
	return record, nil
}

// DeleteRecord removes a persisted conversation. Deleting the current record
// clears the current pointer, so the next completed turn starts a brand-new
// record.
func (c *Controller) DeleteRecord(id string) error {
	if err := c.store.Delete(id); err != nil {
		return err
	}

	c.mu.Lock()
	if c.currentID == id {
		c.currentID = ""
	}
	c.mu.Unlock()
	return nil
}

// Resume promotes a saved conversation back into the active session. Legacy
// records without the persona/heritage snapshot fail with
// ErrResumeUnsupported and leave the session untouched. When the record
// carries messages, they are written to the hand-off mailbox for the chat
// surface to pick up.
func (c *Controller) Resume(record history.Record) error {
	if !record.Resumable() {
		log.Warn().Str("id", record.ID).Msg("cannot resume conversation: missing persona or heritage snapshot")
		return ErrResumeUnsupported
	}

	handoff := len(record.Messages) > 0
	if handoff {
		if err := c.mailbox.Put(record.Persona.Name, record.Selection.Ethnicity, record.Messages); err != nil {
			return err
		}
	}

	sel := *record.Selection
	persona := *record.Persona

	c.mu.Lock()
	c.selection = &sel
	c.persona = &persona
	c.currentID = record.ID
	c.resuming = handoff
	c.mu.Unlock()

	log.Debug().Str("id", record.ID).Int("messages", len(record.Messages)).Msg("conversation resumed")
	c.publisher.PublishBlind(&events.SessionEvent{
		Type:           events.EventTypeConversationResumed,
		ConversationID: record.ID,
		AncestorName:   persona.Name,
		Ethnicity:      sel.Ethnicity,
		MessageCount:   len(record.Messages),
		Time:           time.Now(),
	})
	return nil
}

// ConsumeHandoff hands the resumed messages to the live chat surface. The
// payload is cleared on first read regardless of outcome; afterwards the
// session is active.
func (c *Controller) ConsumeHandoff() (conversation.Conversation, bool) {
	c.mu.Lock()
	persona := c.persona
	selection := c.selection
	c.resuming = false
	c.mu.Unlock()

	if persona == nil || selection == nil {
		return nil, false
	}
	return c.mailbox.Take(persona.Name, selection.Ethnicity)
}

// Reset returns the session to idle. Selection, persona and the current
// record pointer are cleared; persisted records are untouched.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.selection = nil
	c.persona = nil
	c.currentID = ""
	c.resuming = false
	c.mu.Unlock()

	c.publisher.PublishBlind(&events.SessionEvent{
		Type: events.EventTypeSessionReset,
		Time: time.Now(),
	})
}
