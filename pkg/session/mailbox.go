package session

import (
	"encoding/json"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/kv"
)

// Mailbox is the one-shot hand-off channel used to pass a resumed
// conversation's messages to the live chat surface. It is a single-slot
// write-once, read-once-then-clear box keyed by (persona name, ethnicity):
// Take removes the payload immediately after the first read, decodable or
// not, so stale state never leaks into a future session.
type Mailbox struct {
	backend   kv.Store
	namespace string
}

func NewMailbox(backend kv.Store, namespace string) *Mailbox {
	return &Mailbox{
		backend:   backend,
		namespace: namespace,
	}
}

func (m *Mailbox) key(personaName, ethnicity string) string {
	return fmt.Sprintf("%s_chat_%s_%s", m.namespace, personaName, ethnicity)
}

// Put writes the hand-off payload, replacing any pending one.
func (m *Mailbox) Put(personaName, ethnicity string, messages conversation.Conversation) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return pkgerrors.Wrap(err, "encode hand-off payload")
	}
	if err := m.backend.Set(m.key(personaName, ethnicity), data); err != nil {
		return pkgerrors.Wrap(err, "write hand-off payload")
	}
	return nil
}

// Take reads and clears the hand-off payload. The boolean reports whether a
// payload was present; an undecodable payload counts as absent (and is still
// cleared).
func (m *Mailbox) Take(personaName, ethnicity string) (conversation.Conversation, bool) {
	key := m.key(personaName, ethnicity)

	data, ok, err := m.backend.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to read hand-off payload")
		_ = m.backend.Delete(key)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	if err := m.backend.Delete(key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to clear hand-off payload")
	}

	var messages conversation.Conversation
	if err := json.Unmarshal(data, &messages); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to decode hand-off payload")
		return nil, false
	}
	return messages, true
}

// Pending reports whether a hand-off payload is waiting for pickup.
func (m *Mailbox) Pending(personaName, ethnicity string) bool {
	_, ok, err := m.backend.Get(m.key(personaName, ethnicity))
	return err == nil && ok
}
