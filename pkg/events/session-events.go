package events

import (
	"time"
)

type EventType string

const (
	// EventTypeHeritageSelected is published when a heritage selection is made
	// and a fresh persona becomes active.
	EventTypeHeritageSelected EventType = "heritage-selected"
	// EventTypeTurnCompleted is published after an exchange has been persisted.
	EventTypeTurnCompleted EventType = "turn-completed"
	// EventTypeConversationResumed is published when a saved conversation has
	// been promoted back into the live session.
	EventTypeConversationResumed EventType = "conversation-resumed"
	// EventTypeSessionReset is published when the session returns to idle.
	EventTypeSessionReset EventType = "session-reset"
)

// SessionEvent is the payload distributed to session observers. UIs use it to
// re-render without polling the controller.
type SessionEvent struct {
	Type           EventType `json:"type"`
	ConversationID string    `json:"conversationId,omitempty"`
	AncestorName   string    `json:"ancestorName,omitempty"`
	Ethnicity      string    `json:"ethnicity,omitempty"`
	MessageCount   int       `json:"messageCount,omitempty"`
	Time           time.Time `json:"time"`
}

// TopicSession is the topic session events are published on.
const TopicSession = "session"
