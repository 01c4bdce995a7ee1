package conversation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender tags which side of the conversation produced a message.
type Sender string

const (
	SenderUser     Sender = "user"
	SenderAncestor Sender = "ancestor"
)

// Message is a single entry in a conversation transcript. Messages are
// immutable after creation and ordered by their creation timestamp.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageOption func(*Message)

func WithID(id string) MessageOption {
	return func(m *Message) {
		m.ID = id
	}
}

func WithTimestamp(t time.Time) MessageOption {
	return func(m *Message) {
		m.Timestamp = t
	}
}

func NewMessage(sender Sender, content string, options ...MessageOption) Message {
	ret := Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}

	for _, option := range options {
		option(&ret)
	}

	return ret
}

// Conversation is the ordered transcript of a session.
type Conversation []Message

// LastBySender returns the most recent message with the given sender tag.
func (c Conversation) LastBySender(sender Sender) (Message, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Sender == sender {
			return c[i], true
		}
	}
	return Message{}, false
}

// Transcript renders the conversation as plain text, one line per message,
// labelled by speaker. Used for exports.
func (c Conversation) Transcript(ancestorName string) string {
	var sb strings.Builder
	for _, msg := range c {
		label := "You"
		if msg.Sender == SenderAncestor {
			label = ancestorName
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", label, msg.Content))
	}
	return sb.String()
}
