package events

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	topics   []string
	messages []*message.Message
}

var _ message.Publisher = (*capturingPublisher)(nil)

func (p *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		p.topics = append(p.topics, topic)
		p.messages = append(p.messages, msg)
	}
	return nil
}

func (p *capturingPublisher) Close() error {
	return nil
}

func TestPublishDistributesToSubscribedTopic(t *testing.T) {
	manager := NewPublisherManager()
	publisher := &capturingPublisher{}
	manager.SubscribePublisher(TopicSession, publisher)

	event := &SessionEvent{
		Type:           EventTypeTurnCompleted,
		ConversationID: "conv-1",
		AncestorName:   "Your grandfather",
		Ethnicity:      "hakka",
		MessageCount:   2,
		Time:           time.Now(),
	}
	require.NoError(t, manager.Publish(event))

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, TopicSession, publisher.topics[0])

	var decoded SessionEvent
	require.NoError(t, json.Unmarshal(publisher.messages[0].Payload, &decoded))
	assert.Equal(t, EventTypeTurnCompleted, decoded.Type)
	assert.Equal(t, "conv-1", decoded.ConversationID)
	assert.Equal(t, 2, decoded.MessageCount)
}

func TestPublishStampsSequenceNumbers(t *testing.T) {
	manager := NewPublisherManager()
	publisher := &capturingPublisher{}
	manager.SubscribePublisher(TopicSession, publisher)

	require.NoError(t, manager.Publish(&SessionEvent{Type: EventTypeHeritageSelected}))
	require.NoError(t, manager.Publish(&SessionEvent{Type: EventTypeTurnCompleted}))
	require.NoError(t, manager.Publish(&SessionEvent{Type: EventTypeSessionReset}))

	require.Len(t, publisher.messages, 3)
	for i, msg := range publisher.messages {
		assert.Equal(t, int64(i), mustSequenceNumber(t, msg))
	}
}

func TestPublishWithoutSubscribersSucceeds(t *testing.T) {
	manager := NewPublisherManager()
	require.NoError(t, manager.Publish(&SessionEvent{Type: EventTypeSessionReset}))
	manager.PublishBlind(&SessionEvent{Type: EventTypeSessionReset})
}

func mustSequenceNumber(t *testing.T, msg *message.Message) int64 {
	t.Helper()

	n, err := strconv.ParseInt(msg.Metadata.Get("sequence_number"), 10, 64)
	require.NoError(t, err)
	return n
}
