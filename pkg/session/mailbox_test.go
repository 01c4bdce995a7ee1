package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/kv"
)

func TestMailboxTakeClearsPayload(t *testing.T) {
	backend := kv.NewMemoryStore()
	mailbox := NewMailbox(backend, "kinecta")

	messages := conversation.Conversation{
		conversation.NewMessage(conversation.SenderUser, "hello"),
		conversation.NewMessage(conversation.SenderAncestor, "my child"),
	}
	require.NoError(t, mailbox.Put("Your grandfather", "hakka", messages))
	require.True(t, mailbox.Pending("Your grandfather", "hakka"))

	got, ok := mailbox.Take("Your grandfather", "hakka")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Content)
	assert.Equal(t, "my child", got[1].Content)

	// the slot is cleared after the first read
	assert.False(t, mailbox.Pending("Your grandfather", "hakka"))
	_, ok = mailbox.Take("Your grandfather", "hakka")
	assert.False(t, ok)
}

func TestMailboxTakeClearsUndecodablePayload(t *testing.T) {
	backend := kv.NewMemoryStore()
	mailbox := NewMailbox(backend, "kinecta")

	require.NoError(t, backend.Set("kinecta_chat_Your grandfather_hakka", []byte("{not json")))

	_, ok := mailbox.Take("Your grandfather", "hakka")
	assert.False(t, ok)
	assert.False(t, mailbox.Pending("Your grandfather", "hakka"))
}

func TestMailboxKeysAreScopedByPersonaAndEthnicity(t *testing.T) {
	backend := kv.NewMemoryStore()
	mailbox := NewMailbox(backend, "kinecta")

	messages := conversation.Conversation{
		conversation.NewMessage(conversation.SenderUser, "hello"),
	}
	require.NoError(t, mailbox.Put("Your grandfather", "hakka", messages))

	assert.False(t, mailbox.Pending("Your grandmother", "hakka"))
	assert.False(t, mailbox.Pending("Your grandfather", "hokkien"))
	assert.True(t, mailbox.Pending("Your grandfather", "hakka"))
}
