package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinecta/kinecta/pkg/kv"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(kv.NewMemoryStore(), "kinecta")

	_, ok := store.Load()
	assert.False(t, ok)

	p := NewProfile("user-1", "Mei", "mei@example.com")
	p.Age = 30
	p.Languages = []string{"English", "Hakka"}
	require.NoError(t, store.Save(p))

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "user-1", loaded.ID)
	assert.Equal(t, "Mei", loaded.Name)
	assert.Equal(t, "mei@example.com", loaded.Email)
	assert.Equal(t, 30, loaded.Age)
	assert.Equal(t, []string{"English", "Hakka"}, loaded.Languages)
	assert.NotEmpty(t, loaded.CreatedAt)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(kv.NewMemoryStore(), "kinecta")

	require.NoError(t, store.Save(NewProfile("user-1", "Mei", "mei@example.com")))
	require.NoError(t, store.Delete())

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestStoreLoadUndecodablePayload(t *testing.T) {
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set("kinecta_profile", []byte("{not json")))

	store := NewStore(backend, "kinecta")
	_, ok := store.Load()
	assert.False(t, ok)
}
