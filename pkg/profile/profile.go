package profile

import (
	"encoding/json"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/kinecta/kinecta/pkg/kv"
)

// Profile describes the descendant talking to the ancestor. All fields beyond
// the identity block are optional; the prompt builder only mentions fields
// that are present.
type Profile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Age        int      `json:"age,omitempty"`
	Location   string   `json:"location,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Interests  []string `json:"interests,omitempty"`

	PersonalBackground string   `json:"personalBackground,omitempty"`
	FamilyBackground   string   `json:"familyBackground,omitempty"`
	CulturalBackground string   `json:"culturalBackground,omitempty"`
	Languages          []string `json:"languages,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// NewProfile creates a minimal profile for a user.
func NewProfile(id, name, email string) Profile {
	return Profile{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Store persists the single user profile as one JSON value.
type Store struct {
	backend   kv.Store
	namespace string
}

func NewStore(backend kv.Store, namespace string) *Store {
	return &Store{backend: backend, namespace: namespace}
}

func (s *Store) key() string {
	return s.namespace + "_profile"
}

// Load returns the stored profile, or false when none exists or the payload
// cannot be decoded.
func (s *Store) Load() (Profile, bool) {
	data, ok, err := s.backend.Get(s.key())
	if err != nil || !ok {
		if err != nil {
			log.Warn().Err(err).Msg("failed to read user profile")
		}
		return Profile{}, false
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Msg("failed to decode user profile")
		return Profile{}, false
	}
	return p, true
}

func (s *Store) Save(p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return pkgerrors.Wrap(err, "encode user profile")
	}
	if err := s.backend.Set(s.key(), data); err != nil {
		return pkgerrors.Wrap(err, "persist user profile")
	}
	return nil
}

func (s *Store) Delete() error {
	return s.backend.Delete(s.key())
}
