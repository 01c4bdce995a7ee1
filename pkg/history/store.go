package history

import (
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/kinecta/kinecta/pkg/kv"
)

var ErrRecordNotFound = errors.New("conversation record not found")

// Store owns the durable list of saved conversations. Every mutating
// operation reads the full collection, applies the change and writes the full
// collection back: there is no delta persistence, so an interrupted update can
// never leave a half-written collection behind.
//
// Callers serialize their own mutating calls; concurrent writers are out of
// scope.
type Store struct {
	backend   kv.Store
	namespace string
}

func NewStore(backend kv.Store, namespace string) *Store {
	return &Store{
		backend:   backend,
		namespace: namespace,
	}
}

func (s *Store) collectionKey() string {
	return s.namespace + "_conversations"
}

// Load reads the full collection. A missing or undecodable payload yields an
// empty collection: corrupted persistence must never take the session down.
func (s *Store) Load() []Record {
	data, ok, err := s.backend.Get(s.collectionKey())
	if err != nil {
		log.Warn().Err(err).Msg("failed to read conversation collection, starting empty")
		return nil
	}
	if !ok {
		return nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Msg("failed to decode conversation collection, starting empty")
		return nil
	}
	return records
}

func (s *Store) save(records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return pkgerrors.Wrap(err, "encode conversation collection")
	}
	if err := s.backend.Set(s.collectionKey(), data); err != nil {
		return pkgerrors.Wrap(err, "persist conversation collection")
	}
	return nil
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	for _, rec := range s.Load() {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Create appends a record to the collection. The caller assigns the record id
// before insertion.
func (s *Store) Create(record Record) error {
	records := append(s.Load(), record)
	if err := s.save(records); err != nil {
		return err
	}
	log.Debug().Str("id", record.ID).Str("ancestor", record.AncestorName).Msg("conversation record created")
	return nil
}

// Update replaces the record with the matching identifier. Updating an
// unknown id leaves the collection unchanged.
func (s *Store) Update(record Record) error {
	records := s.Load()
	matched := false
	for i, existing := range records {
		if existing.ID == record.ID {
			records[i] = record
			matched = true
		}
	}
	if !matched {
		log.Debug().Str("id", record.ID).Msg("update for unknown conversation record, collection unchanged")
	}
	return s.save(records)
}

// Delete removes the record permanently.
func (s *Store) Delete(id string) error {
	records := s.Load()
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.save(kept)
}

// Bookmark toggles the bookmarked flag on the record.
func (s *Store) Bookmark(id string) error {
	records := s.Load()
	for i, rec := range records {
		if rec.ID == id {
			records[i].Bookmarked = !rec.Bookmarked
		}
	}
	return s.save(records)
}

// ShareText produces the plain-text summary used for external sharing.
func (s *Store) ShareText(id string) (string, error) {
	rec, ok := s.Get(id)
	if !ok {
		log.Warn().Str("id", id).Msg("share requested for unknown conversation record")
		return "", ErrRecordNotFound
	}

	return fmt.Sprintf(
		"I had a meaningful conversation with my %s ancestor %s on Kinecta:\n\n\"%s\"\n\nDiscover your own family heritage at Kinecta!",
		rec.Heritage, rec.AncestorName, rec.Preview,
	), nil
}

// ExportText produces the plain-text export payload. Records that carry the
// full transcript export it verbatim; legacy records fall back to the preview.
func (s *Store) ExportText(id string) (string, error) {
	rec, ok := s.Get(id)
	if !ok {
		log.Warn().Str("id", id).Msg("export requested for unknown conversation record")
		return "", ErrRecordNotFound
	}

	if len(rec.Messages) > 0 {
		return rec.Messages.Transcript(rec.AncestorName), nil
	}
	return rec.Preview + "\n\n...", nil
}

// ExportFilename returns the stable download filename for a record export.
func (s *Store) ExportFilename(id string) string {
	return fmt.Sprintf("%s-convo-%s.txt", s.namespace, id)
}
