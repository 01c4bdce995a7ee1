package history

import (
	"github.com/kinecta/kinecta/pkg/conversation"
	"github.com/kinecta/kinecta/pkg/heritage"
)

// Record is the durable unit of a saved conversation. The identifier is
// assigned at first persistence, not at session start.
//
// Early versions of the application saved records without the persona,
// selection and message snapshots. Such legacy records can still be listed,
// bookmarked, shared and exported, but never resumed.
type Record struct {
	ID           string `json:"id"`
	AncestorName string `json:"ancestorName"`
	Heritage     string `json:"heritage"`
	// Date is the creation/update date as an ISO-8601 string.
	Date         string `json:"date"`
	MessageCount int    `json:"messageCount"`
	Preview      string `json:"preview"`
	Bookmarked   bool   `json:"bookmarked,omitempty"`

	Messages  conversation.Conversation `json:"messages,omitempty"`
	Persona   *heritage.Persona         `json:"ancestorPersona,omitempty"`
	Selection *heritage.Selection       `json:"selectedHeritage,omitempty"`
}

// Resumable reports whether the record carries the persona and heritage
// snapshots needed to rehydrate a live session.
func (r Record) Resumable() bool {
	return r.Persona != nil && r.Selection != nil
}
