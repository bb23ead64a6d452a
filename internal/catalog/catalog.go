package catalog

import (
	"fmt"
	"sort"
)

// Play is a single catalog entry: the title of the play and its pricing type.
type Play struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Catalog maps play IDs to plays. It is supplied by a loader at startup and
// treated as read-only for the lifetime of every statement computation.
type Catalog map[string]Play

// UnknownPlayIDError reports an invoice performance referencing a play ID
// that is not present in the catalog.
type UnknownPlayIDError struct {
	PlayID string
}

func (e *UnknownPlayIDError) Error() string {
	return fmt.Sprintf("unknown play id: %s", e.PlayID)
}

// Resolve returns the play for the given ID. A missing ID is a data-integrity
// failure and is reported, never defaulted.
func (c Catalog) Resolve(playID string) (Play, error) {
	play, ok := c[playID]
	if !ok {
		return Play{}, &UnknownPlayIDError{PlayID: playID}
	}
	return play, nil
}

// Entry pairs a play with its catalog ID for listing responses.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Entries returns the catalog contents sorted by ID.
func (c Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c))
	for id, play := range c {
		entries = append(entries, Entry{ID: id, Name: play.Name, Type: play.Type})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
