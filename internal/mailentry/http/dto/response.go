package dto

import (
	"github.com/allisson/mailadmin/internal/mailentry/domain"
)

// EntryResponse is one mail entry. The stored secret hash is never returned;
// expansion carries the member list or the free-text reason, depending on the
// kind.
type EntryResponse struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Expansion string `json:"expansion,omitempty"`
}

// ListEntriesResponse maps each entry name of a domain to its kind and
// payload.
type ListEntriesResponse struct {
	Entries map[string]EntryResponse `json:"entries"`
}

// DeleteEntryResponse reports the full address that was removed.
type DeleteEntryResponse struct {
	Deleted string `json:"deleted"`
}

// MapEntryToResponse converts an entry to its response form.
func MapEntryToResponse(entry *domain.MailEntry) EntryResponse {
	response := EntryResponse{
		Name: entry.Name,
		Kind: string(entry.Kind),
	}
	if !entry.Kind.BearsSecret() {
		response.Expansion = entry.Expansion
	}
	return response
}

// MapEntriesToListResponse converts a slice of entries to the list response.
func MapEntriesToListResponse(entries []*domain.MailEntry) ListEntriesResponse {
	response := ListEntriesResponse{Entries: make(map[string]EntryResponse, len(entries))}
	for _, entry := range entries {
		response.Entries[entry.Name] = MapEntryToResponse(entry)
	}
	return response
}
