// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// RawRecord is a single Bitable row as returned by the upstream API.
type RawRecord struct {
	RecordID string                     `json:"record_id"`
	Fields   map[string]json.RawMessage `json:"fields"`
}

// Article is the normalized view of a RawRecord. It is regenerated on every cache miss
// and never persisted.
type Article struct {
	ID      string `json:"id"`      // The upstream record_id.
	Title   string `json:"title"`   // Article title, "Untitled" when the row has none.
	Date    string `json:"date"`    // Creation date, sortable as a string.
	Quote   string `json:"quote"`   // Highlighted quote.
	Summary string `json:"summary"` // Summary text.
	Link    string `json:"link"`    // Outbound link to the original article.
}
