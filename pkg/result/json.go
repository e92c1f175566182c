package result

import (
	"encoding/json"
	"fmt"
	"io"
)

// document is the on-disk shape of an exported search.
type document struct {
	Version    int         `json:"version"`
	Candidates []Candidate `json:"candidates"`
}

const documentVersion = 1

// WriteJSON writes candidates as an indented JSON document.
func WriteJSON(w io.Writer, cs []Candidate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Version: documentVersion, Candidates: cs})
}

// ReadJSON reads candidates written by WriteJSON.
func ReadJSON(r io.Reader) ([]Candidate, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	if doc.Version != documentVersion {
		return nil, fmt.Errorf("unsupported candidate document version %d", doc.Version)
	}
	return doc.Candidates, nil
}
