package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is one mapping node of a report tree. A nil Document is
// valid and behaves like an empty one, so lookups can be chained
// without presence checks at every level.
type Document map[string]any

// FromAny converts a decoded JSON value into a Document. The boolean
// reports whether the value was mapping-shaped at all.
func FromAny(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}

// Has reports whether the key is present, regardless of its value.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Value returns the raw value for key, or nil when absent.
func (d Document) Value(key string) any {
	return d[key]
}

// Map returns the nested mapping under key. Absent keys and
// non-mapping values yield an empty Document.
func (d Document) Map(key string) Document {
	doc, _ := FromAny(d[key])
	return doc
}

// List returns the sequence of mappings under key. Absent keys and
// non-sequence values yield nil; non-mapping elements are skipped.
func (d Document) List(key string) []Document {
	seq, ok := d[key].([]any)
	if !ok {
		return nil
	}
	docs := make([]Document, 0, len(seq))
	for _, entry := range seq {
		if doc, ok := FromAny(entry); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// String returns the string value for key, or "" when the key is
// absent or holds a non-string value.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// ParseBatch decodes a JSON array of credit reports. Entries are kept
// as raw values: non-mapping entries are a batch-level concern and are
// filtered there, not here.
func ParseBatch(r io.Reader) ([]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report batch: %w", err)
	}
	var reports []any
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode report batch: %w", err)
	}
	return reports, nil
}
