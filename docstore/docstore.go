package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotFound           = errors.New("document not found")
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Document is a schema-free record as stored: field name to loosely-typed
// value. Values read back from a store are JSON-shaped (string, json.Number,
// bool, nil, []any, map[string]any).
type Document map[string]any

// Filter is an equality constraint on a top-level document field. A nil
// Value matches documents where the field is null or absent.
type Filter struct {
	Field string
	Value any
}

type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
}

// Precondition guards an Update. The only supported guard is "this field is
// still null/absent", which is what a first-claim-wins assignment needs.
type Precondition struct {
	NullField string
}

func WhereNull(field string) Precondition {
	return Precondition{NullField: field}
}

// Store is a document store addressed by collection name and document id.
// Update merges only the supplied fields into the existing document;
// Delete is idempotent.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string, q Query) ([]Document, error)
	Put(ctx context.Context, collection, id string, doc Document) error
	Update(ctx context.Context, collection, id string, fields Document, preconds ...Precondition) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string) (int64, error)
}

// decodeDoc unmarshals stored JSON with UseNumber so numeric fields keep
// their exact decimal digits instead of going through float64.
func decodeDoc(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func encodeDoc(doc Document) ([]byte, error) {
	return json.Marshal(doc)
}

// isNull reports whether a field value counts as unset for preconditions
// and nil filters.
func isNull(v any) bool {
	return v == nil
}
