package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemStore is an in-memory Store used in tests and as a standalone backend.
// Documents pass through a JSON round-trip on write so callers see the same
// value shapes (string, json.Number, nil) as with the database backend.
type MemStore struct {
	mu    sync.RWMutex
	colls map[string]map[string]Document
}

func NewMemStore() *MemStore {
	return &MemStore{colls: make(map[string]map[string]Document)}
}

func normalize(doc Document) (Document, error) {
	data, err := encodeDoc(doc)
	if err != nil {
		return nil, err
	}
	return decodeDoc(data)
}

func (s *MemStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.colls[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	out, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	out["id"] = id
	return out, nil
}

func (s *MemStore) List(ctx context.Context, collection string, q Query) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []Document
	for id, doc := range s.colls[collection] {
		if !matches(doc, q.Filters) {
			continue
		}
		out, err := normalize(doc)
		if err != nil {
			return nil, err
		}
		out["id"] = id
		docs = append(docs, out)
	}
	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			if q.Desc {
				return lessValue(docs[j][q.OrderBy], docs[i][q.OrderBy])
			}
			return lessValue(docs[i][q.OrderBy], docs[j][q.OrderBy])
		})
	}
	return docs, nil
}

func (s *MemStore) Put(ctx context.Context, collection, id string, doc Document) error {
	clean := make(Document, len(doc))
	for k, v := range doc {
		if k == "id" {
			continue
		}
		clean[k] = v
	}
	stored, err := normalize(clean)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.colls[collection] == nil {
		s.colls[collection] = make(map[string]Document)
	}
	s.colls[collection][id] = stored
	return nil
}

func (s *MemStore) Update(ctx context.Context, collection, id string, fields Document, preconds ...Precondition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.colls[collection][id]
	if !ok {
		return ErrNotFound
	}
	for _, p := range preconds {
		if !isNull(doc[p.NullField]) {
			return ErrPreconditionFailed
		}
	}
	merged := make(Document, len(doc)+len(fields))
	for k, v := range doc {
		merged[k] = v
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		merged[k] = v
	}
	stored, err := normalize(merged)
	if err != nil {
		return err
	}
	s.colls[collection][id] = stored
	return nil
}

func (s *MemStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.colls[collection], id)
	return nil
}

func (s *MemStore) Count(ctx context.Context, collection string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.colls[collection])), nil
}

func matches(doc Document, filters []Filter) bool {
	for _, f := range filters {
		v := doc[f.Field]
		if isNull(f.Value) {
			if !isNull(v) {
				return false
			}
			continue
		}
		if isNull(v) || fmt.Sprint(v) != fmt.Sprint(f.Value) {
			return false
		}
	}
	return true
}

// lessValue orders numbers numerically and timestamps chronologically,
// everything else by its string form, mirroring how the SQL backend sorts
// JSON values.
func lessValue(a, b any) bool {
	an, aok := a.(json.Number)
	bn, bok := b.(json.Number)
	if aok && bok {
		af, aerr := an.Float64()
		bf, berr := bn.Float64()
		if aerr == nil && berr == nil {
			return af < bf
		}
	}
	at, atok := asTime(a)
	bt, btok := asTime(b)
	if atok && btok {
		return at.Before(bt)
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func asTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
