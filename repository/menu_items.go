package repository

import (
	"context"

	"github.com/google/uuid"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

func (s *Store) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.listMenuItems(ctx, docstore.Query{OrderBy: "name"})
}

func (s *Store) MenuItemsByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	return s.listMenuItems(ctx, docstore.Query{
		Filters: []docstore.Filter{{Field: "categoryId", Value: categoryID}},
		OrderBy: "name",
	})
}

func (s *Store) listMenuItems(ctx context.Context, q docstore.Query) ([]models.MenuItem, error) {
	docs, err := s.docs.List(ctx, collMenuItems, q)
	if err != nil {
		return nil, err
	}
	out := make([]models.MenuItem, 0, len(docs))
	for _, doc := range docs {
		out = append(out, mapper.MenuItem(doc["id"].(string), doc))
	}
	return out, nil
}

func (s *Store) MenuItem(ctx context.Context, id string) (models.MenuItem, error) {
	doc, err := s.docs.Get(ctx, collMenuItems, id)
	if err != nil {
		return models.MenuItem{}, translate(err)
	}
	return mapper.MenuItem(id, doc), nil
}

func (s *Store) CreateMenuItem(ctx context.Context, in models.MenuItem) (models.MenuItem, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if err := s.docs.Put(ctx, collMenuItems, in.ID, mapper.MenuItemDoc(in)); err != nil {
		return models.MenuItem{}, err
	}
	return s.MenuItem(ctx, in.ID)
}

// UpdateMenuItem merges only the supplied fields, then re-reads: the store
// is the source of truth for the returned record, not the input payload.
func (s *Store) UpdateMenuItem(ctx context.Context, id string, patch mapper.MenuItemPatch) (models.MenuItem, error) {
	if err := s.docs.Update(ctx, collMenuItems, id, mapper.MenuItemPatchDoc(patch)); err != nil {
		return models.MenuItem{}, translate(err)
	}
	return s.MenuItem(ctx, id)
}

// DeleteMenuItem is idempotent; existence checks belong to the caller.
func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collMenuItems, id)
}
