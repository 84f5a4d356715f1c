package repository

import (
	"context"
	"strings"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

// defaultCategories is the fixed bootstrap set written once when the
// collection is empty.
var defaultCategories = []models.Category{
	{ID: "entrees", Name: "Entrées", Order: 1},
	{ID: "plats", Name: "Plats", Order: 2},
	{ID: "pizzas", Name: "Pizzas", Order: 3},
	{ID: "burgers", Name: "Burgers", Order: 4},
	{ID: "salades", Name: "Salades", Order: 5},
	{ID: "desserts", Name: "Desserts", Order: 6},
	{ID: "boissons", Name: "Boissons", Order: 7},
	{ID: "menus-enfants", Name: "Menus Enfants", Order: 8},
}

func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	docs, err := s.docs.List(ctx, collCategories, docstore.Query{OrderBy: "order"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Category, 0, len(docs))
	for _, doc := range docs {
		out = append(out, mapper.Category(doc["id"].(string), doc))
	}
	return out, nil
}

func (s *Store) Category(ctx context.Context, id string) (models.Category, error) {
	doc, err := s.docs.Get(ctx, collCategories, id)
	if err != nil {
		return models.Category{}, translate(err)
	}
	return mapper.Category(id, doc), nil
}

func (s *Store) CreateCategory(ctx context.Context, in models.Category) (models.Category, error) {
	if in.ID == "" {
		in.ID = Slugify(in.Name)
	}
	if err := s.docs.Put(ctx, collCategories, in.ID, mapper.CategoryDoc(in)); err != nil {
		return models.Category{}, err
	}
	return s.Category(ctx, in.ID)
}

func (s *Store) UpdateCategory(ctx context.Context, id string, patch mapper.CategoryPatch) (models.Category, error) {
	if err := s.docs.Update(ctx, collCategories, id, mapper.CategoryPatchDoc(patch)); err != nil {
		return models.Category{}, translate(err)
	}
	return s.Category(ctx, id)
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collCategories, id)
}

// SeedCategories writes the default set when the collection is empty. It is
// a one-time bootstrap: a populated store is left untouched.
func (s *Store) SeedCategories(ctx context.Context) error {
	n, err := s.docs.Count(ctx, collCategories)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, c := range defaultCategories {
		if err := s.docs.Put(ctx, collCategories, c.ID, mapper.CategoryDoc(c)); err != nil {
			return err
		}
	}
	return nil
}

// Slugify derives a url-safe id from a category name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == 'é' || r == 'è' || r == 'ê':
			b.WriteRune('e')
			lastDash = false
		case r == 'à' || r == 'â':
			b.WriteRune('a')
			lastDash = false
		case r == 'ç':
			b.WriteRune('c')
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
