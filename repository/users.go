package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	docs, err := s.docs.List(ctx, collUsers, docstore.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, mapper.User(doc["id"].(string), doc))
	}
	return out, nil
}

func (s *Store) User(ctx context.Context, id string) (models.User, error) {
	doc, err := s.docs.Get(ctx, collUsers, id)
	if err != nil {
		return models.User{}, translate(err)
	}
	return mapper.User(id, doc), nil
}

// UserByEmail looks a user up by their unique email key.
func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	docs, err := s.docs.List(ctx, collUsers, docstore.Query{
		Filters: []docstore.Filter{{Field: "email", Value: email}},
	})
	if err != nil {
		return models.User{}, err
	}
	if len(docs) == 0 {
		return models.User{}, ErrNotFound
	}
	doc := docs[0]
	return mapper.User(doc["id"].(string), doc), nil
}

func (s *Store) CreateUser(ctx context.Context, in models.User) (models.User, error) {
	if _, err := s.UserByEmail(ctx, in.Email); err == nil {
		return models.User{}, ErrDuplicate
	} else if err != ErrNotFound {
		return models.User{}, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	if err := s.docs.Put(ctx, collUsers, in.ID, mapper.UserDoc(in)); err != nil {
		return models.User{}, err
	}
	return s.User(ctx, in.ID)
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch mapper.UserPatch) (models.User, error) {
	if err := s.docs.Update(ctx, collUsers, id, mapper.UserPatchDoc(patch)); err != nil {
		return models.User{}, translate(err)
	}
	return s.User(ctx, id)
}
