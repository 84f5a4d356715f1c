package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bistro-api/docstore"
	"bistro-api/mapper"
	"bistro-api/models"
)

func (s *Store) Reservations(ctx context.Context) ([]models.Reservation, error) {
	docs, err := s.docs.List(ctx, collReservations, docstore.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}
	out := make([]models.Reservation, 0, len(docs))
	for _, doc := range docs {
		out = append(out, mapper.Reservation(doc["id"].(string), doc))
	}
	return out, nil
}

func (s *Store) Reservation(ctx context.Context, id string) (models.Reservation, error) {
	doc, err := s.docs.Get(ctx, collReservations, id)
	if err != nil {
		return models.Reservation{}, translate(err)
	}
	return mapper.Reservation(id, doc), nil
}

func (s *Store) CreateReservation(ctx context.Context, in models.Reservation) (models.Reservation, error) {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	if err := s.docs.Put(ctx, collReservations, in.ID, mapper.ReservationDoc(in)); err != nil {
		return models.Reservation{}, err
	}
	return s.Reservation(ctx, in.ID)
}
