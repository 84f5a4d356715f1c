package handlers

import (
	"bistro-api/orders"
	"bistro-api/repository"
	"bistro-api/storage"
)

var (
	repo   *repository.Store
	engine *orders.Engine
	assets storage.Storage
)

// Init wires the handlers to their collaborators; called once at startup.
func Init(r *repository.Store, e *orders.Engine, a storage.Storage) {
	repo = r
	engine = e
	assets = a
}
