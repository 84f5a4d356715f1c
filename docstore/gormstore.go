package docstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// row is the single table backing every collection: one JSON document per
// (collection, doc_id) pair.
type row struct {
	Collection string `gorm:"primaryKey;size:64"`
	DocID      string `gorm:"primaryKey;size:64;column:doc_id"`
	Data       string `gorm:"type:text;not null"`
}

func (row) TableName() string { return "documents" }

// GormStore implements Store on top of a relational database, SQLite by
// default and PostgreSQL when so configured. Filters and ordering are pushed
// into SQL so filtered queries stay store-side.
type GormStore struct {
	db       *gorm.DB
	postgres bool
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&row{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &GormStore{db: db, postgres: db.Dialector.Name() == "postgres"}, nil
}

// filterExpr extracts a top-level field as text for equality filters.
func (s *GormStore) filterExpr(field string) string {
	if s.postgres {
		return fmt.Sprintf("(data::jsonb ->> '%s')", field)
	}
	return fmt.Sprintf("json_extract(data, '$.%s')", field)
}

// orderExpr keeps the JSON type on postgres so numeric sort keys order
// numerically rather than lexically.
func (s *GormStore) orderExpr(field string) string {
	if s.postgres {
		return fmt.Sprintf("(data::jsonb -> '%s')", field)
	}
	return fmt.Sprintf("json_extract(data, '$.%s')", field)
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var r row
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc, err := decodeDoc([]byte(r.Data))
	if err != nil {
		return nil, err
	}
	doc["id"] = r.DocID
	return doc, nil
}

func (s *GormStore) List(ctx context.Context, collection string, q Query) ([]Document, error) {
	tx := s.db.WithContext(ctx).Model(&row{}).Where("collection = ?", collection)
	for _, f := range q.Filters {
		if isNull(f.Value) {
			tx = tx.Where(s.filterExpr(f.Field) + " IS NULL")
		} else {
			tx = tx.Where(s.filterExpr(f.Field)+" = ?", fmt.Sprint(f.Value))
		}
	}
	if q.OrderBy != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		tx = tx.Order(s.orderExpr(q.OrderBy) + " " + dir)
	}
	var rows []row
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		doc, err := decodeDoc([]byte(r.Data))
		if err != nil {
			return nil, err
		}
		doc["id"] = r.DocID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *GormStore) Put(ctx context.Context, collection, id string, doc Document) error {
	clean := make(Document, len(doc))
	for k, v := range doc {
		if k == "id" {
			continue
		}
		clean[k] = v
	}
	data, err := encodeDoc(clean)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row{Collection: collection, DocID: id, Data: string(data)}).Error
}

// Update merges fields into the stored document inside a transaction. The
// read locks the row on postgres; SQLite serializes writers on its own.
func (s *GormStore) Update(ctx context.Context, collection, id string, fields Document, preconds ...Precondition) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		read := tx
		if s.postgres {
			read = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var r row
		err := read.Where("collection = ? AND doc_id = ?", collection, id).Take(&r).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		doc, err := decodeDoc([]byte(r.Data))
		if err != nil {
			return err
		}
		for _, p := range preconds {
			if !isNull(doc[p.NullField]) {
				return ErrPreconditionFailed
			}
		}
		for k, v := range fields {
			if k == "id" {
				continue
			}
			doc[k] = v
		}
		data, err := encodeDoc(doc)
		if err != nil {
			return err
		}
		return tx.Model(&row{}).
			Where("collection = ? AND doc_id = ?", collection, id).
			Update("data", string(data)).Error
	})
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	return s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&row{}).Error
}

func (s *GormStore) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&row{}).
		Where("collection = ?", collection).
		Count(&n).Error
	return n, err
}
