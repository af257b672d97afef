package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
	"github.com/custodia-labs/caption-viewer/internal/core/ports/driven"
	"github.com/custodia-labs/caption-viewer/internal/normalisers/vlm"
)

var errDiskFull = errors.New("disk full")

// failingStore wraps a memory store and fails the selected operations.
type failingStore struct {
	*memory.RecordStore
	failSave   bool
	failGet    bool
	failSchema bool
}

func (s *failingStore) SaveRecord(ctx context.Context, rec *domain.Record) error {
	if s.failSave {
		return errDiskFull
	}
	return s.RecordStore.SaveRecord(ctx, rec)
}

func (s *failingStore) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	if s.failGet {
		return nil, errDiskFull
	}
	return s.RecordStore.GetRecord(ctx, id)
}

func (s *failingStore) Schema(ctx context.Context) ([]domain.FieldSchema, error) {
	if s.failSchema {
		return nil, errDiskFull
	}
	return s.RecordStore.Schema(ctx)
}

// seedStore returns a store with a caption field, a width field and two records.
func seedStore() *memory.RecordStore {
	ctx := context.Background()
	store := memory.NewRecordStore()
	_ = store.DeclareField(ctx, domain.FieldSchema{Name: "caption", Type: domain.FieldTypeString})
	_ = store.DeclareField(ctx, domain.FieldSchema{Name: "width", Type: domain.FieldTypeInt})
	_ = store.DeclareField(ctx, domain.FieldSchema{Name: "vlm_output", Type: domain.FieldTypeString})

	r1 := domain.NewRecord("rec-1")
	r1.SetField("caption", `A cat\non a mat`)
	r1.SetField("width", 640)
	r1.SetField("vlm_output", `{"label":"cat"}`)
	_ = store.SaveRecord(ctx, r1)

	r2 := domain.NewRecord("rec-2")
	r2.SetField("caption", nil)
	_ = store.SaveRecord(ctx, r2)

	return store
}

func testFormatter() driven.Formatter {
	return vlm.New()
}
