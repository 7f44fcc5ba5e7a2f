package application_test

import (
	"github.com/rs/zerolog"

	"github.com/menurota/menurota/internal/application"
)

// memStore is an in-memory BlobStore so service tests need no filesystem.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Load(key string) ([]byte, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, data...), nil
}

func (m *memStore) Save(key string, data []byte) error {
	m.blobs[key] = append([]byte{}, data...)
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.blobs, key)
	return nil
}

type testServices struct {
	store     *memStore
	catalogue *application.CatalogueService
	shortlist *application.ShortlistService
	planning  *application.PlanningService
	analysis  *application.AnalysisService
	shopping  *application.ShoppingService
}

func newTestServices() *testServices {
	log := zerolog.Nop()
	store := newMemStore()
	catalogue := application.NewCatalogueService(store, "tester", log)
	shortlist := application.NewShortlistService(store, "tester", log)
	planning := application.NewPlanningService(store, catalogue, shortlist, "tester", log)
	return &testServices{
		store:     store,
		catalogue: catalogue,
		shortlist: shortlist,
		planning:  planning,
		analysis:  application.NewAnalysisService(store, catalogue, planning, "tester", log),
		shopping:  application.NewShoppingService(catalogue, planning, log),
	}
}
