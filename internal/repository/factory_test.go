package repository

import (
	"context"
	"myGreenReco/pkg/config"
	"testing"
)

func TestNewRecordStoreFixture(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Backend:     config.StoreBackendFixture,
		FixturePath: "fixture/testdata/records.yaml",
	}}

	store, closeFn, err := NewRecordStore(cfg)
	if err != nil {
		t.Fatalf("NewRecordStore() error = %v", err)
	}
	defer closeFn()

	reviews, err := store.ScanReviews(context.Background())
	if err != nil {
		t.Fatalf("ScanReviews() error = %v", err)
	}
	if len(reviews) == 0 {
		t.Error("expected fixture reviews")
	}
}

func TestNewRecordStoreErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StoreConfig
	}{
		{"unknown backend", config.StoreConfig{Backend: "dynamodb"}},
		{"fixture without path", config.StoreConfig{Backend: config.StoreBackendFixture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := NewRecordStore(&config.Config{Store: tt.cfg}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
