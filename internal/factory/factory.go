package factory

import (
	"fmt"

	"go-palette-triage/internal/config"
	"go-palette-triage/internal/storage"
	"go-palette-triage/internal/strategy"
)

// StorageType represents different types of storage backends
type StorageType string

const (
	// HTTPStorage for HTTP-based image fetching
	HTTPStorage StorageType = "http"
	// AzureStorage for Azure blob storage
	AzureStorage StorageType = "azure"
)

// StorageFactory creates storage implementations
type StorageFactory interface {
	CreateStorage(storageType StorageType, cfg *config.Config) (storage.ImageFetcher, error)
}

// storageFactory implements StorageFactory
type storageFactory struct{}

// NewStorageFactory creates a new storage factory
func NewStorageFactory() StorageFactory {
	return &storageFactory{}
}

// CreateStorage creates a storage implementation based on the specified type
func (f *storageFactory) CreateStorage(storageType StorageType, cfg *config.Config) (storage.ImageFetcher, error) {
	switch storageType {
	case HTTPStorage:
		return storage.NewHTTPImageFetcher(cfg.ImageFetchTimeout), nil
	case AzureStorage:
		return storage.NewAzureImageFetcher(cfg.AzureAccountName, cfg.AzureAccountKey)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}

// RankingFactory creates batch ranking strategies by name. The empty name
// selects the default monochrome-score ranking.
type RankingFactory struct{}

// NewRankingFactory creates a new ranking factory
func NewRankingFactory() *RankingFactory {
	return &RankingFactory{}
}

// CreateRanking resolves a ranking strategy from its request name
func (f *RankingFactory) CreateRanking(name string) (strategy.RankingStrategy, error) {
	switch name {
	case "", "monochrome_score":
		return strategy.NewMonochromeScoreRanking(), nil
	case "distinct_colors":
		return strategy.NewDistinctColorRanking(), nil
	default:
		return nil, fmt.Errorf("unsupported ranking strategy: %s", name)
	}
}
