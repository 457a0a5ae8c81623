package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
)

// IElasticsearch aggregates the engine operations used by the service.
// Implementations are safe for concurrent use.
type IElasticsearch interface {
	IndicesOps
	DocumentOps
	SearchOps
	Ping(ctx context.Context) error
	Info(ctx context.Context) (ClusterInfo, error)
}

// IndicesOps defines index level operations.
type IndicesOps interface {
	IndexExists(ctx context.Context, index string) (bool, error)
	CreateIndex(ctx context.Context, index string, body map[string]any) error
}

// DocumentOps defines single document operations.
type DocumentOps interface {
	CreateDocument(ctx context.Context, index, id string, doc any) error
	IndexDocument(ctx context.Context, index, id string, doc any) error
	GetDocument(ctx context.Context, index, id string) (json.RawMessage, error)
	DeleteDocument(ctx context.Context, index, id string) error
}

// SearchOps defines query and aggregation operations.
type SearchOps interface {
	Search(ctx context.Context, index string, body map[string]any) (*SearchResponse, error)
}

// NewElasticsearch creates a client. It does not contact the cluster.
func NewElasticsearch(cfg Config) (IElasticsearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := es.NewClient(es.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		APIKey:       cfg.APIKey,
		Transport:    cfg.Transport,
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	refresh := cfg.Refresh
	if refresh == "" {
		refresh = DefaultRefresh
	}

	return &elasticImpl{client: client, refresh: refresh}, nil
}
