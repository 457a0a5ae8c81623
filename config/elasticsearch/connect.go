package elasticsearch

import (
	"context"
	"fmt"
	"sync"

	"review-srv/config"
	"review-srv/pkg/elasticsearch"
)

var (
	instance elasticsearch.IElasticsearch
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect creates the Elasticsearch client using singleton pattern.
// The cluster may still be down; callers use HealthCheck to find out.
func Connect(cfg config.SearchEngineConfig) (elasticsearch.IElasticsearch, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := elasticsearch.NewElasticsearch(elasticsearch.Config{
			Addresses: cfg.Addresses,
			Username:  cfg.Username,
			Password:  cfg.Password,
			APIKey:    cfg.APIKey,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Elasticsearch client: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// HealthCheck checks if the cluster is reachable.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Elasticsearch client not initialized")
	}
	return instance.Ping(ctx)
}

// Disconnect drops the singleton. The client holds no connection of its own.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	instance = nil
	once = sync.Once{}
	initErr = nil
}
