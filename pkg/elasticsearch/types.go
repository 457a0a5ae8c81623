package elasticsearch

import (
	"encoding/json"
	"net/http"

	es "github.com/elastic/go-elasticsearch/v8"
)

// Config holds Elasticsearch client configuration.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	APIKey    string
	// Refresh is sent with every write. Empty means DefaultRefresh.
	Refresh string
	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// elasticImpl implements IElasticsearch.
type elasticImpl struct {
	client  *es.Client
	refresh string
}

// ClusterInfo is the subset of the root endpoint response the service reports.
type ClusterInfo struct {
	Name        string `json:"name"`
	ClusterName string `json:"cluster_name"`
	Version     struct {
		Number string `json:"number"`
	} `json:"version"`
}

// SearchResponse is the decoded body of a _search call.
type SearchResponse struct {
	Took     int  `json:"took"`
	TimedOut bool `json:"timed_out"`
	Hits     struct {
		Total struct {
			Value    int64  `json:"value"`
			Relation string `json:"relation"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []Hit    `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]json.RawMessage `json:"aggregations"`
}

// Hit is one search hit.
type Hit struct {
	Index          string              `json:"_index"`
	ID             string              `json:"_id"`
	Score          *float64            `json:"_score"`
	Source         json.RawMessage     `json:"_source"`
	Highlight      map[string][]string `json:"highlight"`
	MatchedQueries []string            `json:"matched_queries"`
	Sort           []any               `json:"sort"`
}

type errorBody struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
	Status int `json:"status"`
}

type getBody struct {
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
}
