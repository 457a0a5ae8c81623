package elasticsearch

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Search runs body against index.
func (c *elasticImpl) Search(ctx context.Context, index string, body map[string]any) (*SearchResponse, error) {
	r, err := encode(body)
	if err != nil {
		return nil, err
	}

	res, err := call("search", func() (*esapi.Response, error) {
		return c.client.Search(
			c.client.Search.WithIndex(index),
			c.client.Search.WithBody(r),
			c.client.Search.WithContext(ctx),
		)
	})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError("search", res)
	}

	var out SearchResponse
	if err := decode(res.Body, &out); err != nil {
		return nil, WrapError(err, "search")
	}
	return &out, nil
}
