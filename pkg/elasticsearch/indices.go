package elasticsearch

import (
	"context"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Ping checks that the cluster answers.
func (c *elasticImpl) Ping(ctx context.Context) error {
	res, err := call("ping", func() (*esapi.Response, error) {
		return c.client.Ping(c.client.Ping.WithContext(ctx))
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("ping", res)
	}
	return nil
}

// Info returns cluster name and version.
func (c *elasticImpl) Info(ctx context.Context) (ClusterInfo, error) {
	res, err := call("info", func() (*esapi.Response, error) {
		return c.client.Info(c.client.Info.WithContext(ctx))
	})
	if err != nil {
		return ClusterInfo{}, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return ClusterInfo{}, responseError("info", res)
	}

	var info ClusterInfo
	if err := decode(res.Body, &info); err != nil {
		return ClusterInfo{}, WrapError(err, "info")
	}
	return info, nil
}

// IndexExists reports whether index exists.
func (c *elasticImpl) IndexExists(ctx context.Context, index string) (bool, error) {
	res, err := call("indices.exists", func() (*esapi.Response, error) {
		return c.client.Indices.Exists([]string{index}, c.client.Indices.Exists.WithContext(ctx))
	})
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, responseError("indices.exists", res)
	}
}

// CreateIndex creates index with the given settings and mappings.
// It returns ErrIndexAlreadyExists when the index is already there.
func (c *elasticImpl) CreateIndex(ctx context.Context, index string, body map[string]any) error {
	r, err := encode(body)
	if err != nil {
		return err
	}

	res, err := call("indices.create", func() (*esapi.Response, error) {
		return c.client.Indices.Create(index,
			c.client.Indices.Create.WithBody(r),
			c.client.Indices.Create.WithContext(ctx),
		)
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("indices.create", res)
	}
	return nil
}
