package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// CreateDocument stores doc under id and fails with ErrConflict if id is taken.
func (c *elasticImpl) CreateDocument(ctx context.Context, index, id string, doc any) error {
	r, err := encode(doc)
	if err != nil {
		return err
	}

	res, err := call("create", func() (*esapi.Response, error) {
		return c.client.Create(index, id, r,
			c.client.Create.WithRefresh(c.refresh),
			c.client.Create.WithContext(ctx),
		)
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("create", res)
	}
	return nil
}

// IndexDocument stores doc under id, replacing any previous version.
func (c *elasticImpl) IndexDocument(ctx context.Context, index, id string, doc any) error {
	r, err := encode(doc)
	if err != nil {
		return err
	}

	res, err := call("index", func() (*esapi.Response, error) {
		return c.client.Index(index, r,
			c.client.Index.WithDocumentID(id),
			c.client.Index.WithRefresh(c.refresh),
			c.client.Index.WithContext(ctx),
		)
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("index", res)
	}
	return nil
}

// GetDocument returns the _source of id.
func (c *elasticImpl) GetDocument(ctx context.Context, index, id string) (json.RawMessage, error) {
	res, err := call("get", func() (*esapi.Response, error) {
		return c.client.Get(index, id, c.client.Get.WithContext(ctx))
	})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError("get", res)
	}

	var body getBody
	if err := decode(res.Body, &body); err != nil {
		return nil, WrapError(err, "get")
	}
	if !body.Found {
		return nil, fmt.Errorf("%w: get", ErrNotFound)
	}
	return body.Source, nil
}

// DeleteDocument removes id.
func (c *elasticImpl) DeleteDocument(ctx context.Context, index, id string) error {
	res, err := call("delete", func() (*esapi.Response, error) {
		return c.client.Delete(index, id,
			c.client.Delete.WithRefresh(c.refresh),
			c.client.Delete.WithContext(ctx),
		)
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("delete", res)
	}
	return nil
}
