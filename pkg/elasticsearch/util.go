package elasticsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"review-srv/pkg/metrics"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Validate validates the client configuration.
func (cfg Config) Validate() error {
	if len(cfg.Addresses) == 0 {
		return fmt.Errorf("%w: at least one address is required", ErrInvalidConfig)
	}
	if cfg.APIKey != "" && cfg.Username != "" {
		return fmt.Errorf("%w: api key and basic auth are mutually exclusive", ErrInvalidConfig)
	}
	return nil
}

func encode(v any) (io.Reader, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("%w: encode body: %v", ErrBadRequest, err)
	}
	return &buf, nil
}

// call runs fn, records its latency and turns transport failures into ErrUnavailable.
// The caller owns closing the returned response body.
func call(op string, fn func() (*esapi.Response, error)) (*esapi.Response, error) {
	start := time.Now()
	res, err := fn()
	if err != nil {
		metrics.ObserveEngine(op, err, time.Since(start))
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	var obsErr error
	if res.StatusCode >= http.StatusInternalServerError || res.StatusCode == http.StatusTooManyRequests {
		obsErr = ErrUnavailable
	}
	metrics.ObserveEngine(op, obsErr, time.Since(start))
	return res, nil
}

// responseError classifies a non 2xx response.
func responseError(op string, res *esapi.Response) error {
	body, _ := io.ReadAll(res.Body)

	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	reason := eb.Error.Reason
	if reason == "" {
		reason = res.Status()
	}

	switch {
	case eb.Error.Type == typeIndexNotFound:
		return fmt.Errorf("%w: %s: %s", ErrIndexNotFound, op, reason)
	case eb.Error.Type == typeIndexAlreadyExists:
		return fmt.Errorf("%w: %s: %s", ErrIndexAlreadyExists, op, reason)
	case eb.Error.Type == typeVersionConflict || res.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s: %s", ErrConflict, op, reason)
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	case res.StatusCode >= http.StatusInternalServerError, res.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, op, reason)
	default:
		return fmt.Errorf("%w: %s: %s", ErrBadRequest, op, reason)
	}
}

func decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
