package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gin-gonic/gin"

	"review-srv/internal/review"
)

func (h *handler) processCreateRequest(c *gin.Context) (createReq, error) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "review.delivery.http.processCreateRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processBulkCreateRequest decodes each item on its own so a mistyped item
// fails alone instead of rejecting the batch.
func (h *handler) processBulkCreateRequest(c *gin.Context) ([]review.CreateInput, error) {
	ctx := c.Request.Context()

	var raws []json.RawMessage
	if err := c.ShouldBindJSON(&raws); err != nil {
		h.l.Warnf(ctx, "review.delivery.http.processBulkCreateRequest: ShouldBindJSON failed: %v", err)
		return nil, errWrongBody
	}

	out := make([]review.CreateInput, len(raws))
	for i, raw := range raws {
		var req createReq
		err := json.Unmarshal(raw, &req)
		out[i] = req.toInput()
		if err != nil {
			out[i].Malformed = decodeMessage(err)
		}
	}
	return out, nil
}

// processUpdateRequest rejects explicit nulls. A field is either provided
// with a value or left out.
func (h *handler) processUpdateRequest(c *gin.Context) (string, updateReq, error) {
	ctx := c.Request.Context()

	var req updateReq
	raw, err := c.GetRawData()
	if err != nil {
		h.l.Warnf(ctx, "review.delivery.http.processUpdateRequest: GetRawData failed: %v", err)
		return "", req, errWrongBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		h.l.Warnf(ctx, "review.delivery.http.processUpdateRequest: body is not an object: %v", err)
		return "", req, errWrongBody
	}
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if string(bytes.TrimSpace(fields[k])) == "null" {
			return "", req, nullFieldError(k)
		}
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		h.l.Warnf(ctx, "review.delivery.http.processUpdateRequest: Unmarshal failed: %v", err)
		return "", req, errWrongBody
	}
	if err := req.validate(); err != nil {
		return "", req, err
	}
	return c.Param("id"), req, nil
}

// decodeMessage names the offending field of a decode error when it can.
func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return "item is not a valid review object"
}
