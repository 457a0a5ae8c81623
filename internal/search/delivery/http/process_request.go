package http

import (
	"review-srv/internal/search"

	"github.com/gin-gonic/gin"
)

func (h *handler) processQuery(c *gin.Context) (search.RawParams, error) {
	var req queryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "search.delivery.http.processQuery: ShouldBindQuery failed: %v", err)
		return search.RawParams{}, errWrongQuery
	}
	return req.toRawParams(), nil
}

func (h *handler) processSearchRequest(c *gin.Context) (search.SearchInput, error) {
	raw, err := h.processQuery(c)
	if err != nil {
		return search.SearchInput{}, err
	}
	return raw.SearchInput()
}

func (h *handler) processSummaryRequest(c *gin.Context) (search.SummaryInput, error) {
	raw, err := h.processQuery(c)
	if err != nil {
		return search.SummaryInput{}, err
	}
	return raw.SummaryInput()
}

func (h *handler) processTrendRequest(c *gin.Context) (search.TrendInput, error) {
	raw, err := h.processQuery(c)
	if err != nil {
		return search.TrendInput{}, err
	}
	return raw.TrendInput()
}
