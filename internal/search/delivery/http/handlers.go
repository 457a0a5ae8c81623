package http

import (
	"review-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Search - Keyword search over reviews with filters, sort and pagination
// @Summary Search reviews
// @Description Fuzzy keyword search over title and text. Without q every review matches and relevance sorts newest first.
// @Tags Search
// @Produce json
// @Param q query string false "Keyword"
// @Param productId query string false "Exact product id"
// @Param minRating query int false "Minimum rating (1-5, inclusive)"
// @Param maxRating query int false "Maximum rating (1-5, inclusive)"
// @Param sentiment query string false "positive | negative | neutral"
// @Param dateFrom query string false "ISO-8601, inclusive"
// @Param dateTo query string false "ISO-8601, exclusive"
// @Param sort query string false "relevance | newest | oldest | rating_desc | rating_asc"
// @Param page query int false "Page (default 1)"
// @Param size query int false "Page size (default 10, clamped to 1-100)"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/search [get]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Search: uc.Search failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSearchResp(output))
}

// Summary - Count, average rating and sentiment distribution
// @Summary Analytics summary
// @Tags Analytics
// @Produce json
// @Param q query string false "Keyword"
// @Param productId query string false "Exact product id"
// @Param minRating query int false "Minimum rating"
// @Param maxRating query int false "Maximum rating"
// @Param sentiment query string false "positive | negative | neutral"
// @Param dateFrom query string false "ISO-8601, inclusive"
// @Param dateTo query string false "ISO-8601, exclusive"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/analytics/summary [get]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSummaryRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Summary(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Summary: uc.Summary failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(output))
}

// Trends - Calendar bucketed review counts
// @Summary Analytics trends
// @Description Buckets without reviews are omitted.
// @Tags Analytics
// @Produce json
// @Param interval query string false "day | week | month (default month)"
// @Param q query string false "Keyword"
// @Param productId query string false "Exact product id"
// @Param minRating query int false "Minimum rating"
// @Param maxRating query int false "Maximum rating"
// @Param sentiment query string false "positive | negative | neutral"
// @Param dateFrom query string false "ISO-8601, inclusive"
// @Param dateTo query string false "ISO-8601, exclusive"
// @Success 200 {object} trendResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/analytics/trends [get]
func (h *handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processTrendRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Trend(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Trends: uc.Trend failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTrendResp(output))
}
