package http

import (
	"github.com/gin-gonic/gin"

	"review-srv/pkg/response"
)

// Create - Handler for POST /api/v1/reviews
// @Summary Create a review
// @Description Creates a review; sentiment_label and sentiment_score are derived from title and text
// @Tags Reviews
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer JWT"
// @Param body body createReq true "Review"
// @Success 201 {object} reviewResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reviews [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rv, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "review.delivery.http.Create: uc.Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newReviewResp(rv))
}

// BulkCreate - Handler for POST /api/v1/reviews/bulk
// @Summary Create reviews in bulk
// @Description Each item is created independently; failures are reported per item
// @Tags Reviews
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer JWT"
// @Param body body []createReq true "Reviews"
// @Success 200 {object} bulkCreateResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reviews/bulk [post]
func (h *handler) BulkCreate(c *gin.Context) {
	ctx := c.Request.Context()

	inputs, err := h.processBulkCreateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.BulkCreate(ctx, inputs)
	if err != nil {
		h.l.Warnf(ctx, "review.delivery.http.BulkCreate: uc.BulkCreate failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBulkCreateResp(out))
}

// Get - Handler for GET /api/v1/reviews/:id
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} reviewResp
// @Failure 404 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reviews/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	rv, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReviewResp(rv))
}

// Update - Handler for PATCH/PUT /api/v1/reviews/:id
// @Summary Partially update a review
// @Description Only provided fields change; sentiment is recomputed when title or text is provided
// @Tags Reviews
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer JWT"
// @Param id path string true "Review ID"
// @Param body body updateReq true "Fields to update"
// @Success 200 {object} reviewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reviews/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rv, err := h.uc.Update(ctx, id, req.toPatch())
	if err != nil {
		h.l.Warnf(ctx, "review.delivery.http.Update: uc.Update id=%s failed: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newReviewResp(rv))
}

// Delete - Handler for DELETE /api/v1/reviews/:id
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param Authorization header string false "Bearer JWT"
// @Param id path string true "Review ID"
// @Success 200 {object} deleteResp
// @Failure 404 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reviews/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.uc.Delete(ctx, id); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{ID: id, Deleted: true})
}

// EnsureIndex - Handler for POST /admin/index
// @Summary Bootstrap the review index
// @Description Idempotent; created is false when the index already exists
// @Tags Admin
// @Produce json
// @Param Authorization header string false "Bearer JWT"
// @Success 200 {object} ensureIndexResp
// @Failure 503 {object} response.Resp
// @Router /admin/index [post]
func (h *handler) EnsureIndex(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.EnsureIndex(ctx)
	if err != nil {
		h.l.Errorf(ctx, "review.delivery.http.EnsureIndex: uc.EnsureIndex failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, ensureIndexResp{Index: out.Index, Created: out.Created})
}
