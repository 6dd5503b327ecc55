package api

import (
	"net/http"

	"catalog-service/internal/service"

	"github.com/gin-gonic/gin"
)

type updateInquiryStatusRequest struct {
	Status string `json:"status"`
}

// submitInquiry handles the public inquiry form
func (h *Handler) submitInquiry(c *gin.Context) {
	var req service.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.IdempotencyKey = c.GetHeader("Idempotency-Key")

	resp, err := h.inquiries.SubmitInquiry(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listInquiries(c *gin.Context) {
	inquiries, err := h.inquiries.ListInquiries(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

func (h *Handler) updateInquiryStatus(c *gin.Context) {
	var req updateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.inquiries.SetInquiryStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
