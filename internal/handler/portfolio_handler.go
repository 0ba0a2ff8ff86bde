package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/foliogen/foliogen/internal/pkg/errcode"
	"github.com/foliogen/foliogen/internal/pkg/response"
	"github.com/foliogen/foliogen/internal/service"
)

type PortfolioHandler struct {
	portfolios *service.PortfolioService
}

func NewPortfolioHandler(portfolios *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

type createPortfolioRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req createPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "username is required")
		return
	}
	p, err := h.portfolios.Create(c.Request.Context(), getUserID(c), req.Username)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, p)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	p, err := h.portfolios.Get(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, p)
}

type updateDataRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

func (h *PortfolioHandler) UpdateData(c *gin.Context) {
	var req updateDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "data is required")
		return
	}
	if err := h.portfolios.UpdateData(c.Request.Context(), getUserID(c), req.Data); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{})
}

type updateTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

func (h *PortfolioHandler) UpdateTemplate(c *gin.Context) {
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "template is required")
		return
	}
	if err := h.portfolios.UpdateTemplate(c.Request.Context(), getUserID(c), req.Template); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{})
}

type publishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

func (h *PortfolioHandler) Publish(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "published is required")
		return
	}
	if err := h.portfolios.SetPublished(c.Request.Context(), getUserID(c), *req.Published); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{})
}

func (h *PortfolioHandler) Refresh(c *gin.Context) {
	p, err := h.portfolios.RefreshFromResume(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, p)
}
