package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foliogen/foliogen/internal/pkg/response"
	"github.com/foliogen/foliogen/internal/service"
)

type PublicHandler struct {
	portfolios *service.PortfolioService
}

func NewPublicHandler(portfolios *service.PortfolioService) *PublicHandler {
	return &PublicHandler{portfolios: portfolios}
}

func (h *PublicHandler) GetPortfolio(c *gin.Context) {
	pub, err := h.portfolios.PublicGet(c.Request.Context(), c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, pub)
}
