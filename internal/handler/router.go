package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foliogen/foliogen/internal/middleware"
)

type RouterDeps struct {
	Auth            *AuthHandler
	Resumes         *ResumeHandler
	Portfolios      *PortfolioHandler
	Public          *PublicHandler
	JWTSecret       []byte
	UploadRateLimit time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))

	authGroup.POST("/resumes/upload", middleware.RateLimit(deps.UploadRateLimit), deps.Resumes.Upload)
	authGroup.GET("/resumes/latest", deps.Resumes.Latest)
	authGroup.GET("/resumes", deps.Resumes.List)
	authGroup.GET("/resumes/:id", deps.Resumes.Get)

	authGroup.POST("/portfolio", deps.Portfolios.Create)
	authGroup.GET("/portfolio", deps.Portfolios.Get)
	authGroup.PUT("/portfolio/data", deps.Portfolios.UpdateData)
	authGroup.PUT("/portfolio/template", deps.Portfolios.UpdateTemplate)
	authGroup.PUT("/portfolio/publish", deps.Portfolios.Publish)
	authGroup.POST("/portfolio/refresh", deps.Portfolios.Refresh)

	api.GET("/public/portfolio/:username", deps.Public.GetPortfolio)
}
