package api

import (
	"net/http"

	authHandler "coordinator-console/internal/auth/handler"
	brandsHandler "coordinator-console/internal/brands/handler"
	campaignsHandler "coordinator-console/internal/campaigns/handler"
	cardsHandler "coordinator-console/internal/cards/handler"
	consoleHandler "coordinator-console/internal/console/handler"
	"coordinator-console/internal/ratelimit"
	"coordinator-console/internal/rbac"
	"coordinator-console/internal/session"
	usersHandler "coordinator-console/internal/users/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	loginURL         string
	loginLimiter     *ratelimit.Service
	authHandler      authHandler.Handler
	consoleHandler   consoleHandler.Handler
	brandsHandler    brandsHandler.Handler
	campaignsHandler campaignsHandler.Handler
	usersHandler     usersHandler.Handler
	cardsHandler     cardsHandler.Handler
}

func New(
	router *gin.RouterGroup,
	loginURL string,
	loginLimiter *ratelimit.Service,
	authHandler authHandler.Handler,
	consoleHandler consoleHandler.Handler,
	brandsHandler brandsHandler.Handler,
	campaignsHandler campaignsHandler.Handler,
	usersHandler usersHandler.Handler,
	cardsHandler cardsHandler.Handler,
) API {
	return API{
		router:           router,
		loginURL:         loginURL,
		loginLimiter:     loginLimiter,
		authHandler:      authHandler,
		consoleHandler:   consoleHandler,
		brandsHandler:    brandsHandler,
		campaignsHandler: campaignsHandler,
		usersHandler:     usersHandler,
		cardsHandler:     cardsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", a.loginLimiter.Middleware(), a.authHandler.HandleLogin)
		authGroup.POST("/logout", a.authHandler.HandleLogout)
		authGroup.GET("/session", a.authHandler.HandleSession)
	}
	protectedGroup := apiGroup.Group("/protected", session.RequireSession(a.loginURL))
	{
		protectedGroup.GET("/console", a.consoleHandler.HandleConsole)

		brands := protectedGroup.Group("/brands")
		brands.GET("", rbac.Require(rbac.PermManageBrands, rbac.PermViewAdminBrands), a.brandsHandler.HandleListBrands)
		manageBrands := brands.Group("", rbac.Require(rbac.PermManageBrands))
		manageBrands.POST("", a.brandsHandler.HandleCreateBrand)
		manageBrands.PUT("/:brand_id", a.brandsHandler.HandleUpdateBrand)
		manageBrands.POST("/:brand_id/logo", a.brandsHandler.HandleReplaceLogo)
		manageBrands.POST("/:brand_id/admins", a.brandsHandler.HandleAssignAdmins)
		manageBrands.DELETE("/:brand_id", a.brandsHandler.HandleDeleteBrand)

		campaigns := protectedGroup.Group("/campaigns")
		viewCampaigns := rbac.Require(rbac.PermManageCampaigns, rbac.PermViewAssigned)
		campaigns.GET("", viewCampaigns, a.campaignsHandler.HandleListCampaigns)
		campaigns.GET("/:campaign_id", viewCampaigns, a.campaignsHandler.HandleGetCampaign)
		manageCampaigns := campaigns.Group("", rbac.Require(rbac.PermManageCampaigns))
		manageCampaigns.POST("", a.campaignsHandler.HandleCreateCampaign)
		manageCampaigns.PUT("/:campaign_id", a.campaignsHandler.HandleUpdateCampaign)
		manageCampaigns.PATCH("/:campaign_id/status", a.campaignsHandler.HandleChangeStatus)
		manageCampaigns.POST("/:campaign_id/deactivate", a.campaignsHandler.HandleDeactivateCampaign)
		manageCampaigns.POST("/:campaign_id/nurses", a.campaignsHandler.HandleAssignNurses)
		manageCampaigns.POST("/:campaign_id/nurses/revoke", a.campaignsHandler.HandleRevokeNurses)
		manageCampaigns.DELETE("/:campaign_id", a.campaignsHandler.HandleDeleteCampaign)

		users := protectedGroup.Group("/users", rbac.Require(rbac.PermManageNurses))
		users.GET("", a.usersHandler.HandleListUsers)
		users.POST("", a.usersHandler.HandleCreateUser)
		users.PATCH("/:user_id/status", a.usersHandler.HandleChangeUserStatus)
		users.DELETE("/:user_id", a.usersHandler.HandleDeleteUser)

		cards := protectedGroup.Group("/cards", rbac.Require(rbac.PermGenerateCards))
		cards.POST("/generate", a.cardsHandler.HandleGenerate)
		cards.POST("/preview", a.cardsHandler.HandlePreview)
		cards.GET("/preview/live", a.cardsHandler.HandleLivePreview)
		cards.POST("/vcf", a.cardsHandler.HandleVCF)
		cards.POST("/logo", a.cardsHandler.HandleUploadLogo)
		cards.POST("/share", a.cardsHandler.HandleShare)
		cards.GET("/channels", a.cardsHandler.HandleChannels)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
