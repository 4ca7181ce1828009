package api

import (
	authHandler "agenda-server/internal/auth/handler"
	campaignHandler "agenda-server/internal/campaign/handler"
	reminderHandler "agenda-server/internal/reminders/handler"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	campaignHandler campaignHandler.Handler
	reminderHandler reminderHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	reminderHandler reminderHandler.Handler,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		campaignHandler: campaignHandler,
		reminderHandler: reminderHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	internalGroup := a.router.Group("/api/internal", a.authHandler.HandleJWTMiddleware)
	{
		internalGroup.POST("/campaigns/run", a.campaignHandler.HandleRunDueCampaigns)
		internalGroup.GET("/campaigns/:id", a.campaignHandler.HandleGetCampaignReport)

		internalGroup.POST("/appointments/:id/reminders/reschedule", a.reminderHandler.HandleRescheduleReminders)
		internalGroup.DELETE("/appointments/:id/reminders", a.reminderHandler.HandleCancelReminders)
		internalGroup.GET("/appointments/:id/reminders/history", a.reminderHandler.HandleListHistory)
		internalGroup.POST("/appointments/:id/confirmation", a.reminderHandler.HandleSendConfirmation)
		internalGroup.GET("/reminders/pending", a.reminderHandler.HandleListPending)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
