package handler

import (
	"errors"
	"net/http"

	"agenda-server/internal/apierrors"
	"agenda-server/internal/observability"
	"agenda-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	runner CampaignRunner
	store  CampaignStore
	logger *observability.Logger
}

func New(runner CampaignRunner, store CampaignStore, logger *observability.Logger) Handler {
	return Handler{
		runner: runner,
		store:  store,
		logger: logger,
	}
}

// CampaignURI binds the campaign id path parameter
type CampaignURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// CampaignReportResponse is a campaign with its per recipient delivery log
type CampaignReportResponse struct {
	Campaign store.Campaign          `json:"campaign"`
	History  []store.CampaignHistory `json:"history"`
}

// HandleRunDueCampaigns runs one campaign tick outside the regular schedule
func (h *Handler) HandleRunDueCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.runner.ProcessDueCampaigns(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "run_id", Value: result.RunID},
		observability.Field{Key: "processed", Value: result.Processed},
	)
	h.logger.Info(ctx, "manual campaign run finished")

	c.JSON(http.StatusOK, result)
}

// HandleGetCampaignReport returns a campaign and its delivery history
func (h *Handler) HandleGetCampaignReport(c *gin.Context) {
	var uri CampaignURI
	if err := c.ShouldBindUri(&uri); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "campaign_id", Value: uri.ID},
	)

	campaign, err := h.store.GetCampaignByID(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "Campaign not found")
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	history, err := h.store.ListCampaignHistory(ctx, uri.ID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if history == nil {
		history = []store.CampaignHistory{}
	}

	c.JSON(http.StatusOK, CampaignReportResponse{Campaign: campaign, History: history})
}
