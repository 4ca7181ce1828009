package handler

import (
	"context"
	"net/http"

	"agenda-server/internal/apierrors"
	"agenda-server/internal/observability"
	reminderScheduler "agenda-server/internal/reminders/scheduler"
	"agenda-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	scheduler ReminderScheduler
	sender    ConfirmationSender
	history   HistoryStore
	logger    *observability.Logger
}

func New(scheduler ReminderScheduler, sender ConfirmationSender, history HistoryStore, logger *observability.Logger) Handler {
	return Handler{
		scheduler: scheduler,
		sender:    sender,
		history:   history,
		logger:    logger,
	}
}

// AppointmentURI binds the appointment id path parameter
type AppointmentURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// PendingResponse lists armed reminder timers
type PendingResponse struct {
	Pending []reminderScheduler.PendingReminder `json:"pending"`
}

// HistoryResponse lists recorded deliveries of an appointment
type HistoryResponse struct {
	History []store.ReminderHistory `json:"history"`
}

func (h *Handler) bindAppointment(c *gin.Context) (int64, context.Context, bool) {
	var uri AppointmentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		apierrors.ValidationError(c, err)
		return 0, nil, false
	}
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "appointment_id", Value: uri.ID},
	)
	return uri.ID, ctx, true
}

// HandleRescheduleReminders re-arms the reminders of an appointment after it changed
func (h *Handler) HandleRescheduleReminders(c *gin.Context) {
	appointmentID, ctx, ok := h.bindAppointment(c)
	if !ok {
		return
	}

	if err := h.scheduler.RescheduleRemindersForAppointment(ctx, appointmentID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PendingResponse{Pending: h.pendingFor(appointmentID)})
}

// HandleCancelReminders disarms every reminder of an appointment
func (h *Handler) HandleCancelReminders(c *gin.Context) {
	appointmentID, ctx, ok := h.bindAppointment(c)
	if !ok {
		return
	}

	h.scheduler.CancelAllRemindersForAppointment(appointmentID)
	h.logger.Info(ctx, "appointment reminders cancelled")

	c.Status(http.StatusNoContent)
}

// HandleSendConfirmation sends the booking confirmation now
func (h *Handler) HandleSendConfirmation(c *gin.Context) {
	appointmentID, ctx, ok := h.bindAppointment(c)
	if !ok {
		return
	}

	if err := h.sender.SendConfirmation(ctx, appointmentID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": store.DeliveryStatusSent})
}

// HandleListHistory returns the reminder history of an appointment
func (h *Handler) HandleListHistory(c *gin.Context) {
	appointmentID, ctx, ok := h.bindAppointment(c)
	if !ok {
		return
	}

	history, err := h.history.ListReminderHistory(ctx, appointmentID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if history == nil {
		history = []store.ReminderHistory{}
	}

	c.JSON(http.StatusOK, HistoryResponse{History: history})
}

// HandleListPending returns every armed reminder timer
func (h *Handler) HandleListPending(c *gin.Context) {
	c.JSON(http.StatusOK, PendingResponse{Pending: h.scheduler.Pending()})
}

func (h *Handler) pendingFor(appointmentID int64) []reminderScheduler.PendingReminder {
	pending := []reminderScheduler.PendingReminder{}
	for _, p := range h.scheduler.Pending() {
		if p.AppointmentID == appointmentID {
			pending = append(pending, p)
		}
	}
	return pending
}
