package apierrors

import (
	"errors"

	"agenda-server/internal/reminders/delivery"
	reminderScheduler "agenda-server/internal/reminders/scheduler"
	"agenda-server/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps domain errors to HTTP responses. Unknown errors
// become a sanitized 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, reminderScheduler.ErrAppointmentNotFound),
		errors.Is(err, store.ErrNotFound):
		NotFound(c, "Appointment not found")

	case errors.Is(err, delivery.ErrSkipped):
		Conflict(c, CodeDeliverySkipped, err.Error())

	case errors.Is(err, delivery.ErrSendFailed):
		BadGateway(c, CodeGatewayUnavailable, "The messaging gateway did not accept the message", err)

	default:
		InternalError(c, err)
	}
}
