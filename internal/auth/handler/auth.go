package handler

import (
	"agenda-server/internal/apierrors"
	"agenda-server/internal/auth/processor"
	"agenda-server/internal/observability"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServiceKey is the gin context key holding the authenticated caller
const ServiceKey = "Service-Name"

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.ServiceClaims, error)
}

type Handler struct {
	validator TokenValidator
	logger    *observability.Logger
}

func New(validator TokenValidator, logger *observability.Logger) Handler {
	return Handler{
		validator: validator,
		logger:    logger,
	}
}

// HandleJWTMiddleware rejects requests without a valid service token
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.validator.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		return
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		apierrors.Unauthorized(c, "token has no subject")
		return
	}

	c.Set(ServiceKey, sub)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "service", Value: sub},
	))
	c.Next()
}
