package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type errorDto struct {
	Message string `json:"message"`
}

// presentError renders a domain error as a json response and reports whether
// it handled one. Handlers use it as `if presentError(ctx, c, err) { return }`.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, errorDto{Message: err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, errorDto{Message: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, errorDto{Message: err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, errorDto{Message: err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, errorDto{Message: err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("unexpected error: %v", err))
		c.JSON(http.StatusInternalServerError, errorDto{Message: models.OperationFailedError.Error()})
	}
	c.Abort()
	return true
}
