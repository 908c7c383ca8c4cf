package usecases

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

// wrapUnexpected passes expected domain errors through untouched and converts
// anything else (driver failures, broken invariants) into an opaque
// OperationFailedError after logging the original cause.
func wrapUnexpected(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.IsAny(err,
		models.BadParameterError,
		models.UnAuthorizedError,
		models.ForbiddenError,
		models.NotFoundError,
		models.ConflictError,
	) {
		return err
	}
	utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("%s: %v", msg, err))
	return errors.Wrap(models.OperationFailedError, msg)
}
