package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories/dbmodels"
)

func (repo *VisitaDbRepository) CreateFeedback(ctx context.Context, exec Executor,
	attrs models.CreateFeedbackAttributes, newFeedbackId string,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_FEEDBACK).
			Columns("id", "church_id", "visitor_name", "visitor_email", "message", "rating", "status").
			Values(newFeedbackId, attrs.ChurchId, attrs.VisitorName, attrs.VisitorEmail,
				attrs.Message, attrs.Rating, models.FeedbackNew),
	)
}

func (repo *VisitaDbRepository) ListFeedbackByChurch(ctx context.Context, exec Executor,
	churchId string, statuses []models.FeedbackStatus,
) ([]models.Feedback, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectFeedbackColumns...).
		From(dbmodels.TABLE_FEEDBACK).
		Where(squirrel.Eq{"church_id": churchId}).
		OrderBy("created_at DESC")

	if len(statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": statuses})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptFeedback)
}

func (repo *VisitaDbRepository) UpdateFeedbackStatus(ctx context.Context, exec Executor,
	feedbackId string, status models.FeedbackStatus,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Update(dbmodels.TABLE_FEEDBACK).
			Set("status", status).
			Where(squirrel.Eq{"id": feedbackId}),
	)
}
