package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories/dbmodels"
)

func (repo *VisitaDbRepository) GetAnnouncementById(ctx context.Context, exec Executor, id string) (models.Announcement, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAnnouncementColumns...).
		From(dbmodels.TABLE_ANNOUNCEMENTS).
		Where(squirrel.Eq{"id": id})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptAnnouncement)
}

func (repo *VisitaDbRepository) ListAnnouncements(ctx context.Context, exec Executor,
	filters models.AnnouncementFilters,
) ([]models.Announcement, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAnnouncementColumns...).
		From(dbmodels.TABLE_ANNOUNCEMENTS).
		Where(squirrel.Eq{"diocese_id": filters.DioceseId}).
		OrderBy("created_at DESC")

	if filters.PublishedOnly {
		query = query.Where(squirrel.Eq{"is_published": true})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAnnouncement)
}

func (repo *VisitaDbRepository) CreateAnnouncement(ctx context.Context, exec Executor,
	attrs models.CreateAnnouncementAttributes, newAnnouncementId string,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ANNOUNCEMENTS).
			Columns("id", "diocese_id", "title", "body", "created_by").
			Values(newAnnouncementId, attrs.DioceseId, attrs.Title, attrs.Body, attrs.CreatedBy),
	)
}

func (repo *VisitaDbRepository) UpdateAnnouncement(ctx context.Context, exec Executor,
	attrs models.UpdateAnnouncementAttributes,
) error {
	sql := NewQueryBuilder().Update(dbmodels.TABLE_ANNOUNCEMENTS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": attrs.Id})

	if attrs.Title != nil {
		sql = sql.Set("title", *attrs.Title)
	}
	if attrs.Body != nil {
		sql = sql.Set("body", *attrs.Body)
	}
	if attrs.IsPublished != nil {
		sql = sql.Set("is_published", *attrs.IsPublished)
	}

	return ExecBuilder(ctx, exec, sql)
}

func (repo *VisitaDbRepository) DeleteAnnouncement(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_ANNOUNCEMENTS).Where(squirrel.Eq{"id": id}),
	)
}
