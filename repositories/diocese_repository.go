package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories/dbmodels"
)

func (repo *VisitaDbRepository) GetDioceseById(ctx context.Context, exec Executor, dioceseId string) (models.Diocese, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectDioceseColumns...).
		From(dbmodels.TABLE_DIOCESES).
		Where(squirrel.Eq{"id": dioceseId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptDiocese)
}

func (repo *VisitaDbRepository) ListDioceses(ctx context.Context, exec Executor) ([]models.Diocese, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectDioceseColumns...).
		From(dbmodels.TABLE_DIOCESES).
		OrderBy("name ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDiocese)
}
