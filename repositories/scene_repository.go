package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories/dbmodels"
)

func (repo *VisitaDbRepository) ListScenes(ctx context.Context, exec Executor, churchId string) ([]models.Scene, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectSceneColumns...).
		From(dbmodels.TABLE_SCENES).
		Where(squirrel.Eq{"church_id": churchId}).
		OrderBy("sort_order ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptScene)
}

// MaxSceneSortOrder reads the current tail of the scene list. Callers mutating
// the list must hold a transaction so concurrent additions do not collide.
func (repo *VisitaDbRepository) MaxSceneSortOrder(ctx context.Context, exec Executor, churchId string) (int, error) {
	sql, args, err := NewQueryBuilder().
		Select("COALESCE(MAX(sort_order), 0)").
		From(dbmodels.TABLE_SCENES).
		Where(squirrel.Eq{"church_id": churchId}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var maxSortOrder int
	err = exec.QueryRow(ctx, sql, args...).Scan(&maxSortOrder)
	return maxSortOrder, err
}

func (repo *VisitaDbRepository) CreateScene(ctx context.Context, exec Executor,
	attrs models.CreateSceneAttributes, newSceneId string, sortOrder int,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_SCENES).
			Columns("id", "church_id", "title", "image_key", "sort_order").
			Values(newSceneId, attrs.ChurchId, attrs.Title, attrs.ImageKey, sortOrder),
	)
}

func (repo *VisitaDbRepository) GetSceneById(ctx context.Context, exec Executor, sceneId string) (models.Scene, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectSceneColumns...).
		From(dbmodels.TABLE_SCENES).
		Where(squirrel.Eq{"id": sceneId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptScene)
}

func (repo *VisitaDbRepository) DeleteScene(ctx context.Context, exec Executor, sceneId string) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_SCENES).Where(squirrel.Eq{"id": sceneId}),
	)
}

// ResequenceScenes closes the sort-order gap left by a deletion.
func (repo *VisitaDbRepository) ResequenceScenes(ctx context.Context, exec Executor,
	churchId string, deletedSortOrder int,
) error {
	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Update(dbmodels.TABLE_SCENES).
			Set("sort_order", squirrel.Expr("sort_order - 1")).
			Where(squirrel.Eq{"church_id": churchId}).
			Where(squirrel.Gt{"sort_order": deletedSortOrder}),
	)
}
