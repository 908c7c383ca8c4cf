package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type pgxPoolExecutor struct {
	pgxmock.PgxPoolIface
}

func newMockExecutor(t *testing.T) (pgxmock.PgxPoolIface, Executor) {
	pool, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool, pgxPoolExecutor{pool}
}

func TestListScenes(t *testing.T) {
	pool, exec := newMockExecutor(t)
	repo := NewVisitaDbRepository()
	now := time.Now()

	pool.ExpectQuery(`SELECT id, church_id, title, image_key, sort_order, created_at FROM virtual_tour_scenes WHERE church_id = \$1 ORDER BY sort_order ASC`).
		WithArgs("church-1").
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "church_id", "title", "image_key", "sort_order", "created_at"}).
			AddRow("scene-1", "church-1", "Altar", "altar.jpg", 1, now).
			AddRow("scene-2", "church-1", "Facade", "facade.jpg", 2, now))

	scenes, err := repo.ListScenes(context.Background(), exec, "church-1")
	require.NoError(t, err)
	require.Len(t, scenes, 2)
	assert.Equal(t, models.Scene{
		Id: "scene-1", ChurchId: "church-1", Title: "Altar",
		ImageKey: "altar.jpg", SortOrder: 1, CreatedAt: now,
	}, scenes[0])
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestMaxSceneSortOrder_EmptyListStartsAtZero(t *testing.T) {
	pool, exec := newMockExecutor(t)
	repo := NewVisitaDbRepository()

	pool.ExpectQuery(`SELECT COALESCE\(MAX\(sort_order\), 0\) FROM virtual_tour_scenes WHERE church_id = \$1`).
		WithArgs("church-1").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))

	maxSortOrder, err := repo.MaxSceneSortOrder(context.Background(), exec, "church-1")
	require.NoError(t, err)
	assert.Equal(t, 0, maxSortOrder)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestCreateScene(t *testing.T) {
	pool, exec := newMockExecutor(t)
	repo := NewVisitaDbRepository()

	pool.ExpectExec(`INSERT INTO virtual_tour_scenes \(id,church_id,title,image_key,sort_order\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
		WithArgs("scene-1", "church-1", "Altar", "altar.jpg", 3).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateScene(context.Background(), exec, models.CreateSceneAttributes{
		ChurchId: "church-1",
		Title:    "Altar",
		ImageKey: "altar.jpg",
	}, "scene-1", 3)
	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestResequenceScenes(t *testing.T) {
	pool, exec := newMockExecutor(t)
	repo := NewVisitaDbRepository()

	pool.ExpectExec(`UPDATE virtual_tour_scenes SET sort_order = sort_order - 1 WHERE church_id = \$1 AND sort_order > \$2`).
		WithArgs("church-1", 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	err := repo.ResequenceScenes(context.Background(), exec, "church-1", 2)
	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}
