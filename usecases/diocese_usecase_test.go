package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
)

func newDioceseUsecase() (DioceseUsecase, pgxmock.PgxPoolIface) {
	stub := executor_factory.NewExecutorFactoryStub()
	uc := DioceseUsecase{
		executorFactory: stub,
		repository:      repositories.NewVisitaDbRepository(),
	}
	return uc, stub.Mock
}

func TestListDioceses(t *testing.T) {
	uc, pool := newDioceseUsecase()
	defer pool.Close()
	now := time.Now()

	pool.ExpectQuery(`SELECT id, name, logo_key, created_at FROM dioceses ORDER BY name ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "logo_key", "created_at"}).
			AddRow("diocese-1", "Diocese of Talibon", "talibon.png", now).
			AddRow("diocese-2", "Diocese of Tagbilaran", "tagbilaran.png", now))

	dioceses, err := uc.ListDioceses(context.Background())
	require.NoError(t, err)
	require.Len(t, dioceses, 2)
	assert.Equal(t, models.Diocese{
		Id: "diocese-1", Name: "Diocese of Talibon", LogoKey: "talibon.png", CreatedAt: now,
	}, dioceses[0])
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestGetDiocese_UnknownIdIsNotFound(t *testing.T) {
	uc, pool := newDioceseUsecase()
	defer pool.Close()

	pool.ExpectQuery(`SELECT id, name, logo_key, created_at FROM dioceses WHERE id = \$1`).
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "logo_key", "created_at"}))

	_, err := uc.GetDiocese(context.Background(), "nope")
	assert.ErrorIs(t, err, models.NotFoundError)
	assert.NoError(t, pool.ExpectationsWereMet())
}
