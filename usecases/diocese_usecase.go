package usecases

import (
	"context"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
)

type DioceseRepository interface {
	GetDioceseById(ctx context.Context, exec repositories.Executor, dioceseId string) (models.Diocese, error)
	ListDioceses(ctx context.Context, exec repositories.Executor) ([]models.Diocese, error)
}

// DioceseUsecase serves reference data, no security check: the diocese list
// is public.
type DioceseUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      DioceseRepository
}

func (uc DioceseUsecase) GetDiocese(ctx context.Context, dioceseId string) (models.Diocese, error) {
	return uc.repository.GetDioceseById(ctx, uc.executorFactory.NewExecutor(), dioceseId)
}

func (uc DioceseUsecase) ListDioceses(ctx context.Context) ([]models.Diocese, error) {
	dioceses, err := uc.repository.ListDioceses(ctx, uc.executorFactory.NewExecutor())
	return dioceses, wrapUnexpected(ctx, err, "failed to list dioceses")
}
