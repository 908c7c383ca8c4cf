package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

type ChurchWorkflowRepository struct {
	mock.Mock
}

func (r *ChurchWorkflowRepository) GetChurchById(ctx context.Context, exec repositories.Executor,
	churchId string,
) (models.Church, error) {
	args := r.Called(ctx, exec, churchId)
	return args.Get(0).(models.Church), args.Error(1)
}

func (r *ChurchWorkflowRepository) ListChurches(ctx context.Context, exec repositories.Executor,
	filters models.ChurchFilters,
) ([]models.Church, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Church), args.Error(1)
}

func (r *ChurchWorkflowRepository) GetChurchByNameAndMunicipality(ctx context.Context,
	exec repositories.Executor, dioceseId, name, municipality, excludeId string,
) (*models.Church, error) {
	args := r.Called(ctx, exec, dioceseId, name, municipality, excludeId)
	church, _ := args.Get(0).(*models.Church)
	return church, args.Error(1)
}

func (r *ChurchWorkflowRepository) CreateChurch(ctx context.Context, exec repositories.Executor,
	attrs models.CreateChurchAttributes, newChurchId string,
) error {
	args := r.Called(ctx, exec, attrs, newChurchId)
	return args.Error(0)
}

func (r *ChurchWorkflowRepository) UpdateChurch(ctx context.Context, exec repositories.Executor,
	attrs models.UpdateChurchAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *ChurchWorkflowRepository) UpdateChurchPendingChanges(ctx context.Context,
	exec repositories.Executor, churchId string, pendingChanges *models.PendingChanges,
) error {
	args := r.Called(ctx, exec, churchId, pendingChanges)
	return args.Error(0)
}

func (r *ChurchWorkflowRepository) GetDioceseById(ctx context.Context, exec repositories.Executor,
	dioceseId string,
) (models.Diocese, error) {
	args := r.Called(ctx, exec, dioceseId)
	return args.Get(0).(models.Diocese), args.Error(1)
}
