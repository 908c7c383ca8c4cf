package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

type SceneRepository struct {
	mock.Mock
}

func (r *SceneRepository) ListScenes(ctx context.Context, exec repositories.Executor,
	churchId string,
) ([]models.Scene, error) {
	args := r.Called(ctx, exec, churchId)
	return args.Get(0).([]models.Scene), args.Error(1)
}

func (r *SceneRepository) MaxSceneSortOrder(ctx context.Context, exec repositories.Executor,
	churchId string,
) (int, error) {
	args := r.Called(ctx, exec, churchId)
	return args.Int(0), args.Error(1)
}

func (r *SceneRepository) CreateScene(ctx context.Context, exec repositories.Executor,
	attrs models.CreateSceneAttributes, newSceneId string, sortOrder int,
) error {
	args := r.Called(ctx, exec, attrs, newSceneId, sortOrder)
	return args.Error(0)
}

func (r *SceneRepository) GetSceneById(ctx context.Context, exec repositories.Executor,
	sceneId string,
) (models.Scene, error) {
	args := r.Called(ctx, exec, sceneId)
	return args.Get(0).(models.Scene), args.Error(1)
}

func (r *SceneRepository) DeleteScene(ctx context.Context, exec repositories.Executor, sceneId string) error {
	args := r.Called(ctx, exec, sceneId)
	return args.Error(0)
}

func (r *SceneRepository) ResequenceScenes(ctx context.Context, exec repositories.Executor,
	churchId string, aboveSortOrder int,
) error {
	args := r.Called(ctx, exec, churchId, aboveSortOrder)
	return args.Error(0)
}

func (r *SceneRepository) GetChurchById(ctx context.Context, exec repositories.Executor,
	churchId string,
) (models.Church, error) {
	args := r.Called(ctx, exec, churchId)
	return args.Get(0).(models.Church), args.Error(1)
}
