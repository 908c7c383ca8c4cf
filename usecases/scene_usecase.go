package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type SceneRepository interface {
	ListScenes(ctx context.Context, exec repositories.Executor, churchId string) ([]models.Scene, error)
	MaxSceneSortOrder(ctx context.Context, exec repositories.Executor, churchId string) (int, error)
	CreateScene(ctx context.Context, exec repositories.Executor,
		attrs models.CreateSceneAttributes, newSceneId string, sortOrder int) error
	GetSceneById(ctx context.Context, exec repositories.Executor, sceneId string) (models.Scene, error)
	DeleteScene(ctx context.Context, exec repositories.Executor, sceneId string) error
	ResequenceScenes(ctx context.Context, exec repositories.Executor, churchId string, aboveSortOrder int) error
	GetChurchById(ctx context.Context, exec repositories.Executor, churchId string) (models.Church, error)
}

// SceneUsecase manages the virtual-tour scene list. Unlike church profile
// writes, scene mutations run inside a database transaction: appending takes
// the next sort order and deleting closes the gap, and neither must lose a
// concurrent mutation.
type SceneUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      SceneRepository
}

func (uc SceneUsecase) ListScenes(ctx context.Context, churchId string) ([]models.Scene, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return nil, err
	}
	if err := uc.enforceSecurity.ReadChurch(church); err != nil {
		return nil, err
	}
	scenes, err := uc.repository.ListScenes(ctx, exec, churchId)
	return scenes, wrapUnexpected(ctx, err, "failed to list virtual tour scenes")
}

func (uc SceneUsecase) AddScene(ctx context.Context, attrs models.CreateSceneAttributes) (models.Scene, error) {
	church, err := uc.repository.GetChurchById(ctx, uc.executorFactory.NewExecutor(), attrs.ChurchId)
	if err != nil {
		return models.Scene{}, err
	}
	if err := uc.enforceSecurity.UpdateChurch(church); err != nil {
		return models.Scene{}, err
	}

	scene, err := executor_factory.TransactionReturnValue(ctx, uc.executorFactory,
		func(tx repositories.Transaction) (models.Scene, error) {
			maxSortOrder, err := uc.repository.MaxSceneSortOrder(ctx, tx, attrs.ChurchId)
			if err != nil {
				return models.Scene{}, err
			}
			newSceneId := uuid.NewString()
			if err := uc.repository.CreateScene(ctx, tx, attrs, newSceneId, maxSortOrder+1); err != nil {
				return models.Scene{}, err
			}
			return uc.repository.GetSceneById(ctx, tx, newSceneId)
		})
	return scene, wrapUnexpected(ctx, err, "failed to add virtual tour scene")
}

func (uc SceneUsecase) DeleteScene(ctx context.Context, sceneId string) error {
	scene, err := uc.repository.GetSceneById(ctx, uc.executorFactory.NewExecutor(), sceneId)
	if err != nil {
		return err
	}
	church, err := uc.repository.GetChurchById(ctx, uc.executorFactory.NewExecutor(), scene.ChurchId)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.UpdateChurch(church); err != nil {
		return err
	}

	err = uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := uc.repository.DeleteScene(ctx, tx, scene.Id); err != nil {
			return err
		}
		return uc.repository.ResequenceScenes(ctx, tx, scene.ChurchId, scene.SortOrder)
	})
	return wrapUnexpected(ctx, err, "failed to delete virtual tour scene")
}
