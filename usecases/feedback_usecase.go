package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, exec repositories.Executor,
		attrs models.CreateFeedbackAttributes, newFeedbackId string) error
	ListFeedbackByChurch(ctx context.Context, exec repositories.Executor,
		churchId string, statuses []models.FeedbackStatus) ([]models.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, exec repositories.Executor,
		feedbackId string, status models.FeedbackStatus) error
	GetChurchById(ctx context.Context, exec repositories.Executor, churchId string) (models.Church, error)
}

type FeedbackUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      FeedbackRepository
}

// SubmitFeedback is the one unauthenticated write: visitors leave feedback on
// a published church profile.
func (uc FeedbackUsecase) SubmitFeedback(ctx context.Context, attrs models.CreateFeedbackAttributes) (string, error) {
	if err := attrs.Validate(); err != nil {
		return "", err
	}

	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, attrs.ChurchId)
	if err != nil {
		return "", err
	}
	if church.Status != models.ChurchApproved {
		return "", models.ErrChurchNotFound
	}

	newFeedbackId := uuid.NewString()
	if err := uc.repository.CreateFeedback(ctx, exec, attrs, newFeedbackId); err != nil {
		return "", wrapUnexpected(ctx, err, "failed to submit feedback")
	}
	return newFeedbackId, nil
}

func (uc FeedbackUsecase) ListFeedback(ctx context.Context, churchId string,
	statuses []models.FeedbackStatus,
) ([]models.Feedback, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return nil, err
	}
	if err := uc.enforceSecurity.ModerateFeedback(church); err != nil {
		return nil, err
	}
	feedback, err := uc.repository.ListFeedbackByChurch(ctx, exec, churchId, statuses)
	return feedback, wrapUnexpected(ctx, err, "failed to list feedback")
}

func (uc FeedbackUsecase) UpdateFeedbackStatus(ctx context.Context, churchId, feedbackId string,
	status models.FeedbackStatus,
) error {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.ModerateFeedback(church); err != nil {
		return err
	}
	err = uc.repository.UpdateFeedbackStatus(ctx, exec, feedbackId, status)
	return wrapUnexpected(ctx, err, "failed to update feedback status")
}
