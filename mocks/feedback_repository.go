package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

type FeedbackRepository struct {
	mock.Mock
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, exec repositories.Executor,
	attrs models.CreateFeedbackAttributes, newFeedbackId string,
) error {
	args := r.Called(ctx, exec, attrs, newFeedbackId)
	return args.Error(0)
}

func (r *FeedbackRepository) ListFeedbackByChurch(ctx context.Context, exec repositories.Executor,
	churchId string, statuses []models.FeedbackStatus,
) ([]models.Feedback, error) {
	args := r.Called(ctx, exec, churchId, statuses)
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (r *FeedbackRepository) UpdateFeedbackStatus(ctx context.Context, exec repositories.Executor,
	feedbackId string, status models.FeedbackStatus,
) error {
	args := r.Called(ctx, exec, feedbackId, status)
	return args.Error(0)
}

func (r *FeedbackRepository) GetChurchById(ctx context.Context, exec repositories.Executor,
	churchId string,
) (models.Church, error) {
	args := r.Called(ctx, exec, churchId)
	return args.Get(0).(models.Church), args.Error(1)
}
