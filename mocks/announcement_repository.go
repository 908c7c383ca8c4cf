package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

type AnnouncementRepository struct {
	mock.Mock
}

func (r *AnnouncementRepository) GetAnnouncementById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Announcement, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.Announcement), args.Error(1)
}

func (r *AnnouncementRepository) ListAnnouncements(ctx context.Context, exec repositories.Executor,
	filters models.AnnouncementFilters,
) ([]models.Announcement, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.Announcement), args.Error(1)
}

func (r *AnnouncementRepository) CreateAnnouncement(ctx context.Context, exec repositories.Executor,
	attrs models.CreateAnnouncementAttributes, newAnnouncementId string,
) error {
	args := r.Called(ctx, exec, attrs, newAnnouncementId)
	return args.Error(0)
}

func (r *AnnouncementRepository) UpdateAnnouncement(ctx context.Context, exec repositories.Executor,
	attrs models.UpdateAnnouncementAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *AnnouncementRepository) DeleteAnnouncement(ctx context.Context, exec repositories.Executor,
	id string,
) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}
