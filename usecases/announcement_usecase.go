package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type AnnouncementRepository interface {
	GetAnnouncementById(ctx context.Context, exec repositories.Executor, id string) (models.Announcement, error)
	ListAnnouncements(ctx context.Context, exec repositories.Executor,
		filters models.AnnouncementFilters) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, exec repositories.Executor,
		attrs models.CreateAnnouncementAttributes, newAnnouncementId string) error
	UpdateAnnouncement(ctx context.Context, exec repositories.Executor,
		attrs models.UpdateAnnouncementAttributes) error
	DeleteAnnouncement(ctx context.Context, exec repositories.Executor, id string) error
}

type AnnouncementUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      AnnouncementRepository
	auditLogger     AuditLogger
	credentials     models.Credentials
}

func (uc AnnouncementUsecase) ListAnnouncements(ctx context.Context, filters models.AnnouncementFilters) ([]models.Announcement, error) {
	// Unauthenticated visitors only see published announcements.
	if uc.credentials.Role == models.NO_ROLE {
		filters.PublishedOnly = true
	}
	announcements, err := uc.repository.ListAnnouncements(ctx, uc.executorFactory.NewExecutor(), filters)
	return announcements, wrapUnexpected(ctx, err, "failed to list announcements")
}

func (uc AnnouncementUsecase) CreateAnnouncement(ctx context.Context, attrs models.CreateAnnouncementAttributes) (models.Announcement, error) {
	if err := uc.enforceSecurity.ManageAnnouncements(attrs.DioceseId); err != nil {
		return models.Announcement{}, err
	}
	if attrs.Title == "" || attrs.Body == "" {
		return models.Announcement{}, fmt.Errorf("announcement title and body are required: %w", models.BadParameterError)
	}
	attrs.CreatedBy = uc.credentials.ActorId

	exec := uc.executorFactory.NewExecutor()
	newAnnouncementId := uuid.NewString()
	if err := uc.repository.CreateAnnouncement(ctx, exec, attrs, newAnnouncementId); err != nil {
		return models.Announcement{}, wrapUnexpected(ctx, err, "failed to create announcement")
	}
	announcement, err := uc.repository.GetAnnouncementById(ctx, exec, newAnnouncementId)
	return announcement, wrapUnexpected(ctx, err, "failed to read back created announcement")
}

func (uc AnnouncementUsecase) UpdateAnnouncement(ctx context.Context, attrs models.UpdateAnnouncementAttributes) (models.Announcement, error) {
	exec := uc.executorFactory.NewExecutor()
	announcement, err := uc.repository.GetAnnouncementById(ctx, exec, attrs.Id)
	if err != nil {
		return models.Announcement{}, err
	}
	if err := uc.enforceSecurity.ManageAnnouncements(announcement.DioceseId); err != nil {
		return models.Announcement{}, err
	}

	if err := uc.repository.UpdateAnnouncement(ctx, exec, attrs); err != nil {
		return models.Announcement{}, wrapUnexpected(ctx, err, "failed to update announcement")
	}
	updated, err := uc.repository.GetAnnouncementById(ctx, exec, attrs.Id)
	if err != nil {
		return models.Announcement{}, wrapUnexpected(ctx, err, "failed to read back updated announcement")
	}

	if attrs.IsPublished != nil && *attrs.IsPublished && !announcement.IsPublished {
		uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
			Actor:        uc.credentials.AuditActor(),
			Action:       models.AuditAnnouncementPublished,
			ResourceType: models.AuditResourceAnnouncement,
			ResourceId:   updated.Id,
			ResourceName: updated.Title,
		})
	}
	return updated, nil
}

func (uc AnnouncementUsecase) DeleteAnnouncement(ctx context.Context, id string) error {
	exec := uc.executorFactory.NewExecutor()
	announcement, err := uc.repository.GetAnnouncementById(ctx, exec, id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.ManageAnnouncements(announcement.DioceseId); err != nil {
		return err
	}

	if err := uc.repository.DeleteAnnouncement(ctx, exec, id); err != nil {
		return wrapUnexpected(ctx, err, "failed to delete announcement")
	}
	uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
		Actor:        uc.credentials.AuditActor(),
		Action:       models.AuditAnnouncementDeleted,
		ResourceType: models.AuditResourceAnnouncement,
		ResourceId:   announcement.Id,
		ResourceName: announcement.Title,
	})
	return nil
}
