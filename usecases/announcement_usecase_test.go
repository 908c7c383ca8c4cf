package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/keej24/visita-bohol-system-sub001/mocks"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type AnnouncementUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.AnnouncementRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	auditLogger     *mocks.AuditLogger

	dioceseId      string
	announcementId string
}

func (suite *AnnouncementUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.AnnouncementRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.executorFactory.ExecMock = suite.executor
	suite.auditLogger = new(mocks.AuditLogger)

	suite.dioceseId = "b26c0f6e-2e34-4fd5-a82f-7fd0e2a2a001"
	suite.announcementId = "93b4589c-4f1e-43b7-9e5a-0c0b2ab0a005"

	suite.executorFactory.On("NewExecutor").Return().Maybe()
	suite.auditLogger.On("Log", mock.Anything, mock.Anything).Return().Maybe()
}

func (suite *AnnouncementUsecaseTestSuite) makeUsecase(role models.Role) AnnouncementUsecase {
	creds := models.Credentials{
		ActorId:   "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002",
		Role:      role,
		DioceseId: suite.dioceseId,
	}
	return AnnouncementUsecase{
		enforceSecurity: security.EnforceSecurity{Credentials: creds},
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		auditLogger:     suite.auditLogger,
		credentials:     creds,
	}
}

func (suite *AnnouncementUsecaseTestSuite) TestListAnnouncements_VisitorsOnlySeePublished() {
	ctx := context.Background()

	suite.repository.On("ListAnnouncements", ctx, suite.executor,
		models.AnnouncementFilters{DioceseId: suite.dioceseId, PublishedOnly: true}).
		Return([]models.Announcement{}, nil)

	uc := suite.makeUsecase(models.NO_ROLE)
	_, err := uc.ListAnnouncements(ctx, models.AnnouncementFilters{DioceseId: suite.dioceseId})

	suite.Require().NoError(err)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AnnouncementUsecaseTestSuite) TestUpdateAnnouncement_PublishEmitsAuditEntry() {
	ctx := context.Background()
	unpublished := models.Announcement{
		Id: suite.announcementId, DioceseId: suite.dioceseId, Title: "Fiesta", IsPublished: false,
	}
	published := unpublished
	published.IsPublished = true
	isPublished := true

	suite.repository.On("GetAnnouncementById", ctx, suite.executor, suite.announcementId).
		Return(unpublished, nil).Once()
	suite.repository.On("UpdateAnnouncement", ctx, suite.executor, mock.Anything).Return(nil)
	suite.repository.On("GetAnnouncementById", ctx, suite.executor, suite.announcementId).
		Return(published, nil).Once()

	uc := suite.makeUsecase(models.REVIEWER)
	_, err := uc.UpdateAnnouncement(ctx, models.UpdateAnnouncementAttributes{
		Id:          suite.announcementId,
		IsPublished: &isPublished,
	})

	suite.Require().NoError(err)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	suite.Equal(models.AuditAnnouncementPublished, suite.auditLogger.Entries[0].Action)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AnnouncementUsecaseTestSuite) TestCreateAnnouncement_ForbiddenForParishStaff() {
	uc := suite.makeUsecase(models.PARISH_STAFF)
	_, err := uc.CreateAnnouncement(context.Background(), models.CreateAnnouncementAttributes{
		DioceseId: suite.dioceseId,
		Title:     "Fiesta",
		Body:      "Schedule of activities",
	})
	suite.ErrorIs(err, models.ForbiddenError)
}

func TestAnnouncementUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementUsecaseTestSuite))
}
