package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/keej24/visita-bohol-system-sub001/mocks"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type AuditUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.AuditLogRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	dioceseId string
	entryId   string
}

func (suite *AuditUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.AuditLogRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.executorFactory.ExecMock = suite.executor

	suite.dioceseId = "b26c0f6e-2e34-4fd5-a82f-7fd0e2a2a001"
	suite.entryId = "7a1a6f90-51d2-4c6a-a206-3f6d7c3ba006"

	suite.executorFactory.On("NewExecutor").Return().Maybe()
}

func (suite *AuditUsecaseTestSuite) makeUsecase(role models.Role) AuditUsecase {
	creds := models.Credentials{
		ActorId:   "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002",
		Role:      role,
		DioceseId: suite.dioceseId,
	}
	return AuditUsecase{
		enforceSecurity: security.EnforceSecurity{Credentials: creds},
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		credentials:     creds,
	}
}

func (suite *AuditUsecaseTestSuite) sampleEntry(dioceseId string) models.AuditLogEntry {
	return models.AuditLogEntry{
		Id:           suite.entryId,
		Actor:        models.AuditActor{Id: "actor-1", DioceseId: dioceseId},
		Action:       models.AuditChurchApproved,
		ResourceType: models.AuditResourceChurch,
	}
}

func (suite *AuditUsecaseTestSuite) TestListAuditLog_DefaultsToOwnDioceseAndPageSize() {
	ctx := context.Background()

	suite.repository.On("ListAuditLogEntries", ctx, suite.executor,
		models.AuditLogFilters{DioceseId: suite.dioceseId}, defaultAuditPageSize, "").
		Return([]models.AuditLogEntry{suite.sampleEntry(suite.dioceseId)}, nil)

	entries, err := suite.makeUsecase(models.REVIEWER).
		ListAuditLog(ctx, models.AuditLogFilters{}, 0, "")

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AuditUsecaseTestSuite) TestGetAuditLogEntry_Nominal() {
	ctx := context.Background()

	suite.repository.On("GetAuditLogEntry", ctx, suite.executor, suite.entryId).
		Return(suite.sampleEntry(suite.dioceseId), nil)

	entry, err := suite.makeUsecase(models.REVIEWER).GetAuditLogEntry(ctx, suite.entryId)

	suite.Require().NoError(err)
	suite.Equal(suite.entryId, entry.Id)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AuditUsecaseTestSuite) TestGetAuditLogEntry_ForbiddenForOtherDiocese() {
	ctx := context.Background()
	other := "0d7ecb4c-3f55-4a36-a215-000000000999"

	suite.repository.On("GetAuditLogEntry", ctx, suite.executor, suite.entryId).
		Return(suite.sampleEntry(other), nil)

	_, err := suite.makeUsecase(models.REVIEWER).GetAuditLogEntry(ctx, suite.entryId)
	suite.ErrorIs(err, models.ForbiddenError)
}

func (suite *AuditUsecaseTestSuite) TestGetAuditLogEntry_ForbiddenForParishStaff() {
	ctx := context.Background()

	suite.repository.On("GetAuditLogEntry", ctx, suite.executor, suite.entryId).
		Return(suite.sampleEntry(suite.dioceseId), nil)

	_, err := suite.makeUsecase(models.PARISH_STAFF).GetAuditLogEntry(ctx, suite.entryId)
	suite.ErrorIs(err, models.ForbiddenError)
}

func TestAuditUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuditUsecaseTestSuite))
}
