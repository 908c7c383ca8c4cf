package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/keej24/visita-bohol-system-sub001/mocks"
	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/pure_utils"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type ChurchWorkflowTestSuite struct {
	suite.Suite
	repository      *mocks.ChurchWorkflowRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	auditLogger     *mocks.AuditLogger

	dioceseId string
	actorId   string
	churchId  string
}

func (suite *ChurchWorkflowTestSuite) SetupTest() {
	suite.repository = new(mocks.ChurchWorkflowRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.executorFactory.ExecMock = suite.executor
	suite.auditLogger = new(mocks.AuditLogger)

	suite.dioceseId = "b26c0f6e-2e34-4fd5-a82f-7fd0e2a2a001"
	suite.actorId = "8b56e7b7-8f0d-4d5e-93da-0cf8e6d4a002"
	suite.churchId = "6ccdbd02-1f0a-4f3a-8c08-f05e4b9ba003"

	suite.executorFactory.On("NewExecutor").Return().Maybe()
	suite.auditLogger.On("Log", mock.Anything, mock.Anything).Return().Maybe()
}

func (suite *ChurchWorkflowTestSuite) makeUsecase(role models.Role) ChurchWorkflowUsecase {
	creds := models.Credentials{
		ActorId:   suite.actorId,
		Role:      role,
		DioceseId: suite.dioceseId,
	}
	return ChurchWorkflowUsecase{
		enforceSecurity: security.EnforceSecurity{Credentials: creds},
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		auditLogger:     suite.auditLogger,
		credentials:     creds,
	}
}

func (suite *ChurchWorkflowTestSuite) sampleChurch(status models.ChurchStatus) models.Church {
	now := time.Now()
	return models.Church{
		Id:             suite.churchId,
		DioceseId:      suite.dioceseId,
		Name:           "St. Anne",
		Municipality:   "Loon",
		Barangay:       "Poblacion",
		Description:    "Parish church of Loon",
		Status:         status,
		Classification: models.ClassificationNonHeritage,
		MassSchedules:  "Sun 6am",
		ContactNumber:  "012-345",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (suite *ChurchWorkflowTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.auditLogger.AssertExpectations(t)
}

func (suite *ChurchWorkflowTestSuite) TestCreateChurch_DuplicateNameInMunicipality() {
	ctx := context.Background()
	existing := suite.sampleChurch(models.ChurchApproved)

	suite.repository.On("GetChurchByNameAndMunicipality", ctx, suite.executor,
		suite.dioceseId, "St. Anne", "Loon", "").Return(&existing, nil)

	uc := suite.makeUsecase(models.PARISH_STAFF)
	_, err := uc.CreateChurch(ctx, models.CreateChurchAttributes{
		DioceseId: suite.dioceseId,
		Form: models.ChurchForm{
			Name:         "St. Anne",
			Municipality: "Loon",
			Description:  "Another St. Anne",
		},
	})

	suite.Require().ErrorIs(err, models.ConflictError)
	suite.Contains(err.Error(), "already exists in Loon")
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestCreateChurch_InitializesPendingStatus() {
	ctx := context.Background()
	created := suite.sampleChurch(models.ChurchPending)

	suite.repository.On("GetChurchByNameAndMunicipality", ctx, suite.executor,
		suite.dioceseId, "St. Anne", "Loon", "").Return(nil, nil)
	suite.repository.On("CreateChurch", ctx, suite.executor, mock.Anything, suite.churchId).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(created, nil)

	uc := suite.makeUsecase(models.PARISH_STAFF)
	church, err := uc.CreateChurch(ctx, models.CreateChurchAttributes{
		Id:        suite.churchId,
		DioceseId: suite.dioceseId,
		Form: models.ChurchForm{
			Name:         "St. Anne",
			Municipality: "Loon",
			Description:  "Parish church of Loon",
		},
	})

	suite.Require().NoError(err)
	suite.Equal(models.ChurchPending, church.Status)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	suite.Equal(models.AuditChurchCreated, suite.auditLogger.Entries[0].Action)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestCreateChurch_MissingRequiredFields() {
	uc := suite.makeUsecase(models.PARISH_STAFF)
	_, err := uc.CreateChurch(context.Background(), models.CreateChurchAttributes{
		DioceseId: suite.dioceseId,
		Form:      models.ChurchForm{Name: "St. Anne"},
	})
	suite.ErrorIs(err, models.BadParameterError)
}

func (suite *ChurchWorkflowTestSuite) TestCreateChurch_ForbiddenForOtherDiocese() {
	uc := suite.makeUsecase(models.PARISH_STAFF)
	_, err := uc.CreateChurch(context.Background(), models.CreateChurchAttributes{
		DioceseId: "0d7ecb4c-3f55-4a36-a215-000000000999",
		Form: models.ChurchForm{
			Name:         "St. Anne",
			Municipality: "Loon",
			Description:  "Parish church",
		},
	})
	suite.ErrorIs(err, models.ForbiddenError)
}

func (suite *ChurchWorkflowTestSuite) TestUpdateChurch_ClassificationToHeritageRoutesToPending() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)
	updated := church
	updated.Classification = models.ClassificationICP
	updated.Status = models.ChurchPending

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Status != nil && *attrs.Status == models.ChurchPending &&
				attrs.Classification != nil && *attrs.Classification == models.ClassificationICP
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	form := church.Form()
	form.Classification = models.ClassificationICP

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurch(ctx, suite.churchId, form)

	suite.Require().NoError(err)
	suite.Equal(models.ChurchPending, result.Status)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestUpdateChurch_LostHeritageWhileInReviewReturnsToPending() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchHeritageReview)
	church.Classification = models.ClassificationICP
	updated := church
	updated.Classification = models.ClassificationNonHeritage
	updated.Status = models.ChurchPending

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Status != nil && *attrs.Status == models.ChurchPending &&
				attrs.Classification != nil && *attrs.Classification == models.ClassificationNonHeritage
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	form := church.Form()
	form.Classification = models.ClassificationNonHeritage

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurch(ctx, suite.churchId, form)

	suite.Require().NoError(err)
	suite.Equal(models.ChurchPending, result.Status)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestUpdateChurch_DraftResubmitsToPending() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchDraft)
	updated := church
	updated.Status = models.ChurchPending

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Status != nil && *attrs.Status == models.ChurchPending
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurch(ctx, suite.churchId, church.Form())

	suite.Require().NoError(err)
	suite.Equal(models.ChurchPending, result.Status)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestStagedUpdate_FallsThroughWhenNotApproved() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchPending)
	updated := church
	updated.Description = "A new description"

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Twice()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Description != nil && *attrs.Description == "A new description"
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	form := church.Form()
	form.Description = "A new description"

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurchWithStaging(ctx, suite.churchId, form)

	suite.Require().NoError(err)
	suite.False(result.HasPendingChanges)
	suite.Empty(result.StagedForReview)
	suite.Equal([]string{models.FieldDescription}, result.DirectlyPublished)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestStagedUpdate_DirectFieldsOnly() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.MassSchedules != nil && *attrs.MassSchedules == "Sun 6am, Sun 5pm"
		})).Return(nil)

	form := church.Form()
	form.MassSchedules = "Sun 6am, Sun 5pm"

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurchWithStaging(ctx, suite.churchId, form)

	suite.Require().NoError(err)
	suite.False(result.HasPendingChanges)
	suite.Equal([]string{models.FieldMassSchedules}, result.DirectlyPublished)
	suite.Empty(result.StagedForReview)
	suite.repository.AssertNotCalled(suite.T(), "UpdateChurchPendingChanges",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestStagedUpdate_MixedSplit() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			// The historical edit must not touch the live record.
			return attrs.ContactNumber != nil && attrs.HistoricalBackground == nil
		})).Return(nil)
	suite.repository.On("UpdateChurchPendingChanges", ctx, suite.executor, suite.churchId,
		mock.MatchedBy(func(pending *models.PendingChanges) bool {
			return pending != nil &&
				pending.Data[models.FieldHistoricalBackground] == "Founded by Recollects" &&
				pending.SubmittedBy == suite.actorId
		})).Return(nil)

	form := church.Form()
	form.ContactNumber = "098-765"
	form.HistoricalBackground = "Founded by Recollects"

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurchWithStaging(ctx, suite.churchId, form)

	suite.Require().NoError(err)
	suite.True(result.HasPendingChanges)
	suite.Equal([]string{models.FieldContactNumber}, result.DirectlyPublished)
	suite.Equal([]string{models.FieldHistoricalBackground}, result.StagedForReview)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	suite.Equal(models.AuditChurchUpdated, suite.auditLogger.Entries[0].Action)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestStagedUpdate_RepeatedStagingDoesNotDuplicateFields() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)
	church.PendingChanges = &models.PendingChanges{
		Data:          map[string]any{models.FieldHistoricalBackground: "Founded by Recollects"},
		ChangedFields: []string{models.FieldHistoricalBackground},
		SubmittedAt:   time.Now(),
		SubmittedBy:   suite.actorId,
	}

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)
	suite.repository.On("UpdateChurchPendingChanges", ctx, suite.executor, suite.churchId,
		mock.MatchedBy(func(pending *models.PendingChanges) bool {
			return len(pending.ChangedFields) == 1 &&
				pending.ChangedFields[0] == models.FieldHistoricalBackground
		})).Return(nil)

	// Same staged value again: the live record still shows the old text, so
	// the field diffs again, but the changed-field set must not grow.
	form := church.Form()
	form.HistoricalBackground = "Founded by Recollects"

	uc := suite.makeUsecase(models.PARISH_STAFF)
	result, err := uc.UpdateChurchWithStaging(ctx, suite.churchId, form)

	suite.Require().NoError(err)
	suite.True(result.HasPendingChanges)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestReviewChurch_ForwardToMuseum() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchPending)
	updated := church
	updated.Status = models.ChurchHeritageReview

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Status != nil && *attrs.Status == models.ChurchHeritageReview &&
				attrs.ReviewedBy != nil && *attrs.ReviewedBy == suite.actorId
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.REVIEWER)
	result, err := uc.ReviewChurch(ctx, models.ReviewChurchAttributes{
		ChurchId: suite.churchId,
		Action:   models.ReviewActionForwardToMuseum,
	})

	suite.Require().NoError(err)
	suite.Equal(models.ChurchHeritageReview, result.Status)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	entry := suite.auditLogger.Entries[0]
	suite.Equal(models.AuditChurchForwardHeritage, entry.Action)
	suite.Equal([]models.FieldChange{
		{Field: "status", OldValue: "pending", NewValue: "heritage_review"},
	}, entry.Changes)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestReviewChurch_RejectsUnknownAction() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchPending)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)

	uc := suite.makeUsecase(models.REVIEWER)
	_, err := uc.ReviewChurch(ctx, models.ReviewChurchAttributes{
		ChurchId: suite.churchId,
		Action:   "archive",
	})
	suite.ErrorIs(err, models.ErrInvalidReviewAction)
}

func (suite *ChurchWorkflowTestSuite) TestReviewChurch_ForbiddenForParishStaff() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchPending)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)

	uc := suite.makeUsecase(models.PARISH_STAFF)
	_, err := uc.ReviewChurch(ctx, models.ReviewChurchAttributes{
		ChurchId: suite.churchId,
		Action:   models.ReviewActionApprove,
	})
	suite.ErrorIs(err, models.ForbiddenError)
}

func (suite *ChurchWorkflowTestSuite) TestReviewHeritage_ReclassifyWinsOverExplicitStatus() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchHeritageReview)
	church.Classification = models.ClassificationICP
	updated := church
	updated.Classification = models.ClassificationNonHeritage
	updated.Status = models.ChurchPending

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Status != nil && *attrs.Status == models.ChurchPending &&
				attrs.ReviewNotes != nil && *attrs.ReviewNotes != ""
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.RESEARCHER)
	result, err := uc.ReviewHeritage(ctx, models.HeritageReviewAttributes{
		ChurchId:       suite.churchId,
		Classification: pure_utils.Ptr(models.ClassificationNonHeritage),
		Status:         pure_utils.Ptr(models.ChurchApproved),
	})

	suite.Require().NoError(err)
	suite.Equal(models.ChurchPending, result.Status)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	suite.Equal(models.AuditChurchReclassified, suite.auditLogger.Entries[0].Action)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestReviewHeritage_ApprovalAuditAction() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchHeritageReview)
	church.Classification = models.ClassificationICP
	updated := church
	updated.Status = models.ChurchApproved

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor, mock.Anything).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.RESEARCHER)
	_, err := uc.ReviewHeritage(ctx, models.HeritageReviewAttributes{
		ChurchId: suite.churchId,
		Status:   pure_utils.Ptr(models.ChurchApproved),
	})

	suite.Require().NoError(err)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	suite.Equal(models.AuditChurchApproved, suite.auditLogger.Entries[0].Action)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestReviewHeritage_SynthesizesChangeWhenNoDiff() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchHeritageReview)
	church.Classification = models.ClassificationICP

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)
	suite.repository.On("UpdateChurch", ctx, suite.executor, mock.Anything).Return(nil)

	uc := suite.makeUsecase(models.RESEARCHER)
	_, err := uc.ReviewHeritage(ctx, models.HeritageReviewAttributes{ChurchId: suite.churchId})

	suite.Require().NoError(err)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	suite.NotEmpty(suite.auditLogger.Entries[0].Changes)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestUnpublishChurch() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)
	updated := church
	updated.Status = models.ChurchDraft

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor,
		mock.MatchedBy(func(attrs models.UpdateChurchAttributes) bool {
			return attrs.Status != nil && *attrs.Status == models.ChurchDraft &&
				attrs.UnpublishReason != nil && *attrs.UnpublishReason == "duplicate entry"
		})).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.REVIEWER)
	result, err := uc.UnpublishChurch(ctx, suite.churchId, "duplicate entry")

	suite.Require().NoError(err)
	suite.Equal(models.ChurchDraft, result.Status)
	suite.Require().Len(suite.auditLogger.Entries, 1)
	entry := suite.auditLogger.Entries[0]
	suite.Equal(models.AuditChurchUnpublished, entry.Action)
	suite.Equal("duplicate entry", entry.Metadata["reason"])
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestUnpublishChurch_DiscardsStagedChanges() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)
	church.PendingChanges = &models.PendingChanges{
		Data:          map[string]any{models.FieldFounders: "Fr. Jose"},
		ChangedFields: []string{models.FieldFounders},
		SubmittedBy:   "actor-1",
	}
	updated := church
	updated.Status = models.ChurchDraft
	updated.PendingChanges = nil

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor, mock.Anything).Return(nil)
	suite.repository.On("UpdateChurchPendingChanges", ctx, suite.executor,
		suite.churchId, (*models.PendingChanges)(nil)).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.REVIEWER)
	result, err := uc.UnpublishChurch(ctx, suite.churchId, "duplicate entry")

	suite.Require().NoError(err)
	suite.Equal(models.ChurchDraft, result.Status)
	suite.Nil(result.PendingChanges)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestReviewHeritage_ReclassifyFromApprovedDiscardsStagedChanges() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchApproved)
	church.Classification = models.ClassificationICP
	church.PendingChanges = &models.PendingChanges{
		Data:          map[string]any{models.FieldFounders: "Fr. Jose"},
		ChangedFields: []string{models.FieldFounders},
		SubmittedBy:   "actor-1",
	}
	updated := church
	updated.Classification = models.ClassificationNonHeritage
	updated.Status = models.ChurchPending
	updated.PendingChanges = nil

	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(church, nil).Once()
	suite.repository.On("UpdateChurch", ctx, suite.executor, mock.Anything).Return(nil)
	suite.repository.On("UpdateChurchPendingChanges", ctx, suite.executor,
		suite.churchId, (*models.PendingChanges)(nil)).Return(nil)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).
		Return(updated, nil).Once()

	uc := suite.makeUsecase(models.RESEARCHER)
	result, err := uc.ReviewHeritage(ctx, models.HeritageReviewAttributes{
		ChurchId:       suite.churchId,
		Classification: pure_utils.Ptr(models.ClassificationNonHeritage),
	})

	suite.Require().NoError(err)
	suite.Equal(models.ChurchPending, result.Status)
	suite.Nil(result.PendingChanges)
	suite.AssertExpectations()
}

func (suite *ChurchWorkflowTestSuite) TestUnpublishChurch_RejectsNonApproved() {
	ctx := context.Background()
	church := suite.sampleChurch(models.ChurchPending)
	suite.repository.On("GetChurchById", ctx, suite.executor, suite.churchId).Return(church, nil)

	uc := suite.makeUsecase(models.REVIEWER)
	_, err := uc.UnpublishChurch(ctx, suite.churchId, "whatever")
	suite.ErrorIs(err, models.BadParameterError)
}

func TestChurchWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ChurchWorkflowTestSuite))
}
